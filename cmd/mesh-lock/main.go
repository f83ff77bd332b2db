// Command mesh-lock runs one node of a group that elects a leader through a
// keyed lock whose events travel over the UDP mesh bus.
//
//	mesh-lock -id 0 -port 7946 -adv 127.0.0.1:7946
//	mesh-lock -id 1 -port 7947 -adv 127.0.0.1:7947 -peer 127.0.0.1:7946
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mirkobrombin/go-mutex/v1/lock"
	"github.com/mirkobrombin/go-mutex/v1/mutex"
	"github.com/mirkobrombin/go-mutex/v1/syncbus/mesh"
)

func main() {
	id := flag.Int("id", 0, "Node ID")
	port := flag.Int("port", 7946, "Mesh Port")
	advertise := flag.String("adv", "", "Advertise Address")
	peer := flag.String("peer", "", "Seed Peer")
	unicast := flag.Bool("unicast", false, "Disable multicast and only gossip with peers")
	hold := flag.Duration("hold", 2*time.Second, "How long the leader keeps the lock")
	flag.Parse()

	opts := mesh.Options{
		Port:             *port,
		AdvertiseAddr:    *advertise,
		Heartbeat:        100 * time.Millisecond,
		DisableMulticast: *unicast,
	}
	if *peer != "" {
		opts.Peers = []string{*peer}
	}
	bus, err := mesh.New(opts)
	if err != nil {
		log.Fatalf("[Node %d] mesh: %v", *id, err)
	}
	defer bus.Close()

	locker := lock.NewInMemory(bus)
	defer locker.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	terms := 0
	leader := lock.NewGuard(locker, "leader", &terms, lock.WithTTL(*hold*2), lock.WithContext(ctx))
	history := mutex.NewCell([]time.Duration{})

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Printf("[Node %d] Known peers: %v", *id, bus.Peers())
			}
		}
	}()

	for ctx.Err() == nil {
		_, err := mutex.TryLock2(ctx, leader, history, func(n *int, h *[]time.Duration) struct{} {
			*n++
			start := time.Now()
			log.Printf("[Node %d] Elected leader, term %d", *id, *n)
			select {
			case <-time.After(*hold):
			case <-ctx.Done():
			}
			*h = append(*h, time.Since(start))
			return struct{}{}
		})
		if err != nil {
			log.Printf("[Node %d] Follower: %v", *id, err)
		}
		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
		}
	}
	log.Printf("[Node %d] Shutting down after %d terms", *id, len(history.Into()))
}
