package lock

import (
	"context"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	nats "github.com/nats-io/nats.go"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

func newNATSNode(t *testing.T, url string) *InMemory {
	t.Helper()
	conn, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	bus := syncbus.NewNATSBus(conn)
	l := NewInMemory(bus)
	t.Cleanup(func() {
		_ = l.Close()
		_ = bus.Close()
		conn.Close()
	})
	return l
}

func TestInMemoryOverNATS(t *testing.T) {
	s := natsserver.RunRandClientPortServer()
	defer s.Shutdown()
	node1 := newNATSNode(t, s.ClientURL())
	node2 := newNATSNode(t, s.ClientURL())
	ctx := context.Background()

	if ok, err := node2.TryLock(ctx, "leader", 0); err != nil || !ok {
		t.Fatalf("node2 trylock: %v ok %v", err, ok)
	}
	if err := node2.Release(ctx, "leader"); err != nil {
		t.Fatalf("node2 release: %v", err)
	}

	term := 0
	leader := NewGuard(node1, "leader", &term)
	held := make(chan struct{})
	resume := make(chan struct{})
	go leader.Lock(func(n *int) {
		*n++
		close(held)
		<-resume
	})
	<-held
	waitMirrored(t, node2, "leader", node1.ID())
	if ok, err := node2.TryLock(ctx, "leader", 0); err != nil || ok {
		t.Fatalf("node2 acquired a key held over nats, ok %v err %v", ok, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- node2.Acquire(waitCtx, "leader", 0) }()
	close(resume)
	if err := <-done; err != nil {
		t.Fatalf("node2 acquire after remote release: %v", err)
	}
	if term != 1 {
		t.Fatalf("expected term 1 got %d", term)
	}
}
