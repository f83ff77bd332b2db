package mesh

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

func freePort(t *testing.T) int {
	t.Helper()
	c, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer c.Close()
	return c.LocalAddr().(*net.UDPAddr).Port
}

// newUnicastPair returns two nodes that know each other as seed peers.
func newUnicastPair(t *testing.T) (*Bus, *Bus) {
	t.Helper()
	portA, portB := freePort(t), freePort(t)
	addrA := fmt.Sprintf("127.0.0.1:%d", portA)
	addrB := fmt.Sprintf("127.0.0.1:%d", portB)
	a, err := New(Options{Port: portA, AdvertiseAddr: addrA, Peers: []string{addrB}, DisableMulticast: true, Heartbeat: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("node a: %v", err)
	}
	b, err := New(Options{Port: portB, AdvertiseAddr: addrB, Peers: []string{addrA}, DisableMulticast: true, Heartbeat: 50 * time.Millisecond})
	if err != nil {
		_ = a.Close()
		t.Fatalf("node b: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return a, b
}

func expectEvent(t *testing.T, ch <-chan syncbus.Event, want syncbus.Event) {
	t.Helper()
	select {
	case got, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before event")
		}
		if got != want {
			t.Fatalf("expected %+v got %+v", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for %+v", want)
	}
}

func TestMeshUnicastDelivery(t *testing.T) {
	a, b := newUnicastPair(t)
	ctx := context.Background()

	ch, err := b.Subscribe(ctx, "leader")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	acquired := syncbus.Event{Kind: syncbus.EventAcquired, Key: "leader", Token: "t1", Origin: "n1"}
	released := syncbus.Event{Kind: syncbus.EventReleased, Key: "leader", Token: "t1", Origin: "n1"}
	if err := a.Publish(ctx, acquired); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := a.Publish(ctx, released); err != nil {
		t.Fatalf("publish: %v", err)
	}
	// Both events survive batching, in order.
	expectEvent(t, ch, acquired)
	expectEvent(t, ch, released)
}

func TestMeshLocalDeliveryOnce(t *testing.T) {
	a, _ := newUnicastPair(t)
	ctx := context.Background()
	ch, err := a.Subscribe(ctx, "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := syncbus.Event{Kind: syncbus.EventReleased, Key: "k"}
	if err := a.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
	select {
	case got := <-ch:
		t.Fatalf("own event delivered twice: %+v", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestMeshGossip(t *testing.T) {
	portA, portB := freePort(t), freePort(t)
	addrA := fmt.Sprintf("127.0.0.1:%d", portA)
	addrB := fmt.Sprintf("127.0.0.1:%d", portB)

	nodeA, err := New(Options{Port: portA, AdvertiseAddr: addrA, DisableMulticast: true, Heartbeat: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("node a: %v", err)
	}
	defer nodeA.Close()
	nodeB, err := New(Options{Port: portB, AdvertiseAddr: addrB, Peers: []string{addrA}, DisableMulticast: true, Heartbeat: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("node b: %v", err)
	}
	defer nodeB.Close()

	found := false
	for i := 0; i < 40 && !found; i++ {
		for _, p := range nodeA.Peers() {
			if p == addrB {
				found = true
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !found {
		t.Fatalf("node a did not discover node b (peers %v)", nodeA.Peers())
	}

	// Node a only learnt b through gossip and can now reach it.
	ch, err := nodeB.Subscribe(context.Background(), "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := syncbus.Event{Kind: syncbus.EventAcquired, Key: "k", Token: "t"}
	if err := nodeA.Publish(context.Background(), ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
}

func TestMeshSubscriptionClosesOnContext(t *testing.T) {
	a, _ := newUnicastPair(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := a.Subscribe(ctx, "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected channel closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for unsubscribe")
	}
}

func TestMeshClose(t *testing.T) {
	a, _ := newUnicastPair(t)
	ch, err := a.Subscribe(context.Background(), "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Fatal("expected channel closed")
	}
	if err := a.Publish(context.Background(), syncbus.Event{Key: "k"}); !errors.Is(err, muterrors.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed got %v", err)
	}
	if err := a.Close(); !errors.Is(err, muterrors.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed on second close got %v", err)
	}
}

func TestMeshMulticast(t *testing.T) {
	if os.Getenv("MUTEX_TEST_MESH_MULTICAST") != "true" {
		t.Skip("set MUTEX_TEST_MESH_MULTICAST=true to run multicast tests")
	}
	opts := Options{Port: freePort(t), Interface: os.Getenv("MUTEX_TEST_MESH_IFACE")}
	nodeA, err := New(opts)
	if err != nil {
		t.Fatalf("node a: %v", err)
	}
	defer nodeA.Close()
	nodeB, err := New(opts)
	if err != nil {
		t.Fatalf("node b: %v", err)
	}
	defer nodeB.Close()

	ch, err := nodeB.Subscribe(context.Background(), "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := syncbus.Event{Kind: syncbus.EventReleased, Key: "k", Token: "t"}
	if err := nodeA.Publish(context.Background(), ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
}
