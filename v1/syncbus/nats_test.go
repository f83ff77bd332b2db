package syncbus

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	nats "github.com/nats-io/nats.go"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

func newNATSBus(t *testing.T) (*NATSBus, context.Context) {
	t.Helper()
	addr := os.Getenv("MUTEX_TEST_NATS_ADDR")
	forceReal := os.Getenv("MUTEX_TEST_FORCE_REAL") == "true"

	if forceReal && addr == "" {
		t.Fatal("MUTEX_TEST_FORCE_REAL is true but MUTEX_TEST_NATS_ADDR is empty")
	}

	var conn *nats.Conn
	var s *server.Server
	var err error

	if addr != "" {
		t.Logf("TestNATSBus: using real NATS at %s", addr)
		conn, err = nats.Connect(addr)
	} else {
		t.Log("TestNATSBus: using embedded NATS server")
		s = natsserver.RunRandClientPortServer()
		conn, err = nats.Connect(s.ClientURL())
	}
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	bus := NewNATSBus(conn)
	t.Cleanup(func() {
		conn.Close()
		if s != nil {
			s.Shutdown()
		}
	})
	return bus, context.Background()
}

func TestNATSBusPublishSubscribeFlowAndMetrics(t *testing.T) {
	bus, ctx := newNATSBus(t)
	ch, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := Event{Kind: EventAcquired, Key: "key", Token: "tok", Origin: "n1"}
	if err := bus.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)

	metrics := bus.Metrics()
	if metrics.Published != 1 {
		t.Fatalf("expected published 1 got %d", metrics.Published)
	}
	if metrics.Delivered != 1 {
		t.Fatalf("expected delivered 1 got %d", metrics.Delivered)
	}
}

func TestNATSBusContextBasedUnsubscribe(t *testing.T) {
	bus, _ := newNATSBus(t)
	subCtx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(subCtx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	cancel()
	expectClosed(t, ch)

	bus.subMu.Lock()
	defer bus.subMu.Unlock()
	if _, ok := bus.subs["key"]; ok {
		t.Fatal("nats subscription still present after last unsubscribe")
	}
}

func TestNATSBusMultipleSubscribers(t *testing.T) {
	bus, ctx := newNATSBus(t)
	ch1, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ch2, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := Event{Kind: EventReleased, Key: "key"}
	if err := bus.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch1, ev)
	expectEvent(t, ch2, ev)

	if err := bus.Unsubscribe(ctx, "key", ch1); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	expectClosed(t, ch1)
	bus.subMu.Lock()
	_, stillSubscribed := bus.subs["key"]
	bus.subMu.Unlock()
	if !stillSubscribed {
		t.Fatal("nats subscription dropped while a subscriber remains")
	}
}

func TestNATSBusClose(t *testing.T) {
	bus, ctx := newNATSBus(t)
	ch, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	expectClosed(t, ch)
	if err := bus.Publish(ctx, Event{Kind: EventReleased, Key: "key"}); !errors.Is(err, muterrors.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed got %v", err)
	}
	if _, err := bus.Subscribe(ctx, "key"); !errors.Is(err, muterrors.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed got %v", err)
	}
}

func TestNATSBusSubscribeWithAndWithoutDeadline(t *testing.T) {
	bus, _ := newNATSBus(t)
	ch, err := bus.Subscribe(context.Background(), "plain")
	if err != nil {
		t.Fatalf("subscribe without deadline: %v", err)
	}
	dctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	dch, err := bus.Subscribe(dctx, "bounded")
	if err != nil {
		t.Fatalf("subscribe with deadline: %v", err)
	}

	ev := Event{Kind: EventAcquired, Key: "plain", Token: "tok", TTL: time.Second}
	if err := bus.Publish(context.Background(), ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
	bounded := Event{Kind: EventReleased, Key: "bounded"}
	if err := bus.Publish(context.Background(), bounded); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, dch, bounded)
}
