package syncbus

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func newRedisBus(t *testing.T) (*RedisBus, *miniredis.Miniredis, context.Context) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	bus := NewRedisBus(client)
	t.Cleanup(func() {
		_ = bus.Close()
		_ = client.Close()
		mr.Close()
	})
	return bus, mr, context.Background()
}

func TestRedisBusPublishSubscribeFlowAndMetrics(t *testing.T) {
	bus, _, ctx := newRedisBus(t)
	ch, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := Event{Kind: EventReleased, Key: "key", Token: "tok"}
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

func TestRedisBusSharedAcrossClients(t *testing.T) {
	bus, mr, ctx := newRedisBus(t)
	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer other.Close()
	remote := NewRedisBus(other)
	defer remote.Close()

	ch, err := bus.Subscribe(ctx, "leader")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	ev := Event{Kind: EventAcquired, Key: "leader", Origin: "remote"}
	if err := remote.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
}

func TestRedisBusContextBasedUnsubscribe(t *testing.T) {
	bus, _, _ := newRedisBus(t)
	subCtx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(subCtx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	cancel()
	expectClosed(t, ch)

	bus.psMu.Lock()
	defer bus.psMu.Unlock()
	if _, ok := bus.pubsub["key"]; ok {
		t.Fatal("redis subscription still open after last unsubscribe")
	}
}

func TestRedisBusIgnoresMalformedPayload(t *testing.T) {
	bus, _, ctx := newRedisBus(t)
	ch, err := bus.Subscribe(ctx, "key")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := bus.client.Publish(ctx, redisChannelPrefix+"key", "not json").Err(); err != nil {
		t.Fatalf("raw publish: %v", err)
	}
	ev := Event{Kind: EventReleased, Key: "key"}
	if err := bus.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	expectEvent(t, ch, ev)
}
