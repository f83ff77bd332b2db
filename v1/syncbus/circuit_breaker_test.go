package syncbus

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockBus struct {
	publishFunc func(ctx context.Context, ev Event) error
	*InMemoryBus
}

func (m *mockBus) Publish(ctx context.Context, ev Event) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, ev)
	}
	return m.InMemoryBus.Publish(ctx, ev)
}

func released(key string) Event { return Event{Kind: EventReleased, Key: key} }

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	mb := &mockBus{InMemoryBus: NewInMemoryBus()}
	timeout := 50 * time.Millisecond
	cb := NewCircuitBreaker(mb, 2, timeout)

	ctx := context.Background()
	failErr := errors.New("fail")

	if !cb.IsHealthy() {
		t.Fatal("expected healthy initially")
	}

	mb.publishFunc = func(context.Context, Event) error { return failErr }
	if err := cb.Publish(ctx, released("key")); err != failErr {
		t.Fatalf("expected failErr, got %v", err)
	}
	if !cb.IsHealthy() {
		t.Fatal("expected healthy after 1 failure (threshold 2)")
	}
	if err := cb.Publish(ctx, released("key")); err != failErr {
		t.Fatalf("expected failErr, got %v", err)
	}
	if cb.IsHealthy() {
		t.Fatal("expected open after threshold reached")
	}
	if err := cb.Publish(ctx, released("key")); err != ErrCircuitOpen {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	time.Sleep(timeout + 10*time.Millisecond)

	mb.publishFunc = nil
	if err := cb.Publish(ctx, released("key")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.failures != 0 || !cb.IsHealthy() {
		t.Fatalf("expected closed circuit, failures=%d", cb.failures)
	}

	mb.publishFunc = func(context.Context, Event) error { return failErr }
	_ = cb.Publish(ctx, released("key"))
	_ = cb.Publish(ctx, released("key"))
	time.Sleep(timeout + 10*time.Millisecond)
	if err := cb.Publish(ctx, released("key")); err != failErr {
		t.Fatalf("expected probe failure, got %v", err)
	}
	if err := cb.Publish(ctx, released("key")); err != ErrCircuitOpen {
		t.Fatalf("expected ErrCircuitOpen after failed probe, got %v", err)
	}
}

func TestCircuitBreaker_Passthrough(t *testing.T) {
	mb := &mockBus{InMemoryBus: NewInMemoryBus()}
	cb := NewCircuitBreaker(mb, 5, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := cb.Subscribe(ctx, "foo")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := cb.Publish(ctx, released("foo")); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-sub:
		if ev.Kind != EventReleased || ev.Key != "foo" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event on underlying bus")
	}
}
