package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

func newRedisLocker(t *testing.T, opts ...RedisOption) (*Redis, *miniredis.Miniredis, syncbus.Bus, context.Context) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	bus := syncbus.NewInMemoryBus()
	locker := NewRedis(client, bus, opts...)
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return locker, mr, bus, context.Background()
}

func TestRedisTryLockAcquireReleaseAndBus(t *testing.T) {
	l, _, bus, ctx := newRedisLocker(t)

	events, err := bus.Subscribe(ctx, "k")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := l.Acquire(ctx, "k", time.Second); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	select {
	case ev := <-events:
		if ev.Kind != syncbus.EventAcquired {
			t.Fatalf("expected acquired event got %v", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for lock publish")
	}
	if err := l.Release(ctx, "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
	select {
	case ev := <-events:
		if ev.Kind != syncbus.EventReleased {
			t.Fatalf("expected released event got %v", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for unlock publish")
	}
	l.mu.Lock()
	if _, ok := l.tokens["k"]; ok {
		t.Fatal("token not cleaned up on release")
	}
	l.mu.Unlock()

	ok, err := l.TryLock(ctx, "k", time.Second)
	if err != nil || !ok {
		t.Fatalf("trylock: %v ok %v", err, ok)
	}
	if ok, err := l.TryLock(ctx, "k", time.Second); err != nil || ok {
		t.Fatalf("expected lock held, ok %v err %v", ok, err)
	}
	if err := l.Release(ctx, "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestRedisAcquireWaitsForRelease(t *testing.T) {
	l1, mr, bus, ctx := newRedisLocker(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	l2 := NewRedis(client, bus)

	if err := l1.Acquire(ctx, "k", time.Minute); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- l2.Acquire(ctx, "k", time.Minute) }()

	select {
	case err := <-done:
		t.Fatalf("second acquire returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	if err := l1.Release(ctx, "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter not woken by release")
	}
	if err := l2.Release(ctx, "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestRedisAcquirePollsWithoutEvents(t *testing.T) {
	// Two lockers on separate in-process buses never see each other's
	// events; the retry interval must still make progress.
	l1, mr, _, ctx := newRedisLocker(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	l2 := NewRedis(client, nil, WithRetryInterval(5*time.Millisecond))

	if ok, err := l1.TryLock(ctx, "k", 0); err != nil || !ok {
		t.Fatalf("trylock: %v ok %v", err, ok)
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = l1.Release(ctx, "k")
	}()
	wctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := l2.Acquire(wctx, "k", 0); err != nil {
		t.Fatalf("acquire: %v", err)
	}
}

func TestRedisReleaseAfterExpiry(t *testing.T) {
	l, mr, _, ctx := newRedisLocker(t, WithKeyPrefix("locks:"))
	if ok, err := l.TryLock(ctx, "k", time.Second); err != nil || !ok {
		t.Fatalf("trylock: %v ok %v", err, ok)
	}
	if !mr.Exists("locks:k") {
		t.Fatal("expected prefixed key in redis")
	}
	mr.FastForward(2 * time.Second)
	if err := l.Release(ctx, "k"); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("expected ErrNotHeld after expiry got %v", err)
	}
	if err := l.Release(ctx, "k"); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("expected ErrNotHeld for unknown token got %v", err)
	}
}
