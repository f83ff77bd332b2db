package syncbus

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	redis "github.com/redis/go-redis/v9"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

const redisChannelPrefix = "mutex:"

// RedisBus implements Bus on top of Redis pub/sub. Every key maps to the
// channel "mutex:<key>".
type RedisBus struct {
	subscribers
	client *redis.Client

	psMu   sync.Mutex
	pubsub map[string]*redis.PubSub
	closed atomic.Bool
}

// NewRedisBus returns a new RedisBus using the provided Redis client.
func NewRedisBus(client *redis.Client) *RedisBus {
	b := &RedisBus{client: client, pubsub: make(map[string]*redis.PubSub)}
	b.init()
	return b
}

// Publish implements Bus.Publish.
func (b *RedisBus) Publish(ctx context.Context, ev Event) error {
	if b.closed.Load() {
		return muterrors.ErrConnectionClosed
	}
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, redisChannelPrefix+ev.Key, payload).Err(); err != nil {
		return err
	}
	b.published.Add(1)
	return nil
}

// Subscribe implements Bus.Subscribe. It returns once Redis has confirmed
// the subscription, so events published afterwards are not missed.
func (b *RedisBus) Subscribe(ctx context.Context, key string) (<-chan Event, error) {
	if b.closed.Load() {
		return nil, muterrors.ErrConnectionClosed
	}
	b.psMu.Lock()
	defer b.psMu.Unlock()
	ch := b.add(key)
	if _, ok := b.pubsub[key]; !ok {
		ps := b.client.Subscribe(context.WithoutCancel(ctx), redisChannelPrefix+key)
		if _, err := ps.Receive(ctx); err != nil {
			_ = ps.Close()
			b.remove(key, ch)
			return nil, err
		}
		b.pubsub[key] = ps
		go b.dispatch(ps)
	}
	unsubscribeOnDone(ctx, b, key, ch)
	return ch, nil
}

func (b *RedisBus) dispatch(ps *redis.PubSub) {
	for msg := range ps.Channel() {
		ev, err := decodeEvent([]byte(msg.Payload))
		if err != nil {
			slog.Warn("mutex: dropping malformed redis event", "channel", msg.Channel, "error", err)
			continue
		}
		b.deliver(ev)
	}
}

// Unsubscribe implements Bus.Unsubscribe.
func (b *RedisBus) Unsubscribe(ctx context.Context, key string, ch <-chan Event) error {
	b.psMu.Lock()
	defer b.psMu.Unlock()
	if !b.remove(key, ch) {
		return nil
	}
	ps, ok := b.pubsub[key]
	if !ok {
		return nil
	}
	delete(b.pubsub, key)
	return ps.Close()
}

// Metrics returns the published and delivered counts.
func (b *RedisBus) Metrics() Metrics {
	return b.metrics()
}

// Close stops every subscription. The client is left open.
func (b *RedisBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return muterrors.ErrConnectionClosed
	}
	b.psMu.Lock()
	for key, ps := range b.pubsub {
		_ = ps.Close()
		delete(b.pubsub, key)
	}
	b.psMu.Unlock()
	b.closeAll()
	return nil
}
