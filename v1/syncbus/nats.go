package syncbus

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	nats "github.com/nats-io/nats.go"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

const natsSubjectPrefix = "mutex."

// natsFlushTimeout bounds the subscribe round trip when the caller's
// context carries no deadline; nats.go refuses to flush without one.
const natsFlushTimeout = 5 * time.Second

// NATSBus implements Bus using a NATS backend. Every key maps to the
// subject "mutex.<key>".
type NATSBus struct {
	subscribers
	conn   *nats.Conn
	closed atomic.Bool

	subMu sync.Mutex
	subs  map[string]*nats.Subscription
}

// NewNATSBus returns a new NATSBus using the provided connection.
func NewNATSBus(conn *nats.Conn) *NATSBus {
	b := &NATSBus{conn: conn, subs: make(map[string]*nats.Subscription)}
	b.init()
	return b
}

// Publish implements Bus.Publish.
func (b *NATSBus) Publish(ctx context.Context, ev Event) error {
	if b.closed.Load() {
		return muterrors.ErrConnectionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	if err := b.conn.Publish(natsSubjectPrefix+ev.Key, payload); err != nil {
		return err
	}
	b.published.Add(1)
	return nil
}

// Subscribe implements Bus.Subscribe.
func (b *NATSBus) Subscribe(ctx context.Context, key string) (<-chan Event, error) {
	if b.closed.Load() {
		return nil, muterrors.ErrConnectionClosed
	}
	b.subMu.Lock()
	defer b.subMu.Unlock()
	ch := b.add(key)
	if _, ok := b.subs[key]; !ok {
		sub, err := b.conn.Subscribe(natsSubjectPrefix+key, func(msg *nats.Msg) {
			ev, err := decodeEvent(msg.Data)
			if err != nil {
				slog.Warn("mutex: dropping malformed nats event", "subject", msg.Subject, "error", err)
				return
			}
			b.deliver(ev)
		})
		if err != nil {
			b.remove(key, ch)
			return nil, err
		}
		if err := b.flush(ctx); err != nil {
			_ = sub.Unsubscribe()
			b.remove(key, ch)
			return nil, err
		}
		b.subs[key] = sub
	}
	unsubscribeOnDone(ctx, b, key, ch)
	return ch, nil
}

// flush waits until the server has processed the subscription.
func (b *NATSBus) flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, natsFlushTimeout)
		defer cancel()
	}
	return b.conn.FlushWithContext(ctx)
}

// Unsubscribe implements Bus.Unsubscribe.
func (b *NATSBus) Unsubscribe(ctx context.Context, key string, ch <-chan Event) error {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	if !b.remove(key, ch) {
		return nil
	}
	sub, ok := b.subs[key]
	if !ok {
		return nil
	}
	delete(b.subs, key)
	return sub.Unsubscribe()
}

// Metrics returns the published and delivered counts.
func (b *NATSBus) Metrics() Metrics {
	return b.metrics()
}

// Close drains every subscription. The connection is left open.
func (b *NATSBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return muterrors.ErrConnectionClosed
	}
	b.subMu.Lock()
	for key, sub := range b.subs {
		_ = sub.Unsubscribe()
		delete(b.subs, key)
	}
	b.subMu.Unlock()
	b.closeAll()
	return nil
}
