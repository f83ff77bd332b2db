// Package syncbus propagates lock events between lockers. A locker
// publishes EventAcquired and EventReleased for a key; waiters subscribe to
// the key and retry when a release arrives.
package syncbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

// subscriberBuffer is the per-subscriber channel capacity. Events that do
// not fit are dropped; waiters always re-check the lock state.
const subscriberBuffer = 16

// EventKind tells what happened to a lock.
type EventKind int

const (
	EventAcquired EventKind = iota + 1
	EventReleased
)

func (k EventKind) String() string {
	switch k {
	case EventAcquired:
		return "acquired"
	case EventReleased:
		return "released"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a change of ownership of the lock identified by Key.
// TTL is set on EventAcquired when the owner's lock expires on its own.
type Event struct {
	Kind   EventKind     `json:"k"`
	Key    string        `json:"key"`
	Token  string        `json:"t,omitempty"`
	Origin string        `json:"o,omitempty"`
	TTL    time.Duration `json:"ttl,omitempty"`
}

func encodeEvent(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

func decodeEvent(data []byte) (Event, error) {
	var ev Event
	err := json.Unmarshal(data, &ev)
	return ev, err
}

// Bus is the transport used by lockers to announce lock events.
type Bus interface {
	Publish(ctx context.Context, ev Event) error
	// Subscribe returns a channel receiving the events of key. The channel
	// is closed by Unsubscribe or when ctx is done.
	Subscribe(ctx context.Context, key string) (<-chan Event, error)
	Unsubscribe(ctx context.Context, key string, ch <-chan Event) error
}

type Metrics struct {
	Published uint64
	Delivered uint64
}

// subscribers is the fan-out table shared by every Bus implementation.
type subscribers struct {
	mu        sync.Mutex
	byKey     map[string][]chan Event
	published atomic.Uint64
	delivered atomic.Uint64
}

func (s *subscribers) init() {
	s.byKey = make(map[string][]chan Event)
}

func (s *subscribers) add(key string) chan Event {
	ch := make(chan Event, subscriberBuffer)
	s.mu.Lock()
	s.byKey[key] = append(s.byKey[key], ch)
	s.mu.Unlock()
	return ch
}

// remove closes ch and reports whether key has no subscribers left.
func (s *subscribers) remove(key string, ch <-chan Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.byKey[key]
	for i, c := range subs {
		if c == ch {
			subs[i] = subs[len(subs)-1]
			subs = subs[:len(subs)-1]
			close(c)
			break
		}
	}
	if len(subs) == 0 {
		delete(s.byKey, key)
		return true
	}
	s.byKey[key] = subs
	return false
}

func (s *subscribers) deliver(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.byKey[ev.Key] {
		select {
		case ch <- ev:
			s.delivered.Add(1)
		default:
		}
	}
}

func (s *subscribers) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, subs := range s.byKey {
		for _, ch := range subs {
			close(ch)
		}
		delete(s.byKey, key)
	}
}

func (s *subscribers) metrics() Metrics {
	return Metrics{
		Published: s.published.Load(),
		Delivered: s.delivered.Load(),
	}
}

// unsubscribeOnDone removes ch once ctx is done. Contexts that can never be
// cancelled do not get a watcher goroutine.
func unsubscribeOnDone(ctx context.Context, bus Bus, key string, ch <-chan Event) {
	if ctx.Done() == nil {
		return
	}
	go func() {
		<-ctx.Done()
		_ = bus.Unsubscribe(context.Background(), key, ch)
	}()
}

// InMemoryBus is a process-local Bus. Lockers sharing one instance behave
// like nodes of a cluster.
type InMemoryBus struct {
	subscribers
	closed atomic.Bool
}

// NewInMemoryBus returns a new InMemoryBus.
func NewInMemoryBus() *InMemoryBus {
	b := &InMemoryBus{}
	b.init()
	return b
}

// Publish implements Bus.Publish.
func (b *InMemoryBus) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.closed.Load() {
		return muterrors.ErrConnectionClosed
	}
	b.published.Add(1)
	b.deliver(ev)
	return nil
}

// Subscribe implements Bus.Subscribe.
func (b *InMemoryBus) Subscribe(ctx context.Context, key string) (<-chan Event, error) {
	if b.closed.Load() {
		return nil, muterrors.ErrConnectionClosed
	}
	ch := b.add(key)
	unsubscribeOnDone(ctx, b, key, ch)
	return ch, nil
}

// Unsubscribe implements Bus.Unsubscribe.
func (b *InMemoryBus) Unsubscribe(ctx context.Context, key string, ch <-chan Event) error {
	b.remove(key, ch)
	return nil
}

// Metrics returns the published and delivered counts.
func (b *InMemoryBus) Metrics() Metrics {
	return b.metrics()
}

// Close closes every subscription. Later calls fail with
// ErrConnectionClosed.
func (b *InMemoryBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return muterrors.ErrConnectionClosed
	}
	b.closeAll()
	return nil
}
