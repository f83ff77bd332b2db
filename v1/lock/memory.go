package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

type lockState struct {
	owner  string
	token  string
	timer  *time.Timer
	notify chan struct{}
}

// InMemoryOption configures an InMemory locker.
type InMemoryOption func(*InMemory)

// WithRemoteExpiry bounds how long a lock mirrored from another node is
// honoured when its owner announced no TTL. Without it such a lock stays
// held until its release event arrives.
func WithRemoteExpiry(d time.Duration) InMemoryOption {
	return func(l *InMemory) {
		if d > 0 {
			l.remoteExpiry = d
		}
	}
}

// InMemory implements Locker using local memory. Lock and unlock events are
// propagated through a syncbus Bus so that InMemory lockers sharing a bus
// see each other's locks. A mirrored lock expires with the TTL its owner
// announced, so a node that dies or a lost release event does not block
// the key past that TTL.
type InMemory struct {
	id           string
	bus          syncbus.Bus
	remoteExpiry time.Duration

	mu    sync.Mutex
	locks map[string]*lockState
	subs  map[string]<-chan syncbus.Event
}

// NewInMemory returns a new in-memory locker that uses bus to propagate events.
func NewInMemory(bus syncbus.Bus, opts ...InMemoryOption) *InMemory {
	if bus == nil {
		bus = syncbus.NewInMemoryBus()
	}
	l := &InMemory{
		id:    uuid.NewString(),
		bus:   bus,
		locks: make(map[string]*lockState),
		subs:  make(map[string]<-chan syncbus.Event),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID identifies this locker in published events.
func (l *InMemory) ID() string {
	return l.id
}

func (l *InMemory) ensureSubscription(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.subs[key]; ok {
		return nil
	}
	ch, err := l.bus.Subscribe(context.Background(), key)
	if err != nil {
		return err
	}
	l.subs[key] = ch
	go l.follow(ch)
	return nil
}

// follow mirrors the locks taken and released by other nodes.
func (l *InMemory) follow(ch <-chan syncbus.Event) {
	for ev := range ch {
		if ev.Origin == l.id {
			continue
		}
		l.mu.Lock()
		st, held := l.locks[ev.Key]
		switch ev.Kind {
		case syncbus.EventAcquired:
			if !held {
				l.mirror(ev)
			}
		case syncbus.EventReleased:
			if held && st.owner == ev.Origin && st.token == ev.Token {
				l.drop(ev.Key, st)
			}
		}
		l.mu.Unlock()
	}
}

// mirror records a lock taken by another node. It must be called with l.mu
// held.
func (l *InMemory) mirror(ev syncbus.Event) {
	key := ev.Key
	st := &lockState{owner: ev.Origin, token: ev.Token, notify: make(chan struct{})}
	ttl := ev.TTL
	if ttl <= 0 {
		ttl = l.remoteExpiry
	}
	if ttl > 0 {
		st.timer = time.AfterFunc(ttl, func() {
			l.mu.Lock()
			if l.locks[key] == st {
				l.drop(key, st)
			}
			l.mu.Unlock()
		})
	}
	l.locks[key] = st
}

// TryLock attempts to obtain the lock without waiting. It returns true on success.
func (l *InMemory) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := l.ensureSubscription(key); err != nil {
		return false, err
	}
	l.mu.Lock()
	if _, ok := l.locks[key]; ok {
		l.mu.Unlock()
		return false, nil
	}
	st := &lockState{owner: l.id, token: uuid.NewString(), notify: make(chan struct{})}
	if ttl > 0 {
		st.timer = time.AfterFunc(ttl, func() {
			l.expire(key, st)
		})
	}
	l.locks[key] = st
	l.mu.Unlock()
	_ = l.bus.Publish(ctx, syncbus.Event{Kind: syncbus.EventAcquired, Key: key, Token: st.token, Origin: l.id, TTL: ttl})
	return true, nil
}

// Acquire blocks until the lock is obtained or the context is cancelled.
func (l *InMemory) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	for {
		ok, err := l.TryLock(ctx, key, ttl)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		l.mu.Lock()
		var ch chan struct{}
		if st, held := l.locks[key]; held {
			ch = st.notify
		}
		l.mu.Unlock()
		if ch == nil {
			continue
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Release frees the lock for the given key. It returns ErrNotHeld if this
// locker does not own key, including after the TTL expired.
func (l *InMemory) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	st, ok := l.locks[key]
	if !ok || st.owner != l.id {
		l.mu.Unlock()
		return ErrNotHeld
	}
	l.drop(key, st)
	l.mu.Unlock()
	return l.bus.Publish(ctx, syncbus.Event{Kind: syncbus.EventReleased, Key: key, Token: st.token, Origin: l.id})
}

func (l *InMemory) expire(key string, st *lockState) {
	l.mu.Lock()
	if l.locks[key] != st {
		l.mu.Unlock()
		return
	}
	l.drop(key, st)
	l.mu.Unlock()
	_ = l.bus.Publish(context.Background(), syncbus.Event{Kind: syncbus.EventReleased, Key: key, Token: st.token, Origin: l.id})
}

// drop must be called with l.mu held.
func (l *InMemory) drop(key string, st *lockState) {
	if st.timer != nil {
		st.timer.Stop()
	}
	close(st.notify)
	delete(l.locks, key)
}

// Close stops following remote events. Locks held by this locker are not
// released.
func (l *InMemory) Close() error {
	l.mu.Lock()
	subs := l.subs
	l.subs = make(map[string]<-chan syncbus.Event)
	l.mu.Unlock()
	for key, ch := range subs {
		_ = l.bus.Unsubscribe(context.Background(), key, ch)
	}
	return nil
}
