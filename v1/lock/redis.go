package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

var delScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`)

const defaultRetryInterval = 50 * time.Millisecond

// RedisOption configures a Redis locker.
type RedisOption func(*Redis)

// WithRetryInterval sets how long Acquire waits for a release event before
// polling Redis again. Non-positive values are ignored.
func WithRetryInterval(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.retry = d
		}
	}
}

// WithKeyPrefix namespaces the Redis keys used for locks.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// Redis implements Locker using a Redis backend. Ownership is a random
// token stored with SET NX; Release only deletes the key while it still
// holds that token.
type Redis struct {
	client *redis.Client
	bus    syncbus.Bus
	retry  time.Duration
	prefix string

	mu     sync.Mutex
	tokens map[string]string
}

// NewRedis returns a new Redis locker using the provided client. Release
// events are published on bus; a nil bus means a process-local one.
func NewRedis(client *redis.Client, bus syncbus.Bus, opts ...RedisOption) *Redis {
	if bus == nil {
		bus = syncbus.NewInMemoryBus()
	}
	r := &Redis{
		client: client,
		bus:    bus,
		retry:  defaultRetryInterval,
		tokens: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TryLock attempts to obtain the lock without waiting.
func (r *Redis) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, r.prefix+key, token, ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		r.mu.Lock()
		r.tokens[key] = token
		r.mu.Unlock()
		_ = r.bus.Publish(ctx, syncbus.Event{Kind: syncbus.EventAcquired, Key: key, Token: token, TTL: ttl})
	}
	return ok, nil
}

// Acquire blocks until the lock is obtained or the context is cancelled.
// Between attempts it waits for a release event or the retry interval,
// whichever comes first.
func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, err := r.bus.Subscribe(subCtx, key)
	if err != nil {
		return err
	}
	timer := time.NewTimer(r.retry)
	defer timer.Stop()
	for {
		ok, err := r.TryLock(ctx, key, ttl)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		timer.Reset(r.retry)
		if ch, err = waitRelease(ctx, ch, timer); err != nil {
			return err
		}
	}
}

// waitRelease returns on the first release event, when the timer fires or
// when ctx is done. A closed event channel is replaced by nil so that only
// the timer is left.
func waitRelease(ctx context.Context, ch <-chan syncbus.Event, timer *time.Timer) (<-chan syncbus.Event, error) {
	for {
		select {
		case ev, open := <-ch:
			if !open {
				return nil, nil
			}
			if ev.Kind == syncbus.EventReleased {
				return ch, nil
			}
		case <-timer.C:
			return ch, nil
		case <-ctx.Done():
			return ch, ctx.Err()
		}
	}
}

// Release frees the lock for the given key.
func (r *Redis) Release(ctx context.Context, key string) error {
	r.mu.Lock()
	token, ok := r.tokens[key]
	delete(r.tokens, key)
	r.mu.Unlock()
	if !ok {
		return ErrNotHeld
	}
	n, err := delScript.Run(ctx, r.client, []string{r.prefix + key}, token).Int()
	if errors.Is(err, redis.Nil) {
		err = nil
	}
	if err != nil {
		return err
	}
	if n == 0 {
		// The TTL expired and somebody else may own the key now.
		return ErrNotHeld
	}
	_ = r.bus.Publish(ctx, syncbus.Event{Kind: syncbus.EventReleased, Key: key, Token: token})
	return nil
}
