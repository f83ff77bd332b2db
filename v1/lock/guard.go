package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

// ErrNotAcquired is wrapped by every acquisition failure of a Guard.
var ErrNotAcquired = muterrors.ErrNotAcquired

// GuardOption configures a Guard.
type GuardOption func(*guardConfig)

type guardConfig struct {
	ttl    time.Duration
	ctx    context.Context
	logger *slog.Logger
}

// WithTTL bounds how long the key stays locked if the process dies inside
// the critical section. Zero, the default, means no expiry.
func WithTTL(ttl time.Duration) GuardOption {
	return func(c *guardConfig) {
		c.ttl = ttl
	}
}

// WithContext sets the context used by Lock to acquire and release the key.
// Lock waits until the context is done; the default waits forever.
func WithContext(ctx context.Context) GuardOption {
	return func(c *guardConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the logger used to report failed releases.
func WithLogger(l *slog.Logger) GuardOption {
	return func(c *guardConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Guard protects the value behind p with one key of a Locker. It
// implements mutex.Mutex and mutex.TryMutex, so a key held in Redis can be
// composed with local cells and guarded values.
//
// Locks are not reentrant: locking a Guard from inside its own critical
// section waits for itself until the configured context is done.
type Guard[T any] struct {
	locker Locker
	key    string
	data   *T
	cfg    guardConfig
}

// NewGuard binds key of l to the value behind p.
func NewGuard[T any](l Locker, key string, p *T, opts ...GuardOption) *Guard[T] {
	cfg := guardConfig{ctx: context.Background(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Guard[T]{locker: l, key: key, data: p, cfg: cfg}
}

// Key returns the locker key protecting the data.
func (g *Guard[T]) Key() string {
	return g.key
}

// Lock implements mutex.Mutex. If the key cannot be acquired, Lock panics
// with an error wrapping ErrNotAcquired and f is not invoked.
func (g *Guard[T]) Lock(f func(data *T)) {
	if err := g.locker.Acquire(g.cfg.ctx, g.key, g.cfg.ttl); err != nil {
		panic(fmt.Errorf("%w: %s: %w", ErrNotAcquired, g.key, err))
	}
	defer g.release()
	f(g.data)
}

// TryLock implements mutex.TryMutex. A key held elsewhere is reported as
// ErrNotAcquired.
func (g *Guard[T]) TryLock(ctx context.Context, f func(data *T)) error {
	ok, err := g.locker.TryLock(ctx, g.key, g.cfg.ttl)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotAcquired, g.key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is held", ErrNotAcquired, g.key)
	}
	defer g.release()
	f(g.data)
	return nil
}

// release runs even when the critical section panics. It ignores
// cancellation of the acquisition context so that a lock is never left
// behind because the caller gave up.
func (g *Guard[T]) release() {
	if err := g.locker.Release(context.WithoutCancel(g.cfg.ctx), g.key); err != nil {
		g.cfg.logger.Warn("mutex: release failed", "key", g.key, "error", err)
	}
}
