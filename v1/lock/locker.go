package lock

import (
	"context"
	"time"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
)

// ErrNotHeld is returned by Release when the caller does not own the key.
var ErrNotHeld = muterrors.ErrNotHeld

// Locker grants exclusive ownership of string keys. Locks are not
// reentrant: acquiring a key the caller already holds waits like any other
// contender.
type Locker interface {
	// TryLock attempts to obtain the lock without waiting. It returns true
	// on success. A ttl of zero keeps the lock until Release.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Acquire blocks until the lock is obtained or ctx is done.
	Acquire(ctx context.Context, key string, ttl time.Duration) error
	// Release frees the lock for key.
	Release(ctx context.Context, key string) error
}
