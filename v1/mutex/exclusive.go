package mutex

import "context"

// Exclusive wraps data the caller already holds exclusively. Locking it
// never waits and never fails; there is no runtime check.
type Exclusive[T any] struct {
	data *T
}

// NewExclusive wraps p. The caller must not touch *p through other paths
// while the Exclusive is in use.
func NewExclusive[T any](p *T) *Exclusive[T] {
	return &Exclusive[T]{data: p}
}

// Owned moves v into a new Exclusive.
func Owned[T any](v T) *Exclusive[T] {
	return &Exclusive[T]{data: &v}
}

// Lock implements Mutex.Lock.
func (e *Exclusive[T]) Lock(f func(data *T)) {
	f(e.data)
}

// TryLock implements TryMutex.TryLock. It fails only on a done context.
func (e *Exclusive[T]) TryLock(ctx context.Context, f func(data *T)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f(e.data)
	return nil
}

// Unwrap gives the wrapped pointer back to the caller.
func (e *Exclusive[T]) Unwrap() *T {
	return e.data
}
