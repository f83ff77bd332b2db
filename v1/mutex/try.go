package mutex

import "context"

// TryMutex is the fallible counterpart of Mutex. TryLock either runs f
// inside the critical section and returns nil, or returns an error without
// invoking f.
type TryMutex[T any] interface {
	TryLock(ctx context.Context, f func(data *T)) error
}

// TryLock runs f inside the critical section of m and returns its result.
// On acquisition failure the zero R is returned together with the error.
func TryLock[T, R any](ctx context.Context, m TryMutex[T], f func(data *T) R) (R, error) {
	var r R
	err := m.TryLock(ctx, func(data *T) {
		r = f(data)
	})
	return r, err
}

// TryLock implements TryMutex.TryLock. If the target is not a TryMutex it
// is locked unconditionally once ctx is checked.
func (r Ref[T]) TryLock(ctx context.Context, f func(data *T)) error {
	if tm, ok := r.target.(TryMutex[T]); ok {
		return tm.TryLock(ctx, f)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.target.Lock(f)
	return nil
}
