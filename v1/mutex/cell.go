package mutex

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Cell owns a value and hands out one exclusive borrow at a time. It does
// not wait: a second borrow while the first is active, whether reentrant or
// from another goroutine, is a programming error and Lock panics.
//
// A Cell must not be copied after first use.
type Cell[T any] struct {
	borrowed atomic.Bool
	value    T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

func (c *Cell[T]) borrow() bool {
	return c.borrowed.CompareAndSwap(false, true)
}

func (c *Cell[T]) release() {
	c.borrowed.Store(false)
}

// Lock implements Mutex.Lock. It panics with an error wrapping
// ErrAlreadyBorrowed if the cell is already borrowed; f is not invoked in
// that case.
func (c *Cell[T]) Lock(f func(data *T)) {
	if !c.borrow() {
		panic(fmt.Errorf("%w: %T", ErrAlreadyBorrowed, c))
	}
	defer c.release()
	f(&c.value)
}

// TryLock implements TryMutex.TryLock. A conflicting borrow is reported as
// ErrAlreadyBorrowed instead of a panic.
func (c *Cell[T]) TryLock(ctx context.Context, f func(data *T)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.borrow() {
		return fmt.Errorf("%w: %T", ErrAlreadyBorrowed, c)
	}
	defer c.release()
	f(&c.value)
	return nil
}

// Borrowed reports whether a critical section is currently active.
func (c *Cell[T]) Borrowed() bool {
	return c.borrowed.Load()
}

// Replace stores v and returns the previous value. It borrows the cell
// like Lock does and panics on conflict.
func (c *Cell[T]) Replace(v T) T {
	return Lock[T, T](c, func(data *T) T {
		old := *data
		*data = v
		return old
	})
}

// Into returns a copy of the value. It panics if the cell is borrowed.
func (c *Cell[T]) Into() T {
	return Lock[T, T](c, func(data *T) T {
		return *data
	})
}
