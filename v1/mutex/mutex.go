package mutex

// Mutex is implemented by anything that can grant exclusive access to a
// value of type T for the duration of a closure.
//
// Lock must establish exclusivity before invoking f, invoke f exactly once
// and release exclusivity only after f returns, including when f panics.
// A provider that cannot acquire must panic without invoking f.
type Mutex[T any] interface {
	Lock(f func(data *T))
}

// Lock runs f inside the critical section of m and returns its result.
func Lock[T, R any](m Mutex[T], f func(data *T) R) R {
	var r R
	m.Lock(func(data *T) {
		r = f(data)
	})
	return r
}

// Func adapts an ordinary function to the Mutex interface.
type Func[T any] func(f func(data *T))

// Lock implements Mutex.Lock.
func (fn Func[T]) Lock(f func(data *T)) {
	fn(f)
}

// Ref forwards to another Mutex. Locking through a Ref is observably the
// same as locking the target directly.
type Ref[T any] struct {
	target Mutex[T]
}

// Borrow returns a Ref forwarding to m.
func Borrow[T any](m Mutex[T]) Ref[T] {
	return Ref[T]{target: m}
}

// Lock implements Mutex.Lock.
func (r Ref[T]) Lock(f func(data *T)) {
	r.target.Lock(f)
}
