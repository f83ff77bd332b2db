package mutex

import "sync"

// Guarded protects data with a caller-supplied sync.Locker, such as a
// sync.Mutex or the write half of a sync.RWMutex.
type Guarded[T any] struct {
	l    sync.Locker
	data *T
}

// Guard returns a Guarded pairing l with p. All access to *p must go
// through the returned value.
func Guard[T any](l sync.Locker, p *T) *Guarded[T] {
	return &Guarded[T]{l: l, data: p}
}

// Lock implements Mutex.Lock.
func (g *Guarded[T]) Lock(f func(data *T)) {
	g.l.Lock()
	defer g.l.Unlock()
	f(g.data)
}
