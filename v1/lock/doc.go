// Package lock provides keyed lockers with in-memory and Redis
// implementations, and Guard, which exposes a locker key as a mutex.Mutex so
// that it can be composed with other mutexes. Lock events propagate across
// nodes via syncbus. Locks can have an optional TTL to avoid deadlocks.
package lock
