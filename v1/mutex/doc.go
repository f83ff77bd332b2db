// Package mutex defines a minimal capability for exclusive, scoped access to
// data. A Mutex grants a closure temporary exclusive access to the value it
// protects; the critical section is exactly the closure's execution.
//
// Any construct offering exclusive scoped access can participate by
// implementing Mutex: a runtime-checked Cell, an Exclusive wrapper around
// data the caller already owns, a Guarded sync.Locker, or a provider from
// another package such as lock.Guard.
//
// Several mutexes can be taken together without nesting closures by hand:
//
//	sum := mutex.Lock3(a, b, c, func(a, b, c *int) int {
//		*a++
//		*b++
//		*c++
//		return *a + *b + *c
//	})
//
// Members are acquired left-to-right and released right-to-left. Composing
// the same set of mutexes in the same relative order at every call site is
// the caller's job; nothing here detects an inverted order.
//
// The fixed-arity helpers (Tuple1..Tuple16, Join1..Join16, Lock1..Lock16,
// TryLock2..TryLock16) live in tuple_gen.go and are produced by
// cmd/mutexgen.
package mutex
