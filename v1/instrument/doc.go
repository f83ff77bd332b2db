// Package instrument decorates mutexes with tracing, Prometheus metrics,
// structured logging and acquisition hooks.
//
// A wrapped mutex still satisfies mutex.Mutex and mutex.TryMutex, so it can
// take part in any composition:
//
//	a := instrument.Wrap[int](mutex.NewCell(0), "a", instrument.WithMetrics())
//	b := instrument.Wrap[int](mutex.NewCell(0), "b", instrument.WithTracing())
//	mutex.Lock2(a, b, func(x, y *int) struct{} { ... })
package instrument
