package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mirkobrombin/go-mutex/v1/metrics"
	"github.com/mirkobrombin/go-mutex/v1/mutex"
)

var tracer = otel.Tracer("github.com/mirkobrombin/go-mutex/v1/instrument")

// EventKind identifies the stage of a critical section reported to hooks.
type EventKind int

const (
	// EventAcquired is reported right before the closure runs.
	EventAcquired EventKind = iota + 1
	// EventReleased is reported when the closure returns or panics, before
	// the wrapped mutex releases.
	EventReleased
)

func (k EventKind) String() string {
	switch k {
	case EventAcquired:
		return "acquired"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event describes one stage of a critical section.
type Event struct {
	Kind EventKind
	Name string
	// Wait is the time between the Lock call and acquisition.
	Wait time.Duration
	// Hold is set on EventReleased.
	Hold time.Duration
	// Panicked is set on EventReleased when the closure panicked.
	Panicked bool
}

// Option configures a wrapped mutex.
type Option func(*config)

type config struct {
	metrics bool
	tracer  trace.Tracer
	logger  *slog.Logger
	hooks   []func(Event)
	ctx     context.Context
}

// WithMetrics records the lock metrics of package metrics under the
// mutex name. The collectors still need RegisterLockMetrics to be exported.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// WithTracing starts a span per critical section using the global tracer
// provider.
func WithTracing() Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithTracer is like WithTracing with an explicit tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// WithLogger sets the logger used for acquisitions and panics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHook registers fn to be called on every Event. Hooks run inside the
// critical section and must not lock the same mutex.
func WithHook(fn func(Event)) Option {
	return func(c *config) {
		if fn != nil {
			c.hooks = append(c.hooks, fn)
		}
	}
}

// WithContext sets the parent context of the spans started by Lock.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Mutex is an instrumented mutex.
type Mutex[T any] struct {
	inner mutex.Mutex[T]
	name  string
	cfg   config
}

// Wrap instruments m under name.
func Wrap[T any](m mutex.Mutex[T], name string, opts ...Option) *Mutex[T] {
	cfg := config{logger: slog.Default(), ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mutex[T]{inner: m, name: name, cfg: cfg}
}

// Name returns the name the mutex reports under.
func (m *Mutex[T]) Name() string {
	return m.name
}

// Lock implements mutex.Mutex.
func (m *Mutex[T]) Lock(f func(data *T)) {
	start := time.Now()
	m.inner.Lock(func(data *T) {
		m.run(m.cfg.ctx, start, data, f)
	})
}

// TryLock implements mutex.TryMutex. If the wrapped mutex is not a
// TryMutex it is locked unconditionally once ctx is checked.
func (m *Mutex[T]) TryLock(ctx context.Context, f func(data *T)) error {
	start := time.Now()
	body := func(data *T) {
		m.run(ctx, start, data, f)
	}
	var err error
	if tm, ok := m.inner.(mutex.TryMutex[T]); ok {
		err = tm.TryLock(ctx, body)
	} else if err = ctx.Err(); err == nil {
		m.inner.Lock(body)
	}
	if err != nil {
		m.cfg.logger.Debug("mutex: try lock failed", "name", m.name, "error", err)
	}
	return err
}

func (m *Mutex[T]) run(ctx context.Context, start time.Time, data *T, f func(*T)) {
	acquired := time.Now()
	wait := acquired.Sub(start)

	var span trace.Span
	if m.cfg.tracer != nil {
		_, span = m.cfg.tracer.Start(ctx, "mutex.Lock", trace.WithAttributes(
			attribute.String("mutex.name", m.name),
			attribute.Int64("mutex.wait_ms", wait.Milliseconds()),
		))
	}
	if m.cfg.metrics {
		metrics.AcquireCounter.WithLabelValues(m.name).Inc()
		metrics.HeldGauge.WithLabelValues(m.name).Inc()
		metrics.WaitHistogram.WithLabelValues(m.name).Observe(wait.Seconds())
	}
	m.cfg.logger.Debug("mutex: acquired", "name", m.name, "wait", wait)
	m.emit(Event{Kind: EventAcquired, Name: m.name, Wait: wait})

	done := false
	defer func() {
		hold := time.Since(acquired)
		var r any
		if !done {
			// r stays nil when the goroutine is leaving through runtime.Goexit.
			r = recover()
		}
		panicked := r != nil
		if m.cfg.metrics {
			metrics.HeldGauge.WithLabelValues(m.name).Dec()
			metrics.ReleaseCounter.WithLabelValues(m.name).Inc()
			metrics.HoldHistogram.WithLabelValues(m.name).Observe(hold.Seconds())
			if panicked {
				metrics.PanicCounter.WithLabelValues(m.name).Inc()
			}
		}
		if panicked {
			m.cfg.logger.Warn("mutex: panic in critical section", "name", m.name, "panic", r)
		}
		if span != nil {
			if panicked {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}
		m.emit(Event{Kind: EventReleased, Name: m.name, Wait: wait, Hold: hold, Panicked: panicked})
		if panicked {
			panic(r)
		}
	}()
	f(data)
	done = true
}

func (m *Mutex[T]) emit(ev Event) {
	for _, fn := range m.cfg.hooks {
		fn(ev)
	}
}
