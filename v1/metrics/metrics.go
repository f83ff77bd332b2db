package metrics

import "github.com/prometheus/client_golang/prometheus"

// NameLabel is the label carrying the mutex name on every lock metric.
const NameLabel = "mutex"

var (
	// AcquireCounter tracks the number of critical sections entered.
	AcquireCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mutex_acquire_total",
		Help: "Total number of lock acquisitions",
	}, []string{NameLabel})
	// ReleaseCounter tracks the number of critical sections left, panics included.
	ReleaseCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mutex_release_total",
		Help: "Total number of lock releases",
	}, []string{NameLabel})
	// PanicCounter tracks critical sections that ended in a panic.
	PanicCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mutex_panic_total",
		Help: "Total number of panics raised inside a critical section",
	}, []string{NameLabel})
	// HeldGauge reports whether a mutex is currently held.
	HeldGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mutex_held",
		Help: "Number of critical sections currently running",
	}, []string{NameLabel})
	// WaitHistogram observes the time between a Lock call and acquisition.
	WaitHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mutex_wait_seconds",
		Help:    "Time spent waiting to acquire a lock",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{NameLabel})
	// HoldHistogram observes how long critical sections last.
	HoldHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mutex_hold_seconds",
		Help:    "Time spent inside a critical section",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{NameLabel})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterLockMetrics registers the lock metrics on the provided registry.
// Registering twice on the same registry panics.
func RegisterLockMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AcquireCounter, ReleaseCounter, PanicCounter, HeldGauge, WaitHistogram, HoldHistogram)
}

// Reset drops every recorded series for name.
func Reset(name string) {
	AcquireCounter.DeleteLabelValues(name)
	ReleaseCounter.DeleteLabelValues(name)
	PanicCounter.DeleteLabelValues(name)
	HeldGauge.DeleteLabelValues(name)
	WaitHistogram.DeleteLabelValues(name)
	HoldHistogram.DeleteLabelValues(name)
}
