package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterLockMetrics(t *testing.T) {
	reg := NewRegistry()
	RegisterLockMetrics(reg)
	defer Reset("orders")

	AcquireCounter.WithLabelValues("orders").Inc()
	ReleaseCounter.WithLabelValues("orders").Inc()
	PanicCounter.WithLabelValues("orders").Inc()
	HeldGauge.WithLabelValues("orders").Set(1)
	WaitHistogram.WithLabelValues("orders").Observe(0.001)
	HoldHistogram.WithLabelValues("orders").Observe(0.002)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 6 {
		t.Fatalf("expected 6 metric families got %d", len(mfs))
	}
	if v := testutil.ToFloat64(AcquireCounter.WithLabelValues("orders")); v != 1 {
		t.Fatalf("expected 1 acquisition got %v", v)
	}
}

func TestRegisterLockMetricsDuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterLockMetrics(reg)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	RegisterLockMetrics(reg)
}

func TestReset(t *testing.T) {
	AcquireCounter.WithLabelValues("reset").Add(3)
	Reset("reset")
	if n := testutil.CollectAndCount(AcquireCounter); n != 0 {
		t.Fatalf("expected no series after reset got %d", n)
	}
}
