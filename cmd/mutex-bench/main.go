package main

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mirkobrombin/go-mutex/v1/mutex"
)

var (
	concurrency = flag.Int("c", 50, "Number of concurrent goroutines")
	requests    = flag.Int("n", 100000, "Total number of critical sections")
	arity       = flag.Int("arity", 2, "Number of mutexes composed per critical section (1-4)")
)

// validate rejects flag combinations that would run no critical section.
func validate(requests, concurrency, arity int) error {
	if arity < 1 || arity > 4 {
		return fmt.Errorf("arity must be between 1 and 4, got %d", arity)
	}
	if concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if requests < concurrency {
		return fmt.Errorf("requests (%d) must be at least concurrency (%d)", requests, concurrency)
	}
	return nil
}

type counter struct {
	mu sync.Mutex
	n  int
}

func main() {
	flag.Parse()
	if err := validate(*requests, *concurrency, *arity); err != nil {
		log.Fatal(err)
	}

	log.Printf("Starting benchmark: %d critical sections, %d concurrency, arity %d", *requests, *concurrency, *arity)

	counters := make([]*counter, 4)
	ms := make([]mutex.Mutex[int], 4)
	for i := range counters {
		counters[i] = &counter{}
		ms[i] = mutex.Guard(&counters[i].mu, &counters[i].n)
	}
	section := newSection(ms, *arity)

	var ops atomic.Int64
	perWorker := *requests / *concurrency

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < *concurrency; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				section()
				ops.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
	elapsed := time.Since(start)

	want := ops.Load()
	for i := 0; i < *arity; i++ {
		if got := int64(counters[i].n); got != want {
			log.Fatalf("lost update on mutex %d: expected %d got %d", i+1, want, got)
		}
	}

	throughput := float64(want) / elapsed.Seconds()
	avgLatency := elapsed.Seconds() / float64(want) * 1e9 // ns

	log.Printf("Finished in %v", elapsed)
	log.Printf("Throughput: %.2f sections/s", throughput)
	log.Printf("Avg Latency: %.2f ns", avgLatency)
}

// newSection returns a critical section that increments the first n
// counters through a composition of arity n.
func newSection(ms []mutex.Mutex[int], n int) func() {
	inc := func(ps ...*int) struct{} {
		for _, p := range ps {
			*p++
		}
		return struct{}{}
	}
	switch n {
	case 1:
		return func() { mutex.Lock1(ms[0], func(a *int) struct{} { return inc(a) }) }
	case 2:
		return func() { mutex.Lock2(ms[0], ms[1], func(a, b *int) struct{} { return inc(a, b) }) }
	case 3:
		return func() {
			mutex.Lock3(ms[0], ms[1], ms[2], func(a, b, c *int) struct{} { return inc(a, b, c) })
		}
	default:
		return func() {
			mutex.Lock4(ms[0], ms[1], ms[2], ms[3], func(a, b, c, d *int) struct{} { return inc(a, b, c, d) })
		}
	}
}
