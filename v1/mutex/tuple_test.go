package mutex

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestTupleAcquireReleaseOrder(t *testing.T) {
	rec := &recorder{}
	a := newTracked(rec, "a", 0)
	b := newTracked(rec, "b", "")
	c := newTracked(rec, "c", 0.0)

	Join3[int, string, float64](a, b, c).Lock(func(a *int, b *string, c *float64) {
		rec.add("f")
	})
	rec.expect(t, "+a", "+b", "+c", "f", "-c", "-b", "-a")
}

func TestLockSixteenOrder(t *testing.T) {
	rec := &recorder{}
	m := make([]*tracked[int], 16)
	for i := range m {
		m[i] = newTracked(rec, fmt.Sprint(i+1), i+1)
	}
	sum := Lock16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int](
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15],
		func(d1, d2, d3, d4, d5, d6, d7, d8, d9, d10, d11, d12, d13, d14, d15, d16 *int) int {
			return *d1 + *d2 + *d3 + *d4 + *d5 + *d6 + *d7 + *d8 +
				*d9 + *d10 + *d11 + *d12 + *d13 + *d14 + *d15 + *d16
		})
	if sum != 136 {
		t.Fatalf("expected 136 got %d", sum)
	}

	var want []string
	for i := 1; i <= 16; i++ {
		want = append(want, fmt.Sprintf("+%d", i))
	}
	for i := 16; i >= 1; i-- {
		want = append(want, fmt.Sprintf("-%d", i))
	}
	rec.expect(t, want...)
}

func TestTupleReleasesInReverseOnPanic(t *testing.T) {
	rec := &recorder{}
	a := newTracked(rec, "a", 0)
	b := newTracked(rec, "b", 0)
	c := newTracked(rec, "c", 0)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Lock3(a, b, c, func(a, b, c *int) struct{} {
			panic("closure failed")
		})
	}()
	if recovered != "closure failed" {
		t.Fatalf("expected closure panic to propagate, got %v", recovered)
	}
	rec.expect(t, "+a", "+b", "+c", "-c", "-b", "-a")
}

func TestComposedCellsReleaseOnPanic(t *testing.T) {
	a, b := NewCell(0), NewCell(0)
	func() {
		defer func() { _ = recover() }()
		Lock2(a, b, func(a, b *int) int {
			*a, *b = 1, 1
			panic("boom")
		})
	}()
	if a.Borrowed() || b.Borrowed() {
		t.Fatal("cells left borrowed after panic")
	}
	if a.Into() != 1 || b.Into() != 1 {
		t.Fatal("writes before the panic were lost")
	}
}

func TestComposedSameCellPanics(t *testing.T) {
	a := NewCell(0)
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Join2[int, int](a, a).Lock(func(x, y *int) {
			t.Fatal("closure must not run with aliased data")
		})
	}()
	err, ok := recovered.(error)
	if !ok || !errors.Is(err, ErrAlreadyBorrowed) {
		t.Fatalf("expected ErrAlreadyBorrowed panic, got %v", recovered)
	}
	if a.Borrowed() {
		t.Fatal("outer borrow not released")
	}
}

func TestLockOneMatchesDirect(t *testing.T) {
	direct := NewCell(3)
	composed := NewCell(3)
	double := func(v *int) int {
		*v *= 2
		return *v + 1
	}

	r1 := Lock[int](direct, double)
	r2 := Lock1[int](composed, double)
	if r1 != r2 {
		t.Fatalf("results differ: %d vs %d", r1, r2)
	}
	if direct.Into() != composed.Into() {
		t.Fatalf("state differs: %d vs %d", direct.Into(), composed.Into())
	}

	rec := &recorder{}
	Join1[int](newTracked(rec, "a", 0)).Lock(func(*int) { rec.add("f") })
	rec.expect(t, "+a", "f", "-a")
}

func TestLockForwardsCompoundResult(t *testing.T) {
	type summary struct {
		Names []string
		Total int
	}
	a := Owned("x")
	b := Owned(4)
	got := Lock2[string, int](a, b, func(s *string, n *int) summary {
		return summary{Names: []string{*s, *s}, Total: *n * 2}
	})
	if len(got.Names) != 2 || got.Names[0] != "x" || got.Total != 8 {
		t.Fatalf("unexpected result %+v", got)
	}

	unit := Lock2[string, int](a, b, func(*string, *int) struct{} { return struct{}{} })
	if unit != (struct{}{}) {
		t.Fatal("unit result mangled")
	}
}

func TestTryLockFailureReleasesHeldMembers(t *testing.T) {
	rec := &recorder{}
	a := newTracked(rec, "a", 1)
	b := newTracked(rec, "b", 2)
	c := newTracked(rec, "c", 3)
	b.fail = errBusy

	called := false
	r, err := TryLock3[int, int, int](context.Background(), a, b, c, func(a, b, c *int) int {
		called = true
		return *a + *b + *c
	})
	if !errors.Is(err, errBusy) {
		t.Fatalf("expected errBusy got %v", err)
	}
	if called || r != 0 {
		t.Fatalf("f must not run, called=%v r=%d", called, r)
	}
	rec.expect(t, "+a", "!b", "-a")
}

func TestTryLockSucceeds(t *testing.T) {
	a, b := NewCell(1), NewCell(2)
	r, err := TryLock2(context.Background(), a, b, func(a, b *int) int {
		return *a * *b
	})
	if err != nil {
		t.Fatalf("trylock: %v", err)
	}
	if r != 2 {
		t.Fatalf("expected 2 got %d", r)
	}
}

func TestTryLockReportsBorrowedCell(t *testing.T) {
	a, b := NewCell(0), NewCell(0)
	ctx := context.Background()
	a.Lock(func(*int) {
		_, err := TryLock2(ctx, b, a, func(b, a *int) int { return 0 })
		if !errors.Is(err, ErrAlreadyBorrowed) {
			t.Fatalf("expected ErrAlreadyBorrowed got %v", err)
		}
	})
	if b.Borrowed() {
		t.Fatal("b left borrowed after failed composition")
	}
}
