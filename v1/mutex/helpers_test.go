package mutex

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recorder struct {
	events []string
}

func (r *recorder) add(ev string) { r.events = append(r.events, ev) }

func (r *recorder) expect(t *testing.T, want ...string) {
	t.Helper()
	if strings.Join(r.events, " ") != strings.Join(want, " ") {
		t.Fatalf("expected events %v got %v", want, r.events)
	}
}

// tracked records "+name" on acquisition and "-name" on release.
type tracked[T any] struct {
	name string
	rec  *recorder
	fail error
	data T
}

func newTracked[T any](rec *recorder, name string, v T) *tracked[T] {
	return &tracked[T]{name: name, rec: rec, data: v}
}

func (m *tracked[T]) Lock(f func(*T)) {
	m.rec.add("+" + m.name)
	defer m.rec.add("-" + m.name)
	f(&m.data)
}

func (m *tracked[T]) TryLock(ctx context.Context, f func(*T)) error {
	if m.fail != nil {
		m.rec.add("!" + m.name)
		return m.fail
	}
	m.Lock(f)
	return nil
}

var errBusy = errors.New("busy")
