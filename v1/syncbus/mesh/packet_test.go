package mesh

import (
	"bytes"
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

func TestPacketBatch(t *testing.T) {
	p := packet{
		Magic:  magicByte,
		Type:   typeBatch,
		NodeID: [16]byte{1, 2, 3, 4},
		Events: []syncbus.Event{
			{Kind: syncbus.EventAcquired, Key: "a", Token: "t1", Origin: "n1", TTL: 1500 * time.Millisecond},
			{Kind: syncbus.EventReleased, Key: "b"},
		},
	}
	buf := make([]byte, maxPacketLen)
	n, err := p.marshal(buf)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := headerLen + 2 + eventLen(p.Events[0]) + eventLen(p.Events[1]); n != want {
		t.Fatalf("expected %d encoded bytes got %d", want, n)
	}
	var got packet
	if err := got.unmarshal(buf[:n]); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("expected %+v got %+v", p, got)
	}
	// Truncated payloads are rejected.
	if err := got.unmarshal(buf[:n-1]); !errors.Is(err, errShortBuffer) {
		t.Fatalf("expected errShortBuffer got %v", err)
	}
}

func TestPacketRejectsForeignMagic(t *testing.T) {
	buf := make([]byte, headerLen+2)
	buf[0] = 0x57
	var p packet
	if err := p.unmarshal(buf); !errors.Is(err, errInvalidMagic) {
		t.Fatalf("expected errInvalidMagic got %v", err)
	}
}

func TestPacketMarshalShortBuffer(t *testing.T) {
	p := packet{Magic: magicByte, Type: typeHeartbeat, Addr: "127.0.0.1:7946"}
	if _, err := p.marshal(make([]byte, headerLen+4)); !errors.Is(err, errShortBuffer) {
		t.Fatalf("expected errShortBuffer got %v", err)
	}
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		out, err := format.Source(src)
		if err != nil {
			t.Fatalf("format %s: %v", name, err)
		}
		if !bytes.Equal(out, src) {
			t.Fatalf("%s is not gofmt formatted", name)
		}
	}
}

func BenchmarkPacketMarshal(b *testing.B) {
	p := packet{
		Magic:  magicByte,
		Type:   typeBatch,
		NodeID: [16]byte{1, 2, 3, 4},
		Events: []syncbus.Event{{Kind: syncbus.EventReleased, Key: "bench-key", Token: "token", Origin: "node"}},
	}
	buf := make([]byte, maxPacketLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.marshal(buf)
	}
}
