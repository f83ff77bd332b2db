package mesh

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

const (
	magicByte     byte = 0x4d
	typeHeartbeat byte = 0x02
	typeBatch     byte = 0x03
)

// headerLen covers magic, type and the 16-byte node id.
const (
	headerLen    = 18
	maxPacketLen = 1500
)

var (
	errInvalidMagic = errors.New("mesh: invalid magic byte")
	errShortBuffer  = errors.New("mesh: buffer too short")
	errFieldTooLong = errors.New("mesh: field too long")
)

var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, maxPacketLen)
	},
}

// packet is either a heartbeat advertising Addr or a batch of lock events.
type packet struct {
	Magic  byte
	Type   byte
	NodeID [16]byte
	Addr   string
	Events []syncbus.Event
}

func putString(b []byte, off int, s string) (int, error) {
	if len(s) > math.MaxUint16 {
		return off, errFieldTooLong
	}
	if len(b) < off+2+len(s) {
		return off, errShortBuffer
	}
	binary.BigEndian.PutUint16(b[off:off+2], uint16(len(s)))
	copy(b[off+2:], s)
	return off + 2 + len(s), nil
}

func readString(b []byte, off int) (string, int, error) {
	if len(b) < off+2 {
		return "", off, errShortBuffer
	}
	n := int(binary.BigEndian.Uint16(b[off : off+2]))
	if len(b) < off+2+n {
		return "", off, errShortBuffer
	}
	return string(b[off+2 : off+2+n]), off + 2 + n, nil
}

// eventLen is the encoded size of ev inside a batch: kind, TTL in
// nanoseconds and three length-prefixed strings.
func eventLen(ev syncbus.Event) int {
	return 1 + 8 + 6 + len(ev.Key) + len(ev.Token) + len(ev.Origin)
}

func (p *packet) marshal(b []byte) (int, error) {
	if len(b) < headerLen {
		return 0, errShortBuffer
	}
	b[0] = p.Magic
	b[1] = p.Type
	copy(b[2:headerLen], p.NodeID[:])

	switch p.Type {
	case typeHeartbeat:
		return putString(b, headerLen, p.Addr)
	case typeBatch:
		if len(b) < headerLen+2 {
			return 0, errShortBuffer
		}
		binary.BigEndian.PutUint16(b[headerLen:headerLen+2], uint16(len(p.Events)))
		off := headerLen + 2
		var err error
		for _, ev := range p.Events {
			if len(b) < off+9 {
				return off, errShortBuffer
			}
			b[off] = byte(ev.Kind)
			binary.BigEndian.PutUint64(b[off+1:off+9], uint64(ev.TTL))
			off += 9
			for _, s := range [...]string{ev.Key, ev.Token, ev.Origin} {
				if off, err = putString(b, off, s); err != nil {
					return off, err
				}
			}
		}
		return off, nil
	}
	return headerLen, nil
}

func (p *packet) unmarshal(b []byte) error {
	if len(b) < headerLen {
		return errShortBuffer
	}
	p.Magic = b[0]
	if p.Magic != magicByte {
		return errInvalidMagic
	}
	p.Type = b[1]
	copy(p.NodeID[:], b[2:headerLen])

	var err error
	switch p.Type {
	case typeHeartbeat:
		p.Addr, _, err = readString(b, headerLen)
		return err
	case typeBatch:
		if len(b) < headerLen+2 {
			return errShortBuffer
		}
		count := int(binary.BigEndian.Uint16(b[headerLen : headerLen+2]))
		p.Events = make([]syncbus.Event, 0, count)
		off := headerLen + 2
		for i := 0; i < count; i++ {
			if len(b) < off+9 {
				return errShortBuffer
			}
			ev := syncbus.Event{
				Kind: syncbus.EventKind(b[off]),
				TTL:  time.Duration(binary.BigEndian.Uint64(b[off+1 : off+9])),
			}
			off += 9
			if ev.Key, off, err = readString(b, off); err != nil {
				return err
			}
			if ev.Token, off, err = readString(b, off); err != nil {
				return err
			}
			if ev.Origin, off, err = readString(b, off); err != nil {
				return err
			}
			p.Events = append(p.Events, ev)
		}
	}
	return nil
}
