// Package mesh implements a syncbus.Bus that gossips lock events between
// nodes over UDP multicast, with unicast to known peers as a fallback.
package mesh

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/ipv4"

	muterrors "github.com/mirkobrombin/go-mutex/v1/errors"
	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

const (
	defaultPort          = 7946
	defaultGroup         = "239.0.0.1"
	defaultHeartbeat     = 5 * time.Second
	defaultBatchInterval = 10 * time.Millisecond
	defaultBatchSize     = 20
	peerTTL              = 60 * time.Second
	subscriberBuffer     = 32
)

// Options configures a mesh bus.
type Options struct {
	Port      int
	Interface string
	Group     string
	// Peers are static seeds for unicast gossip.
	Peers []string
	// AdvertiseAddr is the address announced to other peers, e.g. "10.0.0.1:7946".
	AdvertiseAddr string
	// Heartbeat is the interval between peer announcements (default 5s).
	Heartbeat time.Duration
	// BatchInterval is the longest an event waits before it is sent (default 10ms).
	BatchInterval time.Duration
	// BatchSize is the largest number of events per packet (default 20).
	BatchSize int
	// DisableMulticast restricts the bus to unicast peers.
	DisableMulticast bool
}

// Bus implements syncbus.Bus over UDP. Events published on a node are
// delivered to its own subscribers immediately and to other nodes in
// batches; a node ignores its own packets.
type Bus struct {
	opts      Options
	nodeID    [16]byte
	conn      net.PacketConn
	groupAddr *net.UDPAddr

	mu   sync.RWMutex
	subs map[string][]chan syncbus.Event

	peersMu      sync.RWMutex
	knownPeers   map[string]time.Time
	resolvedAddr map[string]*net.UDPAddr

	publishCh chan syncbus.Event

	published atomic.Uint64
	received  atomic.Uint64
	closed    atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a mesh bus listening on opts.Port.
func New(opts Options) (*Bus, error) {
	if opts.Port == 0 {
		opts.Port = defaultPort
	}
	if opts.Group == "" {
		opts.Group = defaultGroup
	}
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = defaultHeartbeat
	}
	if opts.BatchInterval <= 0 {
		opts.BatchInterval = defaultBatchInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	addr, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", opts.Group, opts.Port))
	if err != nil {
		return nil, fmt.Errorf("mesh: failed to resolve multicast address: %w", err)
	}

	lc := net.ListenConfig{Control: reusePort}
	c, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf("0.0.0.0:%d", opts.Port))
	if err != nil {
		return nil, fmt.Errorf("mesh: failed to listen on port %d: %w", opts.Port, err)
	}

	if !opts.DisableMulticast {
		if err := joinGroup(c, opts.Interface, addr); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &Bus{
		opts:         opts,
		nodeID:       uuid.New(),
		conn:         c,
		groupAddr:    addr,
		subs:         make(map[string][]chan syncbus.Event),
		knownPeers:   make(map[string]time.Time),
		resolvedAddr: make(map[string]*net.UDPAddr),
		publishCh:    make(chan syncbus.Event, 1000),
		ctx:          ctx,
		cancel:       cancel,
	}

	go b.listen()
	go b.heartbeatLoop()
	go b.cleanupPeers()
	go b.runBatcher()

	return b, nil
}

func joinGroup(c net.PacketConn, ifname string, group *net.UDPAddr) error {
	pconn := ipv4.NewPacketConn(c)
	var iface *net.Interface
	if ifname != "" {
		var err error
		if iface, err = net.InterfaceByName(ifname); err != nil {
			return fmt.Errorf("mesh: failed to find interface %s: %w", ifname, err)
		}
	}
	if err := pconn.JoinGroup(iface, group); err != nil {
		return fmt.Errorf("mesh: failed to join group %s: %w", group.IP, err)
	}
	if iface != nil {
		if err := pconn.SetMulticastInterface(iface); err != nil {
			return fmt.Errorf("mesh: failed to set multicast interface: %w", err)
		}
	}
	// Several nodes on one host must hear each other.
	_ = pconn.SetMulticastLoopback(true)
	return nil
}

// Publish implements syncbus.Bus.Publish. Remote delivery is batched and
// fire-and-forget.
func (b *Bus) Publish(ctx context.Context, ev syncbus.Event) error {
	if b.closed.Load() {
		return muterrors.ErrConnectionClosed
	}
	if headerLen+2+eventLen(ev) > maxPacketLen {
		return fmt.Errorf("mesh: event for %q exceeds %d bytes", ev.Key, maxPacketLen)
	}
	b.deliver(ev)
	select {
	case b.publishCh <- ev:
		return nil
	case <-b.ctx.Done():
		return muterrors.ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// broadcast sends payload to the multicast group and to every known peer.
func (b *Bus) broadcast(payload []byte) error {
	var err error
	if !b.opts.DisableMulticast {
		_, err = b.conn.WriteTo(payload, b.groupAddr)
	}

	b.peersMu.RLock()
	addrs := make([]*net.UDPAddr, 0, len(b.resolvedAddr))
	for _, addr := range b.resolvedAddr {
		addrs = append(addrs, addr)
	}
	b.peersMu.RUnlock()
	for _, addr := range addrs {
		_, _ = b.conn.WriteTo(payload, addr)
	}

	// Seeds not yet heard from.
	for _, peer := range b.opts.Peers {
		b.peersMu.RLock()
		_, known := b.resolvedAddr[peer]
		b.peersMu.RUnlock()
		if known {
			continue
		}
		addr, rerr := net.ResolveUDPAddr("udp4", peer)
		if rerr != nil {
			continue
		}
		_, _ = b.conn.WriteTo(payload, addr)
	}
	return err
}

// Subscribe implements syncbus.Bus.Subscribe.
func (b *Bus) Subscribe(ctx context.Context, key string) (<-chan syncbus.Event, error) {
	if b.closed.Load() {
		return nil, muterrors.ErrConnectionClosed
	}
	ch := make(chan syncbus.Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[key] = append(b.subs[key], ch)
	b.mu.Unlock()

	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				_ = b.Unsubscribe(context.Background(), key, ch)
			case <-b.ctx.Done():
			}
		}()
	}
	return ch, nil
}

// Unsubscribe implements syncbus.Bus.Unsubscribe.
func (b *Bus) Unsubscribe(_ context.Context, key string, ch <-chan syncbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[key]
	for i, c := range subs {
		if c == ch {
			b.subs[key] = append(subs[:i], subs[i+1:]...)
			close(c)
			break
		}
	}
	if len(b.subs[key]) == 0 {
		delete(b.subs, key)
	}
	return nil
}

func (b *Bus) deliver(ev syncbus.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[ev.Key] {
		select {
		case ch <- ev:
		default:
			slog.Warn("mutex: mesh subscriber full, dropping event", "key", ev.Key, "kind", ev.Kind)
		}
	}
}

func (b *Bus) listen() {
	buf := make([]byte, maxPacketLen)
	for {
		n, _, err := b.conn.ReadFrom(buf)
		if err != nil {
			if b.ctx.Err() != nil {
				return
			}
			continue
		}

		var p packet
		if err := p.unmarshal(buf[:n]); err != nil {
			slog.Debug("mutex: dropping malformed mesh packet", "error", err)
			continue
		}
		if p.NodeID == b.nodeID {
			continue
		}
		b.received.Add(1)

		switch p.Type {
		case typeHeartbeat:
			b.peersMu.Lock()
			b.knownPeers[p.Addr] = time.Now()
			if _, ok := b.resolvedAddr[p.Addr]; !ok {
				if rAddr, err := net.ResolveUDPAddr("udp4", p.Addr); err == nil {
					b.resolvedAddr[p.Addr] = rAddr
				}
			}
			b.peersMu.Unlock()
		case typeBatch:
			for _, ev := range p.Events {
				b.deliver(ev)
			}
		}
	}
}

// Close stops the bus and closes every subscription.
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return muterrors.ErrConnectionClosed
	}
	b.cancel()
	err := b.conn.Close()
	b.mu.Lock()
	for key, subs := range b.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.subs, key)
	}
	b.mu.Unlock()
	return err
}

func (b *Bus) heartbeatLoop() {
	ticker := time.NewTicker(b.opts.Heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			addr := b.opts.AdvertiseAddr
			if addr == "" {
				addr = b.conn.LocalAddr().String()
			}
			b.send(&packet{Magic: magicByte, Type: typeHeartbeat, NodeID: b.nodeID, Addr: addr})
		}
	}
}

func (b *Bus) send(p *packet) {
	buf := bufferPool.Get().([]byte)
	defer bufferPool.Put(buf)
	n, err := p.marshal(buf)
	if err != nil {
		slog.Warn("mutex: mesh packet dropped", "error", err)
		return
	}
	if err := b.broadcast(buf[:n]); err != nil {
		slog.Debug("mutex: mesh multicast failed", "error", err)
		return
	}
	if p.Type == typeBatch {
		b.published.Add(uint64(len(p.Events)))
	}
}

func (b *Bus) cleanupPeers() {
	ticker := time.NewTicker(peerTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			b.peersMu.Lock()
			now := time.Now()
			for addr, lastSeen := range b.knownPeers {
				if now.Sub(lastSeen) > peerTTL {
					delete(b.knownPeers, addr)
					delete(b.resolvedAddr, addr)
				}
			}
			b.peersMu.Unlock()
		}
	}
}

// runBatcher packs queued events into as few packets as fit.
func (b *Bus) runBatcher() {
	ticker := time.NewTicker(b.opts.BatchInterval)
	defer ticker.Stop()

	var (
		batch []syncbus.Event
		size  = headerLen + 2
	)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		b.send(&packet{Magic: magicByte, Type: typeBatch, NodeID: b.nodeID, Events: batch})
		batch = nil
		size = headerLen + 2
	}

	for {
		select {
		case <-b.ctx.Done():
			return
		case ev := <-b.publishCh:
			if size+eventLen(ev) > maxPacketLen {
				flush()
			}
			batch = append(batch, ev)
			size += eventLen(ev)
			if len(batch) >= b.opts.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// Metrics returns the number of events sent to and packets received from
// other nodes.
func (b *Bus) Metrics() syncbus.Metrics {
	return syncbus.Metrics{
		Published: b.published.Load(),
		Delivered: b.received.Load(),
	}
}

// Peers returns the currently known peers.
func (b *Bus) Peers() []string {
	b.peersMu.RLock()
	defer b.peersMu.RUnlock()

	peers := make([]string, 0, len(b.knownPeers))
	for addr := range b.knownPeers {
		peers = append(peers, addr)
	}
	return peers
}
