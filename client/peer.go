package client

import (
	"log/slog"
	"net"
	"sync"

	"peerchat/protocol"
)

// peerSet tracks the direct connections of the current private session.
// The outbound connection carries this side's payloads; inbound
// connections, accepted on the peer listener, carry the counterpart's.
// The two directions are independent transports, not one shared duplex.
type peerSet struct {
	mu       sync.Mutex
	log      *slog.Logger
	outbound net.Conn
	inbound  []net.Conn
}

func newPeerSet(log *slog.Logger) *peerSet {
	return &peerSet{log: log}
}

func (p *peerSet) setOutbound(conn net.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.outbound != nil {
		_ = p.outbound.Close()
	}
	p.outbound = conn
}

func (p *peerSet) addInbound(conn net.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inbound = append(p.inbound, conn)
}

// sendDirect pushes one payload over the outbound connection. It
// reports false when no direct session is live, so the caller can fall
// back to the control channel.
func (p *peerSet) sendDirect(identity, body string) bool {
	p.mu.Lock()
	conn := p.outbound
	p.mu.Unlock()
	if conn == nil {
		return false
	}
	if err := protocol.WritePush(conn, identity, body); err != nil {
		p.log.Warn("Direct send failed, dropping channel", "err", err)
		p.drop(conn)
		return false
	}
	return true
}

func (p *peerSet) drop(conn net.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = conn.Close()
	if p.outbound == conn {
		p.outbound = nil
	}
	for i, c := range p.inbound {
		if c == conn {
			p.inbound = append(p.inbound[:i], p.inbound[i+1:]...)
			break
		}
	}
}

func (p *peerSet) closeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.outbound != nil {
		_ = p.outbound.Close()
		p.outbound = nil
	}
	for _, c := range p.inbound {
		_ = c.Close()
	}
	p.inbound = nil
}
