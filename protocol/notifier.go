package protocol

import (
	"fmt"
	"net"
	"sync"

	errs "peerchat/errors"
)

// ConnNotifier pushes (identity, body) frame pairs to one control
// connection. The mutex keeps the two frames of a push contiguous when
// several dispatch paths target the same client.
type ConnNotifier struct {
	mu   sync.Mutex
	conn net.Conn
}

func NewConnNotifier(conn net.Conn) *ConnNotifier {
	return &ConnNotifier{conn: conn}
}

func (n *ConnNotifier) Push(identity, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := WritePush(n.conn, identity, body); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrTransportClosed, err)
	}
	return nil
}

func (n *ConnNotifier) Close() error {
	return n.conn.Close()
}
