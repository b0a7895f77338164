// Package client implements the protocol side of a chat participant:
// the control connection, the heartbeat ticker, the peer listener and
// the handoff that promotes an accepted private session onto a direct
// peer-to-peer connection.
//
// Interactive line reading and human command syntax stay outside this
// package; intents arrive already structured.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"peerchat/domain"
	"peerchat/protocol"
)

// Config carries the connection parameters of one session. Password is
// an opaque string captured elsewhere; it is not interpreted here.
type Config struct {
	Username          string
	Password          string
	ServerAddr        string // control channel, TCP host:port
	HeartbeatAddr     string // heartbeat channel, UDP host:port
	ListenPort        int    // peer listener; 0 binds ephemerally
	HeartbeatInterval time.Duration
}

// Event is one message surfaced to the user interface.
type Event struct {
	From string
	Body string
}

// Session owns the control connection and the direct peer connections
// of one logged-in user.
type Session struct {
	log     *slog.Logger
	cfg     Config
	control net.Conn
	peers   *peerSet

	listener   net.Listener
	listenPort int

	intents chan domain.Intent
	events  chan Event
}

func NewSession(log *slog.Logger, cfg Config) *Session {
	return &Session{
		log:     log,
		cfg:     cfg,
		peers:   newPeerSet(log),
		intents: make(chan domain.Intent, 16),
		events:  make(chan Event, 64),
	}
}

// Events delivers inbound messages and notices for display.
func (s *Session) Events() <-chan Event { return s.events }

// Submit hands one structured intent to the session. It never blocks
// the caller's UI loop.
func (s *Session) Submit(intent domain.Intent) {
	select {
	case s.intents <- intent:
	default:
		s.log.Warn("Intent dropped, session saturated")
	}
}

// ListenPort is the bound peer-listener port, advertised to the server
// at registration. Available after Dial.
func (s *Session) ListenPort() int { return s.listenPort }

// Dial connects the control channel, binds the peer listener and sends
// the REGISTER frame. The advertised port is the actually bound one.
func (s *Session) Dial(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("control dial: %w", err)
	}
	s.control = conn

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.ListenPort))
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("peer listener: %w", err)
	}
	s.listener = listener
	s.listenPort = listener.Addr().(*net.TCPAddr).Port

	register := protocol.Compose(domain.TagRegister,
		s.cfg.Username, strconv.Itoa(s.listenPort))
	if err := protocol.WriteFrame(conn, []byte(register)); err != nil {
		_ = conn.Close()
		_ = listener.Close()
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Run drives the session until the context is canceled, the user logs
// out or the server goes away.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close()

	controlErr := make(chan error, 1)
	go func() { controlErr <- s.readControl(ctx) }()
	go s.acceptPeers(ctx)
	go s.heartbeatLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-controlErr:
			return err
		case intent := <-s.intents:
			logout, err := s.apply(intent)
			if err != nil {
				return err
			}
			if logout {
				return nil
			}
		}
	}
}

// apply translates one intent into control or direct traffic.
func (s *Session) apply(intent domain.Intent) (logout bool, err error) {
	me := s.cfg.Username
	switch it := intent.(type) {
	case domain.SearchIntent:
		err = s.sendControl(protocol.Compose(domain.TagSearch, it.Target, me))
	case domain.ChatRequestIntent:
		err = s.sendControl(protocol.Compose(domain.TagChatRequest, it.Target, me))
	case domain.OkIntent:
		err = s.sendControl(protocol.Compose(domain.TagOk,
			me, it.Target, strconv.Itoa(s.listenPort)))
	case domain.RejectIntent:
		err = s.sendControl(protocol.Compose(domain.TagReject, me, it.Target))
	case domain.ExitIntent:
		s.peers.closeAll()
		err = s.sendControl(protocol.Compose(domain.TagExit, me))
	case domain.GroupChatIntent:
		err = s.sendControl(protocol.Compose(domain.TagGroupChat,
			append([]string{me}, it.Members...)...))
	case domain.OkGroupIntent:
		err = s.sendControl(protocol.Compose(domain.TagOkGroup, me, strconv.Itoa(int(it.Room))))
	case domain.RejectGroupIntent:
		err = s.sendControl(protocol.Compose(domain.TagRejectGroup, me, strconv.Itoa(int(it.Room))))
	case domain.ExitGroupIntent:
		err = s.sendControl(protocol.Compose(domain.TagExitGroup, me))
	case domain.SayIntent:
		err = s.say(it.Text)
	case domain.LogoutIntent:
		err = s.sendControl(protocol.Compose(domain.TagLogout))
		return true, err
	default:
		s.log.Warn("Unhandled intent dropped")
	}
	return false, err
}

// say routes chat text: over the direct connection while a private
// session is live, otherwise to the server for group relay.
func (s *Session) say(text string) error {
	body := fmt.Sprintf("%s: %s", s.cfg.Username, text)
	if s.peers.sendDirect(s.cfg.Username, body) {
		return nil
	}
	return s.sendControl(body)
}

func (s *Session) sendControl(payload string) error {
	return protocol.WriteFrame(s.control, []byte(payload))
}

// readControl decodes (identity, body) pairs pushed by the server and
// reacts to the tagged control responses.
func (s *Session) readControl(ctx context.Context) error {
	for {
		identity, body, err := protocol.ReadPush(s.control)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("control channel lost: %w", err)
		}

		resp, tagged := protocol.ParseResponse(body)
		if !tagged {
			s.emit(identity, body)
			continue
		}

		switch resp.Tag {
		case domain.TagClientOk:
			s.emit(identity, resp.Text)
			if len(resp.Fields) > 0 {
				go s.handoff(ctx, resp.Fields[0])
			}
		case domain.TagClientExit:
			s.peers.closeAll()
			s.emit(identity, resp.Text)
		case domain.TagLogoutSuccess:
			s.emit(identity, resp.Text)
			return nil
		default:
			// FOUND, NOTFOUND, INVALIDSEARCH, BUSY and friends carry
			// display text only; raw tags never reach the user.
			s.emit(identity, resp.Text)
		}
	}
}

// handoff opens the outbound half of the direct session. The inbound
// half arrives independently on the peer listener; whichever attempt
// completes first carries that direction from then on.
func (s *Session) handoff(ctx context.Context, endpoint string) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", endpoint)
	if err != nil {
		s.log.Warn("Direct connection failed, staying on control channel",
			"endpoint", endpoint, "err", err)
		return
	}
	s.peers.setOutbound(conn)
	s.log.Info("Direct channel established", "endpoint", endpoint)
}

// acceptPeers receives the counterpart's inbound handoff connections.
func (s *Session) acceptPeers(ctx context.Context) {
	go func() {
		<-ctx.Done()
		_ = s.listener.Close()
	}()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.peers.addInbound(conn)
		go s.readPeer(ctx, conn)
	}
}

func (s *Session) readPeer(ctx context.Context, conn net.Conn) {
	defer s.peers.drop(conn)
	for {
		identity, body, err := protocol.ReadPush(conn)
		if err != nil {
			if ctx.Err() == nil {
				s.log.Debug("Direct channel closed", "err", err)
			}
			return
		}
		s.emit(identity, body)
	}
}

// heartbeatLoop sends HELLO datagrams at an interval strictly shorter
// than the server's liveness limit. Losing one datagram only delays the
// refill; the control connection is not involved.
func (s *Session) heartbeatLoop(ctx context.Context) {
	conn, err := net.Dial("udp", s.cfg.HeartbeatAddr)
	if err != nil {
		s.log.Warn("Heartbeat channel unavailable", "err", err)
		return
	}
	defer conn.Close()

	frame, err := protocol.EncodeFrame([]byte(protocol.Compose(domain.TagHello, s.cfg.Username)))
	if err != nil {
		s.log.Warn("Heartbeat payload rejected", "err", err)
		return
	}
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := conn.Write(frame); err != nil {
				s.log.Debug("Heartbeat send failed", "err", err)
			}
		}
	}
}

// emit surfaces one display event, trimming the conventional
// "sender: " prefix when the identity already names the sender.
func (s *Session) emit(from, body string) {
	if prefix := from + ": "; strings.HasPrefix(body, prefix) {
		body = strings.TrimPrefix(body, prefix)
	}
	select {
	case s.events <- Event{From: from, Body: body}:
	default:
		s.log.Warn("Display event dropped, UI not draining")
	}
}

func (s *Session) close() {
	s.peers.closeAll()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.control != nil {
		_ = s.control.Close()
	}
}
