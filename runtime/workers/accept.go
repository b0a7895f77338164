package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"

	"peerchat/contract"
	"peerchat/domain"
	"peerchat/protocol"
)

// AcceptWorker owns the control listener. Every accepted connection
// gets an opaque handle and a dedicated reader goroutine that funnels
// decoded frames into the shared command channel; the reader never
// mutates shared state itself.
type AcceptWorker struct {
	log      *slog.Logger
	listener net.Listener
	registry contract.IRegistry
	commands chan<- domain.Command
}

func NewAcceptWorker(log *slog.Logger, listener net.Listener,
	registry contract.IRegistry, commands chan<- domain.Command) *AcceptWorker {
	return &AcceptWorker{log: log, listener: listener, registry: registry, commands: commands}
}

func (w *AcceptWorker) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = w.listener.Close()
	}()

	w.log.Info("Accepting control connections", "address", w.listener.Addr().String())
	for {
		conn, err := w.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go w.serve(ctx, conn)
	}
}

// serve performs the registration handshake, then reads one frame at a
// time until the peer goes away. The first frame of a connection must
// be REGISTER; anything else closes the connection.
func (w *AcceptWorker) serve(ctx context.Context, conn net.Conn) {
	handle := domain.NewHandle()

	reg, err := w.handshake(conn)
	if err != nil {
		w.log.Warn("Registration handshake failed", "remote", conn.RemoteAddr().String(), "err", err)
		_ = conn.Close()
		return
	}

	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		host = conn.RemoteAddr().String()
	}

	// The sink must be reachable before the register command is
	// observed by the dispatcher.
	w.registry.Attach(handle, protocol.NewConnNotifier(conn))
	if !w.send(ctx, domain.RegisterCommand{
		Handle:     handle,
		Username:   reg.Username,
		Host:       host,
		ListenPort: reg.ListenPort,
	}) {
		_ = conn.Close()
		return
	}

	for {
		payload, err := protocol.ReadFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				w.log.Debug("Control read failed", "handle", handle, "err", err)
			}
			w.send(ctx, domain.DisconnectCommand{From: handle})
			return
		}

		msg, err := protocol.ParseControl(string(payload))
		if err != nil {
			// Malformed payloads are dropped; the framing is intact,
			// so the connection lives on.
			w.log.Warn("Dropping malformed control frame", "handle", handle, "err", err)
			continue
		}

		if !w.send(ctx, domain.FrameCommand{From: handle, Msg: msg}) {
			return
		}
	}
}

func (w *AcceptWorker) handshake(conn net.Conn) (domain.Register, error) {
	payload, err := protocol.ReadFrame(conn)
	if err != nil {
		return domain.Register{}, err
	}
	msg, err := protocol.ParseControl(string(payload))
	if err != nil {
		return domain.Register{}, err
	}
	reg, ok := msg.(domain.Register)
	if !ok {
		return domain.Register{}, errRegisterFirst
	}
	return reg, nil
}

func (w *AcceptWorker) send(ctx context.Context, cmd domain.Command) bool {
	select {
	case w.commands <- cmd:
		return true
	case <-ctx.Done():
		return false
	}
}

var errRegisterFirst = errors.New("first frame must be REGISTER")
