package workers

import (
	"bytes"
	"context"
	"log/slog"
	"net"

	"peerchat/domain"
	"peerchat/protocol"
)

// HeartbeatWorker ingests HELLO datagrams from the connectionless side
// channel. Liveness deliberately does not ride the control connection:
// a stalled TCP stream says nothing about whether the client process is
// still alive, and a lost datagram only delays the next refill.
type HeartbeatWorker struct {
	log      *slog.Logger
	conn     net.PacketConn
	commands chan<- domain.Command
}

func NewHeartbeatWorker(log *slog.Logger, conn net.PacketConn,
	commands chan<- domain.Command) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, conn: conn, commands: commands}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = w.conn.Close()
	}()

	w.log.Info("Listening for heartbeats", "address", w.conn.LocalAddr().String())
	buf := make([]byte, 512)
	for {
		n, _, err := w.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		payload, err := protocol.ReadFrame(bytes.NewReader(buf[:n]))
		if err != nil {
			w.log.Debug("Dropping malformed heartbeat datagram", "err", err)
			continue
		}
		msg, err := protocol.ParseControl(string(payload))
		if err != nil {
			w.log.Debug("Dropping malformed heartbeat payload", "err", err)
			continue
		}
		hb, ok := msg.(domain.Heartbeat)
		if !ok {
			w.log.Debug("Non-HELLO datagram on heartbeat channel dropped", "tag", msg.Tag())
			continue
		}

		select {
		case w.commands <- domain.HeartbeatCommand{Username: hb.Username}:
		case <-ctx.Done():
			return nil
		}
	}
}
