package workers

import (
	"context"
	"log/slog"

	"peerchat/contract"
	"peerchat/domain"
)

// DispatchWorker drains the shared command channel and applies every
// command through the negotiator. It is the single owner of registry
// and room mutation: accept, heartbeat and liveness all funnel through
// here, so no two transitions ever interleave.
type DispatchWorker struct {
	log        *slog.Logger
	negotiator contract.INegotiator
	commands   <-chan domain.Command
}

func NewDispatchWorker(log *slog.Logger, negotiator contract.INegotiator,
	commands <-chan domain.Command) *DispatchWorker {
	return &DispatchWorker{log: log, negotiator: negotiator, commands: commands}
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping dispatch loop")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				return nil
			}
			w.apply(cmd)
		}
	}
}

func (w *DispatchWorker) apply(cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.RegisterCommand:
		if err := w.negotiator.Register(c); err != nil {
			w.log.Warn("Registration refused", "username", c.Username, "err", err)
			w.negotiator.Disconnect(c.Handle)
		}
	case domain.FrameCommand:
		w.negotiator.HandleFrame(c.From, c.Msg)
	case domain.HeartbeatCommand:
		w.negotiator.Heartbeat(c.Username)
	case domain.DecayCommand:
		w.negotiator.Decay(c.Now)
	case domain.DisconnectCommand:
		w.negotiator.Disconnect(c.From)
	default:
		w.log.Warn("Unhandled command kind dropped")
	}
}
