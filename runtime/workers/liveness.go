package workers

import (
	"context"
	"log/slog"
	"time"

	"peerchat/domain"
)

// LivenessWorker ticks the decay pass. The actual budget arithmetic and
// eviction happen on the dispatch goroutine; this worker only marks the
// passage of wall-clock time.
type LivenessWorker struct {
	log      *slog.Logger
	interval time.Duration
	commands chan<- domain.Command
}

func NewLivenessWorker(log *slog.Logger, interval time.Duration,
	commands chan<- domain.Command) *LivenessWorker {
	return &LivenessWorker{log: log, interval: interval, commands: commands}
}

func (w *LivenessWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping liveness ticker")
			return nil
		case now := <-ticker.C:
			select {
			case w.commands <- domain.DecayCommand{Now: now}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
