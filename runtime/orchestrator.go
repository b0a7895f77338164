package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"peerchat/contract"
	"peerchat/domain"
	"peerchat/moderation"
	"peerchat/runtime/workers"
)

// Options carries the tunables of one server instance. Ports may be
// zero to bind ephemerally; the bound addresses are readable after
// Start.
type Options struct {
	Host             string
	TCPPort          int
	UDPPort          int
	BufferSize       int
	LivenessLimit    time.Duration
	LivenessInterval time.Duration
	MetricInterval   time.Duration
	ReportInterval   time.Duration
	CharReplacement  rune
}

// Orchestrator prepares the shared state, binds the two listening
// endpoints and hands every worker to the supervisor. It owns no
// protocol logic of its own.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	rooms      contract.IRoomManager
	negotiator *Negotiator
	commands   chan domain.Command
	opts       Options

	controlAddr   net.Addr
	heartbeatAddr net.Addr
	done          chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, rooms contract.IRoomManager, opts Options) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		rooms:      rooms,
		commands:   make(chan domain.Command, opts.BufferSize),
		opts:       opts,
		done:       make(chan struct{}),
	}
}

// Start binds the control and heartbeat endpoints, builds the worker
// set and launches supervision. Heavy preparation (embedded word lists,
// the Aho-Corasick build) happens before anything is bound.
func (o *Orchestrator) Start(ctx context.Context) error {
	words, err := LoadCensoredWords("censored")
	if err != nil {
		return fmt.Errorf("censored words: %w", err)
	}
	o.log.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(words.Words), strings.Join(words.Languages, ",")))

	moderator, err := moderation.NewModerator(words.Words, o.opts.CharReplacement)
	if err != nil {
		return fmt.Errorf("moderator: %w", err)
	}

	o.negotiator = NewNegotiator(o.log, o.registry, o.rooms, moderator, o.opts.LivenessLimit)

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", o.opts.Host, o.opts.TCPPort))
	if err != nil {
		return fmt.Errorf("control listener: %w", err)
	}
	packet, err := net.ListenPacket("udp", fmt.Sprintf("%s:%d", o.opts.Host, o.opts.UDPPort))
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("heartbeat socket: %w", err)
	}
	o.controlAddr = listener.Addr()
	o.heartbeatAddr = packet.LocalAddr()

	o.supervisor.Add(
		workers.NewAcceptWorker(o.log, listener, o.registry, o.commands),
		workers.NewDispatchWorker(o.log, o.negotiator, o.commands),
		workers.NewHeartbeatWorker(o.log, packet, o.commands),
		workers.NewLivenessWorker(o.log, o.opts.LivenessInterval, o.commands),
	)
	if o.opts.MetricInterval > 0 {
		o.supervisor.Add(workers.NewTelemetryWorker(o.log, o.opts.MetricInterval))
	}
	if o.opts.ReportInterval > 0 {
		o.supervisor.Add(workers.NewReporterWorker(os.Stdout, o.registry, o.rooms, o.opts.ReportInterval))
	}

	o.log.Info("Starting orchestrator and all supervised workers")
	go func() {
		defer close(o.done)
		o.supervisor.Run(ctx)
	}()
	return nil
}

// ControlAddr is the bound address of the control listener, available
// after Start.
func (o *Orchestrator) ControlAddr() net.Addr { return o.controlAddr }

// HeartbeatAddr is the bound address of the heartbeat socket, available
// after Start.
func (o *Orchestrator) HeartbeatAddr() net.Addr { return o.heartbeatAddr }

// Stop cancels supervision and waits for every worker to drain.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
	<-o.done
}
