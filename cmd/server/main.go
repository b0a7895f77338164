package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"peerchat/internal"
	"peerchat/runtime"
	"peerchat/runtime/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the
// process exits and the entry point stays testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Shared state, supervision and orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	rooms := runtime.NewRoomManager()

	orchestrator := runtime.NewOrchestrator(log, sup, registry, rooms, runtime.Options{
		Host:             config.Host,
		TCPPort:          config.TCPPort,
		UDPPort:          config.UDPPort,
		BufferSize:       config.BufferSize,
		LivenessLimit:    config.LivenessLimit,
		LivenessInterval: config.LivenessInterval,
		MetricInterval:   config.MetricInterval,
		ReportInterval:   config.ReportInterval,
		CharReplacement:  replacement,
	})

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start the engine
	if err := orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}
	log.Info("Signaling server running",
		"control", orchestrator.ControlAddr().String(),
		"heartbeat", orchestrator.HeartbeatAddr().String())

	// 5. Wait for stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	// 6. Final cleanup
	orchestrator.Stop()
	log.Info("Program stopped cleanly")
	return nil
}
