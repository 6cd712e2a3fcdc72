package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wa-gateway/api"
	"wa-gateway/infrastructure/simulator"
	"wa-gateway/infrastructure/whatsapp"
	"wa-gateway/observability"
	"wa-gateway/repositories"
	"wa-gateway/runtime"
	"wa-gateway/runtime/workers"
	"wa-gateway/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so deferred cleanups run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Lifecycle journal (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	journal := repositories.NewLifecycleRepository(db, log, config.EventsLimit)

	// 4. Messaging client
	adapter, closeAdapter, err := newAdapter(ctx, log, config)
	if err != nil {
		return exitRuntime, err
	}
	defer closeAdapter()

	// 5. Session tracking & supervision
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)
	tracker := runtime.NewTracker()

	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, config.RestartInterval),
		adapter, tracker, metrics, config.SinkTimeout, config.HeartbeatInterval)
	orchestrator.Add(
		sink.NewJournalSink(journal, log),
		sink.NewConsoleSink(log, os.Stdout),
	)

	orchestratorDone := make(chan struct{})
	go func() {
		defer close(orchestratorDone)
		_ = orchestrator.Start(ctx)
	}()

	// 6. HTTP control surface
	server := api.NewServer(log, tracker, adapter, api.NewPNGRenderer(config.QRSize), journal, metrics, registry,
		api.Options{
			Addr:            config.Address(),
			AdapterTimeout:  config.AdapterTimeout,
			ShutdownTimeout: config.ShutdownTimeout,
			AllowedOrigins:  config.Origins(),
		})
	log.Info("Gateway starting", "adapter", config.Adapter, "address", config.Address())
	serveErr := server.Run(ctx)

	// 7. Final Cleanup
	stop()
	orchestrator.Stop()
	<-orchestratorDone
	if serveErr != nil {
		return exitRuntime, fmt.Errorf("http server error: %w", serveErr)
	}
	log.Info("Gateway stopped cleanly")
	return exitOK, nil
}

func newAdapter(ctx context.Context, log *slog.Logger, config Config) (runtime.Adapter, func(), error) {
	if config.Adapter == adapterSimulator {
		log.Warn("Running with the simulated messaging client, nothing leaves this process")
		return simulator.New(log, simulator.Config{
			PairDelay:   config.SimulatorPairDelay,
			SendLatency: config.SimulatorSendLatency,
			BufferSize:  config.EventBufferSize,
		}), func() {}, nil
	}
	adapter, err := whatsapp.New(ctx, log, whatsapp.Config{
		SessionDir: config.SessionDir,
		BufferSize: config.EventBufferSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("messaging client: %w", err)
	}
	return adapter, func() {
		log.Info("Closing session store...")
		_ = adapter.Close()
	}, nil
}
