// Package runtime wires the messaging client, the session tracker and the
// lifecycle pipeline together under supervision.
// It contains no HTTP and no messaging protocol logic.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wa-gateway/contract"
	"wa-gateway/observability"
	"wa-gateway/runtime/workers"
)

// Adapter is a messaging client that also owns its session loop and event stream.
type Adapter interface {
	contract.Worker
	contract.LifecycleSource
	contract.MessagingClient
}

type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	supervisor        contract.ISupervisor
	adapter           Adapter
	tracker           contract.SessionTracker
	metrics           *observability.Metrics
	permanentSinks    []contract.LifecycleSink
	sinkTimeout       time.Duration
	heartbeatInterval time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, adapter Adapter,
	tracker contract.SessionTracker, metrics *observability.Metrics,
	sinkTimeout, heartbeatInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		adapter:           adapter,
		tracker:           tracker,
		metrics:           metrics,
		sinkTimeout:       sinkTimeout,
		heartbeatInterval: heartbeatInterval,
	}
}

// Add registers sinks fed by the lifecycle worker. Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.LifecycleSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Start registers the session loop, the lifecycle consumer and the heartbeat,
// then blocks in the supervisor until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	sinks := append([]contract.LifecycleSink{}, o.permanentSinks...)
	if o.metrics != nil {
		sinks = append(sinks, o.metrics)
	}
	lifecycleWorker := workers.NewLifecycleWorker(o.log, o.adapter.Events(), o.tracker, o.sinkTimeout, sinks...)
	o.supervisor.Add(lifecycleWorker, o.adapter)
	if o.heartbeatInterval > 0 {
		o.supervisor.Add(workers.NewHeartbeatWorker(o.log, o.tracker, o.metrics, o.heartbeatInterval))
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "sinks", len(sinks))
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised context. Start returns once every worker exited.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
