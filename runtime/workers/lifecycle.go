package workers

import (
	"context"
	"log/slog"
	"time"

	"wa-gateway/contract"
	"wa-gateway/domain/event"
)

// LifecycleWorker is the single consumer of the messaging client's events.
//
// Each event is first applied to the session tracker, then handed to every sink
// (journal, console, metrics) under a bounded timeout. Sinks are best-effort:
// a failing or slow sink is logged and never blocks the next event, and it
// never rolls back the tracker.
type LifecycleWorker struct {
	log         *slog.Logger
	source      <-chan event.LifecycleEvent
	tracker     contract.SessionTracker
	sinks       []contract.LifecycleSink
	sinkTimeout time.Duration
}

func NewLifecycleWorker(
	log *slog.Logger,
	source <-chan event.LifecycleEvent,
	tracker contract.SessionTracker,
	sinkTimeout time.Duration,
	sinks ...contract.LifecycleSink,
) *LifecycleWorker {
	return &LifecycleWorker{
		log:         log,
		source:      source,
		tracker:     tracker,
		sinks:       sinks,
		sinkTimeout: sinkTimeout,
	}
}

func (w *LifecycleWorker) Run(ctx context.Context) error {
	for {
		select {
		case evt, ok := <-w.source:
			if !ok {
				w.log.Debug("Lifecycle source closed")
				return nil
			}
			w.Handle(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping lifecycle consumer")
			return nil
		}
	}
}

// Handle applies one event. Exposed so tests can drive synthetic sequences.
func (w *LifecycleWorker) Handle(ctx context.Context, evt event.LifecycleEvent) {
	w.tracker.Apply(evt)
	for _, sink := range w.sinks {
		w.consume(ctx, sink, evt)
	}
}

func (w *LifecycleWorker) consume(ctx context.Context, sink contract.LifecycleSink, evt event.LifecycleEvent) {
	sinkCtx := ctx
	if w.sinkTimeout > 0 {
		var cancel context.CancelFunc
		sinkCtx, cancel = context.WithTimeout(ctx, w.sinkTimeout)
		defer cancel()
	}
	if err := sink.Consume(sinkCtx, evt); err != nil {
		w.log.Warn("Lifecycle sink failed", "kind", evt.Kind(), "error", err)
	}
}
