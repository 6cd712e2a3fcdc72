package sink

import (
	"context"
	"log/slog"

	"wa-gateway/domain/event"
	"wa-gateway/repositories"

	"github.com/google/uuid"
)

// JournalSink keeps every lifecycle transition on disk for /events.
type JournalSink struct {
	repository repositories.ILifecycleRepository
	log        *slog.Logger
}

func NewJournalSink(repository repositories.ILifecycleRepository, log *slog.Logger) JournalSink {
	return JournalSink{repository: repository, log: log}
}

func (j JournalSink) Consume(ctx context.Context, e event.LifecycleEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return j.repository.StoreRecord(toRecord(e))
}

func toRecord(e event.LifecycleEvent) repositories.LifecycleRecord {
	return repositories.LifecycleRecord{
		ID:     uuid.New(),
		Kind:   string(e.Kind()),
		Detail: event.Detail(e),
		At:     e.OccurredAt().UTC(),
	}
}
