//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"wa-gateway/domain"
	"wa-gateway/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// LifecycleSink receives every lifecycle event after the tracker applied it.
type LifecycleSink interface {
	Consume(ctx context.Context, e event.LifecycleEvent) error
}

// LifecycleSource is the messaging client's side of the event stream.
// The channel lives as long as the client and is drained by a single consumer.
type LifecycleSource interface {
	Events() <-chan event.LifecycleEvent
}

// MessagingClient is everything the HTTP surface asks of the messaging client.
// chatID is always a normalized address (see domain.NormalizeChatID).
type MessagingClient interface {
	SendText(ctx context.Context, chatID, text string) (domain.SentMessage, error)
	// LoadMedia reads a file from disk. An empty kind means "sniff it from content".
	LoadMedia(path string, kind domain.MediaKind) (domain.Media, error)
	SendMedia(ctx context.Context, chatID string, media domain.Media, caption string) (domain.SentMessage, error)
	// LookupNumber returns nil without error when the number is not registered.
	LookupNumber(ctx context.Context, phone string) (*domain.NumberID, error)
	SelfInfo(ctx context.Context) (domain.SelfInfo, error)
	Logout(ctx context.Context) error
}

// SessionTracker is the single source of truth for "can I send yet" and
// "is a login code waiting". Apply is reserved to the lifecycle consumer loop.
type SessionTracker interface {
	Apply(e event.LifecycleEvent)
	MarkLoggedOut()
	IsReady() bool
	PendingQR() (string, bool)
	Snapshot() domain.SessionSnapshot
}

type QRRenderer interface {
	DataURI(code string) (string, error)
}
