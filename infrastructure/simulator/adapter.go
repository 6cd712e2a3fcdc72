// Package simulator provides a messaging client that never leaves the process.
// It walks through the same lifecycle as the real client (qr, authenticated,
// ready) and acknowledges sends with random ids, for development and tests.
package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"wa-gateway/domain"
	"wa-gateway/domain/event"
	"wa-gateway/errors"
	"wa-gateway/storage"

	"github.com/google/uuid"
)

const SelfPhone = "10000000000"

type Config struct {
	PairDelay   time.Duration
	SendLatency time.Duration
	BufferSize  int
}

type Adapter struct {
	log         *slog.Logger
	events      chan event.LifecycleEvent
	pairDelay   time.Duration
	sendLatency time.Duration
	now         func() time.Time

	mu       sync.RWMutex
	loggedIn bool
	reset    chan struct{}
}

func New(log *slog.Logger, cfg Config) *Adapter {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 16
	}
	return &Adapter{
		log:         log,
		events:      make(chan event.LifecycleEvent, cfg.BufferSize),
		pairDelay:   cfg.PairDelay,
		sendLatency: cfg.SendLatency,
		now:         time.Now,
		reset:       make(chan struct{}, 1),
	}
}

func (a *Adapter) Events() <-chan event.LifecycleEvent {
	return a.events
}

// Run pairs a simulated device and holds the session until logout.
// Logout, paired or not, makes Run return ErrSessionLost so the supervisor
// starts a new pairing.
func (a *Adapter) Run(ctx context.Context) error {
	// A logout issued while no Run was active must not abort this one
	select {
	case <-a.reset:
	default:
	}

	code := "SIMULATED-" + uuid.NewString()
	if !a.emit(ctx, event.QRIssued{Code: code, At: a.now()}) {
		return nil
	}

	select {
	case <-ctx.Done():
		return nil
	case <-a.reset:
		return fmt.Errorf("%w: pairing abandoned", errors.ErrSessionLost)
	case <-time.After(a.pairDelay):
	}

	if !a.emit(ctx, event.Authenticated{At: a.now()}) {
		return nil
	}
	a.setLoggedIn(true)
	if !a.emit(ctx, event.Ready{At: a.now()}) {
		return nil
	}

	select {
	case <-ctx.Done():
		a.setLoggedIn(false)
		return nil
	case <-a.reset:
		return fmt.Errorf("%w: logged out", errors.ErrSessionLost)
	}
}

func (a *Adapter) SendText(ctx context.Context, chatID, text string) (domain.SentMessage, error) {
	if err := a.deliver(ctx); err != nil {
		return domain.SentMessage{}, err
	}
	a.log.Info("Simulated send", "chat", chatID, "text", preview(text, 80))
	return a.receipt(), nil
}

func (a *Adapter) LoadMedia(path string, kind domain.MediaKind) (domain.Media, error) {
	return storage.LoadMedia(path, kind)
}

func (a *Adapter) SendMedia(ctx context.Context, chatID string, media domain.Media, caption string) (domain.SentMessage, error) {
	if err := a.deliver(ctx); err != nil {
		return domain.SentMessage{}, err
	}
	a.log.Info("Simulated media send", "chat", chatID, "kind", media.Kind, "file", media.FileName, "caption", preview(caption, 80))
	return a.receipt(), nil
}

// LookupNumber considers every all-digit number of plausible length registered.
func (a *Adapter) LookupNumber(_ context.Context, phone string) (*domain.NumberID, error) {
	if !a.isLoggedIn() {
		return nil, errors.ErrNotLoggedIn
	}
	user := strings.TrimSuffix(phone, domain.UserSuffix)
	if len(user) < 7 || strings.IndexFunc(user, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return nil, nil
	}
	return &domain.NumberID{User: user, Server: "c.us", Serialized: domain.NormalizeChatID(user)}, nil
}

func (a *Adapter) SelfInfo(_ context.Context) (domain.SelfInfo, error) {
	if !a.isLoggedIn() {
		return domain.SelfInfo{}, errors.ErrNotLoggedIn
	}
	return domain.SelfInfo{
		WID:      domain.NormalizeChatID(SelfPhone),
		Platform: "simulator",
		Phone:    SelfPhone,
	}, nil
}

func (a *Adapter) Logout(ctx context.Context) error {
	a.mu.Lock()
	wasLoggedIn := a.loggedIn
	a.loggedIn = false
	a.mu.Unlock()

	if !wasLoggedIn {
		a.log.Info("Logout without a paired device, restarting pairing")
	}

	a.emit(ctx, event.Disconnected{Reason: "LOGOUT", At: a.now()})
	select {
	case a.reset <- struct{}{}:
	default:
	}
	return nil
}

func (a *Adapter) deliver(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errors.ErrNotLoggedIn
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(a.sendLatency):
		return nil
	}
}

func (a *Adapter) receipt() domain.SentMessage {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.SentMessage{ID: id[:20], Timestamp: a.now().Unix()}
}

// emit blocks until the consumer takes the event, preserving order.
func (a *Adapter) emit(ctx context.Context, e event.LifecycleEvent) bool {
	select {
	case a.events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func (a *Adapter) setLoggedIn(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = v
}

func (a *Adapter) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loggedIn
}

func preview(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max]) + "..."
}
