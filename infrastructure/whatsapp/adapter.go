// Package whatsapp is the messaging client backed by whatsmeow.
// The device session is persisted in a sqlite store so that a restart
// reconnects without a new QR scan.
package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wa-gateway/domain"
	"wa-gateway/domain/event"
	"wa-gateway/errors"
	"wa-gateway/storage"

	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types/events"
)

const sessionFile = "session.db"

type Config struct {
	SessionDir string
	BufferSize int
}

type Adapter struct {
	log       *slog.Logger
	container *sqlstore.Container
	events    chan event.LifecycleEvent

	mu      sync.RWMutex
	client  *whatsmeow.Client
	session *session
}

// session holds what belongs to a single Run of the adapter.
type session struct {
	paired atomic.Bool
	lost   chan string
}

func (s *session) drop(reason string) {
	select {
	case s.lost <- reason:
	default:
	}
}

func New(ctx context.Context, log *slog.Logger, cfg Config) (*Adapter, error) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 16
	}
	if err := os.MkdirAll(cfg.SessionDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(cfg.SessionDir, sessionFile))
	container, err := sqlstore.New(ctx, "sqlite3", dsn, newLogger(log, "whatsmeow-db"))
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return &Adapter{
		log:       log,
		container: container,
		events:    make(chan event.LifecycleEvent, cfg.BufferSize),
	}, nil
}

func (a *Adapter) Close() error {
	return a.container.Close()
}

func (a *Adapter) Events() <-chan event.LifecycleEvent {
	return a.events
}

// Run connects the stored device, or pairs a new one through QR codes, and
// holds the connection until the context ends or the session is lost.
// A lost session is returned as ErrSessionLost so the supervisor starts over.
func (a *Adapter) Run(ctx context.Context) error {
	device, err := a.container.GetFirstDevice(ctx)
	if err != nil {
		return fmt.Errorf("loading device: %w", err)
	}

	cli := whatsmeow.NewClient(device, newLogger(a.log, "whatsmeow"))
	s := &session{lost: make(chan string, 1)}
	handlerID := cli.AddEventHandler(func(evt any) { a.handle(ctx, s, evt) })
	a.attach(cli, s)
	defer func() {
		cli.RemoveEventHandler(handlerID)
		cli.Disconnect()
		a.attach(nil, nil)
	}()

	if cli.Store.ID == nil {
		qrItems, err := cli.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("opening qr channel: %w", err)
		}
		if err := cli.Connect(); err != nil {
			return fmt.Errorf("connecting for pairing: %w", err)
		}
		go a.watchQR(ctx, s, qrItems)
	} else {
		a.log.Info("Restoring stored session", "jid", cli.Store.ID.String())
		if err := cli.Connect(); err != nil {
			return fmt.Errorf("connecting: %w", err)
		}
	}

	select {
	case <-ctx.Done():
		return nil
	case reason := <-s.lost:
		return fmt.Errorf("%w: %s", errors.ErrSessionLost, reason)
	}
}

func (a *Adapter) watchQR(ctx context.Context, s *session, items <-chan whatsmeow.QRChannelItem) {
	for item := range items {
		switch item.Event {
		case whatsmeow.QRChannelEventCode:
			a.emit(ctx, event.QRIssued{Code: item.Code, At: time.Now()})
		case whatsmeow.QRChannelSuccess.Event:
			a.log.Debug("QR pairing completed")
		case whatsmeow.QRChannelTimeout.Event:
			a.emit(ctx, event.Disconnected{Reason: "QR_TIMEOUT", At: time.Now()})
			s.drop("qr timeout")
		default:
			reason := item.Event
			if item.Error != nil {
				reason = item.Error.Error()
			}
			a.emit(ctx, event.AuthFailure{Reason: reason, At: time.Now()})
			s.drop("pairing failed")
		}
	}
}

func (a *Adapter) handle(ctx context.Context, s *session, evt any) {
	now := time.Now()
	switch e := evt.(type) {
	case *events.PairSuccess:
		s.paired.Store(true)
		a.log.Info("Device paired", "jid", e.ID.String(), "platform", e.Platform)
		a.emit(ctx, event.Authenticated{At: now})
	case *events.Connected:
		if !s.paired.Swap(true) {
			a.emit(ctx, event.Authenticated{At: now})
		}
		a.emit(ctx, event.Ready{At: now})
	case *events.Disconnected:
		a.emit(ctx, event.Disconnected{Reason: "CONNECTION_LOST", At: now})
	case *events.LoggedOut:
		a.emit(ctx, event.Disconnected{Reason: "LOGGED_OUT: " + e.Reason.String(), At: now})
		s.drop("logged out from phone")
	case *events.StreamReplaced:
		a.emit(ctx, event.Disconnected{Reason: "CONFLICT", At: now})
		s.drop("stream replaced")
	case *events.ConnectFailure:
		a.emit(ctx, event.AuthFailure{Reason: fmt.Sprintf("connect failure: %s %s", e.Reason.String(), e.Message), At: now})
	case *events.TemporaryBan:
		a.emit(ctx, event.AuthFailure{Reason: e.String(), At: now})
	case *events.ClientOutdated:
		a.emit(ctx, event.AuthFailure{Reason: "client outdated", At: now})
	case *events.PairError:
		a.emit(ctx, event.AuthFailure{Reason: fmt.Sprintf("pair error: %v", e.Error), At: now})
	}
}

func (a *Adapter) emit(ctx context.Context, e event.LifecycleEvent) {
	select {
	case a.events <- e:
	case <-ctx.Done():
	}
}

func (a *Adapter) attach(cli *whatsmeow.Client, s *session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.client, a.session = cli, s
}

func (a *Adapter) current() (*whatsmeow.Client, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.client == nil || !a.client.IsLoggedIn() {
		return nil, errors.ErrNotLoggedIn
	}
	return a.client, nil
}

func (a *Adapter) SendText(ctx context.Context, chatID, text string) (domain.SentMessage, error) {
	cli, err := a.current()
	if err != nil {
		return domain.SentMessage{}, err
	}
	jid, err := toJID(chatID)
	if err != nil {
		return domain.SentMessage{}, err
	}
	resp, err := cli.SendMessage(ctx, jid, textMessage(text))
	if err != nil {
		return domain.SentMessage{}, fmt.Errorf("sending text: %w", err)
	}
	return domain.SentMessage{ID: resp.ID, Timestamp: resp.Timestamp.Unix()}, nil
}

func (a *Adapter) LoadMedia(path string, kind domain.MediaKind) (domain.Media, error) {
	return storage.LoadMedia(path, kind)
}

func (a *Adapter) SendMedia(ctx context.Context, chatID string, media domain.Media, caption string) (domain.SentMessage, error) {
	cli, err := a.current()
	if err != nil {
		return domain.SentMessage{}, err
	}
	jid, err := toJID(chatID)
	if err != nil {
		return domain.SentMessage{}, err
	}
	up, err := cli.Upload(ctx, media.Data, mediaTypeOf(media.Kind))
	if err != nil {
		return domain.SentMessage{}, fmt.Errorf("uploading %s: %w", media.FileName, err)
	}
	resp, err := cli.SendMessage(ctx, jid, mediaMessage(media, caption, up))
	if err != nil {
		return domain.SentMessage{}, fmt.Errorf("sending %s: %w", media.Kind, err)
	}
	return domain.SentMessage{ID: resp.ID, Timestamp: resp.Timestamp.Unix()}, nil
}

func (a *Adapter) LookupNumber(ctx context.Context, phone string) (*domain.NumberID, error) {
	cli, err := a.current()
	if err != nil {
		return nil, err
	}
	user := strings.TrimSuffix(phone, domain.UserSuffix)
	found, err := cli.IsOnWhatsApp(ctx, []string{"+" + user})
	if err != nil {
		return nil, fmt.Errorf("looking up number: %w", err)
	}
	if len(found) == 0 || !found[0].IsIn {
		return nil, nil
	}
	jid := found[0].JID
	return &domain.NumberID{User: jid.User, Server: "c.us", Serialized: toChatID(jid)}, nil
}

func (a *Adapter) SelfInfo(_ context.Context) (domain.SelfInfo, error) {
	cli, err := a.current()
	if err != nil {
		return domain.SelfInfo{}, err
	}
	id := cli.Store.ID
	if id == nil {
		return domain.SelfInfo{}, errors.ErrNotLoggedIn
	}
	return domain.SelfInfo{
		WID:      toChatID(id.ToNonAD()),
		Platform: cli.Store.Platform,
		Phone:    id.User,
	}, nil
}

// Logout unlinks the device and ends the current Run so a new pairing begins.
// Without a paired device there is nothing to unlink, the pending pairing is
// restarted instead.
func (a *Adapter) Logout(ctx context.Context) error {
	a.mu.RLock()
	cli, s := a.client, a.session
	a.mu.RUnlock()

	if cli != nil && cli.IsLoggedIn() {
		if err := cli.Logout(ctx); err != nil {
			return fmt.Errorf("logging out: %w", err)
		}
	} else {
		a.log.Info("Logout without a paired device, restarting pairing")
	}
	a.emit(ctx, event.Disconnected{Reason: "LOGOUT", At: time.Now()})
	if s != nil {
		s.drop("logout")
	}
	return nil
}
