package simulator

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"wa-gateway/domain"
	"wa-gateway/domain/event"
	"wa-gateway/errors"

	"github.com/stretchr/testify/require"
)

func next(t *testing.T, a *Adapter) event.LifecycleEvent {
	t.Helper()
	select {
	case evt := <-a.Events():
		return evt
	case <-time.After(time.Second):
		t.Fatal("no lifecycle event received")
		return nil
	}
}

func TestAdapter_PairingLifecycle(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{PairDelay: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = a.Run(ctx) }()

	// Then the simulated device walks through qr, authenticated and ready
	qr, ok := next(t, a).(event.QRIssued)
	req.True(ok)
	req.Contains(qr.Code, "SIMULATED-")
	req.Equal(event.KindAuthenticated, next(t, a).Kind())
	req.Equal(event.KindReady, next(t, a).Kind())

	info, err := a.SelfInfo(ctx)
	req.NoError(err)
	req.Equal("10000000000@c.us", info.WID)
}

func TestAdapter_SendBeforePairingFails(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{})

	_, err := a.SendText(context.Background(), "5551234567@c.us", "hi")

	req.ErrorIs(err, errors.ErrNotLoggedIn)
}

func TestAdapter_SendAfterPairing(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{})
	a.setLoggedIn(true)
	a.now = func() time.Time { return time.Unix(1000, 0) }

	sent, err := a.SendText(context.Background(), "5551234567@c.us", "hi")

	req.NoError(err)
	req.Len(sent.ID, 20)
	req.Equal(int64(1000), sent.Timestamp)
}

func TestAdapter_SendHonoursContext(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{SendLatency: time.Minute})
	a.setLoggedIn(true)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := a.SendMedia(ctx, "5551234567@c.us", domain.Media{Kind: domain.MediaImage}, "")

	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestAdapter_LookupNumber(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{})
	a.setLoggedIn(true)

	found, err := a.LookupNumber(context.Background(), "5551234567")
	req.NoError(err)
	req.Equal("5551234567@c.us", found.Serialized)

	missing, err := a.LookupNumber(context.Background(), "000")
	req.NoError(err)
	req.Nil(missing)
}

func TestAdapter_LogoutRestartsPairing(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	next(t, a)
	next(t, a)
	next(t, a)

	// When logging out
	req.NoError(a.Logout(ctx))

	// Then a disconnection is emitted and Run hands back to the supervisor
	disconnected, ok := next(t, a).(event.Disconnected)
	req.True(ok)
	req.Equal("LOGOUT", disconnected.Reason)
	select {
	case err := <-done:
		req.ErrorIs(err, errors.ErrSessionLost)
	case <-time.After(time.Second):
		req.Fail("Run should have returned")
	}

	// And a second logout still succeeds
	req.NoError(a.Logout(ctx))
}

func TestAdapter_LogoutWhilePairingIssuesNewQR(t *testing.T) {
	req := require.New(t)
	a := New(slog.Default(), Config{PairDelay: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	first, ok := next(t, a).(event.QRIssued)
	req.True(ok)

	// When logging out before the QR code is scanned
	req.NoError(a.Logout(ctx))

	// Then pairing is abandoned
	req.Equal(event.KindDisconnected, next(t, a).Kind())
	select {
	case err := <-done:
		req.ErrorIs(err, errors.ErrSessionLost)
	case <-time.After(time.Second):
		req.Fail("Run should have returned")
	}

	// And the next Run issues a fresh code
	go func() { done <- a.Run(ctx) }()
	second, ok := next(t, a).(event.QRIssued)
	req.True(ok)
	req.NotEqual(first.Code, second.Code)
}
