package runtime

import (
	"sync"
	"time"

	"wa-gateway/domain"
	"wa-gateway/domain/event"
)

// Tracker holds the two pieces of session state the HTTP surface depends on:
// the ready flag and the pending login challenge.
//
// Apply is only called from the lifecycle consumer loop, MarkLoggedOut from the
// logout handler. Every other caller only reads.
type Tracker struct {
	mu          sync.RWMutex
	state       domain.ConnectionState
	ready       bool
	pendingQR   *string
	lastEventAt time.Time
}

func NewTracker() *Tracker {
	return &Tracker{state: domain.StateInitializing}
}

// Apply moves the tracked state according to one lifecycle event.
//
//   - qr: the code replaces any previous one, older codes have expired
//   - authenticated: informational, tracked fields untouched
//   - ready: ready becomes true and the pending code is cleared
//   - auth_failure: diagnostic only, nothing moves
//   - disconnected: ready becomes false, the pending code is left as is
//     since the client re-initializes and issues a new one
func (t *Tracker) Apply(e event.LifecycleEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.QRIssued:
		code := evt.Code
		t.pendingQR = &code
		t.state = domain.StateQRPending
	case event.Authenticated:
		t.state = domain.StateAuthenticated
	case event.Ready:
		t.ready = true
		t.pendingQR = nil
		t.state = domain.StateReady
	case event.AuthFailure:
		// No transition
	case event.Disconnected:
		t.ready = false
		t.state = domain.StateDisconnected
	default:
		return
	}
	t.lastEventAt = e.OccurredAt()
}

// MarkLoggedOut forces the ready flag down after a successful logout.
func (t *Tracker) MarkLoggedOut() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ready = false
	t.state = domain.StateDisconnected
}

func (t *Tracker) IsReady() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}

func (t *Tracker) PendingQR() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.pendingQR == nil {
		return "", false
	}
	return *t.pendingQR, true
}

// Snapshot copies the state under a single read lock, so ready and the pending
// code are consistent with each other.
func (t *Tracker) Snapshot() domain.SessionSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snap := domain.SessionSnapshot{
		State:       t.state,
		Ready:       t.ready,
		LastEventAt: t.lastEventAt,
	}
	if t.pendingQR != nil {
		code := *t.pendingQR
		snap.PendingQR = &code
	}
	return snap
}
