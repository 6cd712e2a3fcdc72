package runtime

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"wa-gateway/domain"
	"wa-gateway/domain/event"

	"github.com/stretchr/testify/require"
)

func TestTracker_InitialState(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	req.False(tracker.IsReady())
	_, ok := tracker.PendingQR()
	req.False(ok)
	req.Equal(domain.StateInitializing, tracker.Snapshot().State)
	req.Equal("initializing", tracker.Snapshot().Status())
}

func TestTracker_QRReplacesPreviousCode(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	now := time.Now()

	// Given a first QR code was issued
	tracker.Apply(event.QRIssued{Code: "first", At: now})

	// When a refreshed code arrives before the scan
	tracker.Apply(event.QRIssued{Code: "second", At: now.Add(time.Second)})

	// Then only the latest code is pending
	code, ok := tracker.PendingQR()
	req.True(ok)
	req.Equal("second", code)
	req.Equal(domain.StateQRPending, tracker.Snapshot().State)
}

func TestTracker_FullLifecycle(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	now := time.Now()

	tracker.Apply(event.QRIssued{Code: "ABC123", At: now})
	tracker.Apply(event.Authenticated{At: now})

	// Authenticated changes neither ready nor the pending code
	req.False(tracker.IsReady())
	code, ok := tracker.PendingQR()
	req.True(ok)
	req.Equal("ABC123", code)
	req.Equal(domain.StateAuthenticated, tracker.Snapshot().State)

	tracker.Apply(event.Ready{At: now})
	req.True(tracker.IsReady())
	_, ok = tracker.PendingQR()
	req.False(ok)

	tracker.Apply(event.Disconnected{Reason: "NAVIGATION", At: now})
	snap := tracker.Snapshot()
	req.False(snap.Ready)
	req.Nil(snap.PendingQR)
	req.Equal(domain.StateDisconnected, snap.State)
	req.Equal("initializing", snap.Status())
}

func TestTracker_DisconnectKeepsPendingQR(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	tracker.Apply(event.QRIssued{Code: "XYZ", At: time.Now()})
	tracker.Apply(event.Disconnected{Reason: "QR_TIMEOUT", At: time.Now()})

	code, ok := tracker.PendingQR()
	req.True(ok)
	req.Equal("XYZ", code)
}

func TestTracker_AuthFailureIsDiagnosticOnly(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	// Given a ready session
	tracker.Apply(event.Ready{At: time.Now()})

	// When an auth failure is reported
	tracker.Apply(event.AuthFailure{Reason: "bad credentials", At: time.Now()})

	// Then nothing moved
	req.True(tracker.IsReady())
	req.Equal(domain.StateReady, tracker.Snapshot().State)
}

func TestTracker_MarkLoggedOut(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Apply(event.Ready{At: time.Now()})

	tracker.MarkLoggedOut()

	req.False(tracker.IsReady())
}

func TestTracker_SnapshotIsACopy(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Apply(event.QRIssued{Code: "one", At: time.Now()})

	snap := tracker.Snapshot()
	*snap.PendingQR = "tampered"

	code, _ := tracker.PendingQR()
	req.Equal("one", code)
}

// Ready reflects exactly the most recent of ready / disconnected / logout,
// whatever the interleaving of other events.
func TestTracker_ReadyFollowsLatestDecisiveEvent(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		tracker := NewTracker()
		expected := false
		for step := 0; step < 30; step++ {
			switch rnd.Intn(6) {
			case 0:
				tracker.Apply(event.QRIssued{Code: "c", At: time.Now()})
			case 1:
				tracker.Apply(event.Authenticated{At: time.Now()})
			case 2:
				tracker.Apply(event.Ready{At: time.Now()})
				expected = true
			case 3:
				tracker.Apply(event.AuthFailure{Reason: "x", At: time.Now()})
			case 4:
				tracker.Apply(event.Disconnected{Reason: "y", At: time.Now()})
				expected = false
			case 5:
				tracker.MarkLoggedOut()
				expected = false
			}
			req.Equal(expected, tracker.IsReady())
		}
	}
}

func TestTracker_ConcurrentReaders(t *testing.T) {
	tracker := NewTracker()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tracker.Apply(event.QRIssued{Code: "c", At: time.Now()})
			tracker.Apply(event.Ready{At: time.Now()})
			tracker.Apply(event.Disconnected{At: time.Now()})
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				snap := tracker.Snapshot()
				// ready implies no pending code within a single snapshot
				if snap.Ready && snap.PendingQR != nil {
					t.Errorf("inconsistent snapshot: ready with pending QR")
					return
				}
				tracker.IsReady()
				tracker.PendingQR()
			}
		}()
	}
	wg.Wait()
}
