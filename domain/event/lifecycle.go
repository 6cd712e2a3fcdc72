package event

import (
	"time"
)

type Kind string

const (
	KindQR            Kind = "qr"
	KindAuthenticated Kind = "authenticated"
	KindReady         Kind = "ready"
	KindAuthFailure   Kind = "auth_failure"
	KindDisconnected  Kind = "disconnected"
)

// LifecycleEvent is emitted by the messaging client each time the session moves.
// Events are delivered one at a time and in emission order.
type LifecycleEvent interface {
	Kind() Kind
	OccurredAt() time.Time
}

// QRIssued carries a new login challenge. Any previous one has expired.
type QRIssued struct {
	Code string
	At   time.Time
}

func (e QRIssued) Kind() Kind            { return KindQR }
func (e QRIssued) OccurredAt() time.Time { return e.At }

type Authenticated struct {
	At time.Time
}

func (e Authenticated) Kind() Kind            { return KindAuthenticated }
func (e Authenticated) OccurredAt() time.Time { return e.At }

type Ready struct {
	At time.Time
}

func (e Ready) Kind() Kind            { return KindReady }
func (e Ready) OccurredAt() time.Time { return e.At }

// AuthFailure is diagnostic only, it never moves the tracked state.
type AuthFailure struct {
	Reason string
	At     time.Time
}

func (e AuthFailure) Kind() Kind            { return KindAuthFailure }
func (e AuthFailure) OccurredAt() time.Time { return e.At }

type Disconnected struct {
	Reason string
	At     time.Time
}

func (e Disconnected) Kind() Kind            { return KindDisconnected }
func (e Disconnected) OccurredAt() time.Time { return e.At }

// Detail is the human-readable part of an event worth keeping in the journal.
// QR codes are secrets and are never part of it.
func Detail(e LifecycleEvent) string {
	switch evt := e.(type) {
	case AuthFailure:
		return evt.Reason
	case Disconnected:
		return evt.Reason
	default:
		return ""
	}
}
