// Package domain contains core concepts of the gateway.
// This file defines the connection lifecycle of the messaging session.
// No runtime, network, or HTTP logic should be added here.
package domain

import "time"

type ConnectionState string

const (
	StateInitializing  ConnectionState = "initializing"
	StateQRPending     ConnectionState = "qr_pending"
	StateAuthenticated ConnectionState = "authenticated"
	StateReady         ConnectionState = "ready"
	StateDisconnected  ConnectionState = "disconnected"
)

// SessionSnapshot is a consistent, point-in-time copy of the session tracker.
// PendingQR is nil when no login challenge is waiting.
type SessionSnapshot struct {
	State       ConnectionState
	Ready       bool
	PendingQR   *string
	LastEventAt time.Time
}

// Status is the coarse value reported by /health.
func (s SessionSnapshot) Status() string {
	if s.Ready {
		return string(StateReady)
	}
	return string(StateInitializing)
}
