// Package domain contains core concepts of the gateway.
// This file defines what the messaging client hands back after an operation.
// Outgoing messages are never stored: only their receipt travels back to the caller.
package domain

// SentMessage is the receipt of an outgoing message.
// Timestamp is expressed in unix seconds, as the messaging network reports it.
type SentMessage struct {
	ID        string
	Timestamp int64
}

// NumberID identifies an account registered on the messaging network.
type NumberID struct {
	User       string
	Server     string
	Serialized string
}

// SelfInfo describes the account the gateway is logged in with.
type SelfInfo struct {
	WID      string
	Platform string
	Phone    string
}
