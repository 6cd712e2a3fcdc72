package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrNotReady          = fmt.Errorf("messaging client is not connected, scan the QR code first")
	ErrValidation        = fmt.Errorf("invalid request")
	ErrMalformedBody     = fmt.Errorf("malformed JSON body")
	ErrMediaNotFound     = fmt.Errorf("media file not found")
	ErrNotLoggedIn       = fmt.Errorf("no logged in session")
	ErrSessionLost       = fmt.Errorf("session lost")
	ErrInvalidChatID     = fmt.Errorf("invalid chat id")
	ErrEventSourceClosed = fmt.Errorf("lifecycle event source closed")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected gateway status")
)
