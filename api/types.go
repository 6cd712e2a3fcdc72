package api

import "time"

const (
	statusReady        = "ready"
	statusQRAvailable  = "qr_available"
	statusInitializing = "initializing"

	msgAlreadyConnected = "already connected"
	msgGeneratingQR     = "generating QR code..."
	msgSessionClosed    = "session closed"

	msgSendFieldsRequired  = `"phone" and "message" are required`
	msgMediaFieldsRequired = `"phone" and "mediaPath" are required`
)

type SendRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type SendMediaRequest struct {
	Phone     string `json:"phone" validate:"required"`
	Message   string `json:"message"`
	MediaPath string `json:"mediaPath" validate:"required"`
	MediaType string `json:"mediaType"`
}

type CheckNumberRequest struct {
	Phone string `json:"phone"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	QR        *string `json:"qr"`
	Timestamp string  `json:"timestamp"`
}

type QRResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	QR      string `json:"qr,omitempty"`
}

type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Timestamp int64  `json:"timestamp"`
}

type CheckNumberResponse struct {
	Success  bool    `json:"success"`
	Exists   bool    `json:"exists"`
	NumberID *string `json:"numberId"`
}

type InfoView struct {
	WID      string `json:"wid"`
	Platform string `json:"platform"`
	Phone    string `json:"phone"`
}

type InfoResponse struct {
	Success bool     `json:"success"`
	Info    InfoView `json:"info"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type EventView struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

type EventsResponse struct {
	Success bool        `json:"success"`
	Events  []EventView `json:"events"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
