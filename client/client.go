// Package client talks to a running gateway over HTTP.
// Connection failures are retried with exponential backoff, anything the
// gateway answered is returned as is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"wa-gateway/api"
	"wa-gateway/domain"
	"wa-gateway/errors"

	"github.com/cenkalti/backoff/v4"
)

const DefaultURL = "http://localhost:3000"

type Client struct {
	base       string
	http       *http.Client
	log        *slog.Logger
	retries    uint64
	mediaRoot  string
	newBackOff func() backoff.BackOff
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetries bounds how many times a request that could not reach the gateway is retried.
func WithRetries(n uint64) Option {
	return func(c *Client) { c.retries = n }
}

// WithMediaRoot resolves relative media paths against dir before sending them.
func WithMediaRoot(dir string) Option {
	return func(c *Client) { c.mediaRoot = dir }
}

func New(base string, log *slog.Logger, opts ...Option) *Client {
	if base == "" {
		base = DefaultURL
	}
	c := &Client{
		base:       base,
		http:       &http.Client{Timeout: 45 * time.Second},
		log:        log,
		retries:    3,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-200 answer from the gateway.
// A 503 unwraps to ErrNotReady, every other status to ErrUnexpectedStatus.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusServiceUnavailable {
		return errors.ErrNotReady
	}
	return errors.ErrUnexpectedStatus
}

// Status combines /health and, when the session is not ready, /qr.
type Status struct {
	Connected bool
	Status    string
	Timestamp string
	QR        string
}

func (c *Client) Send(ctx context.Context, phone, text string) (api.SendResponse, error) {
	var out api.SendResponse
	err := c.do(ctx, http.MethodPost, "/send", api.SendRequest{Phone: domain.CleanPhone(phone), Message: text}, &out)
	if err == nil {
		c.log.Info("Message sent", "phone", phone, "id", out.MessageID)
	}
	return out, err
}

func (c *Client) SendMedia(ctx context.Context, phone, caption, mediaPath, mediaType string) (api.SendResponse, error) {
	if c.mediaRoot != "" && !filepath.IsAbs(mediaPath) {
		mediaPath = filepath.Join(c.mediaRoot, mediaPath)
	}
	var out api.SendResponse
	err := c.do(ctx, http.MethodPost, "/send-media", api.SendMediaRequest{
		Phone:     domain.CleanPhone(phone),
		Message:   caption,
		MediaPath: mediaPath,
		MediaType: mediaType,
	}, &out)
	if err == nil {
		c.log.Info("Media sent", "phone", phone, "path", mediaPath, "id", out.MessageID)
	}
	return out, err
}

// Status never fails on the QR lookup, only on /health.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var health api.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return Status{Status: "disconnected"}, err
	}
	status := Status{
		Connected: health.Status == "ready",
		Status:    health.Status,
		Timestamp: health.Timestamp,
	}
	if !status.Connected {
		if qr, err := c.QR(ctx); err == nil {
			status.QR = qr.QR
		} else {
			c.log.Debug("QR lookup failed", "error", err)
		}
	}
	return status, nil
}

func (c *Client) QR(ctx context.Context) (api.QRResponse, error) {
	var out api.QRResponse
	err := c.do(ctx, http.MethodGet, "/qr", nil, &out)
	return out, err
}

func (c *Client) CheckNumber(ctx context.Context, phone string) (api.CheckNumberResponse, error) {
	var out api.CheckNumberResponse
	err := c.do(ctx, http.MethodPost, "/check-number", api.CheckNumberRequest{Phone: domain.CleanPhone(phone)}, &out)
	return out, err
}

func (c *Client) Info(ctx context.Context) (api.InfoView, error) {
	var out api.InfoResponse
	err := c.do(ctx, http.MethodGet, "/info", nil, &out)
	return out.Info, err
}

func (c *Client) Logout(ctx context.Context) (string, error) {
	var out api.LogoutResponse
	err := c.do(ctx, http.MethodPost, "/logout", nil, &out)
	return out.Message, err
}

func (c *Client) Events(ctx context.Context, limit int) ([]api.EventView, error) {
	path := "/events"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var out api.EventsResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Events, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return err
		}
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := c.http.Do(req)
		if err != nil {
			if isDialError(err) {
				c.log.Debug("Gateway unreachable, retrying", "url", c.base, "error", err)
				return fmt.Errorf("could not reach gateway at %s: %w", c.base, err)
			}
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(toAPIError(resp.StatusCode, body))
		}
		if out != nil {
			if err := json.Unmarshal(body, out); err != nil {
				return backoff.Permanent(fmt.Errorf("decoding %s response: %w", path, err))
			}
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.retries), ctx))
}

// isDialError is true only when no request reached the gateway, so a retry
// can never send a message twice.
func isDialError(err error) bool {
	var opErr *net.OpError
	return stderrors.As(err, &opErr) && opErr.Op == "dial"
}

func toAPIError(status int, body []byte) *APIError {
	var failure api.ErrorResponse
	if err := json.Unmarshal(body, &failure); err == nil && failure.Error != "" {
		return &APIError{StatusCode: status, Message: failure.Error}
	}
	return &APIError{StatusCode: status, Message: string(bytes.TrimSpace(body))}
}
