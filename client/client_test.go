package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"wa-gateway/api"
	"wa-gateway/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, slog.Default())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestSend_CleansPhone(t *testing.T) {
	req := require.New(t)
	var got api.SendRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/send", r.URL.Path)
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, api.SendResponse{Success: true, MessageID: "X", Timestamp: 1000})
	})

	resp, err := c.Send(context.Background(), "+593 98-765 (4321)", "hi")

	req.NoError(err)
	req.Equal("593987654321", got.Phone)
	req.Equal("X", resp.MessageID)
	req.Equal(int64(1000), resp.Timestamp)
}

func TestSendMedia_ResolvesRelativePaths(t *testing.T) {
	req := require.New(t)
	var got api.SendMediaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, api.SendResponse{Success: true, MessageID: "M"})
	}))
	defer srv.Close()
	c := New(srv.URL, slog.Default(), WithMediaRoot("/srv/media"))

	_, err := c.SendMedia(context.Background(), "+1 555", "caption", "uploads/a.png", "image")

	req.NoError(err)
	req.Equal("/srv/media/uploads/a.png", got.MediaPath)
	req.Equal("image", got.MediaType)
	req.Equal("caption", got.Message)
}

func TestNotReadyMapsToSentinel(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, api.ErrorResponse{Error: "not connected"})
	})

	_, err := c.Send(context.Background(), "1", "hi")

	req.ErrorIs(err, errors.ErrNotReady)
	var apiErr *APIError
	req.ErrorAs(err, &apiErr)
	req.Equal("not connected", apiErr.Message)
}

func TestServerErrorIsNotRetried(t *testing.T) {
	req := require.New(t)
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "invalid wid"})
	})

	_, err := c.CheckNumber(context.Background(), "000")

	req.ErrorIs(err, errors.ErrUnexpectedStatus)
	req.Contains(err.Error(), "invalid wid")
	req.Equal(1, calls)
}

func TestUnreachableGatewayIsRetried(t *testing.T) {
	req := require.New(t)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	addr := l.Addr().String()
	req.NoError(l.Close())

	attempts := 0
	transport := &http.Transport{DialContext: func(ctx context.Context, network, address string) (net.Conn, error) {
		attempts++
		return (&net.Dialer{}).DialContext(ctx, network, address)
	}}
	c := New("http://"+addr, slog.Default(), WithRetries(2), WithHTTPClient(&http.Client{Transport: transport}))
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	_, err = c.Info(context.Background())

	req.Error(err)
	req.Contains(err.Error(), "could not reach gateway")
	req.Equal(3, attempts)
}

func TestStatus_FetchesQRWhenNotReady(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			writeJSON(w, http.StatusOK, api.HealthResponse{Status: "initializing", Timestamp: "2024-01-01T00:00:00.000Z"})
		case "/qr":
			writeJSON(w, http.StatusOK, api.QRResponse{Status: "qr_available", QR: "data:image/png;base64,AAA"})
		}
	})

	status, err := c.Status(context.Background())

	req.NoError(err)
	req.False(status.Connected)
	req.Equal("data:image/png;base64,AAA", status.QR)
}

func TestEventsPassesLimit(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal("7", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, api.EventsResponse{Success: true, Events: []api.EventView{{Kind: "ready"}}})
	})

	events, err := c.Events(context.Background(), 7)

	req.NoError(err)
	req.Len(events, 1)
}

func TestDecodedBodiesAreReturned(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info":
			writeJSON(w, http.StatusOK, api.InfoResponse{
				Success: true,
				Info:    api.InfoView{WID: "1555@c.us", Platform: "android", Phone: "1555"},
			})
		case "/logout":
			writeJSON(w, http.StatusOK, api.LogoutResponse{Success: true, Message: "session closed"})
		case "/check-number":
			writeJSON(w, http.StatusOK, api.CheckNumberResponse{Success: true, Exists: true, NumberID: lo.ToPtr("1555@c.us")})
		}
	})

	// When each endpoint answers with a body
	info, err := c.Info(context.Background())
	req.NoError(err)
	msg, err := c.Logout(context.Background())
	req.NoError(err)
	found, err := c.CheckNumber(context.Background(), "+1 555")
	req.NoError(err)

	// Then the decoded values reach the caller
	req.Equal("1555@c.us", info.WID)
	req.Equal("android", info.Platform)
	req.Equal("session closed", msg)
	req.True(found.Exists)
	req.Equal("1555@c.us", *found.NumberID)
}
