package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"wa-gateway/domain"
	"wa-gateway/errors"
	"wa-gateway/repositories"

	"github.com/julienschmidt/httprouter"
	"github.com/samber/lo"
)

const maxBodyBytes = 1 << 20

func (s *Server) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	snap := s.tracker.Snapshot()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    snap.Status(),
		QR:        snap.PendingQR,
		Timestamp: s.clock.Now().Format(timestampLayout),
	})
}

// QR reads one snapshot so readiness and the pending code are consistent.
// A rendering failure falls back to the raw code.
func (s *Server) QR(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	snap := s.tracker.Snapshot()
	switch {
	case snap.Ready:
		writeJSON(w, http.StatusOK, QRResponse{Status: statusReady, Message: msgAlreadyConnected})
	case snap.PendingQR != nil:
		code := *snap.PendingQR
		qr, err := s.renderer.DataURI(code)
		if err != nil {
			s.log.Warn("QR rendering failed, returning raw code", "error", err)
			qr = code
		}
		writeJSON(w, http.StatusOK, QRResponse{Status: statusQRAvailable, QR: qr})
	default:
		writeJSON(w, http.StatusOK, QRResponse{Status: statusInitializing, Message: msgGeneratingQR})
	}
}

func (s *Server) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.requireReady(w) {
		return
	}
	var req SendRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err, msgSendFieldsRequired))
		return
	}

	ctx, cancel := s.adapterContext(r)
	defer cancel()
	chatID := domain.NormalizeChatID(req.Phone)
	sent, err := s.client.SendText(ctx, chatID, req.Message)
	s.metrics.ObserveAdapterCall("send", err)
	if err != nil {
		s.log.Error("Sending message failed", "chat", chatID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("Message sent", "chat", chatID, "id", sent.ID)
	writeJSON(w, http.StatusOK, SendResponse{Success: true, MessageID: sent.ID, Timestamp: sent.Timestamp})
}

func (s *Server) SendMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.requireReady(w) {
		return
	}
	var req SendMediaRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err, msgMediaFieldsRequired))
		return
	}

	kind, _ := domain.ParseMediaKind(req.MediaType)
	media, err := s.client.LoadMedia(req.MediaPath, kind)
	if err != nil {
		s.log.Error("Loading media failed", "path", req.MediaPath, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := s.adapterContext(r)
	defer cancel()
	chatID := domain.NormalizeChatID(req.Phone)
	sent, err := s.client.SendMedia(ctx, chatID, media, req.Message)
	s.metrics.ObserveAdapterCall("send_media", err)
	if err != nil {
		s.log.Error("Sending media failed", "chat", chatID, "path", req.MediaPath, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("Media sent", "chat", chatID, "id", sent.ID, "kind", media.Kind)
	writeJSON(w, http.StatusOK, SendResponse{Success: true, MessageID: sent.ID, Timestamp: sent.Timestamp})
}

func (s *Server) CheckNumber(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.requireReady(w) {
		return
	}
	var req CheckNumberRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.adapterContext(r)
	defer cancel()
	found, err := s.client.LookupNumber(ctx, req.Phone)
	s.metrics.ObserveAdapterCall("check_number", err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := CheckNumberResponse{Success: true, Exists: found != nil}
	if found != nil {
		resp.NumberID = lo.ToPtr(found.Serialized)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) Info(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.requireReady(w) {
		return
	}
	ctx, cancel := s.adapterContext(r)
	defer cancel()
	info, err := s.client.SelfInfo(ctx)
	s.metrics.ObserveAdapterCall("info", err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, InfoResponse{
		Success: true,
		Info:    InfoView{WID: info.WID, Platform: info.Platform, Phone: info.Phone},
	})
}

// Logout is allowed in any state. Readiness is only cleared once the client confirmed.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := s.adapterContext(r)
	defer cancel()
	err := s.client.Logout(ctx)
	s.metrics.ObserveAdapterCall("logout", err)
	if err != nil {
		s.log.Error("Logout failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.tracker.MarkLoggedOut()
	s.log.Info("Session closed")
	writeJSON(w, http.StatusOK, LogoutResponse{Success: true, Message: msgSessionClosed})
}

func (s *Server) Events(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = n
	}
	records, err := s.journal.GetRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, EventsResponse{
		Success: true,
		Events: lo.Map(records, func(rec repositories.LifecycleRecord, _ int) EventView {
			return EventView{ID: rec.ID.String(), Kind: rec.Kind, Detail: rec.Detail, At: rec.At}
		}),
	})
}

func (s *Server) requireReady(w http.ResponseWriter) bool {
	if s.tracker.IsReady() {
		return true
	}
	writeError(w, http.StatusServiceUnavailable, errors.ErrNotReady.Error())
	return false
}

// decode reads an optional JSON body and validates it. An empty body decodes
// to the zero value, so missing fields are reported by validation.
func (s *Server) decode(r *http.Request, into any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(into); err != nil && !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w: %w", errors.ErrValidation, errors.ErrMalformedBody, err)
	}
	if err := s.validate.Struct(into); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

// validationMessage keeps the fixed "fields are required" message for missing
// fields and the decoder's message for malformed bodies.
func validationMessage(err error, required string) string {
	if stderrors.Is(err, errors.ErrMalformedBody) {
		return err.Error()
	}
	return required
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}
