package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baanpim/hotel-assistant/internal/middleware"
	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/internal/service"
	"github.com/baanpim/hotel-assistant/pkg/logger"
)

// ChatHandler handles session and conversation endpoints.
type ChatHandler struct {
	sessions *service.SessionService
	logger   *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(sessions *service.SessionService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		logger:   log,
	}
}

// CreateSession handles POST /api/v1/sessions
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create(r.Context())
	if err != nil {
		h.logger.Error("failed to create session")
		writeError(w, http.StatusBadGateway, "failed to start conversation")
		return
	}

	writeJSON(w, http.StatusCreated, &model.SessionResponse{
		SessionID: sess.ID,
		Messages:  sess.Orchestrator.Timeline(),
		CreatedAt: sess.CreatedAt,
	})
}

// Timeline handles GET /api/v1/sessions/{id}/messages
func (h *ChatHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.timelineResponse(sess))
}

// SendTurn handles POST /api/v1/sessions/{id}/messages
func (h *ChatHandler) SendTurn(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req model.SendTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTurnText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" && req.Attachment == nil {
		writeError(w, http.StatusBadRequest, "text or attachment is required")
		return
	}
	if req.Attachment != nil {
		if err := middleware.ValidateAttachment(req.Attachment.Data, req.Attachment.MIMEType); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if !sess.Orchestrator.SubmitUserTurn(r.Context(), req.Text, req.Attachment) {
		writeError(w, http.StatusConflict, "a turn is already in flight")
		return
	}

	writeJSON(w, http.StatusOK, h.timelineResponse(sess))
}

// SubmitAction handles POST /api/v1/sessions/{id}/actions
func (h *ChatHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req model.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Kind == "" {
		writeError(w, http.StatusBadRequest, "action_type is required")
		return
	}
	// Export payloads are resolved server-side, so UI requests only need a
	// valid report_type; everything else is validated in full.
	if req.Kind != model.ActionExportData {
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if !sess.Orchestrator.SubmitUIAction(r.Context(), req) {
		writeError(w, http.StatusConflict, "a turn is already in flight")
		return
	}

	writeJSON(w, http.StatusOK, h.timelineResponse(sess))
}

// Preview handles GET /api/v1/sessions/{id}/previews/{previewID}
func (h *ChatHandler) Preview(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	att, found := sess.Previews.Get(chi.URLParam(r, "previewID"))
	if !found {
		writeError(w, http.StatusNotFound, "preview not found")
		return
	}

	data, err := base64.StdEncoding.DecodeString(att.Data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "corrupt preview data")
		return
	}

	w.Header().Set("Content-Type", att.MIMEType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *ChatHandler) session(w http.ResponseWriter, r *http.Request) (*service.ChatSession, bool) {
	id := chi.URLParam(r, "id")
	if err := middleware.ValidateSessionID(id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func (h *ChatHandler) timelineResponse(sess *service.ChatSession) *model.TimelineResponse {
	return &model.TimelineResponse{
		Messages: sess.Orchestrator.Timeline(),
		Busy:     sess.Orchestrator.Busy(),
		Error:    sess.Orchestrator.LastError(),
	}
}
