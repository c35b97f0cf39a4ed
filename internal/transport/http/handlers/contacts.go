package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkassar/portfolio-backend/internal/application/contact"
	"github.com/mkassar/portfolio-backend/internal/logger"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

type ContactHandler struct {
	svc *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit is the public contact form endpoint.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	m, err := h.svc.Submit(r.Context(), contact.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("message_id", m.ID).
		Msg("contact_message_submitted")

	response.Created(w, dto.ContactSubmittedData{
		ID:      m.ID,
		Message: contact.SubmittedMessage,
	})
}

// List handles GET /contacts?unread=true for staff.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyUnread := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			onlyUnread = v
		}
	}

	messages, err := h.svc.List(r.Context(), onlyUnread)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewContactMessageViews(messages))
}

// Get returns one message and marks it read on first open.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewContactMessageView(m))
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}
