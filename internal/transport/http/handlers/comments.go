package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkassar/portfolio-backend/internal/application/comment"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/middleware"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

type CommentHandler struct {
	svc *comment.Service
}

func NewCommentHandler(svc *comment.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ListByProject handles GET /projects/{id}/comments.
func (h *CommentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListByProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewCommentViews(comments))
}

// Create handles POST /projects/{id}/comments. The author is always the
// authenticated caller.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CommentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	caller := middleware.CallerFromContext(r.Context())
	c, err := h.svc.Create(r.Context(), caller, chi.URLParam(r, "id"), req.Content)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.NewCommentView(c))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CommentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	caller := middleware.CallerFromContext(r.Context())
	c, err := h.svc.Update(r.Context(), caller, chi.URLParam(r, "commentID"), req.Content)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewCommentView(c))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), caller, chi.URLParam(r, "commentID")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}
