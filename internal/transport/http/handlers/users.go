package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/logger"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

// UserHandler exposes admin user management on top of the auth service.
type UserHandler struct {
	svc *auth.Service
}

func NewUserHandler(svc *auth.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserViews(users))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserView(u))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.AdminCreateUser(r.Context(), auth.AdminCreateUserInput{
		Email:         req.Email,
		Username:      req.Username,
		Name:          req.Name,
		Password:      req.Password,
		Role:          req.Role,
		IsActive:      req.IsActive,
		EmailVerified: req.EmailVerified,
		IsStaff:       req.IsStaff,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("admin_user_created")

	response.Created(w, dto.NewUserView(u))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "id"), auth.UpdateUserInput{
		Email:           req.Email,
		Username:        req.Username,
		Name:            req.Name,
		Role:            req.Role,
		IsActive:        req.IsActive,
		EmailVerified:   req.EmailVerified,
		IsStaff:         req.IsStaff,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserView(u))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", id).
		Msg("user_deleted")

	response.NoContent(w)
}
