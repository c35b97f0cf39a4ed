package http_handlers

import (
	"net/http"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/logger"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

const registeredMessage = "Registration successful. Please check your email to verify your account."

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:           req.Email,
		Username:        req.Username,
		Name:            req.Name,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Str("email", u.Email).
		Msg("user_registered")

	response.Created(w, dto.RegisterData{
		User:    dto.NewUserView(u),
		Message: registeredMessage,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.LoginData{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		TokenType:    res.Tokens.TokenType,
		ExpiresIn:    res.Tokens.ExpiresIn,
		User:         dto.NewUserView(res.User),
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	toks, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.RefreshData{
		AccessToken: toks.AccessToken,
		TokenType:   toks.TokenType,
		ExpiresIn:   toks.ExpiresIn,
	})
}

// VerifyEmailGET handles the link clicked from the email: GET ?token=...
func (h *AuthHandler) VerifyEmailGET(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	h.verifyEmail(w, r, token)
}

func (h *AuthHandler) VerifyEmailPOST(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyEmailRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}
	h.verifyEmail(w, r, req.Token)
}

func (h *AuthHandler) verifyEmail(w http.ResponseWriter, r *http.Request, token string) {
	if token == "" {
		response.WriteError(w, r, domain.ErrMissingField("token"))
		return
	}

	res, err := h.svc.VerifyEmail(r.Context(), token)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	status := "verified"
	if res.AlreadyVerified {
		status = "already_verified"
	}

	logger.WithCtx(r.Context()).Info().
		Str("email", res.Email).
		Str("status", status).
		Msg("email_verification")

	response.OK(w, dto.VerifyEmailData{Status: status, Email: res.Email})
}
