package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/domain"
)

type TokenVerifier interface {
	VerifyToken(token string, kind string) (auth.TokenClaims, error)
}

// UserReader is the minimal store access the middleware needs to cross-check
// token claims against current account state.
type UserReader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token> and injects the caller
// into the request context. The account is re-read from the store so a
// deactivation or role change takes effect on the next request, not at
// token expiry.
func Auth(verifier TokenVerifier, users UserReader, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			claims, err := verifier.VerifyToken(raw, auth.TokenKindAccess)
			if err != nil {
				writeErr(w, r, err)
				return
			}
			if strings.TrimSpace(claims.UserID) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if domain.Is(err, "user_not_found") {
					writeErr(w, r, domain.ErrTokenInvalid())
					return
				}
				writeErr(w, r, err)
				return
			}
			if !u.IsActive {
				writeErr(w, r, domain.ErrAccountInactive())
				return
			}

			// Capabilities come from the store record, not the token, so a
			// role change does not linger until expiry.
			caller := domain.Caller{
				ID:            u.ID,
				Role:          u.Role,
				IsStaff:       u.IsStaff,
				IsSuperuser:   u.IsSuperuser,
				EmailVerified: u.EmailVerified,
				Authenticated: true,
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// OptionalAuth resolves the caller when a token is present but lets
// anonymous requests through. Used on public read routes whose write
// counterparts are gated per object.
func OptionalAuth(verifier TokenVerifier, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := bearerToken(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := verifier.VerifyToken(raw, auth.TokenKindAccess)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil || !u.IsActive {
				next.ServeHTTP(w, r)
				return
			}

			caller := domain.Caller{
				ID:            u.ID,
				Role:          u.Role,
				IsStaff:       u.IsStaff,
				IsSuperuser:   u.IsSuperuser,
				EmailVerified: u.EmailVerified,
				Authenticated: true,
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", domain.ErrTokenMissing()
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", domain.ErrTokenInvalid()
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", domain.ErrTokenInvalid()
	}
	return raw, nil
}
