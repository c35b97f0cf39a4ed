package middleware

import (
	"net/http"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// RequireLevel enforces a route-level access tier. Assumes Auth() has run
// for any level above public; object-level owner checks stay in the
// application services.
func RequireLevel(level domain.AccessLevel, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := CallerFromContext(r.Context())

			if !domain.Authorize(caller, level, "", true) {
				if !caller.Authenticated {
					writeErr(w, r, domain.ErrTokenMissing())
					return
				}
				writeErr(w, r, domain.ErrInsufficientLevel(level.String()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
