package response

import (
	"net/http"

	appctx "github.com/mkassar/portfolio-backend/internal/pkg/context"
)

func RequestIDFromContext(r *http.Request) string {
	return appctx.GetRequestID(r.Context())
}
