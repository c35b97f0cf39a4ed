package middleware

import (
	"context"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type ctxKey string

const ctxCaller ctxKey = "caller"

func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	return context.WithValue(ctx, ctxCaller, c)
}

// CallerFromContext returns the authenticated caller. Without auth middleware
// the zero Caller (anonymous) is returned.
func CallerFromContext(ctx context.Context) domain.Caller {
	if c, ok := ctx.Value(ctxCaller).(domain.Caller); ok {
		return c
	}
	return domain.Caller{}
}
