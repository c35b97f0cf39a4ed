package memory

import (
	"context"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/logger"
)

// NoopPublisher logs verification events instead of sending them to the
// broker. Used in dev when RabbitMQ is unreachable; the logged URL lets a
// developer complete verification by hand.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishVerifyEmail(ctx context.Context, evt auth.VerifyEmailEvent) error {
	logger.WithCtx(ctx).Info().
		Str("user_id", evt.UserID).
		Str("email", evt.Email).
		Str("url", evt.URL).
		Msg("noop publisher: verify email")
	return nil
}
