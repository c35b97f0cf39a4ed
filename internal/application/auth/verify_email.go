package auth

import (
	"context"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type VerifyEmailResult struct {
	Email           string
	AlreadyVerified bool
}

// VerifyEmail redeems a verification token: flips the account to verified and
// active in one step. Redeeming for an already-verified account succeeds
// idempotently without re-triggering activation. A token whose bound email no
// longer matches the account's current email is rejected; stale tokens must
// not survive an email change.
func (s *Service) VerifyEmail(ctx context.Context, token string) (VerifyEmailResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return VerifyEmailResult{}, domain.ErrMissingField("token")
	}

	claims, err := s.signer.VerifyToken(token, TokenKindEmailVerification)
	if err != nil {
		return VerifyEmailResult{}, err
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return VerifyEmailResult{}, err
	}

	if u.EmailVerified {
		return VerifyEmailResult{Email: u.Email, AlreadyVerified: true}, nil
	}

	if !strings.EqualFold(claims.Email, u.Email) {
		return VerifyEmailResult{}, domain.ErrTokenInvalid()
	}

	if err := s.users.SetVerifiedAndActive(ctx, u.ID); err != nil {
		return VerifyEmailResult{}, err
	}

	s.audit("email_verified", map[string]string{"user_id": u.ID})
	return VerifyEmailResult{Email: u.Email}, nil
}
