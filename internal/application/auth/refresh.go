package auth

import (
	"context"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// Refresh mints a new access token from a refresh token. The account is
// reloaded from the store so a deactivation after token issuance takes effect
// immediately instead of at refresh-token expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (AuthTokens, error) {
	if refreshToken == "" {
		return AuthTokens{}, domain.ErrTokenInvalid()
	}

	claims, err := s.signer.VerifyToken(refreshToken, TokenKindRefresh)
	if err != nil {
		return AuthTokens{}, err
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		// If the user is gone, treat the token as invalid.
		return AuthTokens{}, domain.ErrTokenInvalid()
	}

	if !u.EmailVerified {
		return AuthTokens{}, domain.ErrEmailUnverified(u.Email)
	}
	if !u.IsActive {
		return AuthTokens{}, domain.ErrAccountInactive()
	}

	access, err := s.signer.SignAccessToken(u, s.accessTTL)
	if err != nil {
		return AuthTokens{}, domain.ErrTokenSignFailed(err)
	}

	return AuthTokens{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
