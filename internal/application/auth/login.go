package auth

import (
	"context"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// Login authenticates by email or username and issues a session pair.
// IMPORTANT: unknown identity and wrong password produce the same error
// (avoid user enumeration). Unverified and inactive accounts get distinct,
// user-actionable errors instead.
func (s *Service) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)

	if identifier == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.resolveIdentifier(ctx, identifier)
	if err != nil {
		// Hide not-found behind invalid credentials.
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	// Only after the password check: leak nothing about account state to
	// callers who don't hold the credential.
	if !u.EmailVerified {
		return LoginResult{}, domain.ErrEmailUnverified(u.Email)
	}
	if !u.IsActive {
		return LoginResult{}, domain.ErrAccountInactive()
	}

	toks, err := s.issueSessionPair(u)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("user_logged_in", map[string]string{"user_id": u.ID})
	return LoginResult{User: u, Tokens: toks}, nil
}

func (s *Service) resolveIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	if strings.Contains(identifier, "@") {
		return s.users.GetByEmail(ctx, normalizeEmail(identifier))
	}
	return s.users.GetByUsername(ctx, identifier)
}
