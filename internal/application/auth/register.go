package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type RegisterInput struct {
	Email           string
	Username        string
	Name            string
	Password        string
	PasswordConfirm string
}

// Register creates an inactive, unverified account and dispatches the
// verification email. No session tokens are issued here; the account is not
// usable until verified. If the email event cannot be published the freshly
// created account is deleted again so re-registration with the same identity
// stays possible.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.Email = normalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if in.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if in.Username == "" {
		return domain.User{}, domain.ErrMissingField("username")
	}
	if in.Password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	// Must fail before any store write.
	if in.Password != in.PasswordConfirm {
		return domain.User{}, domain.ErrPasswordMismatch()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:            uuid.NewString(),
		Email:         in.Email,
		Username:      in.Username,
		Name:          strings.TrimSpace(in.Name),
		PasswordHash:  hash,
		Role:          string(domain.RoleUser),
		IsActive:      false,
		EmailVerified: false,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	token, err := s.signer.SignVerificationToken(created.ID, created.Email, s.verifyEmailTTL)
	if err != nil {
		s.compensateRegistration(ctx, created.ID)
		return domain.User{}, domain.ErrTokenSignFailed(err)
	}

	evt := VerifyEmailEvent{
		UserID: created.ID,
		Email:  created.Email,
		URL:    s.verifyEmailBaseURL + token,
	}
	if err := s.pub.PublishVerifyEmail(ctx, evt); err != nil {
		s.compensateRegistration(ctx, created.ID)
		return domain.User{}, domain.ErrNotificationFailed(err)
	}

	s.audit("user_registered", map[string]string{
		"user_id": created.ID,
		"email":   created.Email,
	})
	return created, nil
}

// compensateRegistration removes an account whose verification email never
// went out. Best effort: a failed delete is audited, not surfaced.
func (s *Service) compensateRegistration(ctx context.Context, userID string) {
	if err := s.users.Delete(ctx, userID); err != nil {
		s.audit("register_compensation_failed", map[string]string{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
