package auth

import (
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	accessTTL  time.Duration
	refreshTTL time.Duration

	// URL used to build links sent via the email collaborator,
	// e.g. https://frontend/verify-email?token=
	verifyEmailBaseURL string
	verifyEmailTTL     time.Duration

	audit func(action string, fields map[string]string)
}

type Config struct {
	AccessTTL           time.Duration
	RefreshTTL          time.Duration
	VerifyEmailBaseURL  string
	VerifyEmailTokenTTL time.Duration
}

func NewService(
	users UserRepo,
	hasher PasswordHasher,
	signer TokenSigner,
	pub EventPublisher,
	cfg Config,
) *Service {
	verifyTTL := cfg.VerifyEmailTokenTTL
	if verifyTTL <= 0 {
		verifyTTL = 24 * time.Hour
	}
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
		pub:    pub,
		audit:  func(string, map[string]string) {},

		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,

		verifyEmailBaseURL: cfg.VerifyEmailBaseURL,
		verifyEmailTTL:     verifyTTL,
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// AuthTokens is the common token output for handlers/DTO mapping.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // "Bearer"
	ExpiresIn    int64  // access token lifetime, seconds
}

type LoginResult struct {
	User   domain.User
	Tokens AuthTokens
}

// issueSessionPair issues the access+refresh pair for a verified, active user.
func (s *Service) issueSessionPair(u domain.User) (AuthTokens, error) {
	access, err := s.signer.SignAccessToken(u, s.accessTTL)
	if err != nil {
		return AuthTokens{}, domain.ErrTokenSignFailed(err)
	}

	refresh, err := s.signer.SignRefreshToken(u.ID, s.refreshTTL)
	if err != nil {
		return AuthTokens{}, domain.ErrTokenSignFailed(err)
	}

	return AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
