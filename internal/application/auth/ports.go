package auth

import (
	"context"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

/*
UserRepo
--------
Persistence port for credentials.
Only describes WHAT the auth flows need, not HOW records are stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Update persists all mutable fields and re-checks email/username
	// uniqueness excluding the record itself.
	Update(ctx context.Context, u domain.User) (domain.User, error)

	// SetVerifiedAndActive flips email_verified and is_active together;
	// verification never produces a verified-but-inactive record.
	SetVerifiedAndActive(ctx context.Context, userID string) error

	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// Delete exists for the registration compensation path and admin removal.
	Delete(ctx context.Context, userID string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies the three token kinds. One signed-claim-bag mechanism;
the kinds differ only in claim content and TTL.
*/
const (
	TokenKindAccess            = "access"
	TokenKindRefresh           = "refresh"
	TokenKindEmailVerification = "email_verification"
)

type TokenClaims struct {
	UserID        string
	Kind          string
	Role          string
	IsStaff       bool
	IsSuperuser   bool
	EmailVerified bool
	Email         string // verification tokens only
	Exp           time.Time
}

type TokenSigner interface {
	SignAccessToken(u domain.User, ttl time.Duration) (string, error)
	SignRefreshToken(userID string, ttl time.Duration) (string, error)
	SignVerificationToken(userID, email string, ttl time.Duration) (string, error)
	VerifyToken(token string, kind string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes verification-email events to the message broker. The email
collaborator consumes them and renders/sends mail; this service only needs
the publish outcome.
*/
type EventPublisher interface {
	PublishVerifyEmail(ctx context.Context, evt VerifyEmailEvent) error
}

type VerifyEmailEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	URL    string `json:"url"`
}
