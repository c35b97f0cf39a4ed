package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/domain"
)

// JWTSigner issues every token kind the service uses: access, refresh and
// email-verification. All three share one signing mechanism and differ only
// in claim content and TTL.
type JWTSigner struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTSigner(secret string, issuer string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// WithClock overrides the time source, for expiry tests.
func (s *JWTSigner) WithClock(now func() time.Time) *JWTSigner {
	if now != nil {
		s.now = now
	}
	return s
}

type tokenClaims struct {
	UserID        string `json:"uid"`
	Kind          string `json:"kind"`
	Role          string `json:"role,omitempty"`
	IsStaff       bool   `json:"is_staff,omitempty"`
	IsSuperuser   bool   `json:"is_superuser,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Email         string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) SignAccessToken(u domain.User, ttl time.Duration) (string, error) {
	return s.sign(tokenClaims{
		UserID:        u.ID,
		Kind:          auth.TokenKindAccess,
		Role:          u.Role,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
		EmailVerified: u.EmailVerified,
	}, u.ID, ttl)
}

func (s *JWTSigner) SignRefreshToken(userID string, ttl time.Duration) (string, error) {
	return s.sign(tokenClaims{
		UserID: userID,
		Kind:   auth.TokenKindRefresh,
	}, userID, ttl)
}

// SignVerificationToken binds the email at issuance time; redemption
// cross-checks it against the credential's current email.
func (s *JWTSigner) SignVerificationToken(userID, email string, ttl time.Duration) (string, error) {
	return s.sign(tokenClaims{
		UserID: userID,
		Kind:   auth.TokenKindEmailVerification,
		Email:  email,
	}, userID, ttl)
}

func (s *JWTSigner) sign(claims tokenClaims, subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and the expected token kind. It is a
// purely cryptographic check; callers cross-check claims against current
// store state where freshness matters.
func (s *JWTSigner) VerifyToken(token string, kind string) (auth.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.TokenClaims{}, domain.ErrTokenExpired()
		}
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}
	if claims.Kind != kind {
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return auth.TokenClaims{
		UserID:        claims.UserID,
		Kind:          claims.Kind,
		Role:          claims.Role,
		IsStaff:       claims.IsStaff,
		IsSuperuser:   claims.IsSuperuser,
		EmailVerified: claims.EmailVerified,
		Email:         claims.Email,
		Exp:           exp,
	}, nil
}
