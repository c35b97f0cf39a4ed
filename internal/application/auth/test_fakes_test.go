package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// Hand-rolled fakes. Each fake exposes err fields for failure injection so
// tests can exercise compensation paths without a real store or broker.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User // by ID

	createErr error
	updateErr error
	deleteErr error

	deleted []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	if r.createErr != nil {
		return domain.User{}, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrDuplicateIdentity("email")
		}
		if existing.Username == u.Username {
			return domain.User{}, domain.ErrDuplicateIdentity("username")
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u domain.User) (domain.User, error) {
	if r.updateErr != nil {
		return domain.User{}, r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrDuplicateIdentity("email")
		}
		if existing.Username == u.Username {
			return domain.User{}, domain.ErrDuplicateIdentity("username")
		}
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) SetVerifiedAndActive(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.EmailVerified = true
	u.IsActive = true
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID string, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.PasswordHash = newHash
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return domain.ErrUserNotFound()
	}
	delete(r.users, userID)
	r.deleted = append(r.deleted, userID)
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Compare(hash string, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("hash mismatch")
}

// fakeSigner encodes claims into the token string so VerifyToken can recover
// them without real crypto.
type fakeSigner struct {
	signErr       error
	signVerifyErr error
	verifyErr     error
}

func (s *fakeSigner) SignAccessToken(u domain.User, _ time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "access|" + u.ID, nil
}

func (s *fakeSigner) SignRefreshToken(userID string, _ time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "refresh|" + userID, nil
}

func (s *fakeSigner) SignVerificationToken(userID, email string, _ time.Duration) (string, error) {
	if s.signVerifyErr != nil {
		return "", s.signVerifyErr
	}
	return "email_verification|" + userID + "|" + email, nil
}

func (s *fakeSigner) VerifyToken(token string, kind string) (TokenClaims, error) {
	if s.verifyErr != nil {
		return TokenClaims{}, s.verifyErr
	}
	parts := strings.Split(token, "|")
	if len(parts) < 2 || parts[0] != kind {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	claims := TokenClaims{Kind: parts[0], UserID: parts[1]}
	if len(parts) > 2 {
		claims.Email = parts[2]
	}
	return claims, nil
}

type fakePublisher struct {
	mu         sync.Mutex
	events     []VerifyEmailEvent
	publishErr error
}

func (p *fakePublisher) PublishVerifyEmail(_ context.Context, evt VerifyEmailEvent) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func newTestService(repo *fakeUserRepo, hasher *fakeHasher, signer *fakeSigner, pub *fakePublisher) *Service {
	return NewService(repo, hasher, signer, pub, Config{
		AccessTTL:          15 * time.Minute,
		RefreshTTL:         7 * 24 * time.Hour,
		VerifyEmailBaseURL: "https://app.example.com/verify-email?token=",
	})
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected error code %q, got %v", code, err)
	}
}

func fixtureInactiveUser(id string) domain.User {
	return domain.User{
		ID:           id,
		Email:        id + "@example.com",
		Username:     "user-" + id,
		PasswordHash: "hashed:pw",
		Role:         string(domain.RoleUser),
	}
}

// seedVerifiedUser puts an active, verified user directly into the repo.
func seedVerifiedUser(t *testing.T, repo *fakeUserRepo, id, email, username, password string) domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), domain.User{
		ID:            id,
		Email:         email,
		Username:      username,
		Name:          "Seeded User",
		PasswordHash:  "hashed:" + password,
		Role:          string(domain.RoleUser),
		IsActive:      true,
		EmailVerified: true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
