package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

func TestLogin_SuccessByEmailAndUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	seedVerifiedUser(t, repo, "u1", "alice@example.com", "alice", "pw1")

	for _, identifier := range []string{"alice@example.com", "alice"} {
		res, err := svc.Login(context.Background(), identifier, "pw1")
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if res.User.ID != "u1" {
			t.Fatalf("wrong user %q", res.User.ID)
		}
		if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
			t.Fatalf("expected both tokens, got %+v", res.Tokens)
		}
		if res.Tokens.TokenType != "Bearer" {
			t.Fatalf("token type %q", res.Tokens.TokenType)
		}
	}
}

func TestLogin_EmailIdentifierIsNormalized(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	seedVerifiedUser(t, repo, "u1", "alice@example.com", "alice", "pw1")

	if _, err := svc.Login(context.Background(), "  ALICE@Example.com ", "pw1"); err != nil {
		t.Fatalf("login with uppercased email: %v", err)
	}
}

func TestLogin_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	seedVerifiedUser(t, repo, "u1", "alice@example.com", "alice", "pw1")

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "pw1")
	_, errWrongPw := svc.Login(context.Background(), "alice@example.com", "wrong")

	requireDomainCode(t, errUnknown, "invalid_credentials")
	requireDomainCode(t, errWrongPw, "invalid_credentials")
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("enumeration leak: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLogin_UnverifiedRejectedWithMarker(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	if _, err := repo.Create(context.Background(), domain.User{
		ID: "u2", Email: "bob@example.com", Username: "bob",
		PasswordHash: "hashed:pw2", Role: "user",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Login(context.Background(), "bob@example.com", "pw2")
	requireDomainCode(t, err, "email_unverified")

	var de *domain.Error
	if !errors.As(err, &de) || de.Meta["email"] != "bob@example.com" {
		t.Fatalf("expected email in meta, got %v", err)
	}
}

func TestLogin_UnverifiedNotRevealedWithoutPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	if _, err := repo.Create(context.Background(), domain.User{
		ID: "u2", Email: "bob@example.com", Username: "bob",
		PasswordHash: "hashed:pw2", Role: "user",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Wrong password on an unverified account must not disclose its state.
	_, err := svc.Login(context.Background(), "bob@example.com", "wrong")
	requireDomainCode(t, err, "invalid_credentials")
}

func TestLogin_InactiveVerifiedAccountRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{}, &fakePublisher{})
	if _, err := repo.Create(context.Background(), domain.User{
		ID: "u3", Email: "carol@example.com", Username: "carol",
		PasswordHash: "hashed:pw3", Role: "user",
		EmailVerified: true, IsActive: false,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Login(context.Background(), "carol", "pw3")
	requireDomainCode(t, err, "account_inactive")
}

func TestLogin_EmptyInputs(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserRepo(), &fakeHasher{}, &fakeSigner{}, &fakePublisher{})

	_, err := svc.Login(context.Background(), "", "pw")
	requireDomainCode(t, err, "invalid_credentials")
	_, err = svc.Login(context.Background(), "alice", "")
	requireDomainCode(t, err, "invalid_credentials")
}
