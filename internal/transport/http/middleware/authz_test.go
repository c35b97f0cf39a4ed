package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

func doWithCaller(mw func(http.Handler) http.Handler, caller *domain.Caller) *httptest.ResponseRecorder {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	if caller != nil {
		req = req.WithContext(WithCaller(req.Context(), *caller))
	}
	rec := httptest.NewRecorder()
	mw(ok).ServeHTTP(rec, req)
	return rec
}

func TestRequireLevel_Anonymous(t *testing.T) {
	t.Parallel()

	mw := RequireLevel(domain.LevelAdminOrStaff, response.WriteError)
	rec := doWithCaller(mw, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := errorCode(t, rec); code != "token_missing" {
		t.Fatalf("code = %q, want token_missing", code)
	}
}

func TestRequireLevel_PlainUserRejected(t *testing.T) {
	t.Parallel()

	caller := domain.Caller{ID: "u1", Role: string(domain.RoleUser), Authenticated: true}
	mw := RequireLevel(domain.LevelAdminOrStaff, response.WriteError)
	rec := doWithCaller(mw, &caller)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if code := errorCode(t, rec); code != "insufficient_level" {
		t.Fatalf("code = %q, want insufficient_level", code)
	}
}

func TestRequireLevel_StaffAllowed(t *testing.T) {
	t.Parallel()

	caller := domain.Caller{ID: "s1", Role: string(domain.RoleUser), IsStaff: true, Authenticated: true}
	mw := RequireLevel(domain.LevelAdminOrStaff, response.WriteError)
	rec := doWithCaller(mw, &caller)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// Staff may pass the admin-or-staff tier but not the superuser-only tier.
func TestRequireLevel_AdminOnlyRejectsStaff(t *testing.T) {
	t.Parallel()

	caller := domain.Caller{ID: "s1", Role: string(domain.RoleAdmin), IsStaff: true, Authenticated: true}
	mw := RequireLevel(domain.LevelAdminOnly, response.WriteError)
	rec := doWithCaller(mw, &caller)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireLevel_SuperuserAllowedEverywhere(t *testing.T) {
	t.Parallel()

	caller := domain.Caller{ID: "root", Role: string(domain.RoleAdmin), IsSuperuser: true, Authenticated: true}

	for _, level := range []domain.AccessLevel{domain.LevelAdminOrStaff, domain.LevelAdminOnly} {
		mw := RequireLevel(level, response.WriteError)
		if rec := doWithCaller(mw, &caller); rec.Code != http.StatusOK {
			t.Fatalf("level %s: status = %d, want 200", level, rec.Code)
		}
	}
}
