package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func errCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env.Error.Code
}

func login(t *testing.T, e *testEnv, identifier, password string) string {
	t.Helper()
	rec := do(t, e.handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d body=%s", identifier, rec.Code, rec.Body.String())
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(t, rec, &data)
	return data.AccessToken
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	if rec := do(t, e.handler, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	if rec := do(t, e.handler, http.MethodGet, "/readyz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("readyz status = %d", rec.Code)
	}
}

// The whole registration story end to end: sign up, fail to log in while
// unverified, follow the emailed link, then log in and refresh.
func TestRegistrationLifecycle(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	rec := do(t, e.handler, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":            "Nora@Example.com",
		"username":         "nora_k",
		"name":             "Nora",
		"password":         "Sup3rSecret!x",
		"password_confirm": "Sup3rSecret!x",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d body=%s", rec.Code, rec.Body.String())
	}

	var regData struct {
		User struct {
			ID            string `json:"id"`
			Email         string `json:"email"`
			IsActive      bool   `json:"is_active"`
			EmailVerified bool   `json:"email_verified"`
		} `json:"user"`
	}
	decodeData(t, rec, &regData)
	if regData.User.Email != "nora@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", regData.User.Email)
	}
	if regData.User.IsActive || regData.User.EmailVerified {
		t.Fatalf("new account must start inactive and unverified, got %+v", regData.User)
	}

	// Unverified accounts cannot log in; the response carries a marker so
	// the client can offer a resend.
	rec = do(t, e.handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": "nora@example.com",
		"password":   "Sup3rSecret!x",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("pre-verify login status = %d", rec.Code)
	}
	if code := errCode(t, rec); code != "email_unverified" {
		t.Fatalf("pre-verify login code = %q", code)
	}

	token := e.pub.lastToken(t)
	rec = do(t, e.handler, http.MethodGet, "/api/v1/auth/verify-email?token="+token, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d body=%s", rec.Code, rec.Body.String())
	}
	var verifyData struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	decodeData(t, rec, &verifyData)
	if verifyData.Status != "verified" {
		t.Fatalf("verify status = %q", verifyData.Status)
	}

	// Verifying again is idempotent.
	rec = do(t, e.handler, http.MethodPost, "/api/v1/auth/verify-email", "", map[string]string{"token": token})
	if rec.Code != http.StatusOK {
		t.Fatalf("re-verify status = %d", rec.Code)
	}
	decodeData(t, rec, &verifyData)
	if verifyData.Status != "already_verified" {
		t.Fatalf("re-verify status = %q", verifyData.Status)
	}

	rec = do(t, e.handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": "nora_k",
		"password":   "Sup3rSecret!x",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d body=%s", rec.Code, rec.Body.String())
	}
	var loginData struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	}
	decodeData(t, rec, &loginData)
	if loginData.TokenType != "Bearer" || loginData.AccessToken == "" || loginData.RefreshToken == "" {
		t.Fatalf("login data = %+v", loginData)
	}

	rec = do(t, e.handler, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": loginData.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d body=%s", rec.Code, rec.Body.String())
	}
	var refreshData struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(t, rec, &refreshData)
	if refreshData.AccessToken == "" {
		t.Fatal("refresh returned no access token")
	}
}

func TestRegisterValidationRejected(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	rec := do(t, e.handler, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":            "a@example.com",
		"username":         "abc",
		"password":         "Sup3rSecret!x",
		"password_confirm": "different",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := errCode(t, rec); code != "password_mismatch" {
		t.Fatalf("code = %q, want password_mismatch", code)
	}
}

func TestAccessTiers(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	e.seedUser(t, "plain", nil)
	e.seedUser(t, "staffer", func(u *domain.User) { u.IsStaff = true })
	e.seedUser(t, "root", func(u *domain.User) {
		u.Role = string(domain.RoleAdmin)
		u.IsSuperuser = true
	})

	plainTok := login(t, e, "plain", "pw")
	staffTok := login(t, e, "staffer", "pw")
	rootTok := login(t, e, "root", "pw")

	// User listing is staff territory.
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/users", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous users list status = %d", rec.Code)
	}
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/users", plainTok, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("plain users list status = %d", rec.Code)
	}
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/users", staffTok, nil); rec.Code != http.StatusOK {
		t.Fatalf("staff users list status = %d body=%s", rec.Code, rec.Body.String())
	}

	// Category mutations need the superuser.
	body := map[string]string{"name": "Branding"}
	if rec := do(t, e.handler, http.MethodPost, "/api/v1/categories", staffTok, body); rec.Code != http.StatusForbidden {
		t.Fatalf("staff category create status = %d", rec.Code)
	}
	rec := do(t, e.handler, http.MethodPost, "/api/v1/categories", rootTok, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin category create status = %d body=%s", rec.Code, rec.Body.String())
	}

	// Category reads stay public.
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/categories", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("public category list status = %d", rec.Code)
	}
}

func TestCommentOwnership(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	e.seedUser(t, "author", nil)
	e.seedUser(t, "other", nil)
	e.seedUser(t, "root", func(u *domain.User) {
		u.Role = string(domain.RoleAdmin)
		u.IsSuperuser = true
	})
	p := e.seedProject(t, "cat-1")

	authorTok := login(t, e, "author", "pw")
	otherTok := login(t, e, "other", "pw")
	rootTok := login(t, e, "root", "pw")

	// Anonymous reads are open, anonymous writes are not.
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/projects/"+p.ID+"/comments", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("anonymous comment list status = %d", rec.Code)
	}
	if rec := do(t, e.handler, http.MethodPost, "/api/v1/projects/"+p.ID+"/comments", "", map[string]string{"content": "hi"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous comment create status = %d", rec.Code)
	}

	rec := do(t, e.handler, http.MethodPost, "/api/v1/projects/"+p.ID+"/comments", authorTok, map[string]string{"content": "great work"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("comment create status = %d body=%s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &created)

	// Another plain user may not touch it.
	rec = do(t, e.handler, http.MethodPut, "/api/v1/comments/"+created.ID, otherTok, map[string]string{"content": "edited"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign comment update status = %d", rec.Code)
	}

	// The author may.
	rec = do(t, e.handler, http.MethodPut, "/api/v1/comments/"+created.ID, authorTok, map[string]string{"content": "edited"})
	if rec.Code != http.StatusOK {
		t.Fatalf("own comment update status = %d body=%s", rec.Code, rec.Body.String())
	}

	// And an admin may remove it.
	rec = do(t, e.handler, http.MethodDelete, "/api/v1/comments/"+created.ID, rootTok, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("admin comment delete status = %d", rec.Code)
	}
}

func TestPublicForms(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	e.seedUser(t, "staffer", func(u *domain.User) { u.IsStaff = true })
	staffTok := login(t, e, "staffer", "pw")

	rec := do(t, e.handler, http.MethodPost, "/api/v1/contacts", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact submit status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = do(t, e.handler, http.MethodPost, "/api/v1/jobs/apply", "", map[string]any{
		"full_name":           "Jam Designer",
		"email":               "jam@example.com",
		"phone":               "+20100000000",
		"position":            "graphic_designer",
		"work_type":           "remote",
		"years_of_experience": "1_3",
		"tools":               []string{"Photoshop"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("job apply status = %d body=%s", rec.Code, rec.Body.String())
	}

	// Submissions are only readable by staff.
	if rec := do(t, e.handler, http.MethodGet, "/api/v1/contacts", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous contacts list status = %d", rec.Code)
	}

	rec = do(t, e.handler, http.MethodGet, "/api/v1/contacts?unread=true", staffTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("staff contacts list status = %d", rec.Code)
	}
	var messages []struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &messages)
	if len(messages) != 1 {
		t.Fatalf("unread messages = %d, want 1", len(messages))
	}

	rec = do(t, e.handler, http.MethodGet, "/api/v1/jobs?position=graphic_designer", staffTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("staff jobs list status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestProjectListingPublic(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)

	p := e.seedProject(t, "cat-1")

	rec := do(t, e.handler, http.MethodGet, "/api/v1/projects", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("project list status = %d", rec.Code)
	}
	var projects []struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &projects)
	if len(projects) != 1 || projects[0].ID != p.ID {
		t.Fatalf("projects = %+v", projects)
	}

	if rec := do(t, e.handler, http.MethodGet, "/api/v1/projects/"+p.ID, "", nil); rec.Code != http.StatusOK {
		t.Fatalf("project get status = %d", rec.Code)
	}

	// Mutations need staff.
	if rec := do(t, e.handler, http.MethodDelete, "/api/v1/projects/"+p.ID, "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous project delete status = %d", rec.Code)
	}
}

func TestRouterRejectsNilDeps(t *testing.T) {
	t.Parallel()

	if _, err := New(Deps{}); err == nil {
		t.Fatal("New with empty deps must fail")
	}
}
