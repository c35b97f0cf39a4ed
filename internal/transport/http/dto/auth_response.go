package dto

import (
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// UserView is the standard user payload in responses. The password hash
// never leaves the service.
type UserView struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	IsStaff       bool      `json:"is_staff"`
	IsSuperuser   bool      `json:"is_superuser"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		IsActive:      u.IsActive,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

type RegisterData struct {
	User    UserView `json:"user"`
	Message string   `json:"message"`
}

type LoginData struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"` // "Bearer"
	ExpiresIn    int64    `json:"expires_in"` // seconds
	User         UserView `json:"user"`
}

type RefreshData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type VerifyEmailData struct {
	Status string `json:"status"` // "verified" or "already_verified"
	Email  string `json:"email"`
}
