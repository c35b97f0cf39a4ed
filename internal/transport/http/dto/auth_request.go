package dto

import (
	"strings"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// -------- Core auth --------

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=30,username_format"`
	Name            string `json:"name" validate:"max=120"`
	Password        string `json:"password" validate:"required,min=8,password_strength"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	if err := check(r); err != nil {
		return err
	}
	if r.Password != r.PasswordConfirm {
		return domain.ErrPasswordMismatch()
	}
	return nil
}

// LoginRequest accepts email or username as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Identifier = strings.TrimSpace(r.Identifier)
	return check(r)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r *RefreshRequest) Validate() error {
	return check(r)
}

// -------- Email verification --------

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *VerifyEmailRequest) Validate() error {
	r.Token = strings.TrimSpace(r.Token)
	return check(r)
}

// -------- Admin user management --------

type AdminCreateUserRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Username      string `json:"username" validate:"required,min=3,max=30,username_format"`
	Name          string `json:"name" validate:"max=120"`
	Password      string `json:"password" validate:"required,min=8,password_strength"`
	Role          string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive      bool   `json:"is_active"`
	EmailVerified bool   `json:"email_verified"`
	IsStaff       bool   `json:"is_staff"`
}

func (r *AdminCreateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	return check(r)
}

// UpdateUserRequest is a partial update; absent fields stay untouched.
type UpdateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	Username        *string `json:"username" validate:"omitempty,min=3,max=30,username_format"`
	Name            *string `json:"name" validate:"omitempty,max=120"`
	Role            *string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive        *bool   `json:"is_active"`
	EmailVerified   *bool   `json:"email_verified"`
	IsStaff         *bool   `json:"is_staff"`
	Password        string  `json:"password" validate:"omitempty,min=8,password_strength"`
	PasswordConfirm string  `json:"password_confirm"`
}

func (r *UpdateUserRequest) Validate() error {
	return check(r)
}
