package postgres

import "time"

type userRow struct {
	ID            string
	Email         string
	Username      string
	Name          string
	PasswordHash  string
	Role          string
	IsActive      bool
	EmailVerified bool
	IsStaff       bool
	IsSuperuser   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const userColumns = `id, email, username, name, password_hash, role, is_active, email_verified, is_staff, is_superuser, created_at, updated_at`
