package domain

import "time"

type User struct {
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

func (u User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
