package domain

type Role string

const (
	// User can comment on projects and manage their own comments.
	RoleUser Role = "user"
	// Admin users manage portfolio content, contacts and job applications.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
