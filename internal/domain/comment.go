package domain

import "time"

// Comment belongs to a project; UserID is the author and also the owner for
// authorization purposes.
type Comment struct {
	ID        string
	ProjectID string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
