package domain

import "time"

// ContactMessage is a public contact-form submission. Only admins read them.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
