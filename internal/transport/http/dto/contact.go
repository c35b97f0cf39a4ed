package dto

import (
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *ContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	return check(r)
}

type ContactSubmittedData struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ContactMessageView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactMessageView(m domain.ContactMessage) ContactMessageView {
	return ContactMessageView{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func NewContactMessageViews(messages []domain.ContactMessage) []ContactMessageView {
	out := make([]ContactMessageView, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewContactMessageView(m))
	}
	return out
}
