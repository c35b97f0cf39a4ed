package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// SubmittedMessage is returned to the public form after a successful
// submission.
const SubmittedMessage = "Your message has been sent successfully. We will contact you soon."

type Repo interface {
	List(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error)
	GetByID(ctx context.Context, id string) (domain.ContactMessage, error)
	Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	messages Repo
}

func NewService(messages Repo) *Service {
	return &Service{messages: messages}
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores a public contact-form message. No authentication involved;
// the transport layer rate limits this endpoint instead.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (domain.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("name")
	}
	if in.Email == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("email")
	}
	if in.Message == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("message")
	}

	return s.messages.Create(ctx, domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	})
}

func (s *Service) List(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx, onlyUnread)
}

// Get returns a single message and marks it read on first open.
func (s *Service) Get(ctx context.Context, id string) (domain.ContactMessage, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("id")
	}
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	if !m.IsRead {
		if err := s.messages.MarkRead(ctx, id); err != nil {
			return domain.ContactMessage{}, err
		}
		m.IsRead = true
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrMissingField("id")
	}
	return s.messages.Delete(ctx, id)
}
