package comment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type Repo interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Comment, error)
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	Update(ctx context.Context, c domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// ProjectChecker confirms the commented project exists without pulling in
// the whole project service.
type ProjectChecker interface {
	ProjectExists(ctx context.Context, projectID string) error
}

type Service struct {
	comments Repo
	projects ProjectChecker
}

func NewService(comments Repo, projects ProjectChecker) *Service {
	return &Service{comments: comments, projects: projects}
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]domain.Comment, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, domain.ErrMissingField("project_id")
	}
	return s.comments.ListByProject(ctx, projectID)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Comment, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Comment{}, domain.ErrMissingField("id")
	}
	return s.comments.GetByID(ctx, id)
}

// Create posts a comment as the caller. The author is always the caller;
// clients cannot attribute comments to someone else.
func (s *Service) Create(ctx context.Context, caller domain.Caller, projectID, content string) (domain.Comment, error) {
	if !caller.Authenticated {
		return domain.Comment{}, domain.ErrTokenMissing()
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrMissingField("content")
	}
	if strings.TrimSpace(projectID) == "" {
		return domain.Comment{}, domain.ErrMissingField("project_id")
	}
	if err := s.projects.ProjectExists(ctx, projectID); err != nil {
		return domain.Comment{}, err
	}

	return s.comments.Create(ctx, domain.Comment{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    caller.ID,
		Content:   content,
	})
}

// Update edits a comment's content. Only the author, an admin or staff may
// edit; everyone else gets a forbidden error, not a not-found.
func (s *Service) Update(ctx context.Context, caller domain.Caller, id, content string) (domain.Comment, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if !domain.Authorize(caller, domain.LevelOwnerOrAdmin, c.UserID, true) {
		return domain.Comment{}, domain.ErrForbidden()
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrMissingField("content")
	}

	c.Content = content
	return s.comments.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, caller domain.Caller, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !domain.Authorize(caller, domain.LevelOwnerOrAdmin, c.UserID, true) {
		return domain.ErrForbidden()
	}
	return s.comments.Delete(ctx, c.ID)
}
