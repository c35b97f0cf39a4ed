package dto

import (
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (r *CommentRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	return check(r)
}

type CommentView struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCommentView(c domain.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCommentViews(comments []domain.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentView(c))
	}
	return out
}
