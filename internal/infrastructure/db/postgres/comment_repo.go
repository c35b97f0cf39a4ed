package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

const commentColumns = `id, project_id, user_id, content, created_at, updated_at`

func scanCommentRow(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ProjectID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CommentRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Comment, error) {
	const q = `
SELECT ` + commentColumns + `
FROM comments
WHERE project_id = $1
ORDER BY created_at ASC;
`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		c, err := scanCommentRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Comment{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1
LIMIT 1;
`
	c, err := scanCommentRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.Comment{}, domain.ErrNotFound("comment")
		}
		return domain.Comment{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *CommentRepo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if c.ID == "" {
		return domain.Comment{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO comments (id, project_id, user_id, content)
VALUES ($1,$2,$3,$4)
RETURNING ` + commentColumns + `;
`
	out, err := scanCommentRow(r.db.QueryRowContext(ctx, q, c.ID, c.ProjectID, c.UserID, c.Content))
	if err != nil {
		return domain.Comment{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *CommentRepo) Update(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if c.ID == "" {
		return domain.Comment{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE comments
SET content = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + commentColumns + `;
`
	out, err := scanCommentRow(r.db.QueryRowContext(ctx, q, c.ID, c.Content))
	if err != nil {
		if isNoRows(err) {
			return domain.Comment{}, domain.ErrNotFound("comment")
		}
		return domain.Comment{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM comments WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("comment")
	}
	return nil
}
