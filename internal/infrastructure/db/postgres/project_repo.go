package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/application/project"
	"github.com/mkassar/portfolio-backend/internal/domain"
)

type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

const projectColumns = `id, title, title_ar, description, description_ar, category_id, image_url, client, date, featured, created_at, updated_at`

type projectRow struct {
	ID            string
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	CategoryID    string
	ImageURL      string
	Client        string
	Date          time.Time
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func scanProjectRow(row rowScanner) (projectRow, error) {
	var pr projectRow
	err := row.Scan(
		&pr.ID,
		&pr.Title,
		&pr.TitleAr,
		&pr.Description,
		&pr.DescriptionAr,
		&pr.CategoryID,
		&pr.ImageURL,
		&pr.Client,
		&pr.Date,
		&pr.Featured,
		&pr.CreatedAt,
		&pr.UpdatedAt,
	)
	return pr, err
}

func toDomainProject(pr projectRow) domain.Project {
	return domain.Project{
		ID:            pr.ID,
		Title:         pr.Title,
		TitleAr:       pr.TitleAr,
		Description:   pr.Description,
		DescriptionAr: pr.DescriptionAr,
		CategoryID:    pr.CategoryID,
		ImageURL:      pr.ImageURL,
		Client:        pr.Client,
		Date:          pr.Date,
		Featured:      pr.Featured,
		CreatedAt:     pr.CreatedAt,
		UpdatedAt:     pr.UpdatedAt,
	}
}

// List returns projects without their galleries; GetByID loads the gallery.
func (r *ProjectRepo) List(ctx context.Context, f project.ListFilter) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects`
	var conds []string
	var args []any

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR title_ar ILIKE $%d OR description ILIKE $%d OR description_ar ILIKE $%d)",
			n, n, n, n))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC;"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		pr, err := scanProjectRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainProject(pr))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (domain.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Project{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1
LIMIT 1;
`
	pr, err := scanProjectRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.Project{}, domain.ErrNotFound("project")
		}
		return domain.Project{}, domain.ErrDBUnavailable(err)
	}

	p := toDomainProject(pr)
	images, err := r.listImages(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	p.Images = images
	return p, nil
}

// ProjectExists satisfies comment.ProjectChecker without loading the gallery.
func (r *ProjectRepo) ProjectExists(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return domain.ErrMissingField("project_id")
	}

	const q = `SELECT 1 FROM projects WHERE id = $1;`
	var one int
	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&one); err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound("project")
		}
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *ProjectRepo) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.ID == "" {
		return domain.Project{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO projects (id, title, title_ar, description, description_ar, category_id, image_url, client, date, featured)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING ` + projectColumns + `;
`
	pr, err := scanProjectRow(r.db.QueryRowContext(ctx, q,
		p.ID, p.Title, p.TitleAr, p.Description, p.DescriptionAr,
		p.CategoryID, p.ImageURL, p.Client, p.Date, p.Featured,
	))
	if err != nil {
		return domain.Project{}, domain.ErrDBUnavailable(err)
	}
	return toDomainProject(pr), nil
}

func (r *ProjectRepo) Update(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.ID == "" {
		return domain.Project{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE projects
SET title = $2,
    title_ar = $3,
    description = $4,
    description_ar = $5,
    category_id = $6,
    image_url = $7,
    client = $8,
    date = $9,
    featured = $10,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	pr, err := scanProjectRow(r.db.QueryRowContext(ctx, q,
		p.ID, p.Title, p.TitleAr, p.Description, p.DescriptionAr,
		p.CategoryID, p.ImageURL, p.Client, p.Date, p.Featured,
	))
	if err != nil {
		if isNoRows(err) {
			return domain.Project{}, domain.ErrNotFound("project")
		}
		return domain.Project{}, domain.ErrDBUnavailable(err)
	}
	return toDomainProject(pr), nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	// Gallery rows go via ON DELETE CASCADE.
	const q = `DELETE FROM projects WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("project")
	}
	return nil
}

// ---- gallery ----

func (r *ProjectRepo) listImages(ctx context.Context, projectID string) ([]domain.ProjectImage, error) {
	const q = `
SELECT id, project_id, image_url, position
FROM project_images
WHERE project_id = $1
ORDER BY position ASC;
`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.ProjectImage
	for rows.Next() {
		var img domain.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.Position); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ProjectRepo) AddImage(ctx context.Context, img domain.ProjectImage) (domain.ProjectImage, error) {
	if img.ID == "" {
		return domain.ProjectImage{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO project_images (id, project_id, image_url, position)
VALUES ($1,$2,$3,$4)
RETURNING id, project_id, image_url, position;
`
	var out domain.ProjectImage
	err := r.db.QueryRowContext(ctx, q, img.ID, img.ProjectID, img.ImageURL, img.Position).
		Scan(&out.ID, &out.ProjectID, &out.ImageURL, &out.Position)
	if err != nil {
		return domain.ProjectImage{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ProjectRepo) DeleteImage(ctx context.Context, projectID, imageID string) error {
	const q = `DELETE FROM project_images WHERE id = $1 AND project_id = $2;`
	res, err := r.db.ExecContext(ctx, q, imageID, projectID)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("project_image")
	}
	return nil
}

// ReorderImages rewrites positions in one transaction so a failed reorder
// never leaves a half-shuffled gallery.
func (r *ProjectRepo) ReorderImages(ctx context.Context, projectID string, imageIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `UPDATE project_images SET position = $3 WHERE id = $1 AND project_id = $2;`
	for pos, id := range imageIDs {
		res, err := tx.ExecContext(ctx, q, id, projectID, pos)
		if err != nil {
			return domain.ErrDBUnavailable(err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return domain.ErrNotFound("project_image")
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}
