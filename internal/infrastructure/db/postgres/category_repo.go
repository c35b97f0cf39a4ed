package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, name_ar, created_at, updated_at`

func scanCategoryRow(row rowScanner) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.NameAr, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY name ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		c, err := scanCategoryRow(rows)
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

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (domain.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Category{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1
LIMIT 1;
`
	c, err := scanCategoryRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.Category{}, domain.ErrNotFound("category")
		}
		return domain.Category{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if c.ID == "" {
		return domain.Category{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO categories (id, name, name_ar)
VALUES ($1,$2,$3)
RETURNING ` + categoryColumns + `;
`
	out, err := scanCategoryRow(r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.NameAr))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Category{}, domain.ErrDuplicateIdentity("name")
		}
		return domain.Category{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	if c.ID == "" {
		return domain.Category{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE categories
SET name = $2,
    name_ar = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + categoryColumns + `;
`
	out, err := scanCategoryRow(r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.NameAr))
	if err != nil {
		if isNoRows(err) {
			return domain.Category{}, domain.ErrNotFound("category")
		}
		if isUniqueViolation(err) {
			return domain.Category{}, domain.ErrDuplicateIdentity("name")
		}
		return domain.Category{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// Delete refuses while projects still reference the category; the FK
// restriction surfaces as a conflict.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM categories WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.New(domain.KindConflict, "category_in_use", "category still has projects")
		}
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("category")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
