package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/application/jobs"
	"github.com/mkassar/portfolio-backend/internal/domain"
)

type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

const jobColumns = `id, full_name, email, phone, city_country, position, work_type, years_of_experience, about_you, tools, portfolio_link, worked_in_agency_before, submitted_at`

// tools is stored as a JSONB array.
func scanJobRow(row rowScanner) (domain.JobApplication, error) {
	var a domain.JobApplication
	var tools []byte
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.Phone,
		&a.CityCountry,
		&a.Position,
		&a.WorkType,
		&a.YearsOfExperience,
		&a.AboutYou,
		&tools,
		&a.PortfolioLink,
		&a.WorkedInAgencyBefore,
		&a.SubmittedAt,
	)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if len(tools) > 0 {
		if err := json.Unmarshal(tools, &a.Tools); err != nil {
			return domain.JobApplication{}, err
		}
	}
	return a, nil
}

func (r *JobRepo) List(ctx context.Context, f jobs.ListFilter) ([]domain.JobApplication, error) {
	q := `SELECT ` + jobColumns + ` FROM job_applications`
	var conds []string
	var args []any

	if f.Position != "" {
		args = append(args, f.Position)
		conds = append(conds, fmt.Sprintf("position = $%d", len(args)))
	}
	if f.WorkType != "" {
		args = append(args, f.WorkType)
		conds = append(conds, fmt.Sprintf("work_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY submitted_at DESC;"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.JobApplication
	for rows.Next() {
		a, err := scanJobRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id string) (domain.JobApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.JobApplication{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + jobColumns + `
FROM job_applications
WHERE id = $1
LIMIT 1;
`
	a, err := scanJobRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.JobApplication{}, domain.ErrNotFound("job_application")
		}
		return domain.JobApplication{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}

func (r *JobRepo) Create(ctx context.Context, a domain.JobApplication) (domain.JobApplication, error) {
	if a.ID == "" {
		return domain.JobApplication{}, domain.ErrMissingField("id")
	}

	tools, err := json.Marshal(a.Tools)
	if err != nil {
		return domain.JobApplication{}, domain.ErrInternal(err)
	}

	const q = `
INSERT INTO job_applications (id, full_name, email, phone, city_country, position, work_type, years_of_experience, about_you, tools, portfolio_link, worked_in_agency_before)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING ` + jobColumns + `;
`
	out, err := scanJobRow(r.db.QueryRowContext(ctx, q,
		a.ID, a.FullName, a.Email, a.Phone, a.CityCountry,
		a.Position, a.WorkType, a.YearsOfExperience, a.AboutYou,
		tools, a.PortfolioLink, a.WorkedInAgencyBefore,
	))
	if err != nil {
		return domain.JobApplication{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *JobRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM job_applications WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("job_application")
	}
	return nil
}
