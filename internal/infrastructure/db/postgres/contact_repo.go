package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

const contactColumns = `id, name, email, subject, message, is_read, created_at`

func scanContactRow(row rowScanner) (domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	return m, err
}

func (r *ContactRepo) List(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	q := `SELECT ` + contactColumns + ` FROM contact_messages`
	if onlyUnread {
		q += ` WHERE is_read = FALSE`
	}
	q += ` ORDER BY created_at DESC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.ContactMessage
	for rows.Next() {
		m, err := scanContactRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id string) (domain.ContactMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + contactColumns + `
FROM contact_messages
WHERE id = $1
LIMIT 1;
`
	m, err := scanContactRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.ContactMessage{}, domain.ErrNotFound("contact_message")
		}
		return domain.ContactMessage{}, domain.ErrDBUnavailable(err)
	}
	return m, nil
}

func (r *ContactRepo) Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	if m.ID == "" {
		return domain.ContactMessage{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO contact_messages (id, name, email, subject, message)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + contactColumns + `;
`
	out, err := scanContactRow(r.db.QueryRowContext(ctx, q, m.ID, m.Name, m.Email, m.Subject, m.Message))
	if err != nil {
		return domain.ContactMessage{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ContactRepo) MarkRead(ctx context.Context, id string) error {
	const q = `UPDATE contact_messages SET is_read = TRUE WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("contact_message")
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM contact_messages WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound("contact_message")
	}
	return nil
}
