package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (name, email, phone, subject, body, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Status)

	return mapErr(row.Scan(&m.ID, &m.CreatedAt))
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, subject, body, status,
		       responded_by_name, responded_by_email, responded_at, created_at
		FROM messages WHERE id = $1
	`, id)
	m, err := scanMessage(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return m, nil
}

func (r *MessageRepository) Update(ctx context.Context, m *entity.Message) error {
	var name, email *string
	if m.RespondedBy != nil {
		name, email = &m.RespondedBy.Name, &m.RespondedBy.Email
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET status = $1, responded_by_name = $2, responded_by_email = $3, responded_at = $4
		WHERE id = $5
	`, m.Status, name, email, m.RespondedAt, m.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) List(ctx context.Context) ([]*entity.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, subject, body, status,
		       responded_by_name, responded_by_email, responded_at, created_at
		FROM messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMessage(row pgx.Row) (*entity.Message, error) {
	m := &entity.Message{}
	var name, email *string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status,
		&name, &email, &m.RespondedAt, &m.CreatedAt); err != nil {
		return nil, err
	}
	if name != nil && email != nil {
		m.RespondedBy = &entity.Responder{Name: *name, Email: *email}
	}
	return m, nil
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
