package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.ClientProfile) error {
	prefs, err := json.Marshal(c.Preferences)
	if err != nil {
		return err
	}
	interactions, err := json.Marshal(c.Interactions)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO client_profiles (name, phone, email, preferences, notes, status, interactions, created_by)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7::jsonb, $8)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Phone, c.Email, string(prefs), c.Notes, c.Status, string(interactions), c.CreatedBy)

	return mapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entity.ClientProfile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, phone, email, preferences, notes, status, interactions, created_by, created_at, updated_at
		FROM client_profiles WHERE id = $1
	`, id)
	c, err := scanClient(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *entity.ClientProfile) error {
	prefs, err := json.Marshal(c.Preferences)
	if err != nil {
		return err
	}
	interactions, err := json.Marshal(c.Interactions)
	if err != nil {
		return err
	}
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE client_profiles
		SET name = $1, phone = $2, email = $3, preferences = $4::jsonb, notes = $5,
		    status = $6, interactions = $7::jsonb, updated_at = $8
		WHERE id = $9
	`, c.Name, c.Phone, c.Email, string(prefs), c.Notes, c.Status, string(interactions), c.UpdatedAt, c.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM client_profiles WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*entity.ClientProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, email, preferences, notes, status, interactions, created_by, created_at, updated_at
		FROM client_profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ClientProfile
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanClient(row pgx.Row) (*entity.ClientProfile, error) {
	c := &entity.ClientProfile{}
	var prefs, interactions []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &prefs, &c.Notes, &c.Status,
		&interactions, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(prefs, &c.Preferences); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(interactions, &c.Interactions); err != nil {
		return nil, err
	}
	return c, nil
}

var _ repository.ClientRepository = (*ClientRepository)(nil)
