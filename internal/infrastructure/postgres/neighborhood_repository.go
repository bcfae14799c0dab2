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

type NeighborhoodRepository struct {
	pool *pgxpool.Pool
}

func NewNeighborhoodRepository(pool *pgxpool.Pool) *NeighborhoodRepository {
	return &NeighborhoodRepository{pool: pool}
}

func (r *NeighborhoodRepository) Create(ctx context.Context, n *entity.Neighborhood) error {
	streets, err := json.Marshal(n.Streets)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO neighborhoods (name, streets, city, state, is_active)
		VALUES ($1, $2::jsonb, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, n.Name, string(streets), n.City, n.State, n.IsActive)

	return mapErr(row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt))
}

func (r *NeighborhoodRepository) GetByID(ctx context.Context, id string) (*entity.Neighborhood, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, streets, city, state, is_active, created_at, updated_at
		FROM neighborhoods WHERE id = $1
	`, id)
	n, err := scanNeighborhood(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return n, nil
}

func (r *NeighborhoodRepository) Update(ctx context.Context, n *entity.Neighborhood) error {
	streets, err := json.Marshal(n.Streets)
	if err != nil {
		return err
	}
	n.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE neighborhoods
		SET name = $1, streets = $2::jsonb, city = $3, state = $4, is_active = $5, updated_at = $6
		WHERE id = $7
	`, n.Name, string(streets), n.City, n.State, n.IsActive, n.UpdatedAt, n.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NeighborhoodRepository) ListActive(ctx context.Context) ([]*entity.Neighborhood, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, streets, city, state, is_active, created_at, updated_at
		FROM neighborhoods
		WHERE is_active
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Neighborhood
	for rows.Next() {
		n, err := scanNeighborhood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func scanNeighborhood(row pgx.Row) (*entity.Neighborhood, error) {
	n := &entity.Neighborhood{}
	var streets []byte
	if err := row.Scan(&n.ID, &n.Name, &streets, &n.City, &n.State, &n.IsActive,
		&n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(streets, &n.Streets); err != nil {
		return nil, err
	}
	return n, nil
}

var _ repository.NeighborhoodRepository = (*NeighborhoodRepository)(nil)
