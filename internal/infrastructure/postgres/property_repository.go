package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

const propertyColumns = `id, title, purpose, price, neighborhood, address, bedrooms, bathrooms,
	parking_spaces, land_size, total_area, images, long_description, details, features,
	status, is_highlighted, broker_name, broker_whatsapp, broker_email,
	submitted_by, approved_by, approved_at, created_at, updated_at`

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, purpose, price, neighborhood, address, bedrooms, bathrooms,
			parking_spaces, land_size, total_area, images, long_description, details, features,
			status, is_highlighted, broker_name, broker_whatsapp, broker_email,
			submitted_by, approved_by, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Purpose, p.Price, p.Neighborhood, p.Address, p.Bedrooms, p.Bathrooms,
		p.ParkingSpaces, p.LandSize, p.TotalArea, string(images), p.LongDescription,
		p.Details, p.Features, p.Status, p.IsHighlighted,
		p.Broker.Name, p.Broker.WhatsApp, p.Broker.Email,
		p.SubmittedBy, p.ApprovedBy, p.ApprovedAt)

	return mapErr(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET title = $1, purpose = $2, price = $3, neighborhood = $4, address = $5,
		    bedrooms = $6, bathrooms = $7, parking_spaces = $8, land_size = $9, total_area = $10,
		    images = $11::jsonb, long_description = $12, details = $13, features = $14,
		    status = $15, is_highlighted = $16,
		    broker_name = $17, broker_whatsapp = $18, broker_email = $19,
		    approved_by = $20, approved_at = $21, updated_at = $22
		WHERE id = $23
	`, p.Title, p.Purpose, p.Price, p.Neighborhood, p.Address,
		p.Bedrooms, p.Bathrooms, p.ParkingSpaces, p.LandSize, p.TotalArea,
		string(images), p.LongDescription, p.Details, p.Features,
		p.Status, p.IsHighlighted,
		p.Broker.Name, p.Broker.WhatsApp, p.Broker.Email,
		p.ApprovedBy, p.ApprovedAt, p.UpdatedAt, p.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) ListPublic(ctx context.Context, f repository.PropertyFilter) ([]*entity.Property, error) {
	conds := []string{"status = 'active'"}
	args := []any{}

	if f.Purpose != "" {
		args = append(args, f.Purpose)
		conds = append(conds, fmt.Sprintf("purpose = $%d", len(args)))
	}
	if f.Neighborhood != "" {
		args = append(args, "%"+f.Neighborhood+"%")
		conds = append(conds, fmt.Sprintf("neighborhood ILIKE $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.MinBedrooms != nil {
		args = append(args, *f.MinBedrooms)
		conds = append(conds, fmt.Sprintf("bedrooms >= $%d", len(args)))
	}

	q := `SELECT ` + propertyColumns + ` FROM properties WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY is_highlighted DESC, created_at DESC`

	return r.list(ctx, q, args...)
}

func (r *PropertyRepository) ListAll(ctx context.Context) ([]*entity.Property, error) {
	return r.list(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
}

func (r *PropertyRepository) list(ctx context.Context, q string, args ...any) ([]*entity.Property, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	p := &entity.Property{}
	var images []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Purpose, &p.Price, &p.Neighborhood, &p.Address,
		&p.Bedrooms, &p.Bathrooms, &p.ParkingSpaces, &p.LandSize, &p.TotalArea,
		&images, &p.LongDescription, &p.Details, &p.Features,
		&p.Status, &p.IsHighlighted,
		&p.Broker.Name, &p.Broker.WhatsApp, &p.Broker.Email,
		&p.SubmittedBy, &p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
