package repository

import (
	"context"

	"github.com/imovelsul/api/internal/domain/entity"
)

// PropertyFilter narrows the public listing. Zero values mean "no filter".
type PropertyFilter struct {
	Purpose      entity.Purpose
	Neighborhood string // case-insensitive substring
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
}

// PropertyRepository defines the interface for listing persistence.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id string) error
	// ListPublic returns active listings only, highlighted first, newest first.
	ListPublic(ctx context.Context, f PropertyFilter) ([]*entity.Property, error)
	// ListAll returns every listing regardless of status, newest first.
	ListAll(ctx context.Context) ([]*entity.Property, error)
}
