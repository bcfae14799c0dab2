package repository

import (
	"context"

	"github.com/imovelsul/api/internal/domain/entity"
)

// NeighborhoodRepository defines the interface for neighborhood persistence.
type NeighborhoodRepository interface {
	Create(ctx context.Context, n *entity.Neighborhood) error
	GetByID(ctx context.Context, id string) (*entity.Neighborhood, error)
	Update(ctx context.Context, n *entity.Neighborhood) error
	// ListActive returns neighborhoods that have not been soft-deleted.
	ListActive(ctx context.Context) ([]*entity.Neighborhood, error)
}
