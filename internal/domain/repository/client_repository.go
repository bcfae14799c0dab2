package repository

import (
	"context"

	"github.com/imovelsul/api/internal/domain/entity"
)

// ClientRepository defines the interface for CRM profile persistence.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.ClientProfile) error
	GetByID(ctx context.Context, id string) (*entity.ClientProfile, error)
	Update(ctx context.Context, c *entity.ClientProfile) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.ClientProfile, error)
}
