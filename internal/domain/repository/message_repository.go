package repository

import (
	"context"

	"github.com/imovelsul/api/internal/domain/entity"
)

// MessageRepository defines the interface for contact inbox persistence.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	Update(ctx context.Context, m *entity.Message) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Message, error)
}
