package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	repo "github.com/imovelsul/api/internal/domain/repository"
)

// NeighborhoodService manages the neighborhood catalog. Deletion is a soft
// delete: the record stays, is_active flips off.
type NeighborhoodService struct {
	Repo   repo.NeighborhoodRepository
	Logger *logrus.Logger
}

func NewNeighborhoodService(r repo.NeighborhoodRepository, logger *logrus.Logger) *NeighborhoodService {
	return &NeighborhoodService{Repo: r, Logger: logger}
}

func (s *NeighborhoodService) Create(ctx context.Context, n *entity.Neighborhood) (*entity.Neighborhood, error) {
	n.IsActive = true
	if n.Streets == nil {
		n.Streets = []entity.Street{}
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NeighborhoodService) Get(ctx context.Context, id string) (*entity.Neighborhood, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *NeighborhoodService) ListActive(ctx context.Context) ([]*entity.Neighborhood, error) {
	return s.Repo.ListActive(ctx)
}

func (s *NeighborhoodService) Update(ctx context.Context, id string, in *entity.Neighborhood) (*entity.Neighborhood, error) {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Name = in.Name
	n.City = in.City
	n.State = in.State
	if in.Streets != nil {
		n.Streets = in.Streets
	}
	if err := s.Repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Deactivate soft-deletes a neighborhood.
func (s *NeighborhoodService) Deactivate(ctx context.Context, id string) error {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	n.IsActive = false
	return s.Repo.Update(ctx, n)
}
