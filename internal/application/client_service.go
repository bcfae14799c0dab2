package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	repo "github.com/imovelsul/api/internal/domain/repository"
)

// ClientService manages the admin-only CRM profiles.
type ClientService struct {
	Repo   repo.ClientRepository
	Logger *logrus.Logger
}

func NewClientService(r repo.ClientRepository, logger *logrus.Logger) *ClientService {
	return &ClientService{Repo: r, Logger: logger}
}

// Create stores a new profile. Uniqueness on the phone/email pair is enforced
// by the database; duplicates surface as repository.ErrDuplicate.
func (s *ClientService) Create(ctx context.Context, actorID string, c *entity.ClientProfile) (*entity.ClientProfile, error) {
	c.CreatedBy = actorID
	if c.Status == "" {
		c.Status = entity.ClientActive
	}
	if c.Interactions == nil {
		c.Interactions = []entity.Interaction{}
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*entity.ClientProfile, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*entity.ClientProfile, error) {
	return s.Repo.List(ctx)
}

// Update overwrites the editable fields; interactions are append-only and
// only changed through AddInteraction.
func (s *ClientService) Update(ctx context.Context, id string, in *entity.ClientProfile) (*entity.ClientProfile, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Phone = in.Phone
	c.Email = in.Email
	c.Preferences = in.Preferences
	c.Notes = in.Notes
	if in.Status != "" {
		c.Status = in.Status
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddInteraction appends a touchpoint, preserving order.
func (s *ClientService) AddInteraction(ctx context.Context, id, actorID string, it entity.Interaction) (*entity.ClientProfile, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	it.CreatedBy = actorID
	if it.Date.IsZero() {
		it.Date = time.Now()
	}
	c.Interactions = append(c.Interactions, it)
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
