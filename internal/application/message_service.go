package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	repo "github.com/imovelsul/api/internal/domain/repository"
)

// MessageService handles the public contact inbox.
type MessageService struct {
	Repo   repo.MessageRepository
	Logger *logrus.Logger
}

func NewMessageService(r repo.MessageRepository, logger *logrus.Logger) *MessageService {
	return &MessageService{Repo: r, Logger: logger}
}

type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Create stores a new unanswered message. Creation is public, no auth.
func (s *MessageService) Create(ctx context.Context, in MessageInput) (*entity.Message, error) {
	m := &entity.Message{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  entity.MessageUnanswered,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]*entity.Message, error) {
	return s.Repo.List(ctx)
}

// ToggleStatus flips answered/unanswered. Answering records the responder;
// reopening clears it, so the toggle round-trips.
func (s *MessageService) ToggleStatus(ctx context.Context, id string, actor *entity.User) (*entity.Message, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status == entity.MessageUnanswered {
		now := time.Now()
		m.Status = entity.MessageAnswered
		m.RespondedBy = &entity.Responder{Name: actor.Name, Email: actor.Email}
		m.RespondedAt = &now
	} else {
		m.Status = entity.MessageUnanswered
		m.RespondedBy = nil
		m.RespondedAt = nil
	}
	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
