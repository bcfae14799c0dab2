package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	repo "github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/internal/notify"
	"github.com/imovelsul/api/pkg/helpers"
)

// UserService covers registration, login and the admin account operations.
type UserService struct {
	Repo     repo.UserRepository
	JWT      *helpers.JWTManager
	Notifier *notify.Notifier
	Logger   *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, n *notify.Notifier, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Notifier: n, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register creates a client account. The role is never taken from the caller.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     entity.RoleClient,
		Phone:    in.Phone,
		IsActive: true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Login verifies credentials, stamps last_login and issues a bearer token.
// Client logins are reported to staff; the notification never blocks login.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	now := time.Now()
	u.LastLogin = &now
	if err := s.Repo.Update(ctx, u); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to stamp last_login")
	}

	token, exp, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}

	if u.Role == entity.RoleClient {
		s.Notifier.ClientLogin(ctx, u)
	}

	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// ToggleStatus flips is_active on an account.
func (s *UserService) ToggleStatus(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = !u.IsActive
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Promote grants the admin role to an account.
func (s *UserService) Promote(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Role = entity.RoleAdmin
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
