package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imovelsul/api/internal/container"
	"github.com/imovelsul/api/internal/domain/repository"
	handlers "github.com/imovelsul/api/internal/interface/http"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Any authenticated user
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}

	// Admin user management
	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/auth/users", m.Handler.ListUsers)
		admin.PATCH("/auth/users/:id/status", m.Handler.ToggleUserStatus)
		admin.PATCH("/auth/users/:id/promote", m.Handler.PromoteUser)
	}
}
