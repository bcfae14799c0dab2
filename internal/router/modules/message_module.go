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

type MessageModule struct {
	Handler *handlers.MessageHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewMessageModule(h *handlers.MessageHandler, users repository.UserRepository, jwt *helpers.JWTManager) *MessageModule {
	return &MessageModule{Handler: h, Users: users, JWT: jwt}
}

func (m *MessageModule) Register(rg *gin.RouterGroup) {
	// Public contact form. Tight per-IP limit; internal addresses bypass it
	// so staff tooling on the office network is never throttled.
	contactLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/messages", contactLimiter, m.Handler.Create)

	// Admin inbox
	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/messages", m.Handler.List)
		admin.PATCH("/messages/:id/status", m.Handler.ToggleStatus)
		admin.DELETE("/messages/:id", m.Handler.Delete)
	}
}
