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

type NeighborhoodModule struct {
	Handler *handlers.NeighborhoodHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewNeighborhoodModule(h *handlers.NeighborhoodHandler, users repository.UserRepository, jwt *helpers.JWTManager) *NeighborhoodModule {
	return &NeighborhoodModule{Handler: h, Users: users, JWT: jwt}
}

func (m *NeighborhoodModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/neighborhoods", browseLimiter, m.Handler.List)
	rg.GET("/neighborhoods/:id", browseLimiter, m.Handler.Get)

	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/neighborhoods", m.Handler.Create)
		admin.PUT("/neighborhoods/:id", m.Handler.Update)
		admin.DELETE("/neighborhoods/:id", m.Handler.Delete)
	}
}
