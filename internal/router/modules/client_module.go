package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/imovelsul/api/internal/domain/repository"
	handlers "github.com/imovelsul/api/internal/interface/http"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/helpers"
)

// ClientModule exposes the CRM profiles; admin only.
type ClientModule struct {
	Handler *handlers.ClientHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewClientModule(h *handlers.ClientHandler, users repository.UserRepository, jwt *helpers.JWTManager) *ClientModule {
	return &ClientModule{Handler: h, Users: users, JWT: jwt}
}

func (m *ClientModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/clients", m.Handler.List)
		admin.POST("/clients", m.Handler.Create)
		admin.GET("/clients/:id", m.Handler.Get)
		admin.PUT("/clients/:id", m.Handler.Update)
		admin.POST("/clients/:id/interactions", m.Handler.AddInteraction)
		admin.DELETE("/clients/:id", m.Handler.Delete)
	}
}
