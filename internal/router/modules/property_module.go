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

// PropertyModule wires the public catalog, client submissions and the
// admin workflow endpoints.
// Public: GET /api/properties, GET /api/properties/search, GET /api/properties/:id
// Client: POST /api/properties/submit
// Admin:  POST/PUT/PATCH/DELETE under /api/properties
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, users repository.UserRepository, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, Users: users, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/properties", browseLimiter, m.Handler.ListPublic)
	rg.GET("/properties/search", browseLimiter, m.Handler.Search)
	rg.GET("/properties/:id", browseLimiter, m.Handler.Get)

	// Submissions from any logged-in account
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/properties/submit", m.Handler.Submit)
	}

	// Admin workflow
	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/properties/admin/all", m.Handler.ListAll)
		admin.POST("/properties", m.Handler.Create)
		admin.PUT("/properties/:id", m.Handler.Update)
		admin.PATCH("/properties/:id/approve", m.Handler.Approve)
		admin.PATCH("/properties/:id/reject", m.Handler.Reject)
		admin.PATCH("/properties/:id/highlight", m.Handler.ToggleHighlight)
		admin.DELETE("/properties/:id", m.Handler.Delete)
	}
}
