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

type UploadModule struct {
	Handler *handlers.UploadHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewUploadModule(h *handlers.UploadHandler, users repository.UserRepository, jwt *helpers.JWTManager) *UploadModule {
	return &UploadModule{Handler: h, Users: users, JWT: jwt}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Users, m.JWT), middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.POST("/upload/images", m.Handler.Upload)
		admin.DELETE("/upload/images/:id", m.Handler.Delete)
	}
}
