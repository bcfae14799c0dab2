package router

import (
	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/container"
	"github.com/imovelsul/api/internal/domain/repository"
	pginfra "github.com/imovelsul/api/internal/infrastructure/postgres"
	handlers "github.com/imovelsul/api/internal/interface/http"
	"github.com/imovelsul/api/internal/notify"
	"github.com/imovelsul/api/internal/router/modules"
)

type Deps struct {
	Users         repository.UserRepository
	AuthHandler   *handlers.AuthHandler
	PropHandler   *handlers.PropertyHandler
	MsgHandler    *handlers.MessageHandler
	ClientHandler *handlers.ClientHandler
	HoodHandler   *handlers.NeighborhoodHandler
	UploadHandler *handlers.UploadHandler
}

func buildDeps() Deps {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	notifier := notify.NewNotifier(container.GetRabbitPub(), logger)

	userRepo := pginfra.NewUserRepository(pool)
	propRepo := pginfra.NewPropertyRepository(pool)
	msgRepo := pginfra.NewMessageRepository(pool)
	clientRepo := pginfra.NewClientRepository(pool)
	hoodRepo := pginfra.NewNeighborhoodRepository(pool)

	userSvc := application.NewUserService(userRepo, container.GetJWT(), notifier, logger)
	propSvc := application.NewPropertyService(propRepo, notifier, logger, container.GetES(), cfg.ESPropertiesIndex)
	msgSvc := application.NewMessageService(msgRepo, logger)
	clientSvc := application.NewClientService(clientRepo, logger)
	hoodSvc := application.NewNeighborhoodService(hoodRepo, logger)
	uploadSvc := application.NewUploadService(container.GetGCS(), cfg.GCSBucket, logger)

	return Deps{
		Users:         userRepo,
		AuthHandler:   handlers.NewAuthHandler(userSvc, logger),
		PropHandler:   handlers.NewPropertyHandler(propSvc, logger),
		MsgHandler:    handlers.NewMessageHandler(msgSvc, logger),
		ClientHandler: handlers.NewClientHandler(clientSvc, logger),
		HoodHandler:   handlers.NewNeighborhoodHandler(hoodSvc, logger),
		UploadHandler: handlers.NewUploadHandler(uploadSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewSystemModule())
	r.Add(modules.NewAuthModule(deps.AuthHandler, deps.Users, jwt))
	r.Add(modules.NewPropertyModule(deps.PropHandler, deps.Users, jwt))
	r.Add(modules.NewMessageModule(deps.MsgHandler, deps.Users, jwt))
	r.Add(modules.NewClientModule(deps.ClientHandler, deps.Users, jwt))
	r.Add(modules.NewNeighborhoodModule(deps.HoodHandler, deps.Users, jwt))
	r.Add(modules.NewUploadModule(deps.UploadHandler, deps.Users, jwt))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
