package app

import (
	apphttp "github.com/yungbote/aspirepath-backend/internal/http"
	httpH "github.com/yungbote/aspirepath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aspirepath-backend/internal/http/middleware"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	User    *httpH.UserHandler
	Roadmap *httpH.RoadmapHandler
}

func wireHandlers(log *logger.Logger, serviceSet Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		Auth:    httpH.NewAuthHandler(serviceSet.Auth),
		User:    httpH.NewUserHandler(serviceSet.Profile, serviceSet.Roadmap),
		Roadmap: httpH.NewRoadmapHandler(log, serviceSet.Roadmap),
	}
}

func wireMiddleware(log *logger.Logger, serviceSet Services) Middleware {
	return Middleware{Auth: httpMW.NewAuthMiddleware(log, serviceSet.Auth)}
}

func wireRouterConfig(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) apphttp.RouterConfig {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return apphttp.RouterConfig{
		Log:            log,
		ServiceName:    serviceName,
		AllowOrigins:   cfg.AllowOrigins,
		AuthMiddleware: middleware.Auth,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		UserHandler:    handlers.User,
		RoadmapHandler: handlers.Roadmap,
	}
}
