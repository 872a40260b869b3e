package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/aspirepath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aspirepath-backend/internal/http/middleware"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowOrigins   []string
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler  *httpH.HealthHandler
	AuthHandler    *httpH.AuthHandler
	UserHandler    *httpH.UserHandler
	RoadmapHandler *httpH.RoadmapHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")

	// Auth (public)
	if cfg.AuthHandler != nil {
		api.POST("/auth/signup", cfg.AuthHandler.Signup)
		api.POST("/auth/signin", cfg.AuthHandler.Signin)
		api.POST("/auth/signout", cfg.AuthHandler.Signout)
	}

	// Roadmap generation works signed in or not
	if cfg.RoadmapHandler != nil {
		optional := api.Group("/")
		if cfg.AuthMiddleware != nil {
			optional.Use(cfg.AuthMiddleware.OptionalAuth())
		}
		optional.POST("/generate-roadmap", cfg.RoadmapHandler.Generate)
	}

	protected := api.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}
	{
		if cfg.UserHandler != nil {
			protected.GET("/user/profile", cfg.UserHandler.GetProfile)
			protected.PUT("/user/profile", cfg.UserHandler.UpdateProfile)
			protected.GET("/user/roadmaps", cfg.UserHandler.ListRoadmaps)
			protected.GET("/user/roadmaps/latest", cfg.UserHandler.LatestRoadmap)
		}
		if cfg.RoadmapHandler != nil {
			protected.GET("/roadmaps/:id", cfg.RoadmapHandler.Get)
			protected.PATCH("/roadmaps/:id/steps/:stepId", cfg.RoadmapHandler.UpdateStep)
		}
	}

	return r
}
