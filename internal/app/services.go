package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Profile services.ProfileService
	Roadmap services.RoadmapService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repoSet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	requester := roadmap.NewOpenAIRequester(log, clients.OpenAI, cfg.Completion)
	roadmapService, err := services.NewRoadmapService(log, services.RoadmapServiceDeps{
		DB:          db,
		RoadmapRepo: repoSet.Roadmap,
		Cache:       clients.RoadmapCache,
	}, roadmap.GeneratorDeps{
		Requester:      requester,
		Interpreter:    roadmap.NewInterpreter(log, roadmap.UUIDs, roadmap.SystemClock),
		PersistTimeout: cfg.PersistTimeout,
	})
	if err != nil {
		return Services{}, err
	}

	return Services{
		Auth:    services.NewAuthService(db, log, repoSet.User, repoSet.Profile, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Profile: services.NewProfileService(log, repoSet.Profile),
		Roadmap: roadmapService,
	}, nil
}
