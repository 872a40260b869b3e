package app

import (
	"fmt"

	"github.com/yungbote/aspirepath-backend/internal/data/cache"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/platform/openai"
)

type Clients struct {
	OpenAI       openai.Client
	RoadmapCache cache.RoadmapCache
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	oa, err := openai.NewClient(log, cfg.OpenAI)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai: %w", err)
	}
	rc, err := cache.NewRoadmapCache(log, cfg.Cache)
	if err != nil {
		return Clients{}, fmt.Errorf("init roadmap cache: %w", err)
	}
	return Clients{OpenAI: oa, RoadmapCache: rc}, nil
}

func (c Clients) Close() {
	if c.RoadmapCache != nil {
		_ = c.RoadmapCache.Close()
	}
}
