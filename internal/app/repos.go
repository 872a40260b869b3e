package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type Repos struct {
	User    repos.UserRepo
	Profile repos.ProfileRepo
	Roadmap repos.RoadmapRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(db, log),
		Profile: repos.NewProfileRepo(db, log),
		Roadmap: repos.NewRoadmapRepo(db, log),
	}
}
