package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/data/repos/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/data/repos/user"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type ProfileRepo = user.ProfileRepo
type RoadmapRepo = roadmap.RoadmapRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return user.NewProfileRepo(db, baseLog)
}
func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	return roadmap.NewRoadmapRepo(db, baseLog)
}
