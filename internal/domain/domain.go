package domain

import (
	"github.com/yungbote/aspirepath-backend/internal/domain/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/domain/user"
)

type User = user.User
type Profile = user.Profile

type UserProfile = roadmap.UserProfile
type Goal = roadmap.Goal
type Resource = roadmap.Resource
type RoadmapStep = roadmap.Step
type Roadmap = roadmap.Roadmap
type RoadmapRecord = roadmap.Record

type EducationLevel = roadmap.EducationLevel
type FinancialStatus = roadmap.FinancialStatus
type GoalCategory = roadmap.GoalCategory
type GoalTimeline = roadmap.GoalTimeline
type ResourceType = roadmap.ResourceType

const (
	ResourceCourse    = roadmap.ResourceCourse
	ResourceVideo     = roadmap.ResourceVideo
	ResourceMentor    = roadmap.ResourceMentor
	ResourceCommunity = roadmap.ResourceCommunity
	ResourceTool      = roadmap.ResourceTool
)

var ErrStepNotFound = roadmap.ErrStepNotFound

// Models lists every gorm model for migrations.
func Models() []any {
	return []any{
		&user.User{},
		&user.Profile{},
		&roadmap.Record{},
	}
}
