package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hash",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// Roadmap builds an unsaved two-step roadmap owned by userID.
func Roadmap(userID string, generatedAt time.Time) *domain.Roadmap {
	return &domain.Roadmap{
		ID:     uuid.NewString(),
		UserID: userID,
		Goals: []domain.Goal{{
			ID: "goal_0", Title: "Become a Developer", Category: "CAREER",
			Description: "Learn to code", Timeline: "MEDIUM_TERM",
		}},
		Steps: []domain.RoadmapStep{
			{ID: "step_0", Title: "Learn basics", EstimatedDuration: "1 month", Order: 1, Resources: []domain.Resource{}},
			{ID: "step_1", Title: "Build a project", EstimatedDuration: "2 months", Order: 2, Resources: []domain.Resource{
				{Title: "freeCodeCamp", Type: domain.ResourceCourse, IsFree: true, URL: "https://www.freecodecamp.org"},
			}},
		},
		GeneratedAt:             generatedAt.UTC(),
		EstimatedCompletionDate: generatedAt.UTC().AddDate(0, 6, 0),
	}
}
