package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/data/repos/testutil"
	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
)

const stepsReply = `Here you go:
{"steps":[
 {"title":"Learn HTML","description":"Basics","estimatedDuration":"2 weeks","resources":[]},
 {"title":"Build a site","description":"Portfolio","estimatedDuration":"1 month","resources":[]}
]}`

type memCache struct {
	mu   sync.Mutex
	byID map[string]*domain.Roadmap
}

func newMemCache() *memCache { return &memCache{byID: map[string]*domain.Roadmap{}} }

func (m *memCache) Set(_ context.Context, r *domain.Roadmap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.byID[r.UserID] = &cp
	return nil
}

func (m *memCache) Get(_ context.Context, userID string) (*domain.Roadmap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[userID], nil
}

func (m *memCache) Close() error { return nil }

func authed(userID string) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID, Email: userID + "@example.com"})
}

func sampleProfile() *domain.UserProfile {
	return &domain.UserProfile{
		EducationLevel:  "UNIVERSITY",
		FinancialStatus: "LOW",
		Skills:          []string{"Excel"},
		Location:        "Accra",
	}
}

func sampleGoals(n int) []domain.Goal {
	out := make([]domain.Goal, n)
	for i := range out {
		out[i] = domain.Goal{Title: "Become a developer", Category: "CAREER", Timeline: "MEDIUM_TERM"}
	}
	return out
}

type roadmapFixture struct {
	db    *gorm.DB
	repo  repos.RoadmapRepo
	cache *memCache
	svc   RoadmapService
}

func newRoadmapFixture(t *testing.T, reply string) *roadmapFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f := &roadmapFixture{db: db, repo: repos.NewRoadmapRepo(db, log), cache: newMemCache()}
	svc, err := NewRoadmapService(log, RoadmapServiceDeps{
		DB:          db,
		RoadmapRepo: f.repo,
		Cache:       f.cache,
	}, roadmap.GeneratorDeps{
		Requester: roadmap.RequesterFunc(func(context.Context, string) (string, error) {
			return reply, nil
		}),
		Interpreter: roadmap.NewInterpreter(log, nil, roadmap.ClockFunc(func() time.Time {
			return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		})),
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}
