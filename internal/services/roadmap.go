package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/data/cache"
	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/domain"
	domainroadmap "github.com/yungbote/aspirepath-backend/internal/domain/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/platform/apierr"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

// MaxGoalsPerRoadmap mirrors the onboarding form, which lets a user pick up
// to three goals.
const MaxGoalsPerRoadmap = 3

var ErrRoadmapNotFound = errors.New("roadmap not found")

type RoadmapService interface {
	Generate(ctx context.Context, profile *domain.UserProfile, goals []domain.Goal) (*domain.Roadmap, error)
	List(ctx context.Context) ([]*domain.Roadmap, error)
	Latest(ctx context.Context) (*domain.Roadmap, error)
	Get(ctx context.Context, id string) (*domain.Roadmap, error)
	SetStepCompleted(ctx context.Context, roadmapID, stepID string, completed bool) (*domain.Roadmap, error)
}

type RoadmapServiceDeps struct {
	DB          *gorm.DB
	RoadmapRepo repos.RoadmapRepo
	Cache       cache.RoadmapCache
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	roadmapRepo repos.RoadmapRepo
	cache       cache.RoadmapCache
	generator   *roadmap.Generator
}

func NewRoadmapService(log *logger.Logger, deps RoadmapServiceDeps, gen roadmap.GeneratorDeps) (RoadmapService, error) {
	if deps.RoadmapRepo == nil {
		return nil, fmt.Errorf("roadmap repo required")
	}
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	rs := &roadmapService{
		db:          deps.DB,
		log:         log.With("service", "RoadmapService"),
		roadmapRepo: deps.RoadmapRepo,
		cache:       deps.Cache,
	}
	if gen.Notifier == nil {
		gen.Notifier = roadmap.NotifierFunc(rs.save)
	}
	g, err := roadmap.NewGenerator(log, gen)
	if err != nil {
		return nil, err
	}
	rs.generator = g
	return rs, nil
}

func (rs *roadmapService) Generate(ctx context.Context, profile *domain.UserProfile, goals []domain.Goal) (*domain.Roadmap, error) {
	if len(goals) > MaxGoalsPerRoadmap {
		return nil, apierr.BadRequest("too_many_goals", fmt.Errorf("at most %d goals per roadmap", MaxGoalsPerRoadmap))
	}
	if profile != nil {
		// ownership comes from the token only; a body id is never trusted
		p := *profile
		p.ID = ctxutil.UserID(ctx)
		profile = &p
	}
	return rs.generator.Generate(ctx, profile, goals)
}

// save persists a freshly generated roadmap and refreshes the caller's cache
// entry. Anonymous roadmaps are returned but kept nowhere.
func (rs *roadmapService) save(ctx context.Context, r *domain.Roadmap) error {
	userID := ctxutil.UserID(ctx)
	if userID == "" || r.UserID != userID {
		return nil
	}
	rec, err := domainroadmap.ToRecord(r)
	if err != nil {
		return err
	}
	dbErr := rs.roadmapRepo.Create(ctx, nil, rec)
	cacheErr := rs.cache.Set(ctx, r)
	return errors.Join(dbErr, cacheErr)
}

func (rs *roadmapService) List(ctx context.Context) ([]*domain.Roadmap, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := rs.roadmapRepo.ListByUser(ctx, nil, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}
	out := make([]*domain.Roadmap, 0, len(recs))
	for _, rec := range recs {
		rm, err := domainroadmap.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func (rs *roadmapService) Latest(ctx context.Context) (*domain.Roadmap, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if cached, err := rs.cache.Get(ctx, userID); err != nil {
		rs.log.Warn("roadmap cache read failed", "user_id", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}
	recs, err := rs.roadmapRepo.ListByUser(ctx, nil, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("load latest roadmap: %w", err)
	}
	if len(recs) == 0 {
		return nil, apierr.NotFound("roadmap_not_found", ErrRoadmapNotFound)
	}
	return domainroadmap.FromRecord(recs[0])
}

func (rs *roadmapService) Get(ctx context.Context, id string) (*domain.Roadmap, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if cached, err := rs.cache.Get(ctx, userID); err == nil && cached != nil && cached.ID == id {
		return cached, nil
	}
	return rs.loadOwned(ctx, nil, userID, id)
}

func (rs *roadmapService) loadOwned(ctx context.Context, tx *gorm.DB, userID, id string) (*domain.Roadmap, error) {
	rec, err := rs.roadmapRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	// someone else's roadmap is reported as missing
	if rec == nil || rec.UserID != userID {
		return nil, apierr.NotFound("roadmap_not_found", ErrRoadmapNotFound)
	}
	return domainroadmap.FromRecord(rec)
}

func (rs *roadmapService) SetStepCompleted(ctx context.Context, roadmapID, stepID string, completed bool) (*domain.Roadmap, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	var out *domain.Roadmap
	err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rm, err := rs.loadOwned(ctx, tx, userID, roadmapID)
		if err != nil {
			return err
		}
		if err := rm.SetStepCompleted(stepID, completed); err != nil {
			if errors.Is(err, domain.ErrStepNotFound) {
				return apierr.New(http.StatusNotFound, "step_not_found", err)
			}
			return err
		}
		rec, err := domainroadmap.ToRecord(rm)
		if err != nil {
			return err
		}
		if err := rs.roadmapRepo.UpdateSteps(ctx, tx, rec); err != nil {
			return fmt.Errorf("update roadmap: %w", err)
		}
		out = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.refreshCache(ctx, userID, out)
	return out, nil
}

// refreshCache keeps the cached latest roadmap in step with progress edits.
func (rs *roadmapService) refreshCache(ctx context.Context, userID string, rm *domain.Roadmap) {
	cached, err := rs.cache.Get(ctx, userID)
	if err != nil || cached == nil || cached.ID != rm.ID {
		return
	}
	if err := rs.cache.Set(ctx, rm); err != nil {
		rs.log.Warn("roadmap cache refresh failed", "roadmap_id", rm.ID, "error", err)
	}
}
