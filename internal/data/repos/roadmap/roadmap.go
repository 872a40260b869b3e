package roadmap

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *domain.RoadmapRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*domain.RoadmapRecord, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.RoadmapRecord, error)
	UpdateSteps(ctx context.Context, tx *gorm.DB, rec *domain.RoadmapRecord) error
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	return &roadmapRepo{db: db, log: baseLog.With("repo", "RoadmapRepo")}
}

func (rr *roadmapRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rr.db
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, rec *domain.RoadmapRecord) error {
	if rec == nil || rec.ID == "" {
		return errors.New("roadmap record with id required")
	}
	return rr.conn(tx).WithContext(ctx).Create(rec).Error
}

// GetByID returns nil, nil when no row matches.
func (rr *roadmapRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*domain.RoadmapRecord, error) {
	var out domain.RoadmapRecord
	err := rr.conn(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the user's roadmaps, newest first. limit <= 0 means all.
func (rr *roadmapRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.RoadmapRecord, error) {
	var results []*domain.RoadmapRecord
	q := rr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateSteps writes the step snapshot and progress of an existing roadmap.
func (rr *roadmapRepo) UpdateSteps(ctx context.Context, tx *gorm.DB, rec *domain.RoadmapRecord) error {
	res := rr.conn(tx).WithContext(ctx).
		Model(&domain.RoadmapRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"steps":    rec.Steps,
			"progress": rec.Progress,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
