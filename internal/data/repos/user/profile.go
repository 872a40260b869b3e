package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type ProfileRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, p *domain.Profile) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (pr *profileRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, p *domain.Profile) error {
	if p == nil || p.UserID == "" {
		return errors.New("profile with user id required")
	}
	return pr.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "education_level", "financial_status", "skills", "location", "updated_at",
			}),
		}).
		Create(p).Error
}

// GetByUserID returns nil, nil when the user has no profile yet.
func (pr *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*domain.Profile, error) {
	var out domain.Profile
	err := pr.conn(tx).WithContext(ctx).Where("user_id = ?", userID).Limit(1).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
