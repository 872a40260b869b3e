package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ur.db
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, u *domain.User) (*domain.User, error) {
	if u == nil {
		return nil, errors.New("user required")
	}
	if err := ur.conn(tx).WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID returns nil, nil when no row matches.
func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID string) (*domain.User, error) {
	return ur.first(ctx, tx, "id = ?", userID)
}

// GetByEmail returns nil, nil when no row matches.
func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error) {
	return ur.first(ctx, tx, "email = ?", email)
}

func (ur *userRepo) first(ctx context.Context, tx *gorm.DB, query string, arg any) (*domain.User, error) {
	var out domain.User
	err := ur.conn(tx).WithContext(ctx).Where(query, arg).Limit(1).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := ur.conn(tx).WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
