package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/apierr"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	validate    *validator.Validate
}

func NewProfileService(log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	return &profileService{
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
		validate:    validator.New(),
	}
}

func (ps *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	row, err := ps.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("profile_not_found", ErrProfileNotFound)
	}
	return profileFromRow(row)
}

func (ps *profileService) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.BadRequest("invalid_profile", errors.New("profile is required"))
	}
	if err := ps.validate.Struct(p); err != nil {
		return nil, apierr.BadRequest("invalid_profile", err)
	}
	if p.Email == "" {
		if rd := ctxutil.GetRequestData(ctx); rd != nil {
			p.Email = rd.Email
		}
	}
	row, err := profileRow(userID, p)
	if err != nil {
		return nil, err
	}
	if err := ps.profileRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	ps.log.Debug("profile updated", "user_id", userID)
	return ps.Get(ctx)
}

func requireUser(ctx context.Context) (string, error) {
	userID := ctxutil.UserID(ctx)
	if userID == "" {
		return "", apierr.Unauthorized(errors.New("authentication required"))
	}
	return userID, nil
}

func profileRow(userID string, p *domain.UserProfile) (*domain.Profile, error) {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("encode skills: %w", err)
	}
	return &domain.Profile{
		UserID:          userID,
		Email:           p.Email,
		EducationLevel:  string(p.EducationLevel),
		FinancialStatus: string(p.FinancialStatus),
		Skills:          datatypes.JSON(raw),
		Location:        p.Location,
	}, nil
}

func profileFromRow(row *domain.Profile) (*domain.UserProfile, error) {
	out := &domain.UserProfile{
		ID:              row.UserID,
		Email:           row.Email,
		EducationLevel:  domain.EducationLevel(row.EducationLevel),
		FinancialStatus: domain.FinancialStatus(row.FinancialStatus),
		Skills:          []string{},
		Location:        row.Location,
	}
	if len(row.Skills) > 0 {
		if err := json.Unmarshal(row.Skills, &out.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
	}
	if !row.CreatedAt.IsZero() {
		created := row.CreatedAt
		out.CreatedAt = &created
	}
	return out, nil
}
