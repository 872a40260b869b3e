package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/aspirepath-backend/internal/data/repos"
	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/apierr"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type SignupInput struct {
	Email    string              `validate:"required,email"`
	Password string              `validate:"required,min=6"`
	Profile  *domain.UserProfile `validate:"omitempty"`
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	Signin(ctx context.Context, email, password string) (*domain.User, string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	profileRepo  repos.ProfileRepo
	validate     *validator.Validate
	jwtSecretKey []byte
	accessTTL    time.Duration
	now          func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	profileRepo repos.ProfileRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		validate:     validator.New(),
		jwtSecretKey: []byte(jwtSecretKey),
		accessTTL:    accessTTL,
		now:          time.Now,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

func (as *authService) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := as.validate.Struct(in); err != nil {
		return nil, "", apierr.BadRequest("invalid_signup", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := as.userRepo.EmailExists(ctx, tx, user.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return apierr.New(http.StatusConflict, "email_taken", ErrEmailTaken)
		}
		if _, err := as.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if in.Profile != nil {
			in.Profile.Email = user.Email
			row, err := profileRow(user.ID, in.Profile)
			if err != nil {
				return err
			}
			if err := as.profileRepo.Upsert(ctx, tx, row); err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	as.log.Info("user signed up", "user_id", user.ID)
	return user, token, nil
}

func (as *authService) Signin(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apierr.BadRequest("missing_credentials", errors.New("email and password are required"))
	}
	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, "", apierr.Unauthorized(ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apierr.Unauthorized(ErrInvalidCredentials)
	}
	token, err := as.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (as *authService) generateAccessToken(user *domain.User) (string, error) {
	now := as.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return as.jwtSecretKey, nil
	}, jwt.WithTimeFunc(as.now))
	if err != nil || !token.Valid {
		return ctx, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, ErrInvalidToken
	}
	sub, _ := claims.GetSubject()
	if sub == "" {
		return ctx, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: sub, Email: email}), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
