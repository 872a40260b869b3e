package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/aspirepath-backend/internal/data/cache"
	"github.com/yungbote/aspirepath-backend/internal/data/db"
	"github.com/yungbote/aspirepath-backend/internal/http/middleware"
	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/platform/envutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/platform/observability"
	"github.com/yungbote/aspirepath-backend/internal/platform/openai"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Port           string        `validate:"required,numeric"`
	JWTSecretKey   string        `validate:"required"`
	AccessTokenTTL time.Duration `validate:"gt=0"`
	PersistTimeout time.Duration `validate:"gt=0"`
	AllowOrigins   []string

	DB         db.Config
	Cache      cache.Config
	OpenAI     openai.Config
	Completion roadmap.CompletionConfig
	Otel       observability.OtelConfig
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:           envutil.String("PORT", "3001"),
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		AccessTokenTTL: envutil.Seconds("ACCESS_TOKEN_TTL", time.Hour),
		PersistTimeout: envutil.Seconds("PERSIST_TIMEOUT_SECONDS", roadmap.DefaultPersistTimeout),
		AllowOrigins:   envutil.List("CORS_ALLOW_ORIGINS", middleware.DefaultAllowOrigins),
		DB:             db.ConfigFromEnv(),
		Cache:          cache.ConfigFromEnv(),
		OpenAI:         openai.ConfigFromEnv(),
		Completion: roadmap.CompletionConfig{
			Temperature: envutil.Float("OPENAI_TEMPERATURE", roadmap.DefaultTemperature),
			MaxTokens:   envutil.Int("OPENAI_MAX_TOKENS", roadmap.DefaultMaxTokens),
			Timeout:     envutil.Seconds("OPENAI_TIMEOUT_SECONDS", roadmap.DefaultTimeout),
		},
		Otel: observability.OtelConfigFromEnv(),
	}
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set; using the development default")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
