package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/envutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

const DefaultTTL = 24 * time.Hour

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		Addr:     envutil.String("REDIS_ADDR", ""),
		Password: envutil.String("REDIS_PASSWORD", ""),
		DB:       envutil.Int("REDIS_DB", 0),
		TTL:      envutil.Seconds("REDIS_CACHE_TTL_SECONDS", DefaultTTL),
	}
}

// RoadmapCache holds the most recent roadmap per user.
type RoadmapCache interface {
	Set(ctx context.Context, r *domain.Roadmap) error
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, userID string) (*domain.Roadmap, error)
	Close() error
}

func Key(userID string) string { return "roadmap_" + userID }

type roadmapCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewRoadmapCache returns a no-op cache when cfg.Addr is empty.
func NewRoadmapCache(log *logger.Logger, cfg Config) (RoadmapCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.Addr == "" {
		log.Info("REDIS_ADDR not set; roadmap cache disabled")
		return Noop{}, nil
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &roadmapCache{
		log: log.With("service", "RoadmapCache"),
		rdb: rdb,
		ttl: cfg.TTL,
	}, nil
}

func (c *roadmapCache) Set(ctx context.Context, r *domain.Roadmap) error {
	if r == nil || r.UserID == "" {
		return fmt.Errorf("roadmap with user id required")
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, Key(r.UserID), raw, c.ttl).Err()
}

func (c *roadmapCache) Get(ctx context.Context, userID string) (*domain.Roadmap, error) {
	raw, err := c.rdb.Get(ctx, Key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out domain.Roadmap
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("dropping undecodable cache entry", "user_id", userID, "error", err)
		return nil, nil
	}
	return &out, nil
}

func (c *roadmapCache) Close() error { return c.rdb.Close() }

type Noop struct{}

func (Noop) Set(context.Context, *domain.Roadmap) error           { return nil }
func (Noop) Get(context.Context, string) (*domain.Roadmap, error) { return nil, nil }
func (Noop) Close() error                                         { return nil }
