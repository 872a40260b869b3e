package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "roadmap_u1", Key("u1"))
	assert.Equal(t, "roadmap_temp", Key("temp"))
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c, err := NewRoadmapCache(logger.Nop(), Config{})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	require.NoError(t, c.Set(context.Background(), &domain.Roadmap{UserID: "u1"}))
	got, err := c.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_CACHE_TTL_SECONDS", "30")
	cfg := ConfigFromEnv()
	assert.Equal(t, "localhost:6379", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.TTL)
}

func TestRedisRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	c, err := NewRoadmapCache(logger.Nop(), Config{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	userID := "cache-test-" + time.Now().Format("150405.000000000")
	rm := &domain.Roadmap{
		ID:     "r1",
		UserID: userID,
		Steps:  []domain.RoadmapStep{{ID: "step_0", Title: "Start", Order: 1, Resources: []domain.Resource{}}},
	}
	require.NoError(t, c.Set(ctx, rm))

	got, err := c.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "Start", got.Steps[0].Title)

	miss, err := c.Get(ctx, userID+"-missing")
	require.NoError(t, err)
	assert.Nil(t, miss)
}
