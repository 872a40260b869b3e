package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

func TestConfigFromEnvBuildsPostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "db.supabase.co")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("POSTGRES_NAME", "postgres")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg := ConfigFromEnv()
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "postgres://u:p@db.supabase.co:5432/postgres?sslmode=require", cfg.DSN)
}

func TestSQLiteServiceMigrates(t *testing.T) {
	svc, err := NewService(logger.Nop(), Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "ap.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, svc.AutoMigrateAll())
	for _, table := range []string{"users", "profiles", "roadmaps"} {
		assert.True(t, svc.DB().Migrator().HasTable(table), table)
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewService(logger.Nop(), Config{Driver: "mysql"})
	assert.Error(t, err)
}
