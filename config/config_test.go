package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.IsRelease())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, 14, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.Equal(t, "staff123", cfg.Seed.StaffPassword)
	assert.False(t, cfg.Booking.StrictServiceRef)
	assert.True(t, cfg.Catalog.LenientPrice)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_URL", "postgres://localhost/grooming")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("BOOKING_STRICT_SERVICE_REF", "true")
	t.Setenv("CATALOG_LENIENT_PRICE", "false")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	cfg := fromViper(v)

	assert.True(t, cfg.IsRelease())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/grooming", cfg.Database.URL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Booking.StrictServiceRef)
	assert.False(t, cfg.Catalog.LenientPrice)
}

func TestConnectDB(t *testing.T) {
	_, err := ConnectDB(DatabaseConfig{Driver: "mysql", URL: "x"})
	assert.Error(t, err)

	db, err := ConnectDB(DatabaseConfig{Driver: "sqlite", URL: ":memory:"})
	require.NoError(t, err)
	defer CloseDB(db)

	type probe struct {
		ID   uint
		Name string
	}
	require.NoError(t, MigrateDB(db, &probe{}))
	assert.True(t, db.Migrator().HasTable(&probe{}))
}

func TestSetupLogger(t *testing.T) {
	SetupLogger(&Config{Server: ServerConfig{Mode: "release"}, LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	SetupLogger(&Config{LogLevel: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
