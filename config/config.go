package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Seed     SeedConfig
	Booking  BookingConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port        string
	Mode        string // gin mode: debug, release, test
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver string // postgres or sqlite
	URL    string
}

type AuthConfig struct {
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
}

type SeedConfig struct {
	AdminPassword string
	StaffPassword string
}

type BookingConfig struct {
	// StrictServiceRef rejects bookings whose service id does not resolve
	// instead of pricing them at 0.
	StrictServiceRef bool
}

type CatalogConfig struct {
	// LenientPrice turns a missing or malformed service price into 0.
	LenientPrice bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_URL", "grooming.db")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("BCRYPT_COST", 14)

	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("STAFF_PASSWORD", "staff123")

	v.SetDefault("BOOKING_STRICT_SERVICE_REF", false)
	v.SetDefault("CATALOG_LENIENT_PRICE", true)

	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	var origins []string
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Mode:        v.GetString("GIN_MODE"),
			CORSOrigins: origins,
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			URL:    v.GetString("DB_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			JWTExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Seed: SeedConfig{
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			StaffPassword: v.GetString("STAFF_PASSWORD"),
		},
		Booking: BookingConfig{
			StrictServiceRef: v.GetBool("BOOKING_STRICT_SERVICE_REF"),
		},
		Catalog: CatalogConfig{
			LenientPrice: v.GetBool("CATALOG_LENIENT_PRICE"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}
