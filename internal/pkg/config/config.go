package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (paths, limits, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Storage   StorageConfig
	Token     TokenConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
	Cookie    CookieConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost,https://localhost"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-RSVP-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type StorageConfig struct {
	GuestsFile  string        `envconfig:"GUESTS_FILE" default:"data/guests.json"`
	RSVPsFile   string        `envconfig:"RSVPS_FILE" default:"data/rsvps.json"`
	LockTimeout time.Duration `envconfig:"STORAGE_LOCK_TIMEOUT" default:"5s"`
}

type TokenConfig struct {
	Secret string        `envconfig:"RSVP_TOKEN_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"RSVP_TOKEN_TTL" default:"600s"`
}

// Empty Dir keeps rate-limit windows in memory (single process only).
type RateLimitConfig struct {
	Dir           string `envconfig:"RATE_LIMIT_DIR" default:"data/rate_limits"`
	LookupRPM     int    `envconfig:"RATE_LIMIT_LOOKUP_RPM" default:"10"`
	SubmitRPM     int    `envconfig:"RATE_LIMIT_SUBMIT_RPM" default:"5"`
	TokenRPM      int    `envconfig:"RATE_LIMIT_TOKEN_RPM" default:"30"`
	AdminLoginRPM int    `envconfig:"RATE_LIMIT_ADMIN_LOGIN_RPM" default:"5"`
}

// Empty PasswordHash disables the admin endpoints.
type AdminConfig struct {
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	JWTDuration  time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

func (c AdminConfig) Enabled() bool {
	return c.PasswordHash != "" && c.JWTSecret != ""
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Strict"`
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Real environment variables win over the file; a missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"https://rsvp.example.org"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-RSVP-Token"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Storage: StorageConfig{
			GuestsFile:  "guests.json",
			RSVPsFile:   "rsvps.json",
			LockTimeout: time.Second,
		},
		Token: TokenConfig{
			Secret: "test-token-secret",
			TTL:    600 * time.Second,
		},
		RateLimit: RateLimitConfig{
			LookupRPM:     10,
			SubmitRPM:     5,
			TokenRPM:      30,
			AdminLoginRPM: 5,
		},
		Admin: AdminConfig{
			JWTSecret:   "test-jwt-secret",
			JWTDuration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Strict",
		},
	}
}
