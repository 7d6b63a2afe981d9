package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, record store URL, etc.), security settings
// - default: Values common across all environments (timeouts, polling interval, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	RecordStore  RecordStoreConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Availability AvailabilityConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RecordStoreConfig struct {
	BaseURL    string        `envconfig:"RECORD_STORE_URL" required:"true"`
	AuthToken  string        `envconfig:"RECORD_STORE_TOKEN" default:""`
	Timeout    time.Duration `envconfig:"RECORD_STORE_TIMEOUT" default:"10s"`
	MaxPerPage int           `envconfig:"RECORD_STORE_MAX_PER_PAGE" default:"200"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type AvailabilityConfig struct {
	RefreshInterval time.Duration `envconfig:"AVAILABILITY_REFRESH_INTERVAL" default:"60s"`
	// Branches whose station availability the refresher keeps warm.
	Branches []string `envconfig:"AVAILABILITY_BRANCHES"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		RecordStore: RecordStoreConfig{
			BaseURL:    "http://localhost:18090",
			Timeout:    5 * time.Second,
			MaxPerPage: 200,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Availability: AvailabilityConfig{
			RefreshInterval: time.Minute,
			Branches:        []string{"test-branch"},
		},
	}
}
