package config

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-envconfig"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	NavStrategy   string        `env:"NAV_STRATEGY,  default=router"`
	SessionTTL    time.Duration `env:"SESSION_TTL,   default=24h"`
	CCTVStreamURL string        `env:"CCTV_STREAM_URL, default=https://example.com/cctv/live"`
	Timezone      string        `env:"TIMEZONE,      default=Asia/Kolkata"`

	Stores  StoreConfig
	Workers WorkerConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// StoreConfig selects the backend for each persisted concern.
type StoreConfig struct {
	Session    string `env:"SESSION_STORE,    default=memory"`
	Credential string `env:"CREDENTIAL_STORE, default=memory"`
	Donation   string `env:"DONATION_STORE,   default=memory"`
}

type WorkerConfig struct {
	NoticeWorkers        int    `env:"NOTICE_WORKERS,         default=4"`
	SessionSweepSchedule string `env:"SESSION_SWEEP_SCHEDULE, default=@every 5m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jpk"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l. Tests pass envconfig.MapLookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Location returns the configured time zone for quick date ranges.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// UsesRedis reports whether any store is backed by Redis.
func (c *Config) UsesRedis() bool {
	return c.Stores.Session == StoreRedis || c.Stores.Credential == StoreRedis
}

// UsesMongo reports whether any store is backed by MongoDB.
func (c *Config) UsesMongo() bool {
	return c.Stores.Credential == StoreMongo || c.Stores.Donation == StoreMongo
}

// Validate checks cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" && !c.IsDevelopment() {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.NavStrategy != "router" && c.NavStrategy != "anchor" {
		errs = append(errs, fmt.Errorf("NAV_STRATEGY must be router or anchor, got %q", c.NavStrategy))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if !oneOf(c.Stores.Session, StoreMemory, StoreRedis) {
		errs = append(errs, fmt.Errorf("SESSION_STORE must be memory or redis, got %q", c.Stores.Session))
	}
	if !oneOf(c.Stores.Credential, StoreMemory, StoreRedis, StoreMongo) {
		errs = append(errs, fmt.Errorf("CREDENTIAL_STORE must be memory, redis or mongo, got %q", c.Stores.Credential))
	}
	if !oneOf(c.Stores.Donation, StoreMemory, StoreMongo) {
		errs = append(errs, fmt.Errorf("DONATION_STORE must be memory or mongo, got %q", c.Stores.Donation))
	}
	if _, err := cron.ParseStandard(c.Workers.SessionSweepSchedule); err != nil {
		errs = append(errs, fmt.Errorf("SESSION_SWEEP_SCHEDULE: %w", err))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
