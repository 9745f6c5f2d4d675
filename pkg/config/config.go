package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests.
const (
	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvPort            = "STOREFRONT_APP_PORT"
	EnvCatalogFeedPath = "STOREFRONT_CATALOG_FEED_PATH"
	EnvStorageBackend  = "STOREFRONT_STORAGE_BACKEND"
	EnvStorageDir      = "STOREFRONT_STORAGE_DIR"
	EnvSQLitePath      = "STOREFRONT_STORAGE_SQLITE_PATH"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
)

// Storage backend identifiers.
const (
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
	StorageBackendRedis  = "redis"
	StorageBackendSQLite = "sqlite"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Content ContentConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	FeedPath     string        `envconfig:"STOREFRONT_CATALOG_FEED_PATH" required:"true"`
	ItemsPerPage int           `envconfig:"STOREFRONT_CATALOG_ITEMS_PER_PAGE" default:"12"`
	InitialBatch int           `envconfig:"STOREFRONT_CATALOG_INITIAL_BATCH" default:"12"`
	BatchSize    int           `envconfig:"STOREFRONT_CATALOG_BATCH_SIZE" default:"12"`
	RevealDelay  time.Duration `envconfig:"STOREFRONT_CATALOG_REVEAL_DELAY" default:"300ms"`
}

type StorageConfig struct {
	Backend    string `envconfig:"STOREFRONT_STORAGE_BACKEND" default:"memory"`
	Dir        string `envconfig:"STOREFRONT_STORAGE_DIR" default:"./data"`
	SQLitePath string `envconfig:"STOREFRONT_STORAGE_SQLITE_PATH" default:"./data/storefront.db"`
	Redis      RedisConfig
}

var validStorageBackends = []string{
	StorageBackendMemory,
	StorageBackendFile,
	StorageBackendRedis,
	StorageBackendSQLite,
}

func (s StorageConfig) validate() error {
	for _, candidate := range validStorageBackends {
		if strings.EqualFold(s.Backend, candidate) {
			return nil
		}
	}
	return fmt.Errorf("invalid storage backend %q (want one of %s)", s.Backend, strings.Join(validStorageBackends, ", "))
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type ContentConfig struct {
	BlocksPath string `envconfig:"STOREFRONT_CONTENT_BLOCKS_PATH"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
