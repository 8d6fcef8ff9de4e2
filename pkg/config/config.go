package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Cart    CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ADEGA_APP_ENV" required:"true"`
	Port         string `envconfig:"ADEGA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ADEGA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ADEGA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	DBPath   string        `envconfig:"ADEGA_CATALOG_DB_PATH" default:"adega.db"`
	CacheTTL time.Duration `envconfig:"ADEGA_CATALOG_CACHE_TTL" default:"5m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ADEGA_REDIS_URL"`
	Address      string        `envconfig:"ADEGA_REDIS_ADDR"`
	Password     string        `envconfig:"ADEGA_REDIS_PASSWORD"`
	DB           int           `envconfig:"ADEGA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ADEGA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ADEGA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ADEGA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ADEGA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ADEGA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all; the catalog
// cache is skipped entirely when it was not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CartConfig struct {
	DecrementPolicy string `envconfig:"ADEGA_CART_DECREMENT_POLICY" default:"remove"`
}

func (c CartConfig) validate() error {
	if _, err := enums.ParseDecrementPolicy(c.DecrementPolicy); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// Policy returns the parsed decrement policy. Load has already validated it.
func (c CartConfig) Policy() enums.DecrementPolicy {
	policy, err := enums.ParseDecrementPolicy(c.DecrementPolicy)
	if err != nil {
		return enums.DecrementPolicyRemove
	}
	return policy
}
