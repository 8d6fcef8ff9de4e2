package config

const EnvPrefix = "ADEGA"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place for tests and deploy docs.
const (
	EnvAppEnv              = "ADEGA_APP_ENV"
	EnvPort                = "ADEGA_APP_PORT"
	EnvLogLevel            = "ADEGA_LOG_LEVEL"
	EnvCatalogDBPath       = "ADEGA_CATALOG_DB_PATH"
	EnvCatalogCacheTTL     = "ADEGA_CATALOG_CACHE_TTL"
	EnvRedisURL            = "ADEGA_REDIS_URL"
	EnvCartDecrementPolicy = "ADEGA_CART_DECREMENT_POLICY"
)
