package config

const EnvPrefix = "PAWPANTRY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "PAWPANTRY_APP_ENV"
	EnvPort     = "PAWPANTRY_APP_PORT"
	EnvLogLevel = "PAWPANTRY_LOG_LEVEL"
	EnvCORS     = "PAWPANTRY_CORS_ORIGINS"

	EnvDBDSN  = "PAWPANTRY_DB_DSN"
	EnvDBHost = "PAWPANTRY_DB_HOST"
	EnvDBUser = "PAWPANTRY_DB_USER"
	EnvDBName = "PAWPANTRY_DB_NAME"

	EnvRedisURL  = "PAWPANTRY_REDIS_URL"
	EnvRedisAddr = "PAWPANTRY_REDIS_ADDR"

	EnvCatalogSource   = "PAWPANTRY_CATALOG_SOURCE"
	EnvCatalogURL      = "PAWPANTRY_CATALOG_URL"
	EnvCatalogFile     = "PAWPANTRY_CATALOG_FILE"
	EnvCatalogPageSize = "PAWPANTRY_CATALOG_PAGE_SIZE"

	EnvCartStore = "PAWPANTRY_CART_STORE"
	EnvCartKey   = "PAWPANTRY_CART_KEY"
	EnvCartDir   = "PAWPANTRY_CART_DIR"

	EnvUseSQLite   = "PAWPANTRY_USE_SQLITE"
	EnvAutoMigrate = "PAWPANTRY_AUTO_MIGRATE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
