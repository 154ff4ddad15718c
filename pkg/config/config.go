package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
	Metrics      MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Catalog.Source.RequiresDB() || c.Cart.Store.RequiresDB() {
		if err := c.DB.EnsureDSN(c.FeatureFlags.UseSQLite); err != nil {
			return err
		}
	}
	if c.Cart.Store == CartStoreRedis && !c.Redis.Configured() {
		return fmt.Errorf("%s=redis requires %s or %s", EnvCartStore, EnvRedisURL, EnvRedisAddr)
	}
	if c.Catalog.Source == CatalogSourceHTTP && strings.TrimSpace(c.Catalog.URL) == "" {
		return fmt.Errorf("%s=http requires %s", EnvCatalogSource, EnvCatalogURL)
	}
	if c.Catalog.Source == CatalogSourceFile && strings.TrimSpace(c.Catalog.File) == "" {
		return fmt.Errorf("%s=file requires %s", EnvCatalogSource, EnvCatalogFile)
	}
	if c.Cart.Store == CartStoreFile && strings.TrimSpace(c.Cart.Dir) == "" {
		return fmt.Errorf("%s=file requires %s", EnvCartStore, EnvCartDir)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"PAWPANTRY_APP_ENV" required:"true"`
	Port         string `envconfig:"PAWPANTRY_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PAWPANTRY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAWPANTRY_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is comma separated; empty keeps the built-in origins.
	CORSOrigins     []string      `envconfig:"PAWPANTRY_CORS_ORIGINS"`
	ShutdownTimeout time.Duration `envconfig:"PAWPANTRY_SHUTDOWN_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PAWPANTRY_DB_DSN"`
	Driver string `envconfig:"PAWPANTRY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PAWPANTRY_DB_HOST"`
	LegacyPort     int    `envconfig:"PAWPANTRY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PAWPANTRY_DB_USER"`
	LegacyPassword string `envconfig:"PAWPANTRY_DB_PASSWORD"`
	LegacyName     string `envconfig:"PAWPANTRY_DB_NAME"`
	LegacySSLMode  string `envconfig:"PAWPANTRY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PAWPANTRY_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"PAWPANTRY_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"PAWPANTRY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PAWPANTRY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PAWPANTRY_REDIS_URL"`
	Address      string        `envconfig:"PAWPANTRY_REDIS_ADDR"`
	Password     string        `envconfig:"PAWPANTRY_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAWPANTRY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAWPANTRY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAWPANTRY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAWPANTRY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAWPANTRY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAWPANTRY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether enough settings exist to dial Redis.
func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// CatalogSource names where the product catalog is fetched from.
type CatalogSource string

const (
	CatalogSourceEmbedded CatalogSource = "embedded"
	CatalogSourceHTTP     CatalogSource = "http"
	CatalogSourceDB       CatalogSource = "db"
	CatalogSourceFile     CatalogSource = "file"
)

// RequiresDB reports whether the source reads from the SQL database.
func (s CatalogSource) RequiresDB() bool {
	return s == CatalogSourceDB
}

type CatalogConfig struct {
	Source       CatalogSource `envconfig:"PAWPANTRY_CATALOG_SOURCE" default:"embedded"`
	URL          string        `envconfig:"PAWPANTRY_CATALOG_URL"`
	File         string        `envconfig:"PAWPANTRY_CATALOG_FILE"`
	FetchTimeout time.Duration `envconfig:"PAWPANTRY_CATALOG_FETCH_TIMEOUT" default:"10s"`
	CacheTTL     time.Duration `envconfig:"PAWPANTRY_CATALOG_CACHE_TTL" default:"5m"`
	PageSize     int           `envconfig:"PAWPANTRY_CATALOG_PAGE_SIZE" default:"6"`
}

// CartStore names the persistence capability backing carts.
type CartStore string

const (
	CartStoreMemory CartStore = "memory"
	CartStoreRedis  CartStore = "redis"
	CartStoreDB     CartStore = "db"
	CartStoreFile   CartStore = "file"
	CartStoreNop    CartStore = "nop"
)

// RequiresDB reports whether the store persists into the SQL database.
func (s CartStore) RequiresDB() bool {
	return s == CartStoreDB
}

type CartConfig struct {
	Store      CartStore     `envconfig:"PAWPANTRY_CART_STORE" default:"memory"`
	StorageKey string        `envconfig:"PAWPANTRY_CART_KEY" default:"cart"`
	TTL        time.Duration `envconfig:"PAWPANTRY_CART_TTL" default:"720h"`
	// Dir holds one JSON file per cart for the file store.
	Dir string `envconfig:"PAWPANTRY_CART_DIR" default:".pawpantry"`

	RateLimitWindow    time.Duration `envconfig:"PAWPANTRY_CART_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitIPLimit   int           `envconfig:"PAWPANTRY_CART_RATE_LIMIT_IP" default:"120"`
	RateLimitCartLimit int           `envconfig:"PAWPANTRY_CART_RATE_LIMIT_CART" default:"60"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PAWPANTRY_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PAWPANTRY_AUTO_MIGRATE" default:"false"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"PAWPANTRY_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"PAWPANTRY_METRICS_PATH" default:"/metrics"`
}

// EnsureDSN fills DSN from the legacy host settings when it is empty.
func (db *DBConfig) EnsureDSN(sqlite bool) error {
	if db.DSN != "" {
		return nil
	}
	if sqlite {
		return fmt.Errorf("%s is required when %s is enabled", EnvDBDSN, EnvUseSQLite)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
