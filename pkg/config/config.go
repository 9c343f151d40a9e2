package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "GSD"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "GSD_APP_ENV"
	EnvDBDSN  = "GSD_DB_DSN"
	EnvDBHost = "GSD_DB_HOST"
	EnvDBUser = "GSD_DB_USER"
	EnvDBName = "GSD_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Pexels        PexelsConfig
	Idempotency   IdempotencyConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GSD_APP_ENV" required:"true"`
	Port         string `envconfig:"GSD_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"GSD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GSD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GSD_DB_DSN"`
	Driver string `envconfig:"GSD_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GSD_DB_HOST"`
	LegacyPort     int    `envconfig:"GSD_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GSD_DB_USER"`
	LegacyPassword string `envconfig:"GSD_DB_PASSWORD"`
	LegacyName     string `envconfig:"GSD_DB_NAME"`
	LegacySSLMode  string `envconfig:"GSD_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GSD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GSD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GSD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GSD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GSD_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GSD_REDIS_ADDR"`
	Password     string        `envconfig:"GSD_REDIS_PASSWORD"`
	DB           int           `envconfig:"GSD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GSD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GSD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GSD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GSD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GSD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GSD_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GSD_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GSD_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"GSD_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GSD_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GSD_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GSD_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GSD_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GSD_ARGON_KEY_LEN" default:"32"`
}

type PexelsConfig struct {
	APIKey         string        `envconfig:"GSD_PEXELS_API_KEY"`
	BaseURL        string        `envconfig:"GSD_PEXELS_BASE_URL" default:"https://api.pexels.com/v1"`
	RequestTimeout time.Duration `envconfig:"GSD_PEXELS_REQUEST_TIMEOUT" default:"5s"`
	CacheTTL       time.Duration `envconfig:"GSD_PEXELS_CACHE_TTL" default:"24h"`
}

type IdempotencyConfig struct {
	CheckoutTTL time.Duration `envconfig:"GSD_IDEMPOTENCY_CHECKOUT_TTL" default:"168h"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"GSD_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"GSD_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"GSD_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"GSD_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"GSD_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"GSD_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GSD_AUTO_MIGRATE" default:"false"`
	AllowSeed   bool `envconfig:"GSD_ALLOW_SEED" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
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
