package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STRIDE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "STRIDE_DB_DSN"
	EnvDBHost = "STRIDE_DB_HOST"
	EnvDBUser = "STRIDE_DB_USER"
	EnvDBName = "STRIDE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"STRIDE_APP_ENV" required:"true"`
	Port         string `envconfig:"STRIDE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STRIDE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STRIDE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STRIDE_DB_DSN"`
	Driver string `envconfig:"STRIDE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STRIDE_DB_HOST"`
	LegacyPort     int    `envconfig:"STRIDE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STRIDE_DB_USER"`
	LegacyPassword string `envconfig:"STRIDE_DB_PASSWORD"`
	LegacyName     string `envconfig:"STRIDE_DB_NAME"`
	LegacySSLMode  string `envconfig:"STRIDE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STRIDE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STRIDE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STRIDE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STRIDE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the local sqlite driver is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"STRIDE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STRIDE_REDIS_ADDR"`
	Password     string        `envconfig:"STRIDE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STRIDE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STRIDE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STRIDE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STRIDE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STRIDE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STRIDE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STRIDE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STRIDE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STRIDE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"STRIDE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STRIDE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STRIDE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STRIDE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STRIDE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STRIDE_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STRIDE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = "file:stride.db?cache=shared"
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
