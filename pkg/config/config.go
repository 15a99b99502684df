package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
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
	Env          string `envconfig:"BRASA_APP_ENV" required:"true"`
	Port         string `envconfig:"BRASA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BRASA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BRASA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BRASA_DB_DSN"`
	Driver string `envconfig:"BRASA_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"BRASA_DB_HOST"`
	Port     int    `envconfig:"BRASA_DB_PORT" default:"5432"`
	User     string `envconfig:"BRASA_DB_USER"`
	Password string `envconfig:"BRASA_DB_PASSWORD"`
	Name     string `envconfig:"BRASA_DB_NAME"`
	SSLMode  string `envconfig:"BRASA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BRASA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BRASA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BRASA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BRASA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BRASA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BRASA_REDIS_ADDR"`
	Password     string        `envconfig:"BRASA_REDIS_PASSWORD"`
	DB           int           `envconfig:"BRASA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BRASA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BRASA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BRASA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BRASA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BRASA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"BRASA_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"BRASA_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"BRASA_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"BRASA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BRASA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BRASA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BRASA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BRASA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BRASA_ARGON_KEY_LEN" default:"32"`
}

// CartConfig controls how long an untouched cart snapshot survives in Redis.
type CartConfig struct {
	TTL time.Duration `envconfig:"BRASA_CART_TTL" default:"72h"`
}

type CheckoutConfig struct {
	DeliveryFee string `envconfig:"BRASA_CHECKOUT_DELIVERY_FEE" default:"8.00"`
}

// DeliveryFeeAmount parses the configured flat delivery fee.
func (c CheckoutConfig) DeliveryFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.DeliveryFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing delivery fee %q: %w", c.DeliveryFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("delivery fee must be non-negative, got %s", fee)
	}
	return fee, nil
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BRASA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
