package config

// EnvPrefix scopes every environment variable read by envconfig.
const EnvPrefix = "BRASA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags (tests, error
// messages). Keep in sync with the envconfig tags above.
const (
	EnvAppEnv   = "BRASA_APP_ENV"
	EnvPort     = "BRASA_APP_PORT"
	EnvDBDSN    = "BRASA_DB_DSN"
	EnvDBHost   = "BRASA_DB_HOST"
	EnvDBUser   = "BRASA_DB_USER"
	EnvDBName   = "BRASA_DB_NAME"
	EnvRedisURL = "BRASA_REDIS_URL"

	EnvJWTSecret              = "BRASA_JWT_SECRET"
	EnvJWTIssuer              = "BRASA_JWT_ISSUER"
	EnvJWTExpMins             = "BRASA_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "BRASA_REFRESH_TOKEN_TTL_MINUTES"

	EnvCheckoutDeliveryFee = "BRASA_CHECKOUT_DELIVERY_FEE"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
