package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "TRENDORA"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "TRENDORA_APP_ENV"
	EnvPort   = "TRENDORA_APP_PORT"

	EnvDBDSN  = "TRENDORA_DB_DSN"
	EnvDBHost = "TRENDORA_DB_HOST"
	EnvDBUser = "TRENDORA_DB_USER"
	EnvDBName = "TRENDORA_DB_NAME"
)

// legacyDBEnvVars are the parts required to compose a DSN when EnvDBDSN is
// absent. The password is intentionally not listed: local databases may run
// without one.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
