package config

const EnvPrefix = "INVITE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
	DefaultSQLiteDSN = "file:invite.db?cache=shared&_foreign_keys=on"

	SinkLog    = "log"
	SinkPubSub = "pubsub"

	ProviderDemo   = "demo"
	ProviderGemini = "gemini"
)

const (
	EnvAppEnv           = "INVITE_APP_ENV"
	EnvPort             = "INVITE_APP_PORT"
	EnvDBDSN            = "INVITE_DB_DSN"
	EnvDBDriver         = "INVITE_DB_DRIVER"
	EnvDBHost           = "INVITE_DB_HOST"
	EnvDBUser           = "INVITE_DB_USER"
	EnvDBName           = "INVITE_DB_NAME"
	EnvRedisURL         = "INVITE_REDIS_URL"
	EnvOrderMaxQuantity = "INVITE_ORDER_MAX_QUANTITY"
	EnvOrderRequireInfo = "INVITE_ORDER_REQUIRE_DETAILS"
	EnvOrderSink        = "INVITE_ORDER_SINK"
	EnvConceptsProvider = "INVITE_CONCEPTS_PROVIDER"
	EnvConceptsTimeout  = "INVITE_CONCEPTS_ITEM_TIMEOUT"
	EnvGeminiAPIKey     = "INVITE_GEMINI_API_KEY"
	EnvGCPProjectID     = "INVITE_GCP_PROJECT_ID"
	EnvCORSOrigins      = "INVITE_CORS_ALLOWED_ORIGINS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
