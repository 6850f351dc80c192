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
	FeatureFlags FeatureFlagsConfig
	Ordering     OrderingConfig
	Concepts     ConceptsConfig
	Gemini       GeminiConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	CORS         CORSConfig
	Support      SupportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVITE_APP_ENV" required:"true"`
	Port         string `envconfig:"INVITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"INVITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"INVITE_DB_DSN"`
	Driver string `envconfig:"INVITE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"INVITE_DB_HOST"`
	LegacyPort     int    `envconfig:"INVITE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"INVITE_DB_USER"`
	LegacyPassword string `envconfig:"INVITE_DB_PASSWORD"`
	LegacyName     string `envconfig:"INVITE_DB_NAME"`
	LegacySSLMode  string `envconfig:"INVITE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"INVITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"INVITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"INVITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"INVITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	ConnectAttempts    uint64        `envconfig:"INVITE_DB_CONNECT_ATTEMPTS" default:"5"`
	SlowQueryThreshold time.Duration `envconfig:"INVITE_DB_SLOW_QUERY_THRESHOLD" default:"200ms"`
}

// IsSQLite reports whether the catalog runs on the embedded sqlite driver.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"INVITE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"INVITE_REDIS_ADDR"`
	Password     string        `envconfig:"INVITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"INVITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INVITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INVITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INVITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INVITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"INVITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"INVITE_AUTO_MIGRATE" default:"false"`
}

// OrderingConfig holds the submission policy for the order configurator.
// MaxQuantity of 0 leaves custom quantities unbounded.
type OrderingConfig struct {
	MaxQuantity    int64  `envconfig:"INVITE_ORDER_MAX_QUANTITY" default:"0"`
	RequireDetails bool   `envconfig:"INVITE_ORDER_REQUIRE_DETAILS" default:"false"`
	Sink           string `envconfig:"INVITE_ORDER_SINK" default:"log"`
}

// UsesPubSub reports whether accepted orders are published to Pub/Sub.
func (o OrderingConfig) UsesPubSub() bool {
	return strings.EqualFold(strings.TrimSpace(o.Sink), SinkPubSub)
}

type ConceptsConfig struct {
	Provider        string        `envconfig:"INVITE_CONCEPTS_PROVIDER" default:"demo"`
	Count           int           `envconfig:"INVITE_CONCEPTS_COUNT" default:"3"`
	Concurrency     int           `envconfig:"INVITE_CONCEPTS_CONCURRENCY" default:"3"`
	ItemTimeout     time.Duration `envconfig:"INVITE_CONCEPTS_ITEM_TIMEOUT" default:"45s"`
	RateLimit       int           `envconfig:"INVITE_CONCEPTS_RATE_LIMIT" default:"10"`
	RateLimitWindow time.Duration `envconfig:"INVITE_CONCEPTS_RATE_LIMIT_WINDOW" default:"1m"`
}

// UsesGemini reports whether concept generation calls the hosted models.
func (c ConceptsConfig) UsesGemini() bool {
	return strings.EqualFold(strings.TrimSpace(c.Provider), ProviderGemini)
}

type GeminiConfig struct {
	APIKey     string        `envconfig:"INVITE_GEMINI_API_KEY"`
	BaseURL    string        `envconfig:"INVITE_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	TextModel  string        `envconfig:"INVITE_GEMINI_TEXT_MODEL" default:"gemini-2.5-flash"`
	ImageModel string        `envconfig:"INVITE_GEMINI_IMAGE_MODEL" default:"imagen-4.0-generate-001"`
	Timeout    time.Duration `envconfig:"INVITE_GEMINI_TIMEOUT" default:"60s"`
	MaxRetries uint64        `envconfig:"INVITE_GEMINI_MAX_RETRIES" default:"3"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"INVITE_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	OrdersTopic    string `envconfig:"INVITE_PUBSUB_ORDERS_TOPIC" default:"invite-order-events"`
	InquiriesTopic string `envconfig:"INVITE_PUBSUB_INQUIRIES_TOPIC" default:"invite-inquiry-events"`
}

// SupportConfig throttles the contact form per client IP and per sender.
type SupportConfig struct {
	InquiryIPLimit    int           `envconfig:"INVITE_SUPPORT_INQUIRY_IP_LIMIT" default:"5"`
	InquiryEmailLimit int           `envconfig:"INVITE_SUPPORT_INQUIRY_EMAIL_LIMIT" default:"3"`
	InquiryWindow     time.Duration `envconfig:"INVITE_SUPPORT_INQUIRY_WINDOW" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"INVITE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (c *Config) validate() error {
	if c.Ordering.MaxQuantity < 0 {
		return fmt.Errorf("%s must be >= 0", EnvOrderMaxQuantity)
	}
	switch strings.ToLower(strings.TrimSpace(c.Ordering.Sink)) {
	case SinkLog:
	case SinkPubSub:
		if strings.TrimSpace(c.GCP.ProjectID) == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvGCPProjectID, EnvOrderSink, SinkPubSub)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvOrderSink, c.Ordering.Sink)
	}
	switch strings.ToLower(strings.TrimSpace(c.Concepts.Provider)) {
	case ProviderDemo:
	case ProviderGemini:
		if strings.TrimSpace(c.Gemini.APIKey) == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvGeminiAPIKey, EnvConceptsProvider, ProviderGemini)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvConceptsProvider, c.Concepts.Provider)
	}
	return nil
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = DefaultSQLiteDSN
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
