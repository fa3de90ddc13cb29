package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Cookie      CookieConfig
	Log         LogConfig
	JWT         JWTConfig
	Idempotency IdempotencyConfig
	Email       EmailConfig
	Delivery    DeliveryConfig
	RateLimit   RateLimitConfig
	OTEL        OTELConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type IdempotencyConfig struct {
	// Upper bound for waiting on a concurrent claim of the same key
	LockTimeout time.Duration `envconfig:"IDEMPOTENCY_LOCK_TIMEOUT" default:"5s"`
	// Zero disables the retention sweep
	Retention     time.Duration `envconfig:"IDEMPOTENCY_RETENTION" default:"0"`
	SweepSchedule string        `envconfig:"IDEMPOTENCY_SWEEP_SCHEDULE" default:"@every 1h"`
}

type EmailConfig struct {
	BaseURL            string        `envconfig:"EMAIL_BASE_URL" required:"true"`
	Sender             string        `envconfig:"EMAIL_SENDER" required:"true"`
	AuthToken          string        `envconfig:"EMAIL_AUTH_TOKEN" required:"true"`
	Timeout            time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
	BreakerFailures    uint32        `envconfig:"EMAIL_BREAKER_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"EMAIL_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

type DeliveryConfig struct {
	Enabled    bool          `envconfig:"DELIVERY_ENABLED" default:"true"`
	IdleWait   time.Duration `envconfig:"DELIVERY_IDLE_WAIT" default:"10s"`
	ErrorWait  time.Duration `envconfig:"DELIVERY_ERROR_WAIT" default:"1s"`
	MaxRetries int32         `envconfig:"DELIVERY_MAX_RETRIES" default:"5"`
	RetryBase  time.Duration `envconfig:"DELIVERY_RETRY_BASE" default:"1s"`
	RetryMax   time.Duration `envconfig:"DELIVERY_RETRY_MAX" default:"5m"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"PUBLISH_RATE_RPS" default:"2"`
	Burst int     `envconfig:"PUBLISH_RATE_BURST" default:"5"`
}

type OTELConfig struct {
	Enabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	Insecure    bool    `envconfig:"OTEL_INSECURE" default:"true"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"newsletter-delivery"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
}

type MetricsConfig struct {
	QueueDepthSchedule string `envconfig:"METRICS_QUEUE_DEPTH_SCHEDULE" default:"@every 15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-newsletter-delivery",
			Duration: "1h",
		},
		Idempotency: IdempotencyConfig{
			LockTimeout:   2 * time.Second,
			SweepSchedule: "@every 1h",
		},
		Email: EmailConfig{
			BaseURL:            "http://127.0.0.1:0",
			Sender:             "newsletter@example.com",
			AuthToken:          "test-token",
			Timeout:            2 * time.Second,
			BreakerFailures:    100,
			BreakerOpenTimeout: time.Second,
		},
		Delivery: DeliveryConfig{
			Enabled:    false, // tests drive the worker explicitly
			IdleWait:   50 * time.Millisecond,
			ErrorWait:  50 * time.Millisecond,
			MaxRetries: 3,
			RetryBase:  10 * time.Millisecond,
			RetryMax:   100 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
		OTEL: OTELConfig{
			ServiceName: "newsletter-delivery-test",
			SampleRatio: 1,
		},
		Metrics: MetricsConfig{
			QueueDepthSchedule: "@every 15s",
		},
	}
}
