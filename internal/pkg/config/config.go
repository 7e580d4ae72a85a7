package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Payment  PaymentConfig
	Lease    LeaseConfig
	Outbox   OutboxConfig
	Broker   BrokerConfig
	Renderer RendererConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Env string `envconfig:"APP_ENV" default:"development"`
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type PaymentMode string

const (
	PaymentModeLive    PaymentMode = "live"
	PaymentModeSandbox PaymentMode = "sandbox"
)

// The mode is process-wide. Requests cannot choose it.
type PaymentConfig struct {
	Mode            PaymentMode   `envconfig:"PAYMENT_MODE" default:"live"`
	OmisePublicKey  string        `envconfig:"OMISE_PUBLIC_KEY"`
	OmiseSecretKey  string        `envconfig:"OMISE_SECRET_KEY"`
	GatewayTimeout  time.Duration `envconfig:"PAYMENT_GATEWAY_TIMEOUT" default:"10s"`
	DefaultCurrency string        `envconfig:"PAYMENT_CURRENCY" default:"eur"`
}

type LeaseConfig struct {
	// Used when a property or unit has no explicit deposit amount.
	DepositMonths int64 `envconfig:"LEASE_DEPOSIT_MONTHS" default:"2"`
}

type OutboxConfig struct {
	Schedule     string `envconfig:"OUTBOX_SCHEDULE" default:"*/30 * * * * *"`
	BatchSize    int32  `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int32  `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"8"`
	OverdueCron  string `envconfig:"INVOICE_OVERDUE_SCHEDULE" default:"0 15 2 * * *"`
	ExpireCron   string `envconfig:"RESERVATION_EXPIRE_SCHEDULE" default:"0 0 * * * *"`
	ExpiryWindow int32  `envconfig:"RESERVATION_EXPIRE_BATCH" default:"200"`
}

type BrokerConfig struct {
	// Empty URL falls back to log-only notifications.
	URL      string `envconfig:"RABBIT_URL"`
	Exchange string `envconfig:"RABBIT_EXCHANGE" default:"lease.exchange"`
}

type RendererConfig struct {
	BaseURL string        `envconfig:"RENDERER_BASE_URL"`
	Timeout time.Duration `envconfig:"RENDERER_TIMEOUT" default:"15s"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"otel-collector:4317"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"lease-engine"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// sandboxEnvs are the only environments where the sandbox payment bypass may run.
var sandboxEnvs = map[string]bool{
	"local":       true,
	"dev":         true,
	"development": true,
	"test":        true,
	"ci":          true,
}

// AllowsSandbox reports whether APP_ENV names a known non-production environment.
// Empty or unrecognised values do not.
func (a AppConfig) AllowsSandbox() bool {
	return sandboxEnvs[strings.ToLower(strings.TrimSpace(a.Env))]
}

// Validate rejects combinations that must never reach a running process,
// most importantly the sandbox payment bypass in production.
func (c Config) Validate() error {
	switch c.Payment.Mode {
	case PaymentModeLive:
		if c.Payment.OmiseSecretKey == "" || c.Payment.OmisePublicKey == "" {
			return fmt.Errorf("PAYMENT_MODE=live requires OMISE_PUBLIC_KEY and OMISE_SECRET_KEY")
		}
	case PaymentModeSandbox:
		if !c.App.AllowsSandbox() {
			return fmt.Errorf("PAYMENT_MODE=sandbox is not allowed when APP_ENV=%q", c.App.Env)
		}
	default:
		return fmt.Errorf("invalid PAYMENT_MODE %q", c.Payment.Mode)
	}
	if c.Lease.DepositMonths < 0 {
		return fmt.Errorf("LEASE_DEPOSIT_MONTHS must not be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{Env: "test"},
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Payment: PaymentConfig{
			Mode:            PaymentModeSandbox,
			GatewayTimeout:  time.Second,
			DefaultCurrency: "eur",
		},
		Lease: LeaseConfig{DepositMonths: 2},
		Outbox: OutboxConfig{
			Schedule:     "*/5 * * * * *",
			BatchSize:    10,
			MaxAttempts:  3,
			OverdueCron:  "0 15 2 * * *",
			ExpireCron:   "0 0 * * * *",
			ExpiryWindow: 50,
		},
		Broker: BrokerConfig{Exchange: "lease.exchange"},
	}
}
