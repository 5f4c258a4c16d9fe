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
	Server  ServerConfig
	DB      DBConfig
	Tx      TxConfig
	CORS    CORSConfig
	Cookie  CookieConfig
	Log     LogConfig
	JWT     JWTConfig
	Kafka   KafkaConfig
	Notify  NotifyConfig
	Tracing TracingConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string        `envconfig:"DB_HOST" default:"localhost"`
	Port        string        `envconfig:"DB_PORT" default:"5432"`
	User        string        `envconfig:"DB_USER" required:"true"`
	Password    string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string        `envconfig:"DB_NAME" required:"true"`
	SSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string        `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns    int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns    int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLife time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	AutoMigrate bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// TxConfig controls the retry loop for serialization failures and deadlocks.
// LockTimeout bounds waits on locked product and coupon rows; zero disables it.
type TxConfig struct {
	MaxRetries  int           `envconfig:"TX_MAX_RETRIES" default:"3"`
	RetryBase   time.Duration `envconfig:"TX_RETRY_BASE" default:"100ms"`
	LockTimeout time.Duration `envconfig:"TX_LOCK_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
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
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type KafkaConfig struct {
	Enabled       bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers       []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	LowStockTopic string        `envconfig:"KAFKA_LOW_STOCK_TOPIC" default:"inventory.low-stock"`
	BatchTimeout  time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
}

// NotifyConfig sizes the fire-and-forget low-stock notifier
type NotifyConfig struct {
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	Workers        int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	PublishTimeout time.Duration `envconfig:"NOTIFY_PUBLISH_TIMEOUT" default:"5s"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
	Insecure    bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"commerce-ledger"`
	Version     string `envconfig:"OTEL_SERVICE_VERSION" default:"dev"`
}

// SeedConfig creates an admin account at startup when both fields are set.
type SeedConfig struct {
	AdminEmail    string `envconfig:"SEED_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
}

func (c SeedConfig) Enabled() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
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

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "Asia/Tokyo",
			MaxConns:    40,
			MinConns:    1,
			MaxConnLife: time.Hour,
		},
		Tx: TxConfig{
			MaxRetries:  5,
			RetryBase:   10 * time.Millisecond,
			LockTimeout: 2 * time.Second,
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
			Secret:               "test-secret-key-for-commerce-ledger",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Kafka: KafkaConfig{
			Enabled:       false,
			LowStockTopic: "inventory.low-stock",
		},
		Notify: NotifyConfig{
			QueueSize:      16,
			Workers:        1,
			PublishTimeout: time.Second,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "commerce-ledger-test",
		},
	}
}
