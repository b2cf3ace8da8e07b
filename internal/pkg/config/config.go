package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, limits)
// - empty URL / address: the related integration falls back to a local implementation
// -----------------------------------------------------------------------------

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Storage    StorageConfig
	Redis      RedisConfig
	Gateways   GatewayConfig
	Redemption RedemptionConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Port        string `envconfig:"PORT" required:"true"`
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
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
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Santiago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER"`
	// JWKSURL enables RS256 tokens issued by the corporate identity provider.
	JWKSURL string        `envconfig:"JWT_JWKS_URL"`
	JWKSTTL time.Duration `envconfig:"JWT_JWKS_TTL" default:"1h"`
}

type CookieConfig struct {
	Name     string `envconfig:"COOKIE_NAME" default:"session"`
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type StorageConfig struct {
	Enabled       bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint      string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKey     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretKey     string `envconfig:"STORAGE_SECRET_KEY"`
	Bucket        string `envconfig:"STORAGE_BUCKET" default:"beneficios"`
	Region        string `envconfig:"STORAGE_REGION" default:"us-east-1"`
	UseSSL        bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	MaxImageBytes int64  `envconfig:"STORAGE_MAX_IMAGE_BYTES" default:"5242880"` // 5MiB
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	LeaveDaysTTL time.Duration `envconfig:"REDIS_LEAVE_DAYS_TTL" default:"15m"`
}

type GatewayConfig struct {
	EmailURL string        `envconfig:"EMAIL_SERVICE_URL"`
	AuditURL string        `envconfig:"AUDIT_SERVICE_URL"`
	APIKey   string        `envconfig:"GATEWAY_API_KEY"`
	Timeout  time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"5s"`
}

type RedemptionConfig struct {
	LeaveDaysURL     string `envconfig:"LEAVE_DAYS_URL"`
	DefaultLeaveDays int    `envconfig:"LEAVE_DAYS_DEFAULT" default:"15"`
	MaxLeaveDays     int    `envconfig:"LEAVE_DAYS_MAX" default:"30"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
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
			Port:        "8889", // Test port
			Environment: EnvStaging,
			Version:     "test",
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
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-signing-tokens",
			Duration: time.Hour,
			JWKSTTL:  time.Hour,
		},
		Cookie: CookieConfig{
			Name:     "session",
			SameSite: "Lax",
		},
		Storage: StorageConfig{
			Bucket:        "beneficios",
			Region:        "us-east-1",
			MaxImageBytes: 5 << 20,
		},
		Redis: RedisConfig{
			LeaveDaysTTL: time.Minute,
		},
		Gateways: GatewayConfig{
			Timeout: time.Second,
		},
		Redemption: RedemptionConfig{
			DefaultLeaveDays: 15,
			MaxLeaveDays:     30,
		},
	}
}
