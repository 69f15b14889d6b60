package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported OTP store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreDynamo = "dynamo"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	DB Database

	JWTPrivateKeyPath        string
	JWTPublicKeyPath         string
	AccessTokenExpireMinutes int

	OTPStoreBackend string
	OTPTTLMinutes   int
	OTPSingleUse    bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AWSRegion                string
	AWSEndpointURL           string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID           string
	AWSSecretKey             string
	DynamoTableVerifications string
	S3BucketName             string
	SNSRegion                string
	BookingSMSEnabled        bool

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	GoogleClientID string

	AllowedOrigins        []string // CORS allowed origins
	RequestTimeoutSeconds int

	// Per-IP token bucket on the registration and login endpoints.
	AuthRateLimitRPS   int
	AuthRateLimitBurst int
	// TrustProxy takes the client IP from forwarding headers. Enable only behind a
	// proxy that overwrites them.
	TrustProxy bool
	// OTPMaxAttempts wrong codes discard a pending registration; zero disables the cap.
	OTPMaxAttempts int
}

// Database holds the Postgres connection and pool settings.
type Database struct {
	Host                   string
	Port                   int
	User                   string
	Password               string
	Name                   string
	SSLMode                string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeMinutes int
	AutoMigrate            bool
}

// DSN renders the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// OTPTTL returns zero when OTP entries should never expire.
func (c *Config) OTPTTL() time.Duration {
	if c.OTPTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.OTPTTLMinutes) * time.Minute
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8000"),
		AppEnv:  getEnv("APP_ENV", "development"),
		DB: Database{
			Host:                   getEnv("DB_HOST", "localhost"),
			Port:                   getEnvInt("DB_PORT", 5432),
			User:                   getEnv("DB_USER", "postgres"),
			Password:               getEnv("DB_PASSWORD", ""),
			Name:                   getEnv("DB_NAME", "travelpoint"),
			SSLMode:                getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:           getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:           getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMinutes: getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30),
			AutoMigrate:            getEnvBool("DB_AUTO_MIGRATE", true),
		},
		JWTPrivateKeyPath:        getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:         getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		OTPStoreBackend:          strings.ToLower(getEnv("OTP_STORE_BACKEND", StoreMemory)),
		OTPTTLMinutes:            getEnvInt("OTP_TTL_MINUTES", 10),
		OTPSingleUse:             getEnvBool("OTP_SINGLE_USE", true),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		AWSRegion:                getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:           getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID:           getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:             getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTableVerifications: getEnv("DYNAMO_TABLE_VERIFICATIONS", "registration_verifications"),
		S3BucketName:             getEnv("S3_BUCKET_NAME", "travelpoint-media"),
		SNSRegion:                getEnv("SNS_REGION", "us-east-1"),
		BookingSMSEnabled:        getEnvBool("BOOKING_SMS_ENABLED", true),
		SMTPHost:                 getEnv("SMTP_HOST", "localhost"),
		SMTPPort:                 getEnvInt("SMTP_PORT", 1025),
		SMTPFrom:                 getEnv("SMTP_FROM", "noreply@travelpoint.local"),
		SMTPUsername:             getEnv("SMTP_USERNAME", ""),
		SMTPPassword:             getEnv("SMTP_PASSWORD", ""),
		GoogleClientID:           getEnv("GOOGLE_CLIENT_ID", ""),
		AllowedOrigins:           strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RequestTimeoutSeconds:    getEnvInt("REQUEST_TIMEOUT_SECONDS", 30),
		AuthRateLimitRPS:         getEnvInt("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst:       getEnvInt("AUTH_RATE_LIMIT_BURST", 10),
		TrustProxy:               getEnvBool("TRUST_PROXY", false),
		OTPMaxAttempts:           getEnvInt("OTP_MAX_ATTEMPTS", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
