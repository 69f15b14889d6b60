package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OTP_STORE_BACKEND", "")
	t.Setenv("OTP_TTL_MINUTES", "")
	t.Setenv("OTP_SINGLE_USE", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("AUTH_RATE_LIMIT_RPS", "")
	t.Setenv("AUTH_RATE_LIMIT_BURST", "")

	cfg := Load()

	assert.Equal(t, StoreMemory, cfg.OTPStoreBackend)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL())
	assert.True(t, cfg.OTPSingleUse)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, 5, cfg.AuthRateLimitRPS)
	assert.Equal(t, 10, cfg.AuthRateLimitBurst)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, 5, cfg.OTPMaxAttempts)
	assert.True(t, cfg.BookingSMSEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OTP_STORE_BACKEND", "Redis")
	t.Setenv("OTP_TTL_MINUTES", "0")
	t.Setenv("OTP_SINGLE_USE", "false")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("OTP_MAX_ATTEMPTS", "0")
	t.Setenv("BOOKING_SMS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, StoreRedis, cfg.OTPStoreBackend)
	assert.Zero(t, cfg.OTPTTL())
	assert.False(t, cfg.OTPSingleUse)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TrustProxy)
	assert.Zero(t, cfg.OTPMaxAttempts)
	assert.False(t, cfg.BookingSMSEnabled)
}

func TestGetEnvBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	assert.True(t, getEnvBool("SOME_FLAG", true))
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
