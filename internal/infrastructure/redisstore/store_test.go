package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, ttl), m
}

func TestOTP_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t, 10*time.Minute)

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	assert.Equal(t, 10*time.Minute, m.TTL("otp:a@b.com"))

	ok, err := s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(ctx, "a@b.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "a@b.com"))
	assert.False(t, m.Exists("otp:a@b.com"))
}

func TestOTP_Expires(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t, time.Minute)

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	m.FastForward(2 * time.Minute)

	ok, err := s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTP_NoTTL(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t, 0)

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	assert.Zero(t, m.TTL("otp:a@b.com"))
}

func TestRecordFailure(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t, 10*time.Minute)

	n, err := s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, m.Exists("otp_failures:a@b.com"))

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	_, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	n, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 10*time.Minute, m.TTL("otp_failures:a@b.com"))

	require.NoError(t, s.Save(ctx, "a@b.com", "654321"))
	assert.False(t, m.Exists("otp_failures:a@b.com"), "a new code resets the count")

	_, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "a@b.com"))
	assert.False(t, m.Exists("otp_failures:a@b.com"))
}

func TestPending_StoresDigestOnly(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t, time.Minute)

	require.NoError(t, s.Stash(ctx, &domain.RegistrationPayload{Email: "a@b.com", PasswordHash: "$2a$10$digest"}))

	raw, err := m.Get("pending:a@b.com")
	require.NoError(t, err)
	assert.Contains(t, raw, `"password_hash":"$2a$10$digest"`)
	assert.NotContains(t, raw, `"password":`)
}

func TestPending_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, time.Minute)
	p := &domain.RegistrationPayload{Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Username: "annlee", PasswordHash: "$2a$10$digest"}

	require.NoError(t, s.Stash(ctx, p))

	got, err := s.Peek(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.NoError(t, s.Discard(ctx, "a@b.com"))
	_, err = s.Peek(ctx, "a@b.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnreachable(t *testing.T) {
	s, m := newTestStore(t, time.Minute)
	m.Close()

	_, err := s.Validate(context.Background(), "a@b.com", "1")
	assert.Error(t, err)
}
