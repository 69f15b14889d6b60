// Package redisstore keeps OTP codes and pending registrations in Redis.
package redisstore

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/travelpoint-api/internal/domain"
)

const (
	otpPrefix      = "otp:"
	failuresPrefix = "otp_failures:"
	pendingPrefix  = "pending:"
)

// Store writes every key with the configured TTL; a zero TTL means no expiry.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// NewClient connects and pings, failing fast when Redis is unreachable.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// Save replaces the code and resets its failure count in one transaction.
func (s *Store) Save(ctx context.Context, email, code string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpPrefix+email, code, s.ttl)
		pipe.Del(ctx, failuresPrefix+email)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set otp: %w", err)
	}
	return nil
}

func (s *Store) Validate(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, otpPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get otp: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

// RecordFailure increments the failure counter, which expires with the code.
func (s *Store) RecordFailure(ctx context.Context, email string) (int, error) {
	exists, err := s.rdb.Exists(ctx, otpPrefix+email).Result()
	if err != nil {
		return 0, fmt.Errorf("redis exists otp: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}
	var incr *redis.IntCmd
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, failuresPrefix+email)
		if s.ttl > 0 {
			pipe.Expire(ctx, failuresPrefix+email, s.ttl)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis incr otp failures: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *Store) Delete(ctx context.Context, email string) error {
	if err := s.rdb.Del(ctx, otpPrefix+email, failuresPrefix+email).Err(); err != nil {
		return fmt.Errorf("redis del otp: %w", err)
	}
	return nil
}

func (s *Store) Stash(ctx context.Context, p *domain.RegistrationPayload) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pending registration: %w", err)
	}
	if err := s.rdb.Set(ctx, pendingPrefix+p.Email, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set pending: %w", err)
	}
	return nil
}

func (s *Store) Peek(ctx context.Context, email string) (*domain.RegistrationPayload, error) {
	b, err := s.rdb.Get(ctx, pendingPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("pending registration: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get pending: %w", err)
	}
	var p domain.RegistrationPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal pending registration: %w", err)
	}
	return &p, nil
}

func (s *Store) Discard(ctx context.Context, email string) error {
	if err := s.rdb.Del(ctx, pendingPrefix+email).Err(); err != nil {
		return fmt.Errorf("redis del pending: %w", err)
	}
	return nil
}
