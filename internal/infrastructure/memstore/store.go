// Package memstore keeps OTP codes and pending registrations in process memory.
package memstore

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/travelpoint-api/internal/domain"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time // zero means no expiry
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type otpState struct {
	code     string
	failures int
}

// Store is safe for concurrent use. Entries are evicted lazily on read and by Sweep.
type Store struct {
	mu      sync.Mutex
	otps    map[string]entry[otpState]
	pending map[string]entry[domain.RegistrationPayload]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Store. A zero ttl keeps entries until overwritten or deleted.
func New(ttl time.Duration) *Store {
	return &Store{
		otps:    make(map[string]entry[otpState]),
		pending: make(map[string]entry[domain.RegistrationPayload]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *Store) Save(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = entry[otpState]{value: otpState{code: code}, expiresAt: s.deadline()}
	return nil
}

func (s *Store) Validate(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.otps[email]
	if !ok {
		return false, nil
	}
	if e.expired(s.now()) {
		delete(s.otps, email)
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(e.value.code), []byte(code)) == 1, nil
}

func (s *Store) RecordFailure(_ context.Context, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.otps[email]
	if !ok || e.expired(s.now()) {
		return 0, nil
	}
	e.value.failures++
	s.otps[email] = e
	return e.value.failures, nil
}

func (s *Store) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, email)
	return nil
}

func (s *Store) Stash(_ context.Context, p *domain.RegistrationPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[p.Email] = entry[domain.RegistrationPayload]{value: *p, expiresAt: s.deadline()}
	return nil
}

func (s *Store) Peek(_ context.Context, email string) (*domain.RegistrationPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[email]
	if ok && e.expired(s.now()) {
		delete(s.pending, email)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("pending registration: %w", domain.ErrNotFound)
	}
	p := e.value
	return &p, nil
}

func (s *Store) Discard(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, email)
	return nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for k, e := range s.otps {
		if e.expired(now) {
			delete(s.otps, k)
			n++
		}
	}
	for k, e := range s.pending {
		if e.expired(now) {
			delete(s.pending, k)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}
