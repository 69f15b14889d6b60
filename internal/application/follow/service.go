package follow

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

var ErrSelfFollow = fmt.Errorf("you cannot follow yourself: %w", domain.ErrBadRequest)

type Service interface {
	Follow(ctx context.Context, req domain.FollowRequest) error
	Unfollow(ctx context.Context, req domain.FollowRequest) error
	Followers(ctx context.Context, userID int64) ([]int64, error)
	Following(ctx context.Context, userID int64) ([]int64, error)
}

type followStore interface {
	Follow(ctx context.Context, userID, followerID int64) error
	Unfollow(ctx context.Context, userID, followerID int64) error
	Followers(ctx context.Context, userID int64) ([]int64, error)
	Following(ctx context.Context, userID int64) ([]int64, error)
}

type service struct {
	repo followStore
}

func NewService(repo followStore) Service {
	return &service{repo: repo}
}

func (s *service) check(req domain.FollowRequest) error {
	if req.UserID != 0 && req.UserID == req.FollowerID {
		return ErrSelfFollow
	}
	if err := validate.Struct(req); err != nil {
		return domain.Invalid(err.Error())
	}
	return nil
}

// Follow is idempotent; following twice leaves a single edge.
func (s *service) Follow(ctx context.Context, req domain.FollowRequest) error {
	if err := s.check(req); err != nil {
		return err
	}
	err := s.repo.Follow(ctx, req.UserID, req.FollowerID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}

func (s *service) Unfollow(ctx context.Context, req domain.FollowRequest) error {
	if err := s.check(req); err != nil {
		return err
	}
	err := s.repo.Unfollow(ctx, req.UserID, req.FollowerID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("not following this user: %w", domain.ErrNotFound)
	}
	return err
}

func (s *service) Followers(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.Followers(ctx, userID)
}

func (s *service) Following(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.Following(ctx, userID)
}
