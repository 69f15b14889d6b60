package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/infrastructure/postgres"
	"github.com/travelpoint-api/internal/pkg/validate"
)

const (
	dateLayout        = "2006-01-02"
	profilePicsFolder = "profile_pics"
)

type Service interface {
	GetProfile(ctx context.Context, userID, viewerID int64) (*domain.Profile, error)
	Update(ctx context.Context, req domain.UpdateProfileRequest) error
	Posts(ctx context.Context, posterID int64) ([]domain.Post, error)
}

type userStore interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
}

type followStats interface {
	Stats(ctx context.Context, userID, viewerID int64) (domain.FollowStats, error)
}

type postLister interface {
	ListByPoster(ctx context.Context, posterID int64) ([]domain.Post, error)
}

type imageStore interface {
	StoreImage(ctx context.Context, folder string, up domain.Upload) (string, error)
}

type ServiceDeps struct {
	UserRepo   userStore
	FollowRepo followStats
	PostRepo   postLister
	Media      imageStore
}

type service struct {
	repo    userStore
	follows followStats
	posts   postLister
	media   imageStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:    deps.UserRepo,
		follows: deps.FollowRepo,
		posts:   deps.PostRepo,
		media:   deps.Media,
	}
}

// GetProfile returns userID's profile with follow counts; IsFollowed is relative to viewerID (0 for anonymous).
func (s *service) GetProfile(ctx context.Context, userID, viewerID int64) (*domain.Profile, error) {
	u, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	stats, err := s.follows.Stats(ctx, userID, viewerID)
	if err != nil {
		return nil, err
	}
	p := &domain.Profile{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Email:       u.Email,
		ContactInfo: u.PhoneNumber,
		ProfilePic:  u.ProfilePic,
		Bio:         u.Bio,
		Type:        u.Type,
		Followers:   stats.Followers,
		Following:   stats.Following,
		IsFollowed:  stats.IsFollowed,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		p.DateOfBirth = &dob
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateProfileRequest) error {
	if err := validate.Struct(req); err != nil {
		return domain.Invalid(err.Error())
	}
	updates := map[string]interface{}{}
	if req.Username != nil {
		updates[postgres.ColUsername] = *req.Username
	}
	if req.Email != nil {
		updates[postgres.ColEmail] = *req.Email
	}
	if req.ContactInfo != nil {
		updates[postgres.ColPhoneNumber] = *req.ContactInfo
	}
	if req.DateOfBirth != nil {
		t, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return domain.Invalid("dateOfBirth must be in YYYY-MM-DD format")
		}
		updates[postgres.ColDateOfBirth] = t
	}
	if req.Bio != nil {
		updates[postgres.ColBio] = *req.Bio
	}
	if len(updates) == 0 && req.ProfilePic == nil {
		return fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, req.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if req.ProfilePic != nil {
		url, err := s.media.StoreImage(ctx, profilePicsFolder, *req.ProfilePic)
		if err != nil {
			return err
		}
		updates[postgres.ColProfilePic] = url
	}
	if err := s.repo.Update(ctx, req.UserID, updates); err != nil {
		return fmt.Errorf("update profile %d: %w", req.UserID, err)
	}
	return nil
}

// Posts returns the user's posts, newest first. No posts is reported as not found.
func (s *service) Posts(ctx context.Context, posterID int64) ([]domain.Post, error) {
	posts, err := s.posts.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("no posts found for this user: %w", domain.ErrNotFound)
	}
	return posts, nil
}
