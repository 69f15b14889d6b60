package post

import (
	"context"
	"errors"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

const imagesFolder = "post_images"

type Service interface {
	Create(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error)
	Like(ctx context.Context, postID int64) (int, error)
	Get(ctx context.Context, postID int64) (*domain.Post, error)
	Feed(ctx context.Context, page domain.Page) ([]domain.Post, error)
}

type postStore interface {
	Create(ctx context.Context, p *domain.Post) error
	Like(ctx context.Context, id int64) (int, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, page domain.Page) ([]domain.Post, error)
}

type imageStore interface {
	StoreImage(ctx context.Context, folder string, up domain.Upload) (string, error)
}

type service struct {
	repo  postStore
	media imageStore
}

func NewService(repo postStore, media imageStore) Service {
	return &service{repo: repo, media: media}
}

// Create stores every image before inserting the post. A failed upload aborts the post.
func (s *service) Create(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		url, err := s.media.StoreImage(ctx, imagesFolder, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	p := &domain.Post{
		PosterID:    req.PosterID,
		Caption:     req.Caption,
		Images:      urls,
		VideoURL:    req.VideoURL,
		Location:    req.Location,
		TaggedUsers: req.TaggedUsers,
	}
	if p.TaggedUsers == nil {
		p.TaggedUsers = []int64{}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Like(ctx context.Context, postID int64) (int, error) {
	likes, err := s.repo.Like(ctx, postID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, domain.NotFound("Post")
	}
	return likes, err
}

func (s *service) Get(ctx context.Context, postID int64) (*domain.Post, error) {
	p, err := s.repo.Get(ctx, postID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Post")
	}
	return p, err
}

func (s *service) Feed(ctx context.Context, page domain.Page) ([]domain.Post, error) {
	return s.repo.List(ctx, page)
}
