package listing

import (
	"context"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

type AuthorityService interface {
	Create(ctx context.Context, req domain.CreateAuthorityRequest) (*domain.Authority, error)
	Get(ctx context.Context, id int64) (*domain.Authority, error)
	List(ctx context.Context, page domain.Page) ([]domain.Authority, error)
	Status(ctx context.Context, userID int64) (*domain.Authority, error)
	Update(ctx context.Context, id int64, req domain.UpdateAuthorityRequest) (*domain.Authority, error)
	Delete(ctx context.Context, id int64) error
}

type authorityStore interface {
	store[domain.Authority]
	Create(ctx context.Context, a *domain.Authority) error
}

type authorityService struct {
	core[domain.Authority]
	repo authorityStore
}

func NewAuthorityService(repo authorityStore, media mediaStore) AuthorityService {
	return &authorityService{
		core: core[domain.Authority]{repo: repo, media: media, resource: "Authority", folder: "authorities"},
		repo: repo,
	}
}

func (s *authorityService) Create(ctx context.Context, req domain.CreateAuthorityRequest) (*domain.Authority, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	photo, doc, err := s.attachments(ctx, req.Photo, req.Document)
	if err != nil {
		return nil, err
	}
	a := &domain.Authority{
		UserID:       req.UserID,
		Name:         req.Name,
		Location:     req.Location,
		Description:  req.Description,
		DocumentPath: doc,
		PhotoPath:    photo,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, created(err)
	}
	return a, nil
}

func (s *authorityService) Update(ctx context.Context, id int64, req domain.UpdateAuthorityRequest) (*domain.Authority, error) {
	updates := map[string]interface{}{}
	setIf(updates, colName, req.Name)
	setIf(updates, colLocation, req.Location)
	setIf(updates, colDescription, req.Description)
	return s.update(ctx, id, updates)
}
