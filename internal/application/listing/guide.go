package listing

import (
	"context"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

type GuideService interface {
	Create(ctx context.Context, req domain.CreateGuideRequest) (*domain.Guide, error)
	Get(ctx context.Context, id int64) (*domain.Guide, error)
	List(ctx context.Context, page domain.Page) ([]domain.Guide, error)
	Status(ctx context.Context, userID int64) (*domain.Guide, error)
	Update(ctx context.Context, id int64, req domain.UpdateGuideRequest) (*domain.Guide, error)
	Delete(ctx context.Context, id int64) error
}

type guideStore interface {
	store[domain.Guide]
	Create(ctx context.Context, g *domain.Guide) error
}

type guideService struct {
	core[domain.Guide]
	repo guideStore
}

func NewGuideService(repo guideStore, media mediaStore) GuideService {
	return &guideService{
		core: core[domain.Guide]{repo: repo, media: media, resource: "Guide", folder: "guides"},
		repo: repo,
	}
}

func (s *guideService) Create(ctx context.Context, req domain.CreateGuideRequest) (*domain.Guide, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	photo, doc, err := s.attachments(ctx, req.Photo, req.Document)
	if err != nil {
		return nil, err
	}
	g := &domain.Guide{
		UserID:       req.UserID,
		Language:     req.Language,
		Location:     req.Location,
		Preference:   req.Preference,
		Description:  req.Description,
		Price:        req.Price,
		DocumentPath: doc,
		PhotoPath:    photo,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, created(err)
	}
	// Re-read to pick up the owner's name and contact details.
	return s.Get(ctx, g.GuideID)
}

func (s *guideService) Update(ctx context.Context, id int64, req domain.UpdateGuideRequest) (*domain.Guide, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	updates := map[string]interface{}{}
	setIf(updates, colLanguage, req.Language)
	setIf(updates, colLocation, req.Location)
	setIf(updates, colPreference, req.Preference)
	setIf(updates, colDescription, req.Description)
	setIf(updates, colPrice, req.Price)
	setIf(updates, colAvailability, req.Availability)
	return s.update(ctx, id, updates)
}
