package listing

import (
	"context"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

type VehicleService interface {
	Create(ctx context.Context, req domain.CreateVehicleRequest) (*domain.Vehicle, error)
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, page domain.Page) ([]domain.Vehicle, error)
	Status(ctx context.Context, ownerID int64) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, req domain.UpdateVehicleRequest) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleStore interface {
	store[domain.Vehicle]
	Create(ctx context.Context, v *domain.Vehicle) error
}

type vehicleService struct {
	core[domain.Vehicle]
	repo vehicleStore
}

func NewVehicleService(repo vehicleStore, media mediaStore) VehicleService {
	return &vehicleService{
		core: core[domain.Vehicle]{repo: repo, media: media, resource: "Vehicle", folder: "vehicles"},
		repo: repo,
	}
}

func (s *vehicleService) Create(ctx context.Context, req domain.CreateVehicleRequest) (*domain.Vehicle, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	photo, doc, err := s.attachments(ctx, req.Photo, req.Document)
	if err != nil {
		return nil, err
	}
	v := &domain.Vehicle{
		OwnerID:      req.OwnerID,
		Type:         req.Type,
		Capacity:     req.Capacity,
		Milage:       req.Milage,
		Price:        req.Price,
		Description:  req.Description,
		DocumentPath: doc,
		PhotoPath:    photo,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, created(err)
	}
	return v, nil
}

func (s *vehicleService) Update(ctx context.Context, id int64, req domain.UpdateVehicleRequest) (*domain.Vehicle, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	updates := map[string]interface{}{}
	setIf(updates, colType, req.Type)
	setIf(updates, colCapacity, req.Capacity)
	setIf(updates, colMilage, req.Milage)
	setIf(updates, colPrice, req.Price)
	setIf(updates, colDescription, req.Description)
	return s.update(ctx, id, updates)
}
