package listing

import (
	"context"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

type EquipmentService interface {
	Create(ctx context.Context, req domain.CreateEquipmentRequest) (*domain.Equipment, error)
	Get(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, page domain.Page) ([]domain.Equipment, error)
	Status(ctx context.Context, ownerID int64) (*domain.Equipment, error)
	Update(ctx context.Context, id int64, req domain.UpdateEquipmentRequest) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type equipmentStore interface {
	store[domain.Equipment]
	Create(ctx context.Context, e *domain.Equipment) error
}

type equipmentService struct {
	core[domain.Equipment]
	repo equipmentStore
}

func NewEquipmentService(repo equipmentStore, media mediaStore) EquipmentService {
	return &equipmentService{
		core: core[domain.Equipment]{repo: repo, media: media, resource: "Equipment", folder: "equipment"},
		repo: repo,
	}
}

func (s *equipmentService) Create(ctx context.Context, req domain.CreateEquipmentRequest) (*domain.Equipment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	photo, _, err := s.attachments(ctx, req.Photo, nil)
	if err != nil {
		return nil, err
	}
	e := &domain.Equipment{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Condition:   req.Condition,
		PricePerDay: req.PricePerDay,
		PhotoPath:   photo,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, created(err)
	}
	return e, nil
}

func (s *equipmentService) Update(ctx context.Context, id int64, req domain.UpdateEquipmentRequest) (*domain.Equipment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	updates := map[string]interface{}{}
	setIf(updates, colName, req.Name)
	setIf(updates, colType, req.Type)
	setIf(updates, colCondition, req.Condition)
	setIf(updates, colDescription, req.Description)
	setIf(updates, colPricePerDay, req.PricePerDay)
	return s.update(ctx, id, updates)
}
