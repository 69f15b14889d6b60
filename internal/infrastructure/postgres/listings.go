package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/travelpoint-api/internal/domain"
)

type GuideRepo struct{ t table[domain.Guide] }

func NewGuideRepo(db *sqlx.DB) *GuideRepo {
	return &GuideRepo{t: table[domain.Guide]{
		db:   db,
		name: "guides",
		selectFrom: `SELECT t.id, t.user_id, (u.first_name || ' ' || u.last_name) AS name, u.email,
			u.phone_number, u.profile_pic, t.language, t.location, t.preference, t.description, t.price,
			t.availability, t.document_path, t.photo_path, t.status, t.created_at
			FROM guides t JOIN users u ON u.id = t.user_id`,
		ownerCol: "user_id",
	}}
}

func (r *GuideRepo) Create(ctx context.Context, g *domain.Guide) error {
	return r.t.insert(ctx, `
		INSERT INTO guides (user_id, language, location, preference, description, price, document_path, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, availability, status, created_at`,
		[]interface{}{&g.GuideID, &g.Availability, &g.Status, &g.CreatedAt},
		g.UserID, g.Language, g.Location, g.Preference, g.Description, g.Price, g.DocumentPath, g.PhotoPath)
}

func (r *GuideRepo) Get(ctx context.Context, id int64) (*domain.Guide, error) { return r.t.get(ctx, id) }
func (r *GuideRepo) List(ctx context.Context, p domain.Page) ([]domain.Guide, error) {
	return r.t.list(ctx, p)
}
func (r *GuideRepo) LatestFor(ctx context.Context, userID int64) (*domain.Guide, error) {
	return r.t.latestFor(ctx, userID)
}
func (r *GuideRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.t.update(ctx, id, updates)
}
func (r *GuideRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }

type EquipmentRepo struct{ t table[domain.Equipment] }

func NewEquipmentRepo(db *sqlx.DB) *EquipmentRepo {
	return &EquipmentRepo{t: table[domain.Equipment]{
		db:   db,
		name: "equipments",
		selectFrom: `SELECT t.id, t.owner_id, t.name, t.type, t.description, t.condition, t.price_per_day,
			t.photo_path, t.status, t.created_at FROM equipments t`,
		ownerCol: "owner_id",
	}}
}

func (r *EquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	return r.t.insert(ctx, `
		INSERT INTO equipments (owner_id, name, type, description, condition, price_per_day, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at`,
		[]interface{}{&e.EquipmentID, &e.Status, &e.CreatedAt},
		e.OwnerID, e.Name, e.Type, e.Description, e.Condition, e.PricePerDay, e.PhotoPath)
}

func (r *EquipmentRepo) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.t.get(ctx, id)
}
func (r *EquipmentRepo) List(ctx context.Context, p domain.Page) ([]domain.Equipment, error) {
	return r.t.list(ctx, p)
}
func (r *EquipmentRepo) LatestFor(ctx context.Context, ownerID int64) (*domain.Equipment, error) {
	return r.t.latestFor(ctx, ownerID)
}
func (r *EquipmentRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.t.update(ctx, id, updates)
}
func (r *EquipmentRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }

type VehicleRepo struct{ t table[domain.Vehicle] }

func NewVehicleRepo(db *sqlx.DB) *VehicleRepo {
	return &VehicleRepo{t: table[domain.Vehicle]{
		db:   db,
		name: "vehicles",
		selectFrom: `SELECT t.id, t.owner_id, t.type, t.capacity, t.milage, t.price, t.description,
			t.document_path, t.photo_path, t.status, t.created_at FROM vehicles t`,
		ownerCol: "owner_id",
	}}
}

func (r *VehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.t.insert(ctx, `
		INSERT INTO vehicles (owner_id, type, capacity, milage, price, description, document_path, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at`,
		[]interface{}{&v.VehicleID, &v.Status, &v.CreatedAt},
		v.OwnerID, v.Type, v.Capacity, v.Milage, v.Price, v.Description, v.DocumentPath, v.PhotoPath)
}

func (r *VehicleRepo) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return r.t.get(ctx, id)
}
func (r *VehicleRepo) List(ctx context.Context, p domain.Page) ([]domain.Vehicle, error) {
	return r.t.list(ctx, p)
}
func (r *VehicleRepo) LatestFor(ctx context.Context, ownerID int64) (*domain.Vehicle, error) {
	return r.t.latestFor(ctx, ownerID)
}
func (r *VehicleRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.t.update(ctx, id, updates)
}
func (r *VehicleRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }

type AuthorityRepo struct{ t table[domain.Authority] }

func NewAuthorityRepo(db *sqlx.DB) *AuthorityRepo {
	return &AuthorityRepo{t: table[domain.Authority]{
		db:   db,
		name: "authorities",
		selectFrom: `SELECT t.id, t.user_id, t.name, t.location, t.description, t.document_path,
			t.photo_path, t.status, t.created_at FROM authorities t`,
		ownerCol: "user_id",
	}}
}

func (r *AuthorityRepo) Create(ctx context.Context, a *domain.Authority) error {
	return r.t.insert(ctx, `
		INSERT INTO authorities (user_id, name, location, description, document_path, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at`,
		[]interface{}{&a.AuthorityID, &a.Status, &a.CreatedAt},
		a.UserID, a.Name, a.Location, a.Description, a.DocumentPath, a.PhotoPath)
}

func (r *AuthorityRepo) Get(ctx context.Context, id int64) (*domain.Authority, error) {
	return r.t.get(ctx, id)
}
func (r *AuthorityRepo) List(ctx context.Context, p domain.Page) ([]domain.Authority, error) {
	return r.t.list(ctx, p)
}
func (r *AuthorityRepo) LatestFor(ctx context.Context, userID int64) (*domain.Authority, error) {
	return r.t.latestFor(ctx, userID)
}
func (r *AuthorityRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.t.update(ctx, id, updates)
}
func (r *AuthorityRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }
