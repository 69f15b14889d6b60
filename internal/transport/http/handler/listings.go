package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/travelpoint-api/internal/application/listing"
	"github.com/travelpoint-api/internal/domain"
)

type listingReader[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, page domain.Page) ([]T, error)
	Status(ctx context.Context, ownerID int64) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// listingRoutes serves the read and delete endpoints every listing kind shares.
type listingRoutes[T any] struct {
	svc        listingReader[T]
	resource   string
	ownerParam string
	owner      func(*T) int64
}

// ownedByCaller loads listing id and checks that the caller owns it.
func (l listingRoutes[T]) ownedByCaller(w http.ResponseWriter, r *http.Request, id int64) bool {
	v, err := l.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return false
	}
	return actingAs(w, r, l.owner(v), "cannot modify another user's "+strings.ToLower(l.resource))
}

// createdByCaller checks the owner id submitted with a new listing.
func (l listingRoutes[T]) createdByCaller(w http.ResponseWriter, r *http.Request, ownerID int64) bool {
	return actingAs(w, r, ownerID, "cannot register a "+strings.ToLower(l.resource)+" for another user")
}

func (l listingRoutes[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	v, err := l.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (l listingRoutes[T]) List(w http.ResponseWriter, r *http.Request) {
	out, err := l.svc.List(r.Context(), parsePage(r))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (l listingRoutes[T]) Status(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, l.ownerParam)
	if !ok {
		return
	}
	v, err := l.svc.Status(r.Context(), ownerID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (l listingRoutes[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !l.ownedByCaller(w, r, id) {
		return
	}
	if err := l.svc.Delete(r.Context(), id); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: l.resource + " deleted successfully"})
}

// withForm parses the multipart body, builds the request and reports conversion errors.
func withForm[Req any](w http.ResponseWriter, r *http.Request, build func(f *form) Req) (Req, func(), bool) {
	var zero Req
	f, err := parseForm(r)
	if err != nil {
		httpError(w, r, err)
		return zero, func() {}, false
	}
	req := build(f)
	if f.err != nil {
		f.Close()
		httpError(w, r, f.err)
		return zero, func() {}, false
	}
	return req, f.Close, true
}

// --- guides ---

type GuideHandler struct {
	listingRoutes[domain.Guide]
	svc listing.GuideService
}

func NewGuideHandler(svc listing.GuideService) *GuideHandler {
	return &GuideHandler{
		listingRoutes: listingRoutes[domain.Guide]{
			svc: svc, resource: "Guide", ownerParam: "user_id",
			owner: func(g *domain.Guide) int64 { return g.UserID },
		},
		svc: svc,
	}
}

func (h *GuideHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, done, ok := withForm(w, r, func(f *form) domain.CreateGuideRequest {
		return domain.CreateGuideRequest{
			UserID:      f.integer("user_id"),
			Language:    f.text("language"),
			Location:    f.text("location"),
			Preference:  f.text("preference"),
			Description: f.optString("description"),
			Price:       f.optFloat("price"),
			Document:    f.file("document"),
			Photo:       f.file("photo"),
		}
	})
	if !ok {
		return
	}
	defer done()
	if !h.createdByCaller(w, r, req.UserID) {
		return
	}
	g, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (h *GuideHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.ownedByCaller(w, r, id) {
		return
	}
	req, done, ok := withForm(w, r, func(f *form) domain.UpdateGuideRequest {
		return domain.UpdateGuideRequest{
			Language:     f.optString("language"),
			Location:     f.optString("location"),
			Preference:   f.optString("preference"),
			Description:  f.optString("description"),
			Price:        f.optFloat("price"),
			Availability: f.optBool("availability"),
		}
	})
	if !ok {
		return
	}
	defer done()
	g, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// --- equipment ---

type EquipmentHandler struct {
	listingRoutes[domain.Equipment]
	svc listing.EquipmentService
}

func NewEquipmentHandler(svc listing.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{
		listingRoutes: listingRoutes[domain.Equipment]{
			svc: svc, resource: "Equipment", ownerParam: "owner_id",
			owner: func(e *domain.Equipment) int64 { return e.OwnerID },
		},
		svc: svc,
	}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, done, ok := withForm(w, r, func(f *form) domain.CreateEquipmentRequest {
		return domain.CreateEquipmentRequest{
			OwnerID:     f.integer("owner_id"),
			Name:        f.text("name"),
			Type:        f.text("type"),
			Description: f.optString("description"),
			Condition:   f.optString("condition"),
			PricePerDay: f.optFloat("price_per_day"),
			Photo:       f.file("photo"),
		}
	})
	if !ok {
		return
	}
	defer done()
	if !h.createdByCaller(w, r, req.OwnerID) {
		return
	}
	e, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.ownedByCaller(w, r, id) {
		return
	}
	req, done, ok := withForm(w, r, func(f *form) domain.UpdateEquipmentRequest {
		return domain.UpdateEquipmentRequest{
			Name:        f.optString("name"),
			Type:        f.optString("type"),
			Condition:   f.optString("condition"),
			Description: f.optString("description"),
			PricePerDay: f.optFloat("price_per_day"),
		}
	})
	if !ok {
		return
	}
	defer done()
	e, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// --- vehicles ---

type VehicleHandler struct {
	listingRoutes[domain.Vehicle]
	svc listing.VehicleService
}

func NewVehicleHandler(svc listing.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		listingRoutes: listingRoutes[domain.Vehicle]{
			svc: svc, resource: "Vehicle", ownerParam: "owner_id",
			owner: func(v *domain.Vehicle) int64 { return v.OwnerID },
		},
		svc: svc,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, done, ok := withForm(w, r, func(f *form) domain.CreateVehicleRequest {
		return domain.CreateVehicleRequest{
			OwnerID:     f.integer("owner_id"),
			Type:        f.text("type"),
			Capacity:    int(f.integer("capacity")),
			Milage:      f.number("milage"),
			Price:       f.number("price"),
			Description: f.optString("description"),
			Document:    f.file("document"),
			Photo:       f.file("photo"),
		}
	})
	if !ok {
		return
	}
	defer done()
	if !h.createdByCaller(w, r, req.OwnerID) {
		return
	}
	v, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.ownedByCaller(w, r, id) {
		return
	}
	req, done, ok := withForm(w, r, func(f *form) domain.UpdateVehicleRequest {
		return domain.UpdateVehicleRequest{
			Type:        f.optString("type"),
			Capacity:    f.optInt("capacity"),
			Milage:      f.optFloat("milage"),
			Price:       f.optFloat("price"),
			Description: f.optString("description"),
		}
	})
	if !ok {
		return
	}
	defer done()
	v, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// --- authorities ---

type AuthorityHandler struct {
	listingRoutes[domain.Authority]
	svc listing.AuthorityService
}

func NewAuthorityHandler(svc listing.AuthorityService) *AuthorityHandler {
	return &AuthorityHandler{
		listingRoutes: listingRoutes[domain.Authority]{
			svc: svc, resource: "Authority", ownerParam: "user_id",
			owner: func(a *domain.Authority) int64 { return a.UserID },
		},
		svc: svc,
	}
}

func (h *AuthorityHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, done, ok := withForm(w, r, func(f *form) domain.CreateAuthorityRequest {
		return domain.CreateAuthorityRequest{
			UserID:      f.integer("user_id"),
			Name:        f.text("name"),
			Location:    f.text("location"),
			Description: f.optString("description"),
			Document:    f.file("document"),
			Photo:       f.file("photo"),
		}
	})
	if !ok {
		return
	}
	defer done()
	if !h.createdByCaller(w, r, req.UserID) {
		return
	}
	a, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AuthorityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !h.ownedByCaller(w, r, id) {
		return
	}
	req, done, ok := withForm(w, r, func(f *form) domain.UpdateAuthorityRequest {
		return domain.UpdateAuthorityRequest{
			Name:        f.optString("name"),
			Location:    f.optString("location"),
			Description: f.optString("description"),
		}
	})
	if !ok {
		return
	}
	defer done()
	a, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
