package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/domain"
)

type mockGuideService struct{ mock.Mock }

func (m *mockGuideService) Create(ctx context.Context, req domain.CreateGuideRequest) (*domain.Guide, error) {
	args := m.Called(ctx, req)
	g, _ := args.Get(0).(*domain.Guide)
	return g, args.Error(1)
}

func (m *mockGuideService) Get(ctx context.Context, id int64) (*domain.Guide, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*domain.Guide)
	return g, args.Error(1)
}

func (m *mockGuideService) List(ctx context.Context, page domain.Page) ([]domain.Guide, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]domain.Guide)
	return out, args.Error(1)
}

func (m *mockGuideService) Status(ctx context.Context, userID int64) (*domain.Guide, error) {
	args := m.Called(ctx, userID)
	g, _ := args.Get(0).(*domain.Guide)
	return g, args.Error(1)
}

func (m *mockGuideService) Update(ctx context.Context, id int64, req domain.UpdateGuideRequest) (*domain.Guide, error) {
	args := m.Called(ctx, id, req)
	g, _ := args.Get(0).(*domain.Guide)
	return g, args.Error(1)
}

func (m *mockGuideService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestGuideCreate(t *testing.T) {
	svc := &mockGuideService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req domain.CreateGuideRequest) bool {
		return req.UserID == 7 && req.Language == "Sinhala" && req.Price != nil && *req.Price == 25.5 &&
			req.Photo != nil && req.Photo.Filename == "me.jpg" && req.Document == nil
	})).Return(&domain.Guide{GuideID: 3, UserID: 7, Status: domain.ListingStatusPending}, nil)
	h := NewGuideHandler(svc)

	r := multipartReq(t, http.MethodPost, "/guide/create",
		map[string]string{"user_id": "7", "language": "Sinhala", "location": "Kandy", "preference": "hiking", "price": "25.5"},
		formFile{field: "photo", name: "me.jpg", content: []byte("jpg")},
	)
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(r, 7))

	require.Equal(t, http.StatusCreated, rr.Code)
	var g domain.Guide
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&g))
	assert.Equal(t, int64(3), g.GuideID)
	assert.Equal(t, domain.ListingStatusPending, g.Status)
	svc.AssertExpectations(t)
}

func TestGuideCreate_BadPrice(t *testing.T) {
	svc := &mockGuideService{}
	h := NewGuideHandler(svc)

	r := multipartReq(t, http.MethodPost, "/guide/create", map[string]string{"user_id": "7", "price": "cheap"})
	rr := httptest.NewRecorder()
	h.Create(rr, r)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "field 'price' must be a number", decodeMessage(t, rr))
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGuideUpdate_OptionalFields(t *testing.T) {
	svc := &mockGuideService{}
	svc.On("Get", mock.Anything, int64(3)).Return(&domain.Guide{GuideID: 3, UserID: 7}, nil)
	svc.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(req domain.UpdateGuideRequest) bool {
		return req.Availability != nil && !*req.Availability && req.Language == nil && req.Price == nil
	})).Return(&domain.Guide{GuideID: 3}, nil)
	h := NewGuideHandler(svc)

	r := multipartReq(t, http.MethodPut, "/guides/3", map[string]string{"availability": "false"})
	rr := httptest.NewRecorder()
	h.Update(rr, asUser(withChiParam(r, "id", "3"), 7))

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestGuideReadRoutes(t *testing.T) {
	svc := &mockGuideService{}
	svc.On("Get", mock.Anything, int64(9)).Return(nil, domain.NotFound("Guide"))
	svc.On("Status", mock.Anything, int64(7)).Return(nil, fmt.Errorf("no guide registration found for this user: %w", domain.ErrNotFound))
	svc.On("Get", mock.Anything, int64(3)).Return(&domain.Guide{GuideID: 3, UserID: 7}, nil)
	svc.On("Delete", mock.Anything, int64(3)).Return(nil)
	h := NewGuideHandler(svc)

	rr := httptest.NewRecorder()
	h.Get(rr, withChiParam(httptest.NewRequest(http.MethodGet, "/guides/9", nil), "id", "9"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Guide not found", decodeMessage(t, rr))

	rr = httptest.NewRecorder()
	h.Status(rr, withChiParam(httptest.NewRequest(http.MethodGet, "/guides/status/7", nil), "user_id", "7"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "no guide registration found for this user", decodeMessage(t, rr))

	rr = httptest.NewRecorder()
	h.Delete(rr, asUser(withChiParam(httptest.NewRequest(http.MethodDelete, "/guides/3", nil), "id", "3"), 7))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Guide deleted successfully", decodeMessage(t, rr))

	rr = httptest.NewRecorder()
	h.Delete(rr, asUser(withChiParam(httptest.NewRequest(http.MethodDelete, "/guides/0", nil), "id", "0"), 7))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestGuideCreate_ForAnotherUser(t *testing.T) {
	svc := &mockGuideService{}
	h := NewGuideHandler(svc)

	r := multipartReq(t, http.MethodPost, "/guide/create",
		map[string]string{"user_id": "7", "language": "Sinhala", "location": "Kandy", "preference": "hiking"})
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(r, 99))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "cannot register a guide for another user", decodeMessage(t, rr))
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// mockListing satisfies every listing service interface once instantiated with the
// listing, create request and update request types.
type mockListing[T, C, U any] struct{ mock.Mock }

func (m *mockListing[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func (m *mockListing[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func (m *mockListing[T, C, U]) List(ctx context.Context, page domain.Page) ([]T, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]T)
	return out, args.Error(1)
}

func (m *mockListing[T, C, U]) Status(ctx context.Context, ownerID int64) (*T, error) {
	args := m.Called(ctx, ownerID)
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func (m *mockListing[T, C, U]) Update(ctx context.Context, id int64, req U) (*T, error) {
	args := m.Called(ctx, id, req)
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func (m *mockListing[T, C, U]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// listingMutations exposes the owner-checked routes of one listing kind.
type listingMutations struct {
	create, update, remove http.HandlerFunc
	ownerField, resource   string
	svc                    *mock.Mock
}

func TestListingMutations_RequireOwner(t *testing.T) {
	guides := &mockListing[domain.Guide, domain.CreateGuideRequest, domain.UpdateGuideRequest]{}
	guides.On("Get", mock.Anything, int64(5)).Return(&domain.Guide{GuideID: 5, UserID: 7}, nil)
	equipment := &mockListing[domain.Equipment, domain.CreateEquipmentRequest, domain.UpdateEquipmentRequest]{}
	equipment.On("Get", mock.Anything, int64(5)).Return(&domain.Equipment{EquipmentID: 5, OwnerID: 7}, nil)
	vehicles := &mockListing[domain.Vehicle, domain.CreateVehicleRequest, domain.UpdateVehicleRequest]{}
	vehicles.On("Get", mock.Anything, int64(5)).Return(&domain.Vehicle{VehicleID: 5, OwnerID: 7}, nil)
	authorities := &mockListing[domain.Authority, domain.CreateAuthorityRequest, domain.UpdateAuthorityRequest]{}
	authorities.On("Get", mock.Anything, int64(5)).Return(&domain.Authority{AuthorityID: 5, UserID: 7}, nil)

	gh, eh, vh, ah := NewGuideHandler(guides), NewEquipmentHandler(equipment), NewVehicleHandler(vehicles), NewAuthorityHandler(authorities)
	kinds := []listingMutations{
		{gh.Create, gh.Update, gh.Delete, "user_id", "guide", &guides.Mock},
		{eh.Create, eh.Update, eh.Delete, "owner_id", "equipment", &equipment.Mock},
		{vh.Create, vh.Update, vh.Delete, "owner_id", "vehicle", &vehicles.Mock},
		{ah.Create, ah.Update, ah.Delete, "user_id", "authority", &authorities.Mock},
	}
	for _, k := range kinds {
		t.Run(k.resource, func(t *testing.T) {
			rr := httptest.NewRecorder()
			k.create(rr, asUser(multipartReq(t, http.MethodPost, "/create", map[string]string{k.ownerField: "7"}), 99))
			assert.Equal(t, http.StatusForbidden, rr.Code)

			rr = httptest.NewRecorder()
			r := multipartReq(t, http.MethodPut, "/5", map[string]string{"description": "taken over"})
			k.update(rr, asUser(withChiParam(r, "id", "5"), 99))
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, "cannot modify another user's "+k.resource, decodeMessage(t, rr))

			rr = httptest.NewRecorder()
			k.remove(rr, asUser(withChiParam(httptest.NewRequest(http.MethodDelete, "/5", nil), "id", "5"), 99))
			assert.Equal(t, http.StatusForbidden, rr.Code)

			k.svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			k.svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			k.svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestGuideDelete_MissingListing(t *testing.T) {
	svc := &mockGuideService{}
	svc.On("Get", mock.Anything, int64(9)).Return(nil, domain.NotFound("Guide"))
	h := NewGuideHandler(svc)

	rr := httptest.NewRecorder()
	h.Delete(rr, asUser(withChiParam(httptest.NewRequest(http.MethodDelete, "/guides/9", nil), "id", "9"), 7))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
