package handler

import (
	"net/http"

	"github.com/travelpoint-api/internal/application/booking"
	"github.com/travelpoint-api/internal/domain"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler { return &BookingHandler{svc: svc} }

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !actingAs(w, r, req.CustomerID, "cannot book on behalf of another user") {
		return
	}
	b, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "booking_id")
	if !ok {
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), parsePage(r))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
