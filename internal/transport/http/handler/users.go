package handler

import (
	"net/http"
	"strconv"

	"github.com/travelpoint-api/internal/application/user"
	"github.com/travelpoint-api/internal/domain"
)

// UserHandler serves profile endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	var viewerID int64
	if v := r.URL.Query().Get("viewer_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid viewer_id")
			return
		}
		viewerID = n
	}
	p, err := h.svc.GetProfile(r.Context(), userID, viewerID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		httpError(w, r, err)
		return
	}
	defer f.Close()

	req := domain.UpdateProfileRequest{
		UserID:      f.integer("id"),
		Username:    f.optString("username"),
		Email:       f.optString("email"),
		ContactInfo: f.optString("contactInfo"),
		DateOfBirth: f.optString("dateOfBirth"),
		Bio:         f.optString("bio"),
		ProfilePic:  f.file("profilePic"),
	}
	if f.err != nil {
		httpError(w, r, f.err)
		return
	}
	if !actingAs(w, r, req.UserID, "cannot update another user") {
		return
	}
	if err := h.svc.Update(r.Context(), req); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Profile updated successfully"})
}

func (h *UserHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posterID, ok := pathID(w, r, "poster_id")
	if !ok {
		return
	}
	posts, err := h.svc.Posts(r.Context(), posterID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
