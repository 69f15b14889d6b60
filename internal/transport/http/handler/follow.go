package handler

import (
	"context"
	"net/http"

	"github.com/travelpoint-api/internal/application/follow"
	"github.com/travelpoint-api/internal/domain"
)

type FollowHandler struct {
	svc follow.Service
}

func NewFollowHandler(svc follow.Service) *FollowHandler { return &FollowHandler{svc: svc} }

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req domain.FollowRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !actingAs(w, r, req.FollowerID, "cannot follow on behalf of another user") {
		return
	}
	if err := h.svc.Follow(r.Context(), req); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IDEnvelope{Message: "Followed successfully", UserID: req.UserID})
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	var req domain.FollowRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !actingAs(w, r, req.FollowerID, "cannot unfollow on behalf of another user") {
		return
	}
	if err := h.svc.Unfollow(r.Context(), req); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IDEnvelope{Message: "Unfollowed successfully", UserID: req.UserID})
}

func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.Followers)
}

func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.Following)
}

func (h *FollowHandler) listEdges(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID int64) ([]int64, error)) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	ids, err := list(r.Context(), userID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	writeJSON(w, http.StatusOK, UsersEnvelope{Users: ids})
}
