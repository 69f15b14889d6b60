package handler

import (
	"net/http"

	"github.com/travelpoint-api/internal/application/post"
	"github.com/travelpoint-api/internal/domain"
)

type PostHandler struct {
	svc post.Service
}

func NewPostHandler(svc post.Service) *PostHandler { return &PostHandler{svc: svc} }

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		httpError(w, r, err)
		return
	}
	defer f.Close()

	req := domain.CreatePostRequest{
		PosterID:    f.integer("poster_id"),
		Caption:     f.optString("caption"),
		VideoURL:    f.optString("video_url"),
		Location:    f.optString("location"),
		TaggedUsers: f.int64List("tagged_users"),
		Images:      f.files("images"),
	}
	if f.err != nil {
		httpError(w, r, f.err)
		return
	}
	if !actingAs(w, r, req.PosterID, "cannot post as another user") {
		return
	}
	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, PostCreatedEnvelope{Message: "Post created successfully", PostID: p.PostID})
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}
	likes, err := h.svc.Like(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LikesEnvelope{Message: "Post liked successfully", Likes: likes})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.Feed(r.Context(), parsePage(r))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
