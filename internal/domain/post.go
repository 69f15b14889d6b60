package domain

import "time"

type Post struct {
	PostID      int64     `json:"id"`
	PosterID    int64     `json:"poster_id"`
	Caption     *string   `json:"caption"`
	Images      []string  `json:"images"`
	VideoURL    *string   `json:"video_url"`
	Location    *string   `json:"location"`
	TaggedUsers []int64   `json:"tagged_users"`
	Likes       int       `json:"likes"`
	Username    *string   `json:"username"`
	ProfilePic  *string   `json:"profile_pic"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	PosterID    int64 `validate:"required,gt=0"`
	Caption     *string
	VideoURL    *string `validate:"omitempty,url"`
	Location    *string
	TaggedUsers []int64
	Images      []Upload `validate:"required,min=1"`
}
