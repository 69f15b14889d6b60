package domain

type FollowRequest struct {
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	FollowerID int64 `json:"follower_id" validate:"required,gt=0,nefield=UserID"`
}

// FollowStats holds follow counts for a user relative to a viewer.
type FollowStats struct {
	Followers  int  `db:"followers"`
	Following  int  `db:"following"`
	IsFollowed bool `db:"is_followed"`
}
