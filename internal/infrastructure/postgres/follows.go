package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/travelpoint-api/internal/domain"
)

// FollowRepo stores follow edges: follower_id follows user_id.
type FollowRepo struct {
	db *sqlx.DB
}

func NewFollowRepo(db *sqlx.DB) *FollowRepo {
	return &FollowRepo{db: db}
}

// Follow is idempotent; following twice leaves a single edge.
func (r *FollowRepo) Follow(ctx context.Context, userID, followerID int64) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO follows (user_id, follower_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, followerID)
		return err
	})
	return mapError("follow", err)
}

// Unfollow returns domain.ErrNotFound when no edge exists.
func (r *FollowRepo) Unfollow(ctx context.Context, userID, followerID int64) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return execWithCheck(ctx, tx,
			`DELETE FROM follows WHERE user_id = $1 AND follower_id = $2`, userID, followerID)
	})
	return mapError("unfollow", err)
}

// Followers returns the ids of users following userID.
func (r *FollowRepo) Followers(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.SelectContext(ctx, &ids,
		`SELECT follower_id FROM follows WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	return ids, mapError("list followers", err)
}

// Following returns the ids of users that userID follows.
func (r *FollowRepo) Following(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.SelectContext(ctx, &ids,
		`SELECT user_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`, userID)
	return ids, mapError("list following", err)
}

// Stats counts edges for userID; IsFollowed reports whether viewerID follows userID.
func (r *FollowRepo) Stats(ctx context.Context, userID, viewerID int64) (domain.FollowStats, error) {
	var s domain.FollowStats
	err := r.db.GetContext(ctx, &s, `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE user_id = $1) AS followers,
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1) AS following,
			EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND follower_id = $2) AS is_followed`,
		userID, viewerID)
	return s, mapError("follow stats", err)
}
