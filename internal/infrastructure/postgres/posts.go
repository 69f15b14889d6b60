package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/travelpoint-api/internal/domain"
)

// postRow mirrors the joined post query; arrays need pq wrappers to scan.
type postRow struct {
	ID          int64          `db:"id"`
	PosterID    int64          `db:"poster_id"`
	Caption     *string        `db:"caption"`
	Images      pq.StringArray `db:"images"`
	VideoURL    *string        `db:"video_url"`
	Location    *string        `db:"location"`
	TaggedUsers pq.Int64Array  `db:"tagged_users"`
	Likes       int            `db:"likes"`
	Username    *string        `db:"username"`
	ProfilePic  *string        `db:"profile_pic"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		PostID:      r.ID,
		PosterID:    r.PosterID,
		Caption:     r.Caption,
		Images:      []string(r.Images),
		VideoURL:    r.VideoURL,
		Location:    r.Location,
		TaggedUsers: []int64(r.TaggedUsers),
		Likes:       r.Likes,
		Username:    r.Username,
		ProfilePic:  r.ProfilePic,
		CreatedAt:   r.CreatedAt,
	}
}

const postSelect = `SELECT p.id, p.poster_id, p.caption, p.images, p.video_url, p.location,
	p.tagged_users, p.likes, u.username, u.profile_pic, p.created_at
	FROM posts p LEFT JOIN users u ON u.id = p.poster_id`

type PostRepo struct {
	db *sqlx.DB
}

func NewPostRepo(db *sqlx.DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create inserts p and fills in the generated id, likes and created_at.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, `
			INSERT INTO posts (poster_id, caption, images, video_url, location, tagged_users)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, likes, created_at`,
			p.PosterID, p.Caption, pq.StringArray(p.Images), p.VideoURL, p.Location, pq.Int64Array(p.TaggedUsers),
		).Scan(&p.PostID, &p.Likes, &p.CreatedAt)
	})
	return mapError("create post", err)
}

// Like increments the like counter atomically and returns the new count.
func (r *PostRepo) Like(ctx context.Context, id int64) (int, error) {
	var likes int
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx,
			`UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id,
		).Scan(&likes)
	})
	if err != nil {
		return 0, mapError("like post", err)
	}
	return likes, nil
}

func (r *PostRepo) Get(ctx context.Context, id int64) (*domain.Post, error) {
	var row postRow
	if err := r.db.GetContext(ctx, &row, postSelect+` WHERE p.id = $1`, id); err != nil {
		return nil, mapError("get post", err)
	}
	p := row.toDomain()
	return &p, nil
}

// List returns the feed, newest first.
func (r *PostRepo) List(ctx context.Context, page domain.Page) ([]domain.Post, error) {
	return r.selectPosts(ctx, "list posts",
		postSelect+` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
}

func (r *PostRepo) ListByPoster(ctx context.Context, posterID int64) ([]domain.Post, error) {
	return r.selectPosts(ctx, "list posts by poster",
		postSelect+` WHERE p.poster_id = $1 ORDER BY p.created_at DESC, p.id DESC`, posterID)
}

func (r *PostRepo) selectPosts(ctx context.Context, op, query string, args ...interface{}) ([]domain.Post, error) {
	var rows []postRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError(op, err)
	}
	posts := make([]domain.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}
