package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/travelpoint-api/internal/domain"
)

const userColumns = `id, first_name, last_name, username, phone_number, location, password,
	nic_passport, email, type, date_of_birth, profile_pic, bio, created_at`

// Columns a profile update may touch.
const (
	ColUsername    = "username"
	ColEmail       = "email"
	ColPhoneNumber = "phone_number"
	ColDateOfBirth = "date_of_birth"
	ColBio         = "bio"
	ColProfilePic  = "profile_pic"
)

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts u inside a transaction and fills in the generated id, type and created_at.
// A duplicate email yields domain.ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, `
			INSERT INTO users (first_name, last_name, username, phone_number, location, password, nic_passport, email)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, type, created_at`,
			u.FirstName, u.LastName, u.Username, u.PhoneNumber, u.Location, u.PasswordHash, u.NICPassport, u.Email,
		).Scan(&u.UserID, &u.Type, &u.CreatedAt)
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", u.Email, domain.ErrEmailTaken)
	}
	return mapError("create user", err)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, mapError("get user by email", err)
	}
	return &u, nil
}

func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("get user", err)
	}
	return &u, nil
}

// Update applies a partial update. Keys must be one of the Col* constants.
func (r *UserRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	set, args, err := buildUpdateSet(updates)
	if err != nil {
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", set, len(args))
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return execWithCheck(ctx, tx, query, args...)
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("update user %d: %w", id, domain.ErrEmailTaken)
	}
	return mapError("update user", err)
}
