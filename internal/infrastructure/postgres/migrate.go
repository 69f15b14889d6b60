package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		username      TEXT NOT NULL,
		phone_number  TEXT NOT NULL,
		location      TEXT NOT NULL,
		password      TEXT NOT NULL,
		nic_passport  TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		type          INTEGER NOT NULL DEFAULT 1,
		date_of_birth DATE,
		profile_pic   TEXT,
		bio           TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"posts", `CREATE TABLE IF NOT EXISTS posts (
		id           BIGSERIAL PRIMARY KEY,
		poster_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		caption      TEXT,
		images       TEXT[] NOT NULL DEFAULT '{}',
		video_url    TEXT,
		location     TEXT,
		tagged_users BIGINT[] NOT NULL DEFAULT '{}',
		likes        INTEGER NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"follows", `CREATE TABLE IF NOT EXISTS follows (
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		follower_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, follower_id),
		CHECK (user_id <> follower_id)
	)`},
	{"guides", `CREATE TABLE IF NOT EXISTS guides (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		language      TEXT NOT NULL,
		location      TEXT NOT NULL,
		preference    TEXT NOT NULL,
		description   TEXT,
		price         DOUBLE PRECISION,
		availability  BOOLEAN NOT NULL DEFAULT TRUE,
		document_path TEXT,
		photo_path    TEXT,
		status        TEXT NOT NULL DEFAULT 'pending',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"equipments", `CREATE TABLE IF NOT EXISTS equipments (
		id            BIGSERIAL PRIMARY KEY,
		owner_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		type          TEXT NOT NULL,
		description   TEXT,
		condition     TEXT,
		price_per_day DOUBLE PRECISION,
		photo_path    TEXT,
		status        TEXT NOT NULL DEFAULT 'pending',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"vehicles", `CREATE TABLE IF NOT EXISTS vehicles (
		id            BIGSERIAL PRIMARY KEY,
		owner_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type          TEXT NOT NULL,
		capacity      INTEGER NOT NULL,
		milage        DOUBLE PRECISION NOT NULL DEFAULT 0,
		price         DOUBLE PRECISION NOT NULL DEFAULT 0,
		description   TEXT,
		document_path TEXT,
		photo_path    TEXT,
		status        TEXT NOT NULL DEFAULT 'pending',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"authorities", `CREATE TABLE IF NOT EXISTS authorities (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		location      TEXT NOT NULL,
		description   TEXT,
		document_path TEXT,
		photo_path    TEXT,
		status        TEXT NOT NULL DEFAULT 'pending',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"bookings", `CREATE TABLE IF NOT EXISTS bookings (
		id           BIGSERIAL PRIMARY KEY,
		type         TEXT NOT NULL,
		provider_id  BIGINT NOT NULL REFERENCES users(id),
		customer_id  BIGINT NOT NULL REFERENCES users(id),
		item_id      BIGINT NOT NULL,
		book_date    DATE NOT NULL,
		book_time    TIME NOT NULL,
		service_date DATE,
		service_time TIME,
		deliver_date DATE,
		deliver_time TIME,
		quantity     INTEGER NOT NULL DEFAULT 1,
		status       TEXT NOT NULL DEFAULT 'pending',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
}

// Migrate creates every table that doesn't already exist.
// Safe to call on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
		slog.Debug("table ready", "table", s.table)
	}
	return nil
}
