package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/travelpoint-api/internal/domain"
)

// Dates and times are rendered as text so they round-trip in the request format.
const bookingSelect = `SELECT id, type, provider_id, customer_id, item_id,
	to_char(book_date, 'YYYY-MM-DD') AS book_date, to_char(book_time, 'HH24:MI') AS book_time,
	to_char(service_date, 'YYYY-MM-DD') AS service_date, to_char(service_time, 'HH24:MI') AS service_time,
	to_char(deliver_date, 'YYYY-MM-DD') AS deliver_date, to_char(deliver_time, 'HH24:MI') AS deliver_time,
	quantity, status, created_at
	FROM bookings`

type BookingRepo struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, `
			INSERT INTO bookings (type, provider_id, customer_id, item_id, book_date, book_time,
				service_date, service_time, deliver_date, deliver_time, quantity, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at`,
			b.Type, b.ProviderID, b.CustomerID, b.ItemID, b.BookDate, b.BookTime,
			b.ServiceDate, b.ServiceTime, b.DeliverDate, b.DeliverTime, b.Quantity, b.Status,
		).Scan(&b.BookingID, &b.CreatedAt)
	})
	return mapError("create booking", err)
}

func (r *BookingRepo) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.GetContext(ctx, &b, bookingSelect+` WHERE id = $1`, id); err != nil {
		return nil, mapError("get booking", err)
	}
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, page domain.Page) ([]domain.Booking, error) {
	out := []domain.Booking{}
	err := r.db.SelectContext(ctx, &out,
		bookingSelect+` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	if err != nil {
		return nil, mapError("list bookings", err)
	}
	return out, nil
}
