package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/domain"
)

func TestGuideRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO guides")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "availability", "status", "created_at"}).
			AddRow(int64(5), true, domain.ListingStatusPending, time.Now()))
	mock.ExpectCommit()

	g := &domain.Guide{UserID: 1, Language: "en", Location: "Kandy", Preference: "hiking"}
	require.NoError(t, NewGuideRepo(db).Create(context.Background(), g))
	assert.Equal(t, int64(5), g.GuideID)
	assert.Equal(t, domain.ListingStatusPending, g.Status)
	assert.True(t, g.Availability)
}

func TestGuideRepo_Get_JoinsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM guides t JOIN users u ON u.id = t.user_id WHERE t.id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "email", "phone_number", "profile_pic",
			"language", "location", "preference", "description", "price", "availability", "document_path",
			"photo_path", "status", "created_at"}).
			AddRow(int64(5), int64(1), "Ann Lee", "a@b.com", "077", nil, "en", "Kandy", "hiking",
				nil, 25.5, true, nil, nil, "pending", time.Now()))

	g, err := NewGuideRepo(db).Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", g.Name)
	assert.Equal(t, 25.5, *g.Price)
}

func TestVehicleRepo_LatestFor_None(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.owner_id = $1 ORDER BY t.created_at DESC, t.id DESC LIMIT 1")).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewVehicleRepo(db).LatestFor(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEquipmentRepo_Update(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipments SET condition = $1, name = $2 WHERE id = $3")).
		WithArgs("good", "Tent", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewEquipmentRepo(db).Update(context.Background(), 2, map[string]interface{}{"name": "Tent", "condition": "good"})
	assert.NoError(t, err)
}

func TestAuthorityRepo_Delete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM authorities WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewAuthorityRepo(db).Delete(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepo_Get(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "provider_id", "customer_id", "item_id",
			"book_date", "book_time", "service_date", "service_time", "deliver_date", "deliver_time",
			"quantity", "status", "created_at"}).
			AddRow(int64(4), "guide", int64(1), int64(2), int64(5), "2024-05-01", "09:30",
				nil, nil, nil, nil, 1, "pending", time.Now()))

	b, err := NewBookingRepo(db).Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", b.BookDate)
	assert.Nil(t, b.ServiceDate)
}
