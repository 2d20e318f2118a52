package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

func newBookingRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func TestBookingRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newBookingRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	free := []byte(`{"monday":{"10:00":true,"12:00":false}}`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT free FROM teachers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow(free))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teachers SET free = $1 WHERE id = $2`)).
		WithArgs(sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(sqlmock.AnyArg(), int64(3), "monday", "10:00", "Антон", "+7 999 123-45-67", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	booking := &models.Booking{
		TeacherID: 3,
		Day:       "monday",
		Time:      "10:00",
		Name:      "Антон",
		Phone:     "+7 999 123-45-67",
	}
	err := repo.CreateBooking(context.Background(), booking)
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryCreateSlotTaken(t *testing.T) {
	db, mock, cleanup := newBookingRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	free := []byte(`{"monday":{"10:00":false}}`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT free FROM teachers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow(free))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		TeacherID: 3,
		Day:       "monday",
		Time:      "10:00",
		Name:      "Антон",
		Phone:     "+7 999 123-45-67",
	})
	require.ErrorIs(t, err, store.ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryCreateUnknownTeacher(t *testing.T) {
	db, mock, cleanup := newBookingRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT free FROM teachers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		TeacherID: 99,
		Day:       "monday",
		Time:      "10:00",
		Name:      "Антон",
		Phone:     "+7 999 123-45-67",
	})
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryCreateUnknownSlot(t *testing.T) {
	db, mock, cleanup := newBookingRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	free := []byte(`{"monday":{"10:00":true}}`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT free FROM teachers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow(free))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		TeacherID: 3,
		Day:       "monday",
		Time:      "23:00",
		Name:      "Антон",
		Phone:     "+7 999 123-45-67",
	})
	require.ErrorIs(t, err, store.ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryList(t *testing.T) {
	db, mock, cleanup := newBookingRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "teacher_id", "day", "time", "name", "phone", "created_at"}).
		AddRow("b-2", int64(1), "tuesday", "12:00", "Мария", "+7 111", now).
		AddRow("b-1", int64(3), "monday", "10:00", "Антон", "+7 222", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, teacher_id, day, "time", name, phone, created_at`)).
		WillReturnRows(rows)

	bookings, err := repo.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-2", bookings[0].ID)
	assert.Equal(t, int64(3), bookings[1].TeacherID)
}
