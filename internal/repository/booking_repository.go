package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

// BookingRepository manages persistence for trial-lesson bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking flips the availability cell and inserts the booking row
// in one transaction. The teacher row is locked for the duration, so
// concurrent attempts on the same slot serialize and exactly one wins;
// the loser gets store.ErrSlotTaken and nothing is written.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var free models.Availability
	const lockQuery = `SELECT free FROM teachers WHERE id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &free, lockQuery, booking.TeacherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNotFound
		}
		return fmt.Errorf("lock teacher %d: %w", booking.TeacherID, err)
	}

	if !free.IsFree(booking.Day, booking.Time) {
		return store.ErrSlotTaken
	}
	if err = free.Book(booking.Day, booking.Time); err != nil {
		return store.ErrSlotTaken
	}

	const updateQuery = `UPDATE teachers SET free = $1 WHERE id = $2`
	if _, err = tx.ExecContext(ctx, updateQuery, free, booking.TeacherID); err != nil {
		return fmt.Errorf("update availability for teacher %d: %w", booking.TeacherID, err)
	}

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	const insertQuery = `INSERT INTO bookings (id, teacher_id, day, "time", name, phone, created_at)
		VALUES (:id, :teacher_id, :day, :time, :name, :phone, :created_at)`
	if _, err = tx.NamedExecContext(ctx, insertQuery, booking); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// ListBookings returns every booking, newest first. Used by the admin
// export endpoints.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	const query = `SELECT id, teacher_id, day, "time", name, phone, created_at
		FROM bookings ORDER BY created_at DESC`
	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
