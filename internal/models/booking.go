package models

import "time"

// Booking is a confirmed trial-lesson reservation consuming one
// availability cell. Bookings are created once and never updated.
type Booking struct {
	ID        string    `db:"id" json:"id"`
	TeacherID int64     `db:"teacher_id" json:"teacher_id"`
	Day       string    `db:"day" json:"day"`
	Time      string    `db:"time" json:"time"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
