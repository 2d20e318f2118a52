package models

import "time"

// Request is a general tutoring inquiry. Unlike a Booking it is not
// coupled to teacher availability.
type Request struct {
	ID        string    `db:"id" json:"id"`
	GoalID    int64     `db:"goal_id" json:"goal_id"`
	GoalSlug  string    `db:"goal_slug" json:"goal_slug"`
	Time      string    `db:"time" json:"time"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
