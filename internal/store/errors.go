// Package store defines the error contract shared by the pluggable
// storage backends. Services depend on these sentinels instead of on a
// concrete backend, so the Postgres and flat-file variants stay
// interchangeable.
package store

import "errors"

var (
	// ErrNotFound is returned when a teacher id or goal slug does not resolve.
	ErrNotFound = errors.New("store: not found")

	// ErrSlotTaken is returned by CreateBooking when the requested
	// availability cell is already false. The booking record is not
	// written in that case.
	ErrSlotTaken = errors.New("store: slot already booked")
)
