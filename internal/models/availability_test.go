package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityBook(t *testing.T) {
	free := Availability{"monday": {"10:00": true, "12:00": false}}

	require.True(t, free.IsFree("monday", "10:00"))
	require.NoError(t, free.Book("monday", "10:00"))
	assert.False(t, free.IsFree("monday", "10:00"))

	// Booked cells stay booked.
	require.Error(t, free.Book("monday", "10:00"))
	require.Error(t, free.Book("monday", "12:00"))
	require.Error(t, free.Book("someday", "10:00"))
	require.Error(t, free.Book("monday", "11:00"))
}

func TestAvailabilityClone(t *testing.T) {
	free := Availability{"monday": {"10:00": true}}
	cp := free.Clone()

	require.NoError(t, cp.Book("monday", "10:00"))
	assert.True(t, free.IsFree("monday", "10:00"))
	assert.False(t, cp.IsFree("monday", "10:00"))
}

func TestAvailabilityScanValue(t *testing.T) {
	free := Availability{"monday": {"10:00": true}}
	raw, err := free.Value()
	require.NoError(t, err)

	var got Availability
	require.NoError(t, got.Scan(raw))
	assert.True(t, got.IsFree("monday", "10:00"))

	var empty Availability
	require.NoError(t, empty.Scan(nil))
	assert.False(t, empty.IsFree("monday", "10:00"))

	require.Error(t, got.Scan(42))
}
