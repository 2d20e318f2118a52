package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/pkg/export"
)

type mockBookingLister struct {
	bookings []models.Booking
	err      error
}

func (m *mockBookingLister) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return m.bookings, m.err
}

type mockRequestLister struct {
	requests []models.Request
	err      error
}

func (m *mockRequestLister) ListRequests(ctx context.Context) ([]models.Request, error) {
	return m.requests, m.err
}

func TestExportServiceBookingsCSV(t *testing.T) {
	bookings := &mockBookingLister{bookings: []models.Booking{
		{ID: "b-1", TeacherID: 3, Day: "monday", Time: "10:00", Name: "Антон", Phone: "+7 999", CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	}}
	svc := NewExportService(bookings, &mockRequestLister{}, zap.NewNop())

	payload, contentType, err := svc.Bookings(context.Background(), export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,teacher_id,day,time,name,phone,created_at", lines[0])
	assert.Contains(t, lines[1], "b-1,3,monday,10:00")
}

func TestExportServiceRequestsPDF(t *testing.T) {
	requests := &mockRequestLister{requests: []models.Request{
		{ID: "r-1", GoalSlug: "travel", Time: "1-2", Name: "Мария", Phone: "+7 111"},
	}}
	svc := NewExportService(&mockBookingLister{}, requests, zap.NewNop())

	payload, contentType, err := svc.Requests(context.Background(), export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&mockBookingLister{}, &mockRequestLister{}, zap.NewNop())

	_, _, err := svc.Bookings(context.Background(), "xlsx")
	require.Error(t, err)
}

func TestExportServiceListFailure(t *testing.T) {
	svc := NewExportService(&mockBookingLister{err: assert.AnError}, &mockRequestLister{}, zap.NewNop())

	_, _, err := svc.Bookings(context.Background(), export.FormatCSV)
	require.Error(t, err)
}
