package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/export"
)

type bookingLister interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

type requestLister interface {
	ListRequests(ctx context.Context) ([]models.Request, error)
}

// ExportService renders admin downloads of the booking and inquiry logs.
type ExportService struct {
	bookings bookingLister
	requests requestLister
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(bookings bookingLister, requests requestLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{bookings: bookings, requests: requests, logger: logger}
}

// Bookings renders the full booking log in the requested format.
func (s *ExportService) Bookings(ctx context.Context, format string) ([]byte, string, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list bookings")
	}

	data := export.Dataset{
		Headers: []string{"id", "teacher_id", "day", "time", "name", "phone", "created_at"},
	}
	for _, booking := range bookings {
		data.Rows = append(data.Rows, map[string]string{
			"id":         booking.ID,
			"teacher_id": fmt.Sprintf("%d", booking.TeacherID),
			"day":        booking.Day,
			"time":       booking.Time,
			"name":       booking.Name,
			"phone":      booking.Phone,
			"created_at": booking.CreatedAt.Format(time.RFC3339),
		})
	}

	payload, contentType, err := export.Render(data, format, "Trial lesson bookings")
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return payload, contentType, nil
}

// Requests renders the full inquiry log in the requested format.
func (s *ExportService) Requests(ctx context.Context, format string) ([]byte, string, error) {
	requests, err := s.requests.ListRequests(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list requests")
	}

	data := export.Dataset{
		Headers: []string{"id", "goal", "time", "name", "phone", "created_at"},
	}
	for _, request := range requests {
		data.Rows = append(data.Rows, map[string]string{
			"id":         request.ID,
			"goal":       request.GoalSlug,
			"time":       request.Time,
			"name":       request.Name,
			"phone":      request.Phone,
			"created_at": request.CreatedAt.Format(time.RFC3339),
		})
	}

	payload, contentType, err := export.Render(data, format, "Tutoring inquiries")
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return payload, contentType, nil
}
