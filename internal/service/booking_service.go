package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
	"github.com/tutorhub/tutorhub-api/internal/vocab"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type bookingStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
}

// CreateBookingRequest represents a trial-lesson booking submission.
type CreateBookingRequest struct {
	TeacherID int64  `json:"teacher_id" validate:"required"`
	Day       string `json:"day" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"min=5"`
}

// Form-level error messages, kept from the original product copy.
const (
	msgEmptyName   = "Похоже на пустое поле, введите, пожалуйста, имя"
	msgShortPhone  = "Не похоже на телефон, введите, пожалуйста, ваш телефон"
	msgUnknownDay  = "Выберите день недели из расписания"
	msgUnknownSlot = "Выберите время занятия из расписания"
	msgEmptyField  = "Похоже на пустое поле"
	msgUnknownGoal = "Выберите цель занятий из списка"
)

// BookingService runs the trial-lesson booking workflow: validate the
// submission, then ask the store to atomically consume the slot and
// persist the booking. Each call is a single attempt with no retry.
type BookingService struct {
	store     bookingStore
	cache     *CacheService
	metrics   *MetricsService
	vocab     *vocab.Vocabulary
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(st bookingStore, cache *CacheService, metrics *MetricsService, v *vocab.Vocabulary, validate *validator.Validate, logger *zap.Logger) *BookingService {
	if v == nil {
		v = vocab.Default()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{store: st, cache: cache, metrics: metrics, vocab: v, validator: validate, logger: logger}
}

// Create processes one booking submission. Terminal outcomes: a
// confirmed Booking, a validation rejection with field messages, a
// not-found teacher, or a slot-unavailable conflict.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Time = normalizeSlot(req.Time)

	fields := map[string]string{}
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, verr := range verrs {
				fields[strings.ToLower(verr.Field())] = bookingFieldMessage(verr)
			}
		}
	}
	if req.Day != "" && !s.vocab.HasDay(req.Day) {
		fields["day"] = msgUnknownDay
	}
	if req.Time != "" && !s.vocab.HasSlot(req.Time) {
		fields["time"] = msgUnknownSlot
	}
	if len(fields) > 0 {
		s.metrics.RecordBookingOutcome(OutcomeRejected)
		return nil, appErrors.WithFields(appErrors.ErrValidation, fields)
	}

	booking := &models.Booking{
		TeacherID: req.TeacherID,
		Day:       req.Day,
		Time:      req.Time,
		Name:      req.Name,
		Phone:     req.Phone,
	}

	start := time.Now()
	err := s.store.CreateBooking(ctx, booking)
	s.metrics.ObserveStoreOperation("create_booking", time.Since(start))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSlotTaken):
			s.metrics.RecordBookingOutcome(OutcomeSlotTaken)
			return nil, appErrors.Clone(appErrors.ErrSlotUnavailable, "")
		case errors.Is(err, store.ErrNotFound):
			s.metrics.RecordBookingOutcome(OutcomeNotFound)
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		default:
			s.metrics.RecordBookingOutcome(OutcomeStoreError)
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create booking")
		}
	}

	// The profile and listing caches embed the availability map.
	_ = s.cache.Invalidate(ctx, teacherCachePattern)

	s.metrics.RecordBookingOutcome(OutcomeConfirmed)
	s.logger.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.Int64("teacher_id", booking.TeacherID),
		zap.String("day", booking.Day),
		zap.String("time", booking.Time),
	)
	return booking, nil
}

func bookingFieldMessage(verr validator.FieldError) string {
	switch verr.Field() {
	case "Name":
		return msgEmptyName
	case "Phone":
		return msgShortPhone
	case "Day":
		return msgUnknownDay
	case "Time":
		return msgUnknownSlot
	default:
		return msgEmptyField
	}
}

// normalizeSlot accepts both the bare hour the booking links carry
// ("10") and the full slot label ("10:00").
func normalizeSlot(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.Contains(raw, ":") {
		return raw + ":00"
	}
	return raw
}
