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
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type goalResolver interface {
	FindGoalBySlug(ctx context.Context, slug string) (*models.Goal, error)
}

type requestWriter interface {
	CreateRequest(ctx context.Context, request *models.Request) error
}

// CreateInquiryRequest represents a general tutoring inquiry submission.
type CreateInquiryRequest struct {
	Goal  string `json:"goal" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"min=5"`
}

// InquiryService runs the inquiry workflow: validate the submission,
// resolve the goal slug, persist the request. No availability coupling.
type InquiryService struct {
	goals     goalResolver
	requests  requestWriter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInquiryService constructs an InquiryService.
func NewInquiryService(goals goalResolver, requests requestWriter, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *InquiryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{goals: goals, requests: requests, metrics: metrics, validator: validate, logger: logger}
}

// Create processes one inquiry submission.
func (s *InquiryService) Create(ctx context.Context, req CreateInquiryRequest) (*models.Request, error) {
	req.Goal = strings.TrimSpace(req.Goal)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.validator.Struct(req); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, verr := range verrs {
				fields[strings.ToLower(verr.Field())] = inquiryFieldMessage(verr)
			}
		}
		s.metrics.RecordInquiryOutcome(OutcomeRejected)
		return nil, appErrors.WithFields(appErrors.ErrValidation, fields)
	}

	goal, err := s.goals.FindGoalBySlug(ctx, req.Goal)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.RecordInquiryOutcome(OutcomeNotFound)
			return nil, appErrors.Clone(appErrors.ErrNotFound, "goal not found")
		}
		s.metrics.RecordInquiryOutcome(OutcomeStoreError)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve goal")
	}

	request := &models.Request{
		GoalID:   goal.ID,
		GoalSlug: goal.Slug,
		Time:     req.Time,
		Name:     req.Name,
		Phone:    req.Phone,
	}

	start := time.Now()
	err = s.requests.CreateRequest(ctx, request)
	s.metrics.ObserveStoreOperation("create_request", time.Since(start))
	if err != nil {
		s.metrics.RecordInquiryOutcome(OutcomeStoreError)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create request")
	}

	s.metrics.RecordInquiryOutcome(OutcomeConfirmed)
	s.logger.Info("inquiry received",
		zap.String("request_id", request.ID),
		zap.String("goal", request.GoalSlug),
	)
	return request, nil
}

func inquiryFieldMessage(verr validator.FieldError) string {
	switch verr.Field() {
	case "Name":
		return msgEmptyName
	case "Phone":
		return msgShortPhone
	case "Goal":
		return msgUnknownGoal
	default:
		return msgEmptyField
	}
}
