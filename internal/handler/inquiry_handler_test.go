package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

type goalResolverMock struct {
	goals map[string]*models.Goal
}

func (m *goalResolverMock) FindGoalBySlug(ctx context.Context, slug string) (*models.Goal, error) {
	if goal, ok := m.goals[slug]; ok {
		return goal, nil
	}
	return nil, store.ErrNotFound
}

type requestWriterMock struct {
	created []models.Request
}

func (m *requestWriterMock) CreateRequest(ctx context.Context, request *models.Request) error {
	request.ID = "r-1"
	m.created = append(m.created, *request)
	return nil
}

func newInquiryHandler(goals *goalResolverMock, requests *requestWriterMock) *InquiryHandler {
	svc := service.NewInquiryService(goals, requests, nil, nil, zap.NewNop())
	return NewInquiryHandler(svc)
}

func TestInquiryHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	goals := &goalResolverMock{goals: map[string]*models.Goal{
		"travel": {ID: 2, Slug: "travel", Name: "Путешествия"},
	}}
	requests := &requestWriterMock{}
	handler := newInquiryHandler(goals, requests)

	w := postJSON(t, handler.Create, "/requests", service.CreateInquiryRequest{
		Goal:  "travel",
		Time:  "1-2",
		Name:  "Мария",
		Phone: "+7 111 222-33-44",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, requests.created, 1)
	assert.Equal(t, int64(2), requests.created[0].GoalID)
}

func TestInquiryHandlerCreateUnknownGoal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	requests := &requestWriterMock{}
	handler := newInquiryHandler(&goalResolverMock{}, requests)

	w := postJSON(t, handler.Create, "/requests", service.CreateInquiryRequest{
		Goal:  "chess",
		Time:  "1-2",
		Name:  "Мария",
		Phone: "+7 111 222-33-44",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, requests.created)
}

func TestInquiryHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newInquiryHandler(&goalResolverMock{}, &requestWriterMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/requests", bytes.NewBufferString(`{"goal":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
