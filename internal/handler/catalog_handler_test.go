package handler

import (
	"context"
	"encoding/json"
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
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

type goalReaderMock struct {
	goals []models.Goal
}

func (m *goalReaderMock) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return m.goals, nil
}

type teacherReaderMock struct {
	teachers   []models.Teacher
	byID       map[int64]*models.Teacher
	lastFilter models.TeacherFilter
}

func (m *teacherReaderMock) ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	m.lastFilter = filter
	return m.teachers, nil
}

func (m *teacherReaderMock) FindTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := m.byID[id]; ok {
		return teacher, nil
	}
	return nil, store.ErrNotFound
}

func newCatalogHandler(goals *goalReaderMock, teachers *teacherReaderMock) *CatalogHandler {
	svc := service.NewCatalogService(goals, teachers, nil, nil, nil, zap.NewNop())
	return NewCatalogHandler(svc, 6)
}

func getRequest(t *testing.T, h gin.HandlerFunc, path string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	c.Request = req
	c.Params = params
	h(c)
	return w
}

func TestCatalogHandlerListGoals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	goals := &goalReaderMock{goals: []models.Goal{
		{ID: 2, Slug: "travel", Name: "Путешествия"},
	}}
	handler := newCatalogHandler(goals, &teacherReaderMock{})

	w := getRequest(t, handler.ListGoals, "/goals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Путешествия", data["travel"])
	require.NotNil(t, envelope.Meta)
	assert.Contains(t, envelope.Meta, "emoji")
}

func TestCatalogHandlerListTeachers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	teachers := &teacherReaderMock{teachers: []models.Teacher{{ID: 1, Name: "Olga Windsor"}}}
	handler := newCatalogHandler(&goalReaderMock{}, teachers)

	w := getRequest(t, handler.ListTeachers, "/teachers?goal=travel&sort=rating&limit=6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "travel", teachers.lastFilter.Goal)
	assert.Equal(t, models.SortByRating, teachers.lastFilter.Sort)
	assert.Equal(t, 6, teachers.lastFilter.Limit)
}

func TestCatalogHandlerListTeachersRandomDefaultsLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	teachers := &teacherReaderMock{}
	handler := newCatalogHandler(&goalReaderMock{}, teachers)

	w := getRequest(t, handler.ListTeachers, "/teachers?sort=random", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SortRandom, teachers.lastFilter.Sort)
	assert.Equal(t, 6, teachers.lastFilter.Limit)

	// An explicit limit wins over the home sample size.
	w = getRequest(t, handler.ListTeachers, "/teachers?sort=random&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, teachers.lastFilter.Limit)
}

func TestCatalogHandlerListTeachersInvalidLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCatalogHandler(&goalReaderMock{}, &teacherReaderMock{})

	w := getRequest(t, handler.ListTeachers, "/teachers?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = getRequest(t, handler.ListTeachers, "/teachers?limit=-2", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerGetTeacher(t *testing.T) {
	gin.SetMode(gin.TestMode)
	teachers := &teacherReaderMock{byID: map[int64]*models.Teacher{
		3: {ID: 3, Name: "Preston Minor", Free: models.Availability{"monday": {"10:00": true}}},
	}}
	handler := newCatalogHandler(&goalReaderMock{}, teachers)

	w := getRequest(t, handler.GetTeacher, "/teachers/3", gin.Params{{Key: "id", Value: "3"}})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Meta)
	assert.Contains(t, envelope.Meta, "days")
	assert.Contains(t, envelope.Meta, "slots")
}

func TestCatalogHandlerGetTeacherNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCatalogHandler(&goalReaderMock{}, &teacherReaderMock{})

	w := getRequest(t, handler.GetTeacher, "/teachers/99", gin.Params{{Key: "id", Value: "99"}})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandlerGetTeacherBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCatalogHandler(&goalReaderMock{}, &teacherReaderMock{})

	// Non-numeric ids map to 404, not 400, matching route semantics.
	w := getRequest(t, handler.GetTeacher, "/teachers/abc", gin.Params{{Key: "id", Value: "abc"}})
	require.Equal(t, http.StatusNotFound, w.Code)
}
