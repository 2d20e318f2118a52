package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
	"github.com/tutorhub/tutorhub-api/internal/vocab"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type goalReader interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)
}

type teacherReader interface {
	ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
	FindTeacher(ctx context.Context, id int64) (*models.Teacher, error)
}

// Cache keys for the read-mostly catalog.
const (
	goalsCacheKey       = "catalog:goals"
	teacherCachePattern = "catalog:teachers:*"
)

func teacherCacheKey(id int64) string {
	return fmt.Sprintf("catalog:teachers:id:%d", id)
}

func goalTeachersCacheKey(slug string) string {
	return fmt.Sprintf("catalog:teachers:goal:%s", slug)
}

// CatalogService serves the browsing surface: the goal catalog and the
// tutor listings the presentation layer renders.
type CatalogService struct {
	goals    goalReader
	teachers teacherReader
	cache    *CacheService
	metrics  *MetricsService
	vocab    *vocab.Vocabulary
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(goals goalReader, teachers teacherReader, cache *CacheService, metrics *MetricsService, v *vocab.Vocabulary, logger *zap.Logger) *CatalogService {
	if v == nil {
		v = vocab.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{goals: goals, teachers: teachers, cache: cache, metrics: metrics, vocab: v, logger: logger}
}

// Goals returns the goal catalog as a slug → display name map.
func (s *CatalogService) Goals(ctx context.Context) (map[string]string, error) {
	cached := make(map[string]string)
	if hit, _ := s.cache.Get(ctx, goalsCacheKey, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	goals, err := s.goals.ListGoals(ctx)
	s.metrics.ObserveStoreOperation("list_goals", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list goals")
	}

	out := make(map[string]string, len(goals))
	for _, goal := range goals {
		out[goal.Slug] = goal.Name
	}
	_ = s.cache.Set(ctx, goalsCacheKey, out, 0)
	return out, nil
}

// GoalEmoji exposes the goal → emoji display mapping.
func (s *CatalogService) GoalEmoji() map[string]string {
	return s.vocab.GoalEmoji
}

// Vocabulary exposes the weekday/slot universe for rendering.
func (s *CatalogService) Vocabulary() *vocab.Vocabulary {
	return s.vocab
}

// ListTeachers returns teachers for the given filter. Goal-filtered,
// rating-ordered listings are cached; random samples never are.
func (s *CatalogService) ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	cacheable := filter.Goal != "" && filter.Sort != models.SortRandom && filter.Limit == 0
	if cacheable {
		var cached []models.Teacher
		if hit, _ := s.cache.Get(ctx, goalTeachersCacheKey(filter.Goal), &cached); hit {
			return cached, nil
		}
	}

	start := time.Now()
	teachers, err := s.teachers.ListTeachers(ctx, filter)
	s.metrics.ObserveStoreOperation("list_teachers", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}

	if cacheable {
		_ = s.cache.Set(ctx, goalTeachersCacheKey(filter.Goal), teachers, 0)
	}
	return teachers, nil
}

// GetTeacher returns one tutor profile by id.
func (s *CatalogService) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	var cached models.Teacher
	if hit, _ := s.cache.Get(ctx, teacherCacheKey(id), &cached); hit {
		return &cached, nil
	}

	start := time.Now()
	teacher, err := s.teachers.FindTeacher(ctx, id)
	s.metrics.ObserveStoreOperation("find_teacher", time.Since(start))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	_ = s.cache.Set(ctx, teacherCacheKey(id), teacher, 0)
	return teacher, nil
}
