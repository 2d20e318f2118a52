package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

// GoalRepository manages persistence for learning goals.
type GoalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository constructs a GoalRepository.
func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// ListGoals returns every goal ordered by slug.
func (r *GoalRepository) ListGoals(ctx context.Context) ([]models.Goal, error) {
	const query = `SELECT id, slug, name FROM goals ORDER BY slug`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// FindGoalBySlug fetches a goal by its URL-safe slug.
func (r *GoalRepository) FindGoalBySlug(ctx context.Context, slug string) (*models.Goal, error) {
	const query = `SELECT id, slug, name FROM goals WHERE slug = $1`
	var goal models.Goal
	if err := r.db.GetContext(ctx, &goal, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find goal %q: %w", slug, err)
	}
	return &goal, nil
}
