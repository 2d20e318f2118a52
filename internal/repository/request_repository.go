package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

// RequestRepository manages persistence for general inquiries.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository constructs a RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// CreateRequest inserts a new inquiry row. The caller resolves the goal
// slug to an id beforehand.
func (r *RequestRepository) CreateRequest(ctx context.Context, request *models.Request) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO requests (id, goal_id, "time", name, phone, created_at)
		VALUES (:id, :goal_id, :time, :name, :phone, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// ListRequests returns every inquiry joined with its goal slug, newest
// first. Used by the admin export endpoints.
func (r *RequestRepository) ListRequests(ctx context.Context) ([]models.Request, error) {
	const query = `SELECT r.id, r.goal_id, g.slug AS goal_slug, r."time", r.name, r.phone, r.created_at
		FROM requests r
		JOIN goals g ON g.id = r.goal_id
		ORDER BY r.created_at DESC`
	var requests []models.Request
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}
