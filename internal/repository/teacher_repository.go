package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/store"
)

// TeacherRepository manages persistence for tutor profiles.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

type teacherRow struct {
	ID      int64               `db:"id"`
	Name    string              `db:"name"`
	About   string              `db:"about"`
	Rating  float64             `db:"rating"`
	Picture string              `db:"picture"`
	Price   int                 `db:"price"`
	Free    models.Availability `db:"free"`
	Goals   pq.StringArray      `db:"goals"`
}

func (row teacherRow) toModel() models.Teacher {
	return models.Teacher{
		ID:      row.ID,
		Name:    row.Name,
		About:   row.About,
		Rating:  row.Rating,
		Picture: row.Picture,
		Price:   row.Price,
		Goals:   []string(row.Goals),
		Free:    row.Free,
	}
}

const teacherSelect = `SELECT t.id, t.name, t.about, t.rating, t.picture, t.price, t.free,
	COALESCE(array_agg(g.slug ORDER BY g.slug) FILTER (WHERE g.slug IS NOT NULL), '{}') AS goals
FROM teachers t
LEFT JOIN teacher_goals tg ON tg.teacher_id = t.id
LEFT JOIN goals g ON g.id = tg.goal_id`

// ListTeachers returns teachers matching the filter. A goal filter
// implies rating-descending order unless random sampling is requested.
func (r *TeacherRepository) ListTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	query := teacherSelect
	var args []interface{}

	if filter.Goal != "" {
		query += ` WHERE t.id IN (
	SELECT tg2.teacher_id FROM teacher_goals tg2
	JOIN goals g2 ON g2.id = tg2.goal_id
	WHERE g2.slug = $1)`
		args = append(args, filter.Goal)
	}

	query += " GROUP BY t.id"

	switch filter.Sort {
	case models.SortRandom:
		query += " ORDER BY random()"
	default:
		query += " ORDER BY t.rating DESC, t.id"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, row.toModel())
	}
	return teachers, nil
}

// FindTeacher fetches one teacher with goals and availability by id.
func (r *TeacherRepository) FindTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	query := teacherSelect + " WHERE t.id = $1 GROUP BY t.id"
	var row teacherRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find teacher %d: %w", id, err)
	}
	teacher := row.toModel()
	return &teacher, nil
}
