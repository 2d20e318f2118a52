package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/seed"
)

// SeedRepository bulk-loads the provisioning dataset into Postgres.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository constructs a SeedRepository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// Seed inserts goals, teachers and their relations in one transaction.
// Seeding happens once at provisioning time; conflicts on existing
// slugs or teacher ids abort the whole load.
func (r *SeedRepository) Seed(ctx context.Context, ds *seed.Dataset) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	goalIDs := make(map[string]int64, len(ds.Goals))
	const insertGoal = `INSERT INTO goals (slug, name) VALUES ($1, $2) RETURNING id`
	for _, goal := range ds.GoalList() {
		var id int64
		if err = tx.GetContext(ctx, &id, insertGoal, goal.Slug, goal.Name); err != nil {
			return fmt.Errorf("insert goal %q: %w", goal.Slug, err)
		}
		goalIDs[goal.Slug] = id
	}

	const insertTeacher = `INSERT INTO teachers (id, name, about, rating, picture, price, free)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	const insertRelation = `INSERT INTO teacher_goals (teacher_id, goal_id) VALUES ($1, $2)`
	for _, teacher := range ds.Teachers {
		if _, err = tx.ExecContext(ctx, insertTeacher,
			teacher.ID, teacher.Name, teacher.About, teacher.Rating,
			teacher.Picture, teacher.Price, teacher.Free); err != nil {
			return fmt.Errorf("insert teacher %q: %w", teacher.Name, err)
		}
		for _, slug := range teacher.Goals {
			if _, err = tx.ExecContext(ctx, insertRelation, teacher.ID, goalIDs[slug]); err != nil {
				return fmt.Errorf("link teacher %q to goal %q: %w", teacher.Name, slug, err)
			}
		}
	}

	// Seed teachers carry explicit ids, so the sequence must catch up.
	const bumpSequence = `SELECT setval('teachers_id_seq', (SELECT COALESCE(MAX(id), 1) FROM teachers))`
	if _, err = tx.ExecContext(ctx, bumpSequence); err != nil {
		return fmt.Errorf("advance teacher sequence: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
