package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub-api/internal/store"
)

func newGoalRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func TestGoalRepositoryList(t *testing.T) {
	db, mock, cleanup := newGoalRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	rows := sqlmock.NewRows([]string{"id", "slug", "name"}).
		AddRow(int64(1), "relocate", "Переезд").
		AddRow(int64(2), "travel", "Путешествия")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, name FROM goals ORDER BY slug")).
		WillReturnRows(rows)

	goals, err := repo.ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "relocate", goals[0].Slug)
	assert.Equal(t, "Путешествия", goals[1].Name)
}

func TestGoalRepositoryFindBySlug(t *testing.T) {
	db, mock, cleanup := newGoalRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	rows := sqlmock.NewRows([]string{"id", "slug", "name"}).
		AddRow(int64(2), "travel", "Путешествия")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, name FROM goals WHERE slug = $1")).
		WithArgs("travel").
		WillReturnRows(rows)

	goal, err := repo.FindGoalBySlug(context.Background(), "travel")
	require.NoError(t, err)
	assert.Equal(t, int64(2), goal.ID)
	assert.Equal(t, "Путешествия", goal.Name)
}

func TestGoalRepositoryFindBySlugNotFound(t *testing.T) {
	db, mock, cleanup := newGoalRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, name FROM goals WHERE slug = $1")).
		WithArgs("chess").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindGoalBySlug(context.Background(), "chess")
	require.ErrorIs(t, err, store.ErrNotFound)
}
