package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `{
		"goals": {"travel": "Путешествия", "study": "Учеба"},
		"teachers": [
			{"id": 1, "name": "Olga Windsor", "rating": 9.5, "price": 900,
			 "goals": ["travel"], "free": {"monday": {"10:00": true}}}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Teachers, 1)
	assert.Equal(t, "Olga Windsor", ds.Teachers[0].Name)
	assert.True(t, ds.Teachers[0].Free.IsFree("monday", "10:00"))
}

func TestValidateUnknownGoal(t *testing.T) {
	ds := &Dataset{
		Goals: map[string]string{"travel": "Путешествия"},
		Teachers: []models.Teacher{
			{ID: 1, Name: "Olga Windsor", Goals: []string{"chess"}},
		},
	}
	require.Error(t, ds.Validate())
}

func TestValidateNamelessTeacher(t *testing.T) {
	ds := &Dataset{
		Goals:    map[string]string{"travel": "Путешествия"},
		Teachers: []models.Teacher{{ID: 1}},
	}
	require.Error(t, ds.Validate())
}

func TestGoalList(t *testing.T) {
	ds := &Dataset{Goals: map[string]string{
		"travel": "Путешествия",
		"study":  "Учеба",
		"work":   "Работа",
	}}

	goals := ds.GoalList()
	require.Len(t, goals, 3)
	assert.Equal(t, "study", goals[0].Slug)
	assert.Equal(t, int64(1), goals[0].ID)
	assert.Equal(t, "work", goals[2].Slug)
	assert.Equal(t, int64(3), goals[2].ID)
}
