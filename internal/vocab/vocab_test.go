package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := Default()

	require.Len(t, v.Days, 7)
	assert.Equal(t, "monday", v.Days[0].Key)
	assert.Equal(t, "Понедельник", v.Days[0].Title)
	assert.True(t, v.Contains("monday", "10:00"))
	assert.False(t, v.Contains("monday", "11:00"))
	assert.False(t, v.Contains("someday", "10:00"))
	assert.Equal(t, "⛱", v.Emoji("travel"))
	assert.Empty(t, v.Emoji("chess"))
}

func TestDayTitleFallback(t *testing.T) {
	v := Default()
	assert.Equal(t, "Суббота", v.DayTitle("saturday"))
	assert.Equal(t, "someday", v.DayTitle("someday"))
}

func TestLoadDefaultsOnEmptyPath(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)
	assert.True(t, v.HasSlot("22:00"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	payload := `{"days":[{"key":"monday","title":"Пн"}],"slots":["10:00"],"goal_emoji":{"travel":"⛱"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Пн", v.DayTitle("monday"))
	assert.True(t, v.HasSlot("10:00"))
	assert.False(t, v.HasDay("tuesday"))
}

func TestLoadRejectsEmptyUniverse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"days":[],"slots":[]}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
