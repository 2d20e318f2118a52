package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	data := Dataset{
		Headers: []string{"id", "name"},
		Rows: []map[string]string{
			{"id": "b-1", "name": "Антон"},
			{"id": "b-2", "name": "Мария"},
		},
	}

	payload, contentType, err := Render(data, FormatCSV, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name", lines[0])
	assert.Equal(t, "b-1,Антон", lines[1])
}

func TestRenderCSVMissingColumn(t *testing.T) {
	data := Dataset{
		Headers: []string{"id", "name"},
		Rows:    []map[string]string{{"id": "b-1"}},
	}

	payload, _, err := Render(data, FormatCSV, "")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "b-1,")
}

func TestRenderPDF(t *testing.T) {
	data := Dataset{
		Headers: []string{"id"},
		Rows:    []map[string]string{{"id": "b-1"}},
	}

	payload, contentType, err := Render(data, FormatPDF, "Bookings")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, _, err := Render(Dataset{Headers: []string{"id"}}, "xlsx", "")
	require.Error(t, err)
}

func TestRenderNoHeaders(t *testing.T) {
	_, _, err := Render(Dataset{}, FormatCSV, "")
	require.Error(t, err)
}
