package utils

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedRow struct {
	SerialNumber string `json:"serialNumber"`
	Type         string `json:"type"`
}

func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "records.json")
		content := `[{"serialNumber": "SAMS001TV2023", "type": "Television"}]`
		require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0600))

		var rows []seedRow
		require.NoError(t, LoadJSON(jsonFile, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "SAMS001TV2023", rows[0].SerialNumber)
		assert.Equal(t, "Television", rows[0].Type)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var rows []seedRow
		err := LoadJSON("/nonexistent/path/file.json", &rows)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{not json`), 0600))

		var rows []seedRow
		err := LoadJSON(jsonFile, &rows)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestLoadJSONFS(t *testing.T) {
	fsys := fstest.MapFS{
		"records.json": {Data: []byte(`[{"serialNumber": "A"}, {"serialNumber": "B"}]`)},
	}

	var rows []seedRow
	require.NoError(t, LoadJSONFS(fsys, "records.json", &rows))
	assert.Len(t, rows, 2)

	assert.Error(t, LoadJSONFS(fsys, "missing.json", &rows))
}
