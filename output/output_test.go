package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "data.json")

	err := WriteJSON(path, map[string][]string{
		"persons": {"Ana García", "Luis Pérez"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Accented characters must not be escaped
	assert.Contains(t, string(data), "Ana García")
	assert.Contains(t, string(data), "  \"persons\"", "output should be indented")
}
