package spellset

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportEntries() []CorrectionEntry {
	return []CorrectionEntry{
		{IncorrectWord: "teh", CorrectWord: "the", ErrorType: "transposition"},
		{IncorrectWord: "alot", CorrectWord: "a lot", ErrorType: "missing_space"},
	}
}

func TestExportTensorFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), TensorFlowFileName)
	require.NoError(t, ExportTensorFlow(path, exportEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var export TensorFlowExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, []string{"teh", "alot"}, export.Source)
	assert.Equal(t, []string{"the", "a lot"}, export.Target)
	assert.Equal(t, []string{"transposition", "missing_space"}, export.ErrorType)
	// Indented output, one value per line.
	assert.Contains(t, string(data), "\n  \"source\"")
}

func TestExportPyTorch(t *testing.T) {
	path := filepath.Join(t.TempDir(), PyTorchFileName)
	require.NoError(t, ExportPyTorch(path, exportEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "teh\tthe", lines[0])
	assert.Equal(t, "alot\ta lot", lines[1])
}

func TestExportHuggingFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), HuggingFaceFileName)
	require.NoError(t, ExportHuggingFace(path, exportEntries()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"input_text", "target_text"}, rows[0])
	assert.Equal(t, []string{"correct: teh", "the"}, rows[1])
	assert.Equal(t, []string{"correct: alot", "a lot"}, rows[2])
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	paths, err := ExportAll(dir, exportEntries())
	require.NoError(t, err)

	require.Len(t, paths, 3)
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
