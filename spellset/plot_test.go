package spellset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChartsWritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := RenderCharts(dir, statsEntries())
	require.NoError(t, err)

	require.Len(t, paths, 4)
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRenderChartsRejectsEmptyDataset(t *testing.T) {
	_, err := RenderCharts(t.TempDir(), nil)
	assert.Error(t, err)
}
