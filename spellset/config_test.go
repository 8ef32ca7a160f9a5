package spellset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TopK)
	assert.InDelta(t, 0.2, cfg.Split.TestSize, 1e-9)
	assert.Equal(t, int64(42), cfg.Split.Seed)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "charts", cfg.ChartDir)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Config{TopK: 5, Split: SplitOptions{TestSize: 0.3, Seed: 7}, ExportDir: "out"}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.TopK)
	assert.InDelta(t, 0.3, loaded.Split.TestSize, 1e-9)
	assert.Equal(t, int64(7), loaded.Split.Seed)
	assert.Equal(t, "out", loaded.ExportDir)
	// Defaults fill the rest.
	assert.Equal(t, "charts", loaded.ChartDir)
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", "{not json")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Config{TopK: 3}
	clone := cfg.Clone()
	clone.TopK = 9

	assert.Equal(t, 3, cfg.TopK)
}
