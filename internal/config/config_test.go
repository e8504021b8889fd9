package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentlab/sented/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "full", cfg.Analysis.Depth)
	assert.Equal(t, domain.CostModelUnit, cfg.Analysis.CostModel)
	assert.Equal(t, 1.0, cfg.Analysis.InsertWeight)
	assert.True(t, cfg.Batch.Recursive)
	assert.Equal(t, -1.0, cfg.Batch.MaxDistance)
	assert.Contains(t, cfg.Batch.IncludePatterns, "**/*.trees")
	assert.Equal(t, "text", cfg.Output.Format)

	depth, err := cfg.Depth()
	require.NoError(t, err)
	assert.True(t, depth.Full)
}

func TestConfig_Depth(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Analysis.Depth = "2"
	depth, err := cfg.Depth()
	require.NoError(t, err)
	assert.Equal(t, domain.LimitedDepth(2), depth)

	cfg.Analysis.Depth = ""
	depth, err = cfg.Depth()
	require.NoError(t, err)
	assert.True(t, depth.Full)

	cfg.Analysis.Depth = "-3"
	_, err = cfg.Depth()
	assert.Error(t, err)
}

func TestConfig_CostWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.InsertWeight = 2.0
	cfg.Analysis.DeleteWeight = 0.5
	cfg.Analysis.RenameWeight = 1.5

	weights := cfg.CostWeights()
	assert.Equal(t, domain.CostWeights{Insert: 2.0, Delete: 0.5, Rename: 1.5}, weights)
}

func TestTomlConfigLoader_LoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sented.toml")
	content := `
[analysis]
depth = "1"
cost_model = "weighted"
rename_weight = 0.5

[batch]
max_distance = 3.0
workers = 4

[output]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewTomlConfigLoader().LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Analysis.Depth)
	assert.Equal(t, domain.CostModelWeighted, cfg.Analysis.CostModel)
	assert.Equal(t, 0.5, cfg.Analysis.RenameWeight)
	assert.Equal(t, 3.0, cfg.Batch.MaxDistance)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "json", cfg.Output.Format)

	// Unset fields keep defaults.
	assert.Equal(t, 1.0, cfg.Analysis.InsertWeight)
	assert.True(t, cfg.Batch.Recursive)
}

func TestTomlConfigLoader_LoadConfigFromPath_Missing(t *testing.T) {
	_, err := NewTomlConfigLoader().LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestTomlConfigLoader_LoadConfigFromPath_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sented.toml")
	require.NoError(t, os.WriteFile(path, []byte("[analysis\ndepth ="), 0o644))

	_, err := NewTomlConfigLoader().LoadConfigFromPath(path)
	assert.Error(t, err)
}

func TestTomlConfigLoader_LoadConfig_Discovery(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sented.toml"),
		[]byte("[analysis]\ndepth = \"3\"\n"), 0o644))

	// Discovery walks up from the nested directory.
	cfg, err := NewTomlConfigLoader().LoadConfig(sub)
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.Analysis.Depth)
}

func TestTomlConfigLoader_LoadConfig_NoFile(t *testing.T) {
	cfg, err := NewTomlConfigLoader().LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sented.yaml")
	content := `
analysis:
  depth: "2"
  cost_model: unit
output:
  format: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Analysis.Depth)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sented.yaml")

	cfg := DefaultConfig()
	cfg.Analysis.Depth = "4"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4", loaded.Analysis.Depth)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDefaultConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".sented.toml"), path)

	// The generated file parses back to the defaults.
	cfg, err := NewTomlConfigLoader().LoadConfigFromPath(path)
	require.NoError(t, err)
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Analysis, cfg.Analysis)
	assert.Equal(t, defaults.Output, cfg.Output)
	assert.Equal(t, defaults.Batch.IncludePatterns, cfg.Batch.IncludePatterns)
	assert.Equal(t, defaults.Batch.MaxDistance, cfg.Batch.MaxDistance)
	assert.Empty(t, cfg.Batch.ExcludePatterns)

	// A second write refuses to clobber.
	_, err = WriteDefaultConfig(dir)
	assert.Error(t, err)
}

func TestFindConfigFile_Priority(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sented.toml"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sented.toml"), []byte(""), 0o644))

	assert.Equal(t, filepath.Join(dir, ".sented.toml"), FindConfigFile(dir))
}
