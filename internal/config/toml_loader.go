package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sentlab/sented/domain"
)

// TomlConfigLoader loads configuration from .sented.toml files,
// discovered upward from a working directory.
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML config loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig loads configuration for the given working directory.
// Priority: .sented.toml > sented.toml > defaults. YAML files found by
// discovery are handed to the viper loader.
func (l *TomlConfigLoader) LoadConfig(workDir string) (*Config, error) {
	path := FindConfigFile(workDir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return l.LoadConfigFromPath(path)
}

// LoadConfigFromPath loads configuration from an explicit file path.
func (l *TomlConfigLoader) LoadConfigFromPath(path string) (*Config, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return LoadConfigFromFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to parse %s", filepath.Base(path)), err)
	}

	return config, nil
}

// WriteDefaultConfig writes a commented default .sented.toml into dir.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, ".sented.toml")
	if _, err := os.Stat(path); err == nil {
		return "", domain.NewConfigError(fmt.Sprintf("%s already exists", path), nil)
	}

	if err := os.WriteFile(path, []byte(defaultTomlConfig), 0o644); err != nil {
		return "", domain.NewOutputError(fmt.Sprintf("failed to write %s", path), err)
	}
	return path, nil
}

const defaultTomlConfig = `# sented configuration

[analysis]
# "full" compares trees at their natural depth; a non-negative integer
# collapses subtrees past that many edges from the root.
depth = "full"
# Edit cost model: "unit" or "weighted"
cost_model = "unit"
insert_weight = 1.0
delete_weight = 1.0
rename_weight = 1.0

[batch]
include_patterns = ["**/*.trees", "**/*.mrg"]
exclude_patterns = []
recursive = true
# Report only pairs with distance <= max_distance; -1 reports all pairs.
max_distance = -1.0
# 0 uses one worker per CPU.
workers = 0
show_matrix = false

[output]
# text, json, yaml or csv
format = "text"
show_details = false
`
