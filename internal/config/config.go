// Package config loads and saves sented configuration from TOML and
// YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sentlab/sented/domain"
)

// AnalysisConfig holds distance computation configuration
type AnalysisConfig struct {
	// Depth is "full" or a non-negative integer rendered as a string
	Depth string `mapstructure:"depth" yaml:"depth" toml:"depth"`

	// CostModel selects the edit cost model: unit or weighted
	CostModel string `mapstructure:"cost_model" yaml:"cost_model" toml:"cost_model"`

	// Weights configure the weighted cost model
	InsertWeight float64 `mapstructure:"insert_weight" yaml:"insert_weight" toml:"insert_weight"`
	DeleteWeight float64 `mapstructure:"delete_weight" yaml:"delete_weight" toml:"delete_weight"`
	RenameWeight float64 `mapstructure:"rename_weight" yaml:"rename_weight" toml:"rename_weight"`
}

// BatchConfig holds corpus batch analysis configuration
type BatchConfig struct {
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns" toml:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns" toml:"exclude_patterns"`
	Recursive       bool     `mapstructure:"recursive" yaml:"recursive" toml:"recursive"`
	MaxDistance     float64  `mapstructure:"max_distance" yaml:"max_distance" toml:"max_distance"`
	Workers         int      `mapstructure:"workers" yaml:"workers" toml:"workers"`
	ShowMatrix      bool     `mapstructure:"show_matrix" yaml:"show_matrix" toml:"show_matrix"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format" toml:"format"`
	ShowDetails bool   `mapstructure:"show_details" yaml:"show_details" toml:"show_details"`
}

// Config represents the main configuration structure
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" toml:"analysis"`
	Batch    BatchConfig    `mapstructure:"batch" yaml:"batch" toml:"batch"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" toml:"output"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Depth:        domain.DefaultDepth().String(),
			CostModel:    domain.DefaultCostModel,
			InsertWeight: domain.DefaultInsertWeight,
			DeleteWeight: domain.DefaultDeleteWeight,
			RenameWeight: domain.DefaultRenameWeight,
		},
		Batch: BatchConfig{
			IncludePatterns: domain.DefaultIncludePatterns(),
			ExcludePatterns: domain.DefaultExcludePatterns(),
			Recursive:       true,
			MaxDistance:     domain.DefaultBatchMaxDistance,
			Workers:         0,
			ShowMatrix:      false,
		},
		Output: OutputConfig{
			Format:      string(domain.OutputFormatText),
			ShowDetails: false,
		},
	}
}

// Depth parses the configured depth specifier.
func (c *Config) Depth() (domain.Depth, error) {
	if c.Analysis.Depth == "" {
		return domain.DefaultDepth(), nil
	}
	return domain.ParseDepth(c.Analysis.Depth)
}

// CostWeights returns the configured weighted-model weights.
func (c *Config) CostWeights() domain.CostWeights {
	return domain.CostWeights{
		Insert: c.Analysis.InsertWeight,
		Delete: c.Analysis.DeleteWeight,
		Rename: c.Analysis.RenameWeight,
	}
}

// LoadConfigFromFile loads a YAML configuration file via viper.
func LoadConfigFromFile(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, domain.NewFileNotFoundError(configPath, err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file %s", configPath), err)
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to parse config file %s", configPath), err)
	}

	return config, nil
}

// SaveConfig writes the configuration as YAML to the given path.
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("analysis", config.Analysis)
	v.Set("batch", config.Batch)
	v.Set("output", config.Output)

	if err := v.WriteConfigAs(path); err != nil {
		return domain.NewConfigError(fmt.Sprintf("failed to write config file %s", path), err)
	}
	return nil
}

// FindConfigFile walks up from startDir looking for a sented config
// file. It returns the empty string when none exists.
func FindConfigFile(startDir string) string {
	names := []string{".sented.toml", "sented.toml", ".sented.yaml", ".sented.yml"}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
