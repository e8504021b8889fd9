package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sentlab/sented/app"
	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/config"
	"github.com/sentlab/sented/service"
)

// BatchCommand handles the batch CLI command
type BatchCommand struct {
	recursive       bool
	configFile      string
	includePatterns []string
	excludePatterns []string

	// Analysis configuration
	depth       string
	costModel   string
	maxDistance float64
	workers     int

	// Output format flags (only one should be true)
	json bool
	csv  bool
	yaml bool

	// Output options
	showMatrix bool
	noProgress bool
}

// NewBatchCommand creates a new batch command
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{
		recursive:   true,
		depth:       domain.DefaultDepth().String(),
		costModel:   domain.DefaultCostModel,
		maxDistance: domain.DefaultBatchMaxDistance,
	}
}

// CreateCobraCommand creates the Cobra command for batch analysis
func (c *BatchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "All-pairs edit distances over a tree corpus",
		Long: `Compute the edit distance between every pair of trees found in the
given corpus files or directories. Corpus files hold one bracketed
tree per line; blank lines and lines starting with '#' are skipped.

Examples:
  # Compare every tree under the current directory
  sented batch .

  # Only report near matches
  sented batch --max-distance 3 corpus/

  # Emit the full distance matrix as JSON
  sented batch --matrix --json corpus/ > distances.json`,
		RunE: c.runBatch,
	}

	cmd.Flags().BoolVarP(&c.recursive, "recursive", "r", c.recursive,
		"Recursively scan directories")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Path to configuration file")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", nil,
		"File patterns to include (doublestar globs)")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", nil,
		"File patterns to exclude (doublestar globs)")

	cmd.Flags().StringVarP(&c.depth, "depth", "d", c.depth,
		"Comparison depth: 'full' or a non-negative integer")
	cmd.Flags().StringVar(&c.costModel, "cost-model", c.costModel,
		"Cost model to use: unit, weighted")
	cmd.Flags().Float64Var(&c.maxDistance, "max-distance", c.maxDistance,
		"Report only pairs with distance <= this value (-1 reports all)")
	cmd.Flags().IntVar(&c.workers, "workers", 0,
		"Concurrent comparisons (0 = one per CPU)")

	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML")

	cmd.Flags().BoolVar(&c.showMatrix, "matrix", c.showMatrix,
		"Include the full distance matrix in the output")
	cmd.Flags().BoolVar(&c.noProgress, "no-progress", false,
		"Disable the progress bar")

	return cmd
}

// runBatch executes the batch command
func (c *BatchCommand) runBatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	request, err := c.createBatchRequest(cmd, args)
	if err != nil {
		return err
	}

	var progress domain.ProgressManager
	if !c.noProgress {
		progress = service.NewProgressManager()
		defer progress.Close()
	}

	useCase, err := app.NewBatchUseCase(
		service.NewBatchService(progress),
		service.NewFileReader(),
		service.NewBatchFormatter(),
	)
	if err != nil {
		return fmt.Errorf("failed to create batch use case: %w", err)
	}

	return useCase.Execute(context.Background(), *request)
}

// createBatchRequest builds a request from config and flags
func (c *BatchCommand) createBatchRequest(cmd *cobra.Command, paths []string) (*domain.BatchRequest, error) {
	loader := config.NewTomlConfigLoader()
	var cfg *config.Config
	var err error
	if c.configFile != "" {
		cfg, err = loader.LoadConfigFromPath(c.configFile)
	} else {
		cfg, err = loader.LoadConfig(paths[0])
	}
	if err != nil {
		return nil, err
	}
	explicit := explicitFlags(cmd)

	depthSpec := cfg.Analysis.Depth
	if explicit["depth"] {
		depthSpec = c.depth
	}
	depth, err := domain.ParseDepth(depthSpec)
	if err != nil {
		return nil, err
	}

	includes := cfg.Batch.IncludePatterns
	if explicit["include"] {
		includes = c.includePatterns
	}
	excludes := cfg.Batch.ExcludePatterns
	if explicit["exclude"] {
		excludes = c.excludePatterns
	}

	recursive := cfg.Batch.Recursive
	if explicit["recursive"] {
		recursive = c.recursive
	}

	maxDistance := cfg.Batch.MaxDistance
	if explicit["max-distance"] {
		maxDistance = c.maxDistance
	}

	workers := cfg.Batch.Workers
	if explicit["workers"] {
		workers = c.workers
	}

	showMatrix := cfg.Batch.ShowMatrix
	if explicit["matrix"] {
		showMatrix = c.showMatrix
	}

	costModel := cfg.Analysis.CostModel
	if explicit["cost-model"] {
		costModel = c.costModel
	}

	format, err := service.NewOutputFormatResolver().Determine(c.json, c.csv, c.yaml)
	if err != nil {
		return nil, err
	}
	if !explicit["json"] && !explicit["csv"] && !explicit["yaml"] {
		format = domain.OutputFormat(cfg.Output.Format)
	}

	return &domain.BatchRequest{
		Paths:           paths,
		Recursive:       recursive,
		IncludePatterns: includes,
		ExcludePatterns: excludes,
		Depth:           depth,
		CostModel:       costModel,
		CostWeights:     cfg.CostWeights(),
		MaxDistance:     maxDistance,
		Workers:         workers,
		OutputFormat:    format,
		OutputWriter:    os.Stdout,
		ShowMatrix:      showMatrix,
		ConfigPath:      c.configFile,
	}, nil
}
