package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sentlab/sented/app"
	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/config"
	"github.com/sentlab/sented/service"
)

// DistanceCommand handles the distance CLI command
type DistanceCommand struct {
	depth      string
	configFile string

	// Analysis configuration
	costModel    string
	insertWeight float64
	deleteWeight float64
	renameWeight float64

	// Output format flags (only one should be true)
	json bool
	csv  bool
	yaml bool

	// Output options
	showDetails bool
}

// NewDistanceCommand creates a new distance command
func NewDistanceCommand() *DistanceCommand {
	return &DistanceCommand{
		depth:        domain.DefaultDepth().String(),
		costModel:    domain.DefaultCostModel,
		insertWeight: domain.DefaultInsertWeight,
		deleteWeight: domain.DefaultDeleteWeight,
		renameWeight: domain.DefaultRenameWeight,
	}
}

// CreateCobraCommand creates the Cobra command for distance computation
func (c *DistanceCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <tree1> <tree2>",
		Short: "Compute the edit distance between two parse trees",
		Long: `Compute the exact ordered-tree edit distance between two constituency
parse trees in bracketed notation.

An argument starting with '@' is read from the named file instead of
being taken literally.

Examples:
  # Compare two trees at full depth
  sented distance "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))" \
                  "(S (NP (DT the) (NN dog)) (VP (VBZ sat)))"

  # Collapse everything below depth 1 before comparing
  sented distance --depth 1 @tree1.txt @tree2.txt

  # Show the canonical skeletons alongside the distance
  sented distance --details "(S (NP (DT a)))" "(S (NP (DT b)))"`,
		Args: cobra.ExactArgs(2),
		RunE: c.runDistance,
	}

	cmd.Flags().StringVarP(&c.depth, "depth", "d", c.depth,
		"Comparison depth: 'full' or a non-negative integer")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Path to configuration file")

	cmd.Flags().StringVar(&c.costModel, "cost-model", c.costModel,
		"Cost model to use: unit, weighted")
	cmd.Flags().Float64Var(&c.insertWeight, "insert-weight", c.insertWeight,
		"Insert cost for the weighted model")
	cmd.Flags().Float64Var(&c.deleteWeight, "delete-weight", c.deleteWeight,
		"Delete cost for the weighted model")
	cmd.Flags().Float64Var(&c.renameWeight, "rename-weight", c.renameWeight,
		"Rename cost for the weighted model")

	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML")

	cmd.Flags().BoolVar(&c.showDetails, "details", c.showDetails,
		"Show the canonical skeleton strings")

	// Weight flags only matter for the weighted model
	_ = cmd.Flags().MarkHidden("insert-weight")
	_ = cmd.Flags().MarkHidden("delete-weight")
	_ = cmd.Flags().MarkHidden("rename-weight")

	return cmd
}

// runDistance executes the distance command
func (c *DistanceCommand) runDistance(cmd *cobra.Command, args []string) error {
	tree1, err := resolveTreeArg(args[0])
	if err != nil {
		return err
	}
	tree2, err := resolveTreeArg(args[1])
	if err != nil {
		return err
	}

	request, err := c.createDistanceRequest(cmd, tree1, tree2)
	if err != nil {
		return err
	}

	useCase, err := app.NewDistanceUseCase(
		service.NewDistanceService(),
		service.NewDistanceFormatter(c.showDetails),
	)
	if err != nil {
		return fmt.Errorf("failed to create distance use case: %w", err)
	}

	return useCase.Execute(context.Background(), *request)
}

// createDistanceRequest builds a request from config and flags; flags
// explicitly set on the command line win over the config file.
func (c *DistanceCommand) createDistanceRequest(cmd *cobra.Command, tree1, tree2 string) (*domain.DistanceRequest, error) {
	cfg, err := c.loadConfig()
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

	costModel := cfg.Analysis.CostModel
	if explicit["cost-model"] {
		costModel = c.costModel
	}

	weights := cfg.CostWeights()
	if explicit["insert-weight"] {
		weights.Insert = c.insertWeight
	}
	if explicit["delete-weight"] {
		weights.Delete = c.deleteWeight
	}
	if explicit["rename-weight"] {
		weights.Rename = c.renameWeight
	}

	format, err := service.NewOutputFormatResolver().Determine(c.json, c.csv, c.yaml)
	if err != nil {
		return nil, err
	}
	if !explicit["json"] && !explicit["csv"] && !explicit["yaml"] {
		format = domain.OutputFormat(cfg.Output.Format)
	}

	if !explicit["details"] {
		c.showDetails = cfg.Output.ShowDetails
	}

	return &domain.DistanceRequest{
		Tree1:        tree1,
		Tree2:        tree2,
		Depth:        depth,
		CostModel:    costModel,
		CostWeights:  weights,
		OutputFormat: format,
		OutputWriter: os.Stdout,
		ShowDetails:  c.showDetails,
		ConfigPath:   c.configFile,
	}, nil
}

func (c *DistanceCommand) loadConfig() (*config.Config, error) {
	loader := config.NewTomlConfigLoader()
	if c.configFile != "" {
		return loader.LoadConfigFromPath(c.configFile)
	}
	return loader.LoadConfig(".")
}

// resolveTreeArg returns the literal argument, or the contents of the
// named file when the argument starts with '@'.
func resolveTreeArg(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return arg, nil
	}
	path := strings.TrimPrefix(arg, "@")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewFileNotFoundError(path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
