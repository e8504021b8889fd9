package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sentlab/sented/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sented",
	Short: "Tree edit distance between constituency parse trees",
	Long: `sented computes the exact ordered-tree edit distance (TED) between
constituency parse trees in bracketed notation.

Trees are canonicalized before comparison: syntactic category labels
are stripped and, when a depth is given, subtrees past that depth are
collapsed into single leaves for coarser-grained comparison.

Features:
  • Exact Zhang-Shasha edit distance with configurable costs
  • Depth-truncated comparison of parse trees
  • All-pairs batch analysis over tree corpus files`,
	Version: version.Short(),
}

func init() {
	rootCmd.AddCommand(NewDistanceCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewBatchCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
