package domain

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// Depth specifies how deep two trees are rendered before comparison.
// Full compares trees at their natural depth; otherwise subtrees past
// Value edges from the root are collapsed into single leaves.
type Depth struct {
	Value int  `json:"value" yaml:"value"`
	Full  bool `json:"full" yaml:"full"`
}

// FullDepth returns the unbounded depth sentinel.
func FullDepth() Depth {
	return Depth{Full: true}
}

// LimitedDepth returns a bounded depth.
func LimitedDepth(n int) Depth {
	return Depth{Value: n}
}

// ParseDepth parses a depth specifier: "full" (or "unbounded") for the
// sentinel, otherwise a non-negative integer.
func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "unbounded":
		return FullDepth(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Depth{}, NewValidationError(fmt.Sprintf("depth must be 'full' or a non-negative integer, got %q", s))
	}
	d := LimitedDepth(n)
	if err := d.Validate(); err != nil {
		return Depth{}, err
	}
	return d, nil
}

// Validate rejects negative bounded depths.
func (d Depth) Validate() error {
	if !d.Full && d.Value < 0 {
		return NewValidationError(fmt.Sprintf("depth must be 'full' or a non-negative integer, got %d", d.Value))
	}
	return nil
}

// String returns the textual depth specifier.
func (d Depth) String() string {
	if d.Full {
		return "full"
	}
	return strconv.Itoa(d.Value)
}

// Cost model identifiers
const (
	CostModelUnit     = "unit"
	CostModelWeighted = "weighted"
)

// CostWeights configures the weighted cost model.
type CostWeights struct {
	Insert float64 `json:"insert" yaml:"insert" toml:"insert"`
	Delete float64 `json:"delete" yaml:"delete" toml:"delete"`
	Rename float64 `json:"rename" yaml:"rename" toml:"rename"`
}

// DistanceRequest represents a request for one tree-to-tree distance
// computation. Tree1 and Tree2 hold bracketed serializations of the two
// parse trees being compared.
type DistanceRequest struct {
	Tree1 string `json:"tree1"`
	Tree2 string `json:"tree2"`
	Depth Depth  `json:"depth"`

	// Analysis configuration
	CostModel   string      `json:"cost_model"`
	CostWeights CostWeights `json:"cost_weights"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	ShowDetails  bool         `json:"show_details"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// Validate checks the request before any tree work begins.
func (r *DistanceRequest) Validate() error {
	if strings.TrimSpace(r.Tree1) == "" {
		return NewValidationError("tree1 cannot be empty")
	}
	if strings.TrimSpace(r.Tree2) == "" {
		return NewValidationError("tree2 cannot be empty")
	}
	if err := r.Depth.Validate(); err != nil {
		return err
	}
	switch r.CostModel {
	case "", CostModelUnit, CostModelWeighted:
	default:
		return NewValidationError(fmt.Sprintf("unknown cost model %q, must be one of: unit, weighted", r.CostModel))
	}
	if r.CostModel == CostModelWeighted {
		if r.CostWeights.Insert < 0 || r.CostWeights.Delete < 0 || r.CostWeights.Rename < 0 {
			return NewValidationError("cost weights must be non-negative")
		}
	}
	return nil
}

// DistanceResponse represents the result of one distance computation.
// Distance is integer-valued under the unit cost model.
type DistanceResponse struct {
	Distance   float64 `json:"distance" yaml:"distance" csv:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity" csv:"similarity"`
	Skeleton1  string  `json:"skeleton1,omitempty" yaml:"skeleton1,omitempty" csv:"skeleton1"`
	Skeleton2  string  `json:"skeleton2,omitempty" yaml:"skeleton2,omitempty" csv:"skeleton2"`
	Tree1Size  int     `json:"tree1_size" yaml:"tree1_size" csv:"tree1_size"`
	Tree2Size  int     `json:"tree2_size" yaml:"tree2_size" csv:"tree2_size"`
	Depth      Depth   `json:"depth" yaml:"depth" csv:"-"`

	// Metadata
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// TreeDistanceService defines the interface for distance computation
type TreeDistanceService interface {
	// Distance canonicalizes both trees identically and computes the
	// exact ordered-tree edit distance between them
	Distance(ctx context.Context, req *DistanceRequest) (*DistanceResponse, error)

	// Skeleton returns the canonical skeleton string for one tree at
	// the requested depth
	Skeleton(tree string, depth Depth) (string, error)
}

// DistanceOutputFormatter formats distance results for output
type DistanceOutputFormatter interface {
	Format(response *DistanceResponse, format OutputFormat, writer io.Writer) error
}

// FileReader abstracts reading tree corpus files from disk
type FileReader interface {
	// CollectTreeFiles finds corpus files in the given paths using
	// doublestar include/exclude patterns
	CollectTreeFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadTrees reads one bracketed tree per non-empty line
	ReadTrees(path string) ([]string, error)
}

// ProgressManager manages progress tracking for batch analysis
type ProgressManager interface {
	Initialize(maxValue int)
	Start()
	Update(processed, total int)
	Complete(success bool)
	SetWriter(writer io.Writer)
	IsInteractive() bool
	Close()
}
