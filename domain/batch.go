package domain

import (
	"context"
	"io"
)

// BatchPair represents the distance between two trees in a corpus.
type BatchPair struct {
	Index1     int     `json:"index1" yaml:"index1" csv:"index1"`
	Index2     int     `json:"index2" yaml:"index2" csv:"index2"`
	Source1    string  `json:"source1" yaml:"source1" csv:"source1"`
	Source2    string  `json:"source2" yaml:"source2" csv:"source2"`
	Distance   float64 `json:"distance" yaml:"distance" csv:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity" csv:"similarity"`
}

// BatchStatistics summarizes a batch run.
type BatchStatistics struct {
	TreesCompared int     `json:"trees_compared" yaml:"trees_compared"`
	PairsComputed int     `json:"pairs_computed" yaml:"pairs_computed"`
	PairsReported int     `json:"pairs_reported" yaml:"pairs_reported"`
	FilesRead     int     `json:"files_read" yaml:"files_read"`
	MinDistance   float64 `json:"min_distance" yaml:"min_distance"`
	MaxDistance   float64 `json:"max_distance" yaml:"max_distance"`
	MeanDistance  float64 `json:"mean_distance" yaml:"mean_distance"`
}

// BatchRequest represents an all-pairs distance computation over a
// corpus of bracketed trees read from files (one tree per line).
type BatchRequest struct {
	// Input parameters
	Paths           []string `json:"paths"`
	Recursive       bool     `json:"recursive"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Analysis configuration
	Depth       Depth       `json:"depth"`
	CostModel   string      `json:"cost_model"`
	CostWeights CostWeights `json:"cost_weights"`

	// Only pairs with distance <= MaxDistance are reported; negative
	// means report every pair.
	MaxDistance float64 `json:"max_distance"`

	// Workers caps concurrent distance computations; 0 means one per CPU.
	Workers int `json:"workers"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	ShowMatrix   bool         `json:"show_matrix"`

	ConfigPath string `json:"config_path"`
}

// Validate checks the batch request.
func (r *BatchRequest) Validate() error {
	if len(r.Paths) == 0 {
		return NewValidationError("at least one input path is required")
	}
	if err := r.Depth.Validate(); err != nil {
		return err
	}
	if r.Workers < 0 {
		return NewValidationError("workers cannot be negative")
	}
	switch r.CostModel {
	case "", CostModelUnit, CostModelWeighted:
	default:
		return NewValidationError("unknown cost model: " + r.CostModel)
	}
	return nil
}

// BatchResponse represents the result of a batch run.
type BatchResponse struct {
	Pairs      []*BatchPair     `json:"pairs" yaml:"pairs"`
	Matrix     [][]float64      `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Statistics *BatchStatistics `json:"statistics" yaml:"statistics"`
	DurationMS int64            `json:"duration_ms" yaml:"duration_ms"`
}

// BatchService computes all-pairs distances over a tree corpus
type BatchService interface {
	ComputePairs(ctx context.Context, trees []CorpusTree, req *BatchRequest) (*BatchResponse, error)
}

// CorpusTree is one bracketed tree drawn from a corpus file.
type CorpusTree struct {
	Source string `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
}

// BatchOutputFormatter formats batch results for output
type BatchOutputFormatter interface {
	Format(response *BatchResponse, format OutputFormat, writer io.Writer) error
}
