package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sentlab/sented/domain"
)

// DistanceFormatterImpl implements domain.DistanceOutputFormatter
type DistanceFormatterImpl struct {
	showDetails bool
}

// NewDistanceFormatter creates a distance output formatter. showDetails
// adds the canonical skeleton strings to the text output.
func NewDistanceFormatter(showDetails bool) *DistanceFormatterImpl {
	return &DistanceFormatterImpl{showDetails: showDetails}
}

// Format writes a distance response in the requested format
func (f *DistanceFormatterImpl) Format(response *domain.DistanceResponse, format domain.OutputFormat, writer io.Writer) error {
	if response == nil {
		return domain.NewOutputError("nil distance response", nil)
	}

	switch format {
	case domain.OutputFormatText, "":
		return f.formatText(response, writer)
	case domain.OutputFormatJSON:
		return writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return writeYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.formatCSV(response, writer)
	default:
		return domain.NewOutputError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

func (f *DistanceFormatterImpl) formatText(response *domain.DistanceResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "Distance:   %s\n", formatNumber(response.Distance))
	fmt.Fprintf(writer, "Similarity: %.3f\n", response.Similarity)
	fmt.Fprintf(writer, "Depth:      %s\n", response.Depth.String())
	fmt.Fprintf(writer, "Tree sizes: %d / %d nodes\n", response.Tree1Size, response.Tree2Size)
	if f.showDetails {
		fmt.Fprintf(writer, "Skeleton 1: %s\n", response.Skeleton1)
		fmt.Fprintf(writer, "Skeleton 2: %s\n", response.Skeleton2)
	}
	return nil
}

func (f *DistanceFormatterImpl) formatCSV(response *domain.DistanceResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write([]string{"distance", "similarity", "depth", "tree1_size", "tree2_size", "duration_ms"}); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}
	record := []string{
		formatNumber(response.Distance),
		strconv.FormatFloat(response.Similarity, 'f', 6, 64),
		response.Depth.String(),
		strconv.Itoa(response.Tree1Size),
		strconv.Itoa(response.Tree2Size),
		strconv.FormatInt(response.DurationMS, 10),
	}
	if err := w.Write(record); err != nil {
		return domain.NewOutputError("failed to write CSV record", err)
	}
	w.Flush()
	return w.Error()
}

// BatchFormatterImpl implements domain.BatchOutputFormatter
type BatchFormatterImpl struct{}

// NewBatchFormatter creates a batch output formatter
func NewBatchFormatter() *BatchFormatterImpl {
	return &BatchFormatterImpl{}
}

// Format writes a batch response in the requested format
func (f *BatchFormatterImpl) Format(response *domain.BatchResponse, format domain.OutputFormat, writer io.Writer) error {
	if response == nil {
		return domain.NewOutputError("nil batch response", nil)
	}

	switch format {
	case domain.OutputFormatText, "":
		return f.formatText(response, writer)
	case domain.OutputFormatJSON:
		return writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return writeYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.formatCSV(response, writer)
	default:
		return domain.NewOutputError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

func (f *BatchFormatterImpl) formatText(response *domain.BatchResponse, writer io.Writer) error {
	stats := response.Statistics
	if stats != nil {
		fmt.Fprintf(writer, "Trees compared: %d\n", stats.TreesCompared)
		fmt.Fprintf(writer, "Pairs computed: %d (reported: %d)\n", stats.PairsComputed, stats.PairsReported)
		if stats.PairsComputed > 0 {
			fmt.Fprintf(writer, "Distance:       min=%s max=%s mean=%.2f\n",
				formatNumber(stats.MinDistance), formatNumber(stats.MaxDistance), stats.MeanDistance)
		}
		fmt.Fprintln(writer)
	}

	for _, pair := range response.Pairs {
		fmt.Fprintf(writer, "%s <-> %s  distance=%s  similarity=%.3f\n",
			pair.Source1, pair.Source2, formatNumber(pair.Distance), pair.Similarity)
	}

	if response.Matrix != nil {
		fmt.Fprintln(writer)
		for _, row := range response.Matrix {
			for j, v := range row {
				if j > 0 {
					fmt.Fprint(writer, "\t")
				}
				fmt.Fprint(writer, formatNumber(v))
			}
			fmt.Fprintln(writer)
		}
	}
	return nil
}

func (f *BatchFormatterImpl) formatCSV(response *domain.BatchResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write([]string{"index1", "index2", "source1", "source2", "distance", "similarity"}); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}
	for _, pair := range response.Pairs {
		record := []string{
			strconv.Itoa(pair.Index1),
			strconv.Itoa(pair.Index2),
			pair.Source1,
			pair.Source2,
			formatNumber(pair.Distance),
			strconv.FormatFloat(pair.Similarity, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return domain.NewOutputError("failed to write CSV record", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(v interface{}, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

func writeYAML(v interface{}, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// formatNumber renders unit-cost distances without a decimal point
// while keeping fractional weighted costs intact.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
