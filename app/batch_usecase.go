package app

import (
	"context"
	"fmt"

	"github.com/sentlab/sented/domain"
)

// BatchUseCase orchestrates all-pairs distance computation over a
// corpus of tree files.
type BatchUseCase struct {
	service    domain.BatchService
	fileReader domain.FileReader
	formatter  domain.BatchOutputFormatter
}

// NewBatchUseCase creates a new batch use case with the given dependencies
func NewBatchUseCase(service domain.BatchService, fileReader domain.FileReader, formatter domain.BatchOutputFormatter) (*BatchUseCase, error) {
	if service == nil {
		return nil, fmt.Errorf("batch service is required")
	}
	if fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	return &BatchUseCase{
		service:    service,
		fileReader: fileReader,
		formatter:  formatter,
	}, nil
}

// Execute executes the batch use case
func (uc *BatchUseCase) Execute(ctx context.Context, req domain.BatchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	files, err := uc.fileReader.CollectTreeFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return fmt.Errorf("failed to collect corpus files: %w", err)
	}

	trees, err := uc.loadCorpus(files)
	if err != nil {
		return err
	}

	response, err := uc.service.ComputePairs(ctx, trees, &req)
	if err != nil {
		return err
	}
	if response.Statistics != nil {
		response.Statistics.FilesRead = len(files)
	}

	if req.OutputWriter == nil {
		return domain.NewOutputError("no output writer specified", nil)
	}
	if err := uc.formatter.Format(response, req.OutputFormat, req.OutputWriter); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// loadCorpus reads every collected file into ordered corpus trees.
func (uc *BatchUseCase) loadCorpus(files []string) ([]domain.CorpusTree, error) {
	var corpus []domain.CorpusTree
	for _, file := range files {
		lines, err := uc.fileReader.ReadTrees(file)
		if err != nil {
			return nil, err
		}
		for i, line := range lines {
			corpus = append(corpus, domain.CorpusTree{
				Source: file,
				Line:   i + 1,
				Text:   line,
			})
		}
	}
	return corpus, nil
}
