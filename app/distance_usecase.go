// Package app orchestrates sented use cases over the domain services.
package app

import (
	"context"
	"fmt"

	"github.com/sentlab/sented/domain"
)

// DistanceUseCase orchestrates a single tree-to-tree distance
// computation: validate, compute, format.
type DistanceUseCase struct {
	service   domain.TreeDistanceService
	formatter domain.DistanceOutputFormatter
}

// NewDistanceUseCase creates a new distance use case with the given dependencies
func NewDistanceUseCase(service domain.TreeDistanceService, formatter domain.DistanceOutputFormatter) (*DistanceUseCase, error) {
	if service == nil {
		return nil, fmt.Errorf("distance service is required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	return &DistanceUseCase{
		service:   service,
		formatter: formatter,
	}, nil
}

// Execute executes the distance use case
func (uc *DistanceUseCase) Execute(ctx context.Context, req domain.DistanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	response, err := uc.service.Distance(ctx, &req)
	if err != nil {
		return err
	}

	if req.OutputWriter == nil {
		return domain.NewOutputError("no output writer specified", nil)
	}
	if err := uc.formatter.Format(response, req.OutputFormat, req.OutputWriter); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// Compute runs the computation without formatting, for callers that
// consume the response directly.
func (uc *DistanceUseCase) Compute(ctx context.Context, req domain.DistanceRequest) (*domain.DistanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return uc.service.Distance(ctx, &req)
}
