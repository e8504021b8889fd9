package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/analyzer"
	"github.com/sentlab/sented/internal/bracket"
)

// DistanceService implements the domain.TreeDistanceService interface.
// Every call is independent and stateless: the trees it constructs do
// not outlive the call.
type DistanceService struct{}

// NewDistanceService creates a new distance service
func NewDistanceService() *DistanceService {
	return &DistanceService{}
}

// Distance canonicalizes both trees identically and computes the exact
// ordered-tree edit distance between them.
func (s *DistanceService) Distance(ctx context.Context, req *domain.DistanceRequest) (*domain.DistanceResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("distance request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	skeleton1, err := bracket.Canonicalize(req.Tree1, req.Depth)
	if err != nil {
		return nil, err
	}
	skeleton2, err := bracket.Canonicalize(req.Tree2, req.Depth)
	if err != nil {
		return nil, err
	}

	t1, err := bracket.Parse(skeleton1)
	if err != nil {
		return nil, err
	}
	t2, err := bracket.Parse(skeleton2)
	if err != nil {
		return nil, err
	}

	ted1 := analyzer.FromTree(t1)
	ted2 := analyzer.FromTree(t2)

	engine := analyzer.NewEngine(CostModelFor(req.CostModel, req.CostWeights))
	distance := engine.ComputeDistance(ted1, ted2)
	similarity := engine.ComputeSimilarity(ted1, ted2)

	return &domain.DistanceResponse{
		Distance:   distance,
		Similarity: similarity,
		Skeleton1:  skeleton1,
		Skeleton2:  skeleton2,
		Tree1Size:  ted1.Size(),
		Tree2Size:  ted2.Size(),
		Depth:      req.Depth,
		DurationMS: time.Since(startTime).Milliseconds(),
	}, nil
}

// Skeleton returns the canonical skeleton string for one bracketed tree
// at the requested depth.
func (s *DistanceService) Skeleton(tree string, depth domain.Depth) (string, error) {
	if err := depth.Validate(); err != nil {
		return "", err
	}
	return bracket.Canonicalize(tree, depth)
}

// CostModelFor builds the engine cost model for a request. An empty
// name selects the unit model.
func CostModelFor(name string, weights domain.CostWeights) analyzer.CostModel {
	if name == domain.CostModelWeighted {
		return analyzer.NewWeightedCostModel(weights.Insert, weights.Delete, weights.Rename)
	}
	return analyzer.NewUnitCostModel()
}
