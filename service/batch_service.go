package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/analyzer"
	"github.com/sentlab/sented/internal/bracket"
	"github.com/sentlab/sented/internal/tree"
)

// BatchService implements domain.BatchService: all-pairs edit distances
// over a corpus of bracketed trees. Pairs are independent, so they are
// distributed over a worker pool with no shared mutable state beyond
// the result slots each worker owns.
type BatchService struct {
	progress domain.ProgressManager
}

// NewBatchService creates a new batch service. progress can be nil -
// the service can work without progress reporting.
func NewBatchService(progress domain.ProgressManager) *BatchService {
	return &BatchService{progress: progress}
}

type pairJob struct {
	slot int
	i, j int
}

// ComputePairs computes the distance between every pair of corpus trees.
func (s *BatchService) ComputePairs(ctx context.Context, trees []domain.CorpusTree, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("batch request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	// Canonicalize and parse every tree up front so malformed corpus
	// lines fail before any distance work begins.
	parsed := make([]*tree.Node, len(trees))
	for i, ct := range trees {
		skeleton, err := bracket.Canonicalize(ct.Text, req.Depth)
		if err != nil {
			return nil, domain.NewFormatError(fmt.Sprintf("%s:%d", ct.Source, ct.Line), err)
		}
		node, err := bracket.Parse(skeleton)
		if err != nil {
			return nil, domain.NewFormatError(fmt.Sprintf("%s:%d", ct.Source, ct.Line), err)
		}
		parsed[i] = node
	}

	n := len(parsed)
	total := n * (n - 1) / 2
	results := make([]*domain.BatchPair, total)

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total && total > 0 {
		workers = total
	}

	if s.progress != nil && total > 0 {
		s.progress.Initialize(total)
		s.progress.Start()
	}

	jobs := make(chan pairJob)
	var wg sync.WaitGroup
	var processed int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine := analyzer.NewEngine(CostModelFor(req.CostModel, req.CostWeights))
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				// Each worker builds its own indexed trees: the engine
				// writes traversal indices during computation.
				a := analyzer.FromTree(parsed[job.i])
				b := analyzer.FromTree(parsed[job.j])
				distance := engine.ComputeDistance(a, b)

				totalSize := float64(a.Size() + b.Size())
				similarity := 1.0
				if totalSize > 0 {
					similarity = 1.0 - distance/totalSize
				}

				results[job.slot] = &domain.BatchPair{
					Index1:     job.i,
					Index2:     job.j,
					Source1:    corpusLabel(trees[job.i]),
					Source2:    corpusLabel(trees[job.j]),
					Distance:   distance,
					Similarity: similarity,
				}

				done := atomic.AddInt64(&processed, 1)
				if s.progress != nil {
					s.progress.Update(int(done), total)
				}
			}
		}()
	}

	slot := 0
dispatch:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case jobs <- pairJob{slot: slot, i: i, j: j}:
				slot++
			case <-ctx.Done():
				break dispatch
			}
		}
	}
	close(jobs)
	wg.Wait()

	if s.progress != nil && total > 0 {
		s.progress.Complete(ctx.Err() == nil)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch analysis cancelled: %w", err)
	}

	response := s.buildResponse(results, trees, req)
	response.DurationMS = time.Since(startTime).Milliseconds()
	return response, nil
}

func (s *BatchService) buildResponse(results []*domain.BatchPair, trees []domain.CorpusTree, req *domain.BatchRequest) *domain.BatchResponse {
	n := len(trees)

	stats := &domain.BatchStatistics{
		TreesCompared: n,
		PairsComputed: len(results),
	}

	var matrix [][]float64
	if req.ShowMatrix {
		matrix = make([][]float64, n)
		for i := range matrix {
			matrix[i] = make([]float64, n)
		}
	}

	var pairs []*domain.BatchPair
	var sum float64
	for idx, pair := range results {
		if pair == nil {
			continue
		}
		if idx == 0 || pair.Distance < stats.MinDistance {
			stats.MinDistance = pair.Distance
		}
		if pair.Distance > stats.MaxDistance {
			stats.MaxDistance = pair.Distance
		}
		sum += pair.Distance

		if matrix != nil {
			matrix[pair.Index1][pair.Index2] = pair.Distance
			matrix[pair.Index2][pair.Index1] = pair.Distance
		}

		if req.MaxDistance < 0 || pair.Distance <= req.MaxDistance {
			pairs = append(pairs, pair)
		}
	}
	if len(results) > 0 {
		stats.MeanDistance = sum / float64(len(results))
	}
	stats.PairsReported = len(pairs)

	return &domain.BatchResponse{
		Pairs:      pairs,
		Matrix:     matrix,
		Statistics: stats,
	}
}

func corpusLabel(ct domain.CorpusTree) string {
	return fmt.Sprintf("%s:%d", ct.Source, ct.Line)
}
