package app

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/service"
)

func newDistanceUseCase(t *testing.T) *DistanceUseCase {
	t.Helper()
	uc, err := NewDistanceUseCase(service.NewDistanceService(), service.NewDistanceFormatter(false))
	require.NoError(t, err)
	return uc
}

func TestNewDistanceUseCase_NilDependencies(t *testing.T) {
	_, err := NewDistanceUseCase(nil, service.NewDistanceFormatter(false))
	assert.Error(t, err)

	_, err = NewDistanceUseCase(service.NewDistanceService(), nil)
	assert.Error(t, err)
}

func TestDistanceUseCase_Execute(t *testing.T) {
	uc := newDistanceUseCase(t)

	var buf bytes.Buffer
	req := domain.DistanceRequest{
		Tree1:        "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))",
		Tree2:        "(S (NP (DT the) (NN dog)) (VP (VBZ sat)))",
		Depth:        domain.FullDepth(),
		OutputFormat: domain.OutputFormatJSON,
		OutputWriter: &buf,
	}

	require.NoError(t, uc.Execute(context.Background(), req))

	var resp domain.DistanceResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 1.0, resp.Distance)
}

func TestDistanceUseCase_Execute_NoWriter(t *testing.T) {
	uc := newDistanceUseCase(t)

	req := domain.DistanceRequest{
		Tree1: "(S a)",
		Tree2: "(S b)",
		Depth: domain.FullDepth(),
	}
	assert.Error(t, uc.Execute(context.Background(), req))
}

func TestDistanceUseCase_Execute_InvalidRequest(t *testing.T) {
	uc := newDistanceUseCase(t)

	var buf bytes.Buffer
	req := domain.DistanceRequest{
		Tree1:        "",
		Tree2:        "(S b)",
		Depth:        domain.FullDepth(),
		OutputWriter: &buf,
	}
	err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestDistanceUseCase_Compute(t *testing.T) {
	uc := newDistanceUseCase(t)

	resp, err := uc.Compute(context.Background(), domain.DistanceRequest{
		Tree1: "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))",
		Tree2: "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))",
		Depth: domain.FullDepth(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Distance)
	assert.Equal(t, 1.0, resp.Similarity)
}
