package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/service"
)

func newBatchUseCase(t *testing.T) *BatchUseCase {
	t.Helper()
	uc, err := NewBatchUseCase(service.NewBatchService(nil), service.NewFileReader(), service.NewBatchFormatter())
	require.NoError(t, err)
	return uc
}

func writeCorpus(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewBatchUseCase_NilDependencies(t *testing.T) {
	_, err := NewBatchUseCase(nil, service.NewFileReader(), service.NewBatchFormatter())
	assert.Error(t, err)

	_, err = NewBatchUseCase(service.NewBatchService(nil), nil, service.NewBatchFormatter())
	assert.Error(t, err)

	_, err = NewBatchUseCase(service.NewBatchService(nil), service.NewFileReader(), nil)
	assert.Error(t, err)
}

func TestBatchUseCase_Execute(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, "corpus.trees", `(S (NP (DT the) (NN cat)) (VP (VBZ sat)))
(S (NP (DT the) (NN dog)) (VP (VBZ sat)))

# identical to the first tree
(S (NP (DT the) (NN cat)) (VP (VBZ sat)))
`)

	uc := newBatchUseCase(t)

	var buf bytes.Buffer
	req := domain.BatchRequest{
		Paths:           []string{dir},
		Recursive:       true,
		IncludePatterns: domain.DefaultIncludePatterns(),
		Depth:           domain.FullDepth(),
		MaxDistance:     domain.DefaultBatchMaxDistance,
		OutputFormat:    domain.OutputFormatJSON,
		OutputWriter:    &buf,
	}
	require.NoError(t, uc.Execute(context.Background(), req))

	var resp domain.BatchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	assert.Equal(t, 3, resp.Statistics.TreesCompared)
	assert.Equal(t, 3, resp.Statistics.PairsComputed)
	assert.Equal(t, 1, resp.Statistics.FilesRead)
	require.Len(t, resp.Pairs, 3)
}

func TestBatchUseCase_Execute_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, "a.trees", "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))\n")
	writeCorpus(t, dir, "b.trees", "(S (NP (DT the) (NN dog)) (VP (VBZ sat)))\n")

	uc := newBatchUseCase(t)

	var buf bytes.Buffer
	req := domain.BatchRequest{
		Paths:           []string{dir},
		Recursive:       true,
		IncludePatterns: domain.DefaultIncludePatterns(),
		Depth:           domain.FullDepth(),
		MaxDistance:     domain.DefaultBatchMaxDistance,
		OutputFormat:    domain.OutputFormatJSON,
		OutputWriter:    &buf,
	}
	require.NoError(t, uc.Execute(context.Background(), req))

	var resp domain.BatchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	assert.Equal(t, 2, resp.Statistics.FilesRead)
	require.Len(t, resp.Pairs, 1)
	assert.Equal(t, 1.0, resp.Pairs[0].Distance)
	assert.Contains(t, resp.Pairs[0].Source1, "a.trees:1")
	assert.Contains(t, resp.Pairs[0].Source2, "b.trees:1")
}

func TestBatchUseCase_Execute_MissingPath(t *testing.T) {
	uc := newBatchUseCase(t)

	var buf bytes.Buffer
	req := domain.BatchRequest{
		Paths:        []string{filepath.Join(t.TempDir(), "missing")},
		Depth:        domain.FullDepth(),
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &buf,
	}
	assert.Error(t, uc.Execute(context.Background(), req))
}

func TestBatchUseCase_Execute_MalformedCorpusLine(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, "bad.trees", "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))\n(S (NP broken\n")

	uc := newBatchUseCase(t)

	var buf bytes.Buffer
	req := domain.BatchRequest{
		Paths:           []string{dir},
		Recursive:       true,
		IncludePatterns: domain.DefaultIncludePatterns(),
		Depth:           domain.FullDepth(),
		OutputFormat:    domain.OutputFormatText,
		OutputWriter:    &buf,
	}
	err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsFormatError(err))
	assert.Contains(t, err.Error(), "bad.trees:2")
}

func TestBatchUseCase_Execute_NoWriter(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, "a.trees", "(S a)\n")

	uc := newBatchUseCase(t)

	req := domain.BatchRequest{
		Paths:           []string{dir},
		Recursive:       true,
		IncludePatterns: domain.DefaultIncludePatterns(),
		Depth:           domain.FullDepth(),
	}
	assert.Error(t, uc.Execute(context.Background(), req))
}
