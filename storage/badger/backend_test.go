package badger

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindSimilar_NoDocuments(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	results, err := backend.FindSimilar(context.Background(), []float32{1, 0, 0}, core.MetricCosine, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_InvalidMetric(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	_, err = backend.FindSimilar(context.Background(), []float32{1, 0, 0}, core.Metric("manhattan"), 10)
	require.ErrorIs(t, err, core.ErrUnsupportedMetric)
}

func TestFindSimilar_OrdersByDistance(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	docs := []*core.Document{
		{Contents: "aligned", Vector: []float32{1, 0, 0}},
		{Contents: "orthogonal", Vector: []float32{0, 1, 0}},
		{Contents: "opposite", Vector: []float32{-1, 0, 0}},
		{Contents: "unembedded"},
	}
	_, err = repos.Documents.UpsertDocuments(ctx, docs...)
	require.NoError(t, err)

	results, err := repos.Backend.FindSimilar(ctx, []float32{1, 0, 0}, core.MetricCosine, 10)
	require.NoError(t, err)

	// The unembedded document is silently excluded.
	require.Len(t, results, 3)
	assert.Equal(t, "aligned", results[0].Document.Contents)
	assert.Equal(t, "orthogonal", results[1].Document.Contents)
	assert.Equal(t, "opposite", results[2].Document.Contents)
	assert.InDelta(t, 0.0, results[0].Distance, 1e-6)
	assert.InDelta(t, 1.0, results[1].Distance, 1e-6)
	assert.InDelta(t, 2.0, results[2].Distance, 1e-6)
}

func TestFindSimilar_Limit(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	docs := []*core.Document{
		{Contents: "a", Vector: []float32{1, 0}},
		{Contents: "b", Vector: []float32{0.9, 0.1}},
		{Contents: "c", Vector: []float32{0, 1}},
	}
	_, err = repos.Documents.UpsertDocuments(ctx, docs...)
	require.NoError(t, err)

	results, err := repos.Backend.FindSimilar(ctx, []float32{1, 0}, core.MetricCosine, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
