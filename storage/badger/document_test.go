package badger

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentUpsertContentID(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{Contents: "resume text"}
	added, err := repos.Documents.UpsertDocuments(ctx, doc)
	require.NoError(t, err)
	require.Len(t, added, 1)

	assert.Equal(t, core.IDFromContent("resume text"), added[0].Id)
}

func TestDocumentUpsertReplaces(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	first := &core.Document{Contents: "resume text"}
	_, err = repos.Documents.UpsertDocuments(ctx, first)
	require.NoError(t, err)

	// Same contents, now with an embedding. Same content ID, so the row
	// is replaced rather than duplicated.
	second := &core.Document{Contents: "resume text", Vector: []float32{0.1, 0.2}}
	_, err = repos.Documents.UpsertDocuments(ctx, second)
	require.NoError(t, err)

	all, err := repos.Documents.ListDocuments(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []float32{0.1, 0.2}, all[0].Vector)
}

func TestDocumentGetMissing(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	_, err = repos.Documents.GetDocument(context.Background(), 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDocumentDelete(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Documents.UpsertDocuments(ctx, &core.Document{Contents: "to be removed"})
	require.NoError(t, err)

	require.NoError(t, repos.Documents.DeleteDocuments(ctx, added[0].Id))

	_, err = repos.Documents.GetDocument(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repos.Documents.DeleteDocuments(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDocumentChunksRoundTrip(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{
		Contents: "full resume",
		Vector:   []float32{1, 0},
		Chunks: []core.DocumentChunk{
			{Text: "chunk one", Vector: []float32{0.5, 0.5}},
			{Text: "chunk two", Vector: []float32{0, 1}},
		},
	}
	added, err := repos.Documents.UpsertDocuments(ctx, doc)
	require.NoError(t, err)

	retrieved, err := repos.Documents.GetDocument(ctx, added[0].Id)
	require.NoError(t, err)
	require.Len(t, retrieved.Chunks, 2)
	assert.Equal(t, "chunk one", retrieved.Chunks[0].Text)
	assert.Equal(t, []float32{0, 1}, retrieved.Chunks[1].Vector)
}
