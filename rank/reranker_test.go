package rank

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/hirank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lengthScore scores documents by length, which makes ordering obvious.
func lengthScore(_ context.Context, _ string, document string) (float64, error) {
	return float64(len(document)), nil
}

func TestNewReranker_RequiresScoreFunc(t *testing.T) {
	_, err := NewReranker(nil)
	assert.ErrorIs(t, err, ErrScoreFuncRequired)
}

func TestRerankLengthMismatch(t *testing.T) {
	reranker, err := NewReranker(lengthScore)
	require.NoError(t, err)

	_, err = reranker.Rerank(context.Background(), "q", []core.ID{1, 2}, []string{"only one"}, -1)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRerankAllSortedDescending(t *testing.T) {
	reranker, err := NewReranker(lengthScore)
	require.NoError(t, err)

	results, err := reranker.Rerank(context.Background(), "q",
		[]core.ID{1, 2, 3},
		[]string{"short", "the longest document", "medium one"},
		-1)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, core.ID(2), results[0].Id)
	assert.Equal(t, core.ID(3), results[1].Id)
	assert.Equal(t, core.ID(1), results[2].Id)
}

func TestRerankTopK(t *testing.T) {
	reranker, err := NewReranker(lengthScore)
	require.NoError(t, err)

	results, err := reranker.Rerank(context.Background(), "q",
		[]core.ID{1, 2, 3},
		[]string{"a", "ccc", "bb"},
		2)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, core.ID(2), results[0].Id)
	assert.Equal(t, core.ID(3), results[1].Id)
}

func TestRerankEmptyInput(t *testing.T) {
	reranker, err := NewReranker(lengthScore)
	require.NoError(t, err)

	results, err := reranker.Rerank(context.Background(), "q", nil, nil, -1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRerankPropagatesScoreError(t *testing.T) {
	scoreErr := errors.New("model unavailable")
	reranker, err := NewReranker(func(_ context.Context, _, document string) (float64, error) {
		if strings.Contains(document, "bad") {
			return 0, scoreErr
		}
		return 1, nil
	})
	require.NoError(t, err)

	_, err = reranker.Rerank(context.Background(), "q",
		[]core.ID{1, 2},
		[]string{"fine", "bad doc"},
		-1)
	assert.ErrorIs(t, err, scoreErr)
}

func TestRerankParallel(t *testing.T) {
	reranker, err := NewReranker(lengthScore, WithParallelism(4))
	require.NoError(t, err)

	ids := make([]core.ID, 20)
	documents := make([]string, 20)
	for i := range ids {
		ids[i] = core.ID(i + 1)
		documents[i] = strings.Repeat("x", i+1)
	}

	results, err := reranker.Rerank(context.Background(), "q", ids, documents, -1)
	require.NoError(t, err)

	require.Len(t, results, 20)
	// Longest document first regardless of worker completion order.
	assert.Equal(t, core.ID(20), results[0].Id)
	assert.Equal(t, core.ID(1), results[19].Id)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}
