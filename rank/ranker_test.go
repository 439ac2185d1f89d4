package rank

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/ai/mock"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vectorsByText routes specific texts to fixed embeddings so ranking
// order is controlled by the test, not the mock's hash.
func vectorsByText(vectors map[string][]float32) func(ctx context.Context, text string) ([]float32, error) {
	return func(ctx context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{0, 0, 1}, nil
	}
}

func newRankerFixture(t *testing.T, vectors map[string][]float32) (*Ranker, *badger.Repositories, *mock.MockEmbedder) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	mockEmbedder := mock.NewMockEmbedder()
	if vectors != nil {
		mockEmbedder.EmbedTextFunc = vectorsByText(vectors)
	}
	provider := mock.NewMockProviderWithServices(mockEmbedder, mock.NewMockAssistant())

	ranker, err := NewRanker(repos.Documents, repos.Candidates, provider)
	require.NoError(t, err)

	return ranker, repos, mockEmbedder
}

func TestNewRanker_Validation(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	provider := mock.NewMockProvider()

	_, err = NewRanker(nil, repos.Candidates, provider)
	assert.ErrorIs(t, err, ErrDocumentRepositoryRequired)

	_, err = NewRanker(repos.Documents, nil, provider)
	assert.ErrorIs(t, err, ErrCandidateRepositoryRequired)

	_, err = NewRanker(repos.Documents, repos.Candidates, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)

	_, err = NewRanker(repos.Documents, repos.Candidates, provider, WithMetric(core.Metric("hamming")))
	assert.ErrorIs(t, err, core.ErrUnsupportedMetric)
}

func TestAddDocumentEmbeds(t *testing.T) {
	ranker, repos, _ := newRankerFixture(t, map[string][]float32{
		"resume text": {0.5, 0.5, 0},
	})

	ctx := context.Background()

	doc, err := ranker.AddDocument(ctx, "resume text")
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("resume text"), doc.Id)
	assert.Equal(t, []float32{0.5, 0.5, 0}, doc.Vector)

	stored, err := repos.Documents.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, doc.Vector, stored.Vector)
}

func TestRankEmptyCorpus(t *testing.T) {
	ranker, _, _ := newRankerFixture(t, nil)

	matches, err := ranker.Rank(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRankTopKLargerThanCorpus(t *testing.T) {
	ranker, _, _ := newRankerFixture(t, map[string][]float32{
		"query": {1, 0, 0},
		"a":     {1, 0, 0},
		"b":     {0, 1, 0},
	})

	ctx := context.Background()
	_, err := ranker.AddDocument(ctx, "a")
	require.NoError(t, err)
	_, err = ranker.AddDocument(ctx, "b")
	require.NoError(t, err)

	matches, err := ranker.Rank(ctx, "query", 100)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].Document.Contents)
}

func TestRankCandidates(t *testing.T) {
	ranker, repos, _ := newRankerFixture(t, map[string][]float32{
		"job description": {1, 0, 0},
		"close cv":        {0.9, 0.1, 0},
		"far cv":          {0, 1, 0},
		"orphan doc":      {1, 0, 0},
	})

	ctx := context.Background()

	closeDoc, err := ranker.AddDocument(ctx, "close cv")
	require.NoError(t, err)
	farDoc, err := ranker.AddDocument(ctx, "far cv")
	require.NoError(t, err)
	// A document no candidate owns must never appear in the ranking.
	_, err = ranker.AddDocument(ctx, "orphan doc")
	require.NoError(t, err)

	added, err := repos.Candidates.AddCandidates(ctx,
		&core.Candidate{Name: "Close", CVDocumentId: closeDoc.Id},
		&core.Candidate{Name: "Far", CVDocumentId: farDoc.Id},
		&core.Candidate{Name: "No CV"},
	)
	require.NoError(t, err)

	scores, err := ranker.RankCandidates(ctx, "job description", 10)
	require.NoError(t, err)

	require.Len(t, scores, 2)
	assert.Equal(t, added[0].Id, scores[0].CandidateId)
	assert.Equal(t, added[1].Id, scores[1].CandidateId)
	assert.Greater(t, scores[0].Score, scores[1].Score)
}

func TestRankCandidatesIdempotent(t *testing.T) {
	ranker, repos, _ := newRankerFixture(t, map[string][]float32{
		"job description": {1, 0, 0},
		"cv one":          {0.8, 0.2, 0},
		"cv two":          {0.4, 0.6, 0},
	})

	ctx := context.Background()

	docOne, err := ranker.AddDocument(ctx, "cv one")
	require.NoError(t, err)
	docTwo, err := ranker.AddDocument(ctx, "cv two")
	require.NoError(t, err)

	_, err = repos.Candidates.AddCandidates(ctx,
		&core.Candidate{Name: "One", CVDocumentId: docOne.Id},
		&core.Candidate{Name: "Two", CVDocumentId: docTwo.Id},
	)
	require.NoError(t, err)

	first, err := ranker.RankCandidates(ctx, "job description", 10)
	require.NoError(t, err)
	second, err := ranker.RankCandidates(ctx, "job description", 10)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CandidateId, second[i].CandidateId)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRankCandidatesTopK(t *testing.T) {
	ranker, repos, _ := newRankerFixture(t, map[string][]float32{
		"job description": {1, 0, 0},
		"cv one":          {0.9, 0.1, 0},
		"cv two":          {0.5, 0.5, 0},
		"cv three":        {0.1, 0.9, 0},
	})

	ctx := context.Background()

	for _, cv := range []string{"cv one", "cv two", "cv three"} {
		doc, err := ranker.AddDocument(ctx, cv)
		require.NoError(t, err)
		_, err = repos.Candidates.AddCandidates(ctx, &core.Candidate{Name: cv, CVDocumentId: doc.Id})
		require.NoError(t, err)
	}

	scores, err := ranker.RankCandidates(ctx, "job description", 2)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

// recordingMonitor records which hooks fired during a rank.
type recordingMonitor struct {
	query     string
	vector    []float32
	matches   int
	hits      int
	finalized int
}

func (m *recordingMonitor) Start(query string)              { m.query = query }
func (m *recordingMonitor) AfterQueryEmbedding(v []float32) { m.vector = v }
func (m *recordingMonitor) AfterSimilaritySearch(matches []*core.DocumentMatch) {
	m.matches = len(matches)
}
func (m *recordingMonitor) CandidateHit(_ core.ID, _ float64)   { m.hits++ }
func (m *recordingMonitor) Finish(scores []*core.CandidateScore) { m.finalized = len(scores) }

func TestRankCandidatesWithMonitor(t *testing.T) {
	ranker, repos, _ := newRankerFixture(t, map[string][]float32{
		"job description": {1, 0, 0},
		"close cv":        {0.9, 0.1, 0},
	})

	ctx := context.Background()

	doc, err := ranker.AddDocument(ctx, "close cv")
	require.NoError(t, err)
	_, err = repos.Candidates.AddCandidates(ctx, &core.Candidate{Name: "Close", CVDocumentId: doc.Id})
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	scores, err := ranker.RankCandidatesWithMonitor(ctx, "job description", 10, monitor)
	require.NoError(t, err)

	require.Len(t, scores, 1)
	assert.Equal(t, "job description", monitor.query)
	assert.NotEmpty(t, monitor.vector)
	assert.Equal(t, 1, monitor.matches)
	assert.Equal(t, 1, monitor.hits)
	assert.Equal(t, 1, monitor.finalized)
}
