package rank

import (
	"context"
	"log/slog"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// Ranker performs coarse vector ranking of documents and candidates.
type Ranker struct {
	documents  storage.DocumentRepository
	candidates storage.CandidateRepository
	embedder   ai.Embedder
	metric     core.Metric
	logger     *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMetric sets the similarity metric used for ranking.
// Default is cosine distance.
func WithMetric(metric core.Metric) Option {
	return func(r *Ranker) error {
		if err := core.ValidateMetric(metric); err != nil {
			return err
		}
		r.metric = metric
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(
	documents storage.DocumentRepository,
	candidates storage.CandidateRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Ranker, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Ranker{
		documents:  documents,
		candidates: candidates,
		embedder:   provider.Embedder(),
		metric:     core.MetricCosine,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// AddDocument embeds text and upserts it as a document. The document row and
// its embedding are written in one transaction, so a stored document is never
// observed half-embedded.
func (r *Ranker) AddDocument(ctx context.Context, text string) (*core.Document, error) {
	vector, err := r.embedder.EmbedText(ctx, text)
	if err != nil {
		r.logger.Error("error generating embedding for document", "err", err)
		return nil, err
	}

	doc := &core.Document{
		Contents: text,
		Vector:   vector,
	}
	stored, err := r.documents.UpsertDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}
	return stored[0], nil
}

// Rank returns the topK stored documents closest to the query text.
// Documents without an embedding are silently excluded. A topK <= 0 returns
// all eligible documents. An empty corpus returns an empty list, not an error.
func (r *Ranker) Rank(ctx context.Context, query string, topK int) ([]*core.DocumentMatch, error) {
	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	return r.documents.FindSimilar(ctx, embedding, r.metric, topK)
}

// RankCandidates ranks candidates whose CV document has an embedding against
// the query text, best first. Scores are user-facing display scores, higher
// is better. The returned rows carry no job id; the caller assigns one.
func (r *Ranker) RankCandidates(ctx context.Context, query string, topK int) ([]*core.CandidateScore, error) {
	return r.RankCandidatesWithMonitor(ctx, query, topK, nil)
}

// RankCandidatesWithMonitor ranks candidates with monitoring.
// The monitor receives callbacks at each stage of the ranking process.
func (r *Ranker) RankCandidatesWithMonitor(ctx context.Context, query string, topK int, monitor RankMonitor) ([]*core.CandidateScore, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(embedding)

	// Unlimited document search; candidates without a CV document filter
	// the matches down afterwards.
	matches, err := r.documents.FindSimilar(ctx, embedding, r.metric, 0)
	if err != nil {
		r.logger.Error("error querying for similar documents", "err", err)
		return nil, err
	}
	monitor.AfterSimilaritySearch(matches)

	// Map CV document IDs back to their candidates.
	candidates, err := r.candidates.ListCandidates(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	byDocument := make(map[core.ID]*core.Candidate, len(candidates))
	for _, candidate := range candidates {
		if candidate.CVDocumentId != 0 {
			byDocument[candidate.CVDocumentId] = candidate
		}
	}

	var scores []*core.CandidateScore
	for _, match := range matches {
		candidate, ok := byDocument[match.Document.Id]
		if !ok {
			// Document is not a CV, or its candidate was removed.
			continue
		}

		score := core.DisplayScore(match.Distance, r.metric)
		monitor.CandidateHit(candidate.Id, score)

		scores = append(scores, &core.CandidateScore{
			CandidateId: candidate.Id,
			Score:       score,
		})
		if topK > 0 && len(scores) == topK {
			break
		}
	}

	monitor.Finish(scores)
	return scores, nil
}
