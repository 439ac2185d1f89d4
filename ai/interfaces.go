package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Assistant produces structured judgments about jobs and candidates.
// Implementations must be thread-safe for concurrent use.
type Assistant interface {
	// GenerateCriteria derives evaluation criteria from a job description.
	// Examples, when provided, prime the generation few-shot so that new
	// criteria align with an existing questionnaire's style.
	// Returns an error if generation fails or produces unparseable output.
	GenerateCriteria(ctx context.Context, jobDescription string, examples []CriteriaExample) ([]Criterion, error)

	// GenerateIdealResume synthesizes an exemplary resume text for a job
	// description. The result is used as an auxiliary similarity-search
	// anchor alongside the job description itself.
	GenerateIdealResume(ctx context.Context, jobDescription string) (string, error)

	// ScoreCandidate judges a candidate CV against evaluation criteria.
	// Returns one categorical label per criterion, in criteria order; the
	// labels come from ScoreLabels. The returned slice always has the same
	// length as criteria.
	ScoreCandidate(ctx context.Context, candidateCV string, criteria []Criterion) ([]string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Assistant instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Assistant returns the structured-judgment service.
	// The returned Assistant is safe for concurrent use.
	Assistant() Assistant

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
