package storage

import (
	"context"

	"github.com/poiesic/hirank/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// JobRepository provides operations for managing job postings.
type JobRepository interface {
	Repository
	// AddJobs adds one or more jobs to storage.
	// For jobs with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the jobs with generated IDs and timestamps populated.
	AddJobs(ctx context.Context, jobs ...*core.Job) ([]*core.Job, error)

	// UpdateJobs updates existing jobs.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any job doesn't exist.
	UpdateJobs(ctx context.Context, jobs ...*core.Job) ([]*core.Job, error)

	// DeleteJobs removes jobs by their IDs, cascading to the job's
	// questionnaire, ideal candidate, candidate scores and fitness rows
	// within the same transaction.
	// Returns ErrNotFound if any job doesn't exist.
	DeleteJobs(ctx context.Context, ids ...core.ID) error

	// GetJob retrieves a single job by ID.
	// Returns ErrNotFound if the job doesn't exist.
	GetJob(ctx context.Context, id core.ID) (*core.Job, error)

	// ListJobs retrieves up to limit jobs in ID order, skipping offset rows.
	// A limit <= 0 means no limit.
	ListJobs(ctx context.Context, limit, offset int) ([]*core.Job, error)
}

// CandidateRepository provides operations for managing candidates.
type CandidateRepository interface {
	Repository
	// AddCandidates adds one or more candidates to storage.
	// For candidates with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	AddCandidates(ctx context.Context, candidates ...*core.Candidate) ([]*core.Candidate, error)

	// UpdateCandidates updates existing candidates.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any candidate doesn't exist.
	UpdateCandidates(ctx context.Context, candidates ...*core.Candidate) ([]*core.Candidate, error)

	// DeleteCandidates removes candidates by their IDs.
	// Returns ErrNotFound if any candidate doesn't exist.
	DeleteCandidates(ctx context.Context, ids ...core.ID) error

	// GetCandidate retrieves a single candidate by ID.
	// Returns ErrNotFound if the candidate doesn't exist.
	GetCandidate(ctx context.Context, id core.ID) (*core.Candidate, error)

	// GetCandidates retrieves multiple candidates by their IDs.
	// Returns only the candidates that exist (no error for missing ones).
	GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.Candidate, error)

	// ListCandidates retrieves up to limit candidates in ID order.
	// A limit <= 0 means no limit.
	ListCandidates(ctx context.Context, limit, offset int) ([]*core.Candidate, error)
}

// DocumentRepository provides operations for managing extracted documents
// and their embeddings.
type DocumentRepository interface {
	Repository
	// UpsertDocuments stores documents, replacing any existing document with
	// the same ID (replace-if-exists, not merge). Documents use content-based
	// IDs: an ID of 0 is replaced by core.IDFromContent of the contents.
	// The document row and its embedding are written atomically.
	UpsertDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// ListDocuments retrieves up to limit documents in ID order.
	// A limit <= 0 means no limit.
	ListDocuments(ctx context.Context, limit, offset int) ([]*core.Document, error)

	// FindSimilar finds documents whose embedding is closest to the query
	// vector under the given metric. Documents without an embedding are
	// silently excluded. Results are ordered by distance ascending (closest
	// first), up to limit entries. Returns core.ErrUnsupportedMetric for an
	// unknown metric.
	FindSimilar(ctx context.Context, vector []float32, metric core.Metric, limit int) ([]*core.DocumentMatch, error)
}

// ProfileRepository provides operations for the per-job derived profile:
// the questionnaire and the ideal-candidate resume. Both are keyed by job id,
// so at most one row of each exists per job.
type ProfileRepository interface {
	Repository
	// GetQuestionnaire retrieves the questionnaire for a job.
	// Returns ErrNotFound if no questionnaire row exists yet.
	GetQuestionnaire(ctx context.Context, jobID core.ID) (*core.Questionnaire, error)

	// UpsertQuestionnaire stores the questionnaire for its job, replacing any
	// existing row. For questionnaires with ID=0, generates a new ID from
	// sequence. Updates the UpdatedAt timestamp automatically.
	UpsertQuestionnaire(ctx context.Context, questionnaire *core.Questionnaire) (*core.Questionnaire, error)

	// DeleteQuestionnaire removes a job's questionnaire row.
	// Returns ErrNotFound if no row exists.
	DeleteQuestionnaire(ctx context.Context, jobID core.ID) error

	// GetIdealCandidate retrieves the ideal-candidate row for a job.
	// Returns ErrNotFound if no row exists yet.
	GetIdealCandidate(ctx context.Context, jobID core.ID) (*core.IdealCandidate, error)

	// UpsertIdealCandidate stores the ideal-candidate row for its job,
	// replacing any existing row.
	UpsertIdealCandidate(ctx context.Context, ideal *core.IdealCandidate) (*core.IdealCandidate, error)

	// DeleteIdealCandidate removes a job's ideal-candidate row.
	// Returns ErrNotFound if no row exists.
	DeleteIdealCandidate(ctx context.Context, jobID core.ID) error
}

// ScoreRepository provides operations for coarse candidate scores and
// fine-grained fitness rows.
type ScoreRepository interface {
	Repository
	// ListScores retrieves all score rows for a job, ordered by score
	// descending (best first).
	ListScores(ctx context.Context, jobID core.ID) ([]*core.CandidateScore, error)

	// UpsertScore stores one score row, replacing any existing row for the
	// same (job, candidate) pair.
	UpsertScore(ctx context.Context, score *core.CandidateScore) error

	// ReplaceScores atomically deletes every score row for the job and
	// inserts the given rows. Ranking is wholesale replacement, never a merge.
	ReplaceScores(ctx context.Context, jobID core.ID, scores []*core.CandidateScore) error

	// DeleteScore removes the score row for one (job, candidate) pair.
	// Returns ErrNotFound if no row exists.
	DeleteScore(ctx context.Context, jobID, candidateID core.ID) error

	// DeleteScoresForJob removes all score rows for a job.
	// Returns the number of rows deleted.
	DeleteScoresForJob(ctx context.Context, jobID core.ID) (int, error)

	// UpsertFitness stores one fitness row, replacing any existing row for
	// the same (candidate, job, questionnaire) key.
	UpsertFitness(ctx context.Context, fitness *core.CandidateFitness) error

	// GetFitness retrieves one fitness row.
	// Returns ErrNotFound if no row exists.
	GetFitness(ctx context.Context, candidateID, jobID, questionnaireID core.ID) (*core.CandidateFitness, error)

	// ListFitness retrieves all fitness rows for a job in candidate-ID order.
	ListFitness(ctx context.Context, jobID core.ID) ([]*core.CandidateFitness, error)
}
