package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/profile"
	"github.com/poiesic/hirank/rank"
	"github.com/poiesic/hirank/storage"
)

// Stores bundles the repositories a session manager needs.
type Stores struct {
	Jobs       storage.JobRepository
	Candidates storage.CandidateRepository
	Documents  storage.DocumentRepository
	Profiles   storage.ProfileRepository
	Scores     storage.ScoreRepository
}

func (s Stores) validate() error {
	if s.Jobs == nil || s.Candidates == nil || s.Documents == nil ||
		s.Profiles == nil || s.Scores == nil {
		return ErrStoresRequired
	}
	return nil
}

// Manager resolves per-job sessions. It keeps at most one live session;
// asking for a different job replaces the cached one.
type Manager struct {
	stores    Stores
	provider  ai.AIProvider
	ranker    *rank.Ranker
	generator *profile.Generator
	scorer    *rank.QuestionnaireScorer
	logger    *slog.Logger

	mu      sync.Mutex
	current *Session
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithRanker overrides the default ranker, e.g. to change the metric.
func WithRanker(ranker *rank.Ranker) Option {
	return func(m *Manager) error {
		if ranker != nil {
			m.ranker = ranker
		}
		return nil
	}
}

// NewManager creates a session manager with a default ranker, profile
// generator and questionnaire scorer wired to the given stores and provider.
func NewManager(stores Stores, provider ai.AIProvider, opts ...Option) (*Manager, error) {
	if err := stores.validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	ranker, err := rank.NewRanker(stores.Documents, stores.Candidates, provider)
	if err != nil {
		return nil, err
	}

	generator, err := profile.NewGenerator(stores.Profiles, provider)
	if err != nil {
		return nil, err
	}

	scorer, err := rank.NewQuestionnaireScorer(provider)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		stores:    stores,
		provider:  provider,
		ranker:    ranker,
		generator: generator,
		scorer:    scorer,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Session returns the session for jobID, rehydrating from storage when the
// cached session is for a different job or none exists. Returns
// storage.ErrNotFound when the job does not exist.
func (m *Manager) Session(ctx context.Context, jobID core.ID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.job.Id == jobID {
		return m.current, nil
	}

	// Tearing down the old session is just dropping it: every mutation
	// already wrote through to storage.
	if m.current != nil {
		m.logger.Debug("replacing cached session", "old_job", m.current.job.Id, "new_job", jobID)
		m.current = nil
	}

	session, err := m.initialize(ctx, jobID)
	if err != nil {
		return nil, err
	}
	m.current = session
	return session, nil
}

// Invalidate drops the cached session, forcing the next access to rehydrate.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// initialize loads a job's derived state from storage, persisting explicit
// empty questionnaire and ideal-candidate rows when none exist yet.
func (m *Manager) initialize(ctx context.Context, jobID core.ID) (*Session, error) {
	job, err := m.stores.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := m.stores.Profiles.GetQuestionnaire(ctx, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		questionnaire, err = m.stores.Profiles.UpsertQuestionnaire(ctx, &core.Questionnaire{JobId: jobID})
	}
	if err != nil {
		return nil, err
	}

	ideal, err := m.stores.Profiles.GetIdealCandidate(ctx, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		// An empty resume means "not generated yet".
		ideal, err = m.stores.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{JobId: jobID})
	}
	if err != nil {
		return nil, err
	}

	scores, err := m.stores.Scores.ListScores(ctx, jobID)
	if err != nil {
		return nil, err
	}

	fitness, err := m.stores.Scores.ListFitness(ctx, jobID)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("session initialized",
		"job", jobID,
		"questionnaire_items", len(questionnaire.Items),
		"scores", len(scores),
		"fitness_rows", len(fitness))

	return &Session{
		manager:       m,
		job:           job,
		questionnaire: questionnaire,
		ideal:         ideal,
		scores:        scores,
		fitness:       fitness,
	}, nil
}
