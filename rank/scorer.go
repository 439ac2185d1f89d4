package rank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
)

// DefaultWeights maps criterion importance to its weight in the fitness
// aggregate. High-importance criteria count four times as much as low.
func DefaultWeights() map[core.Importance]float64 {
	return map[core.Importance]float64{
		core.ImportanceLow:    0.5,
		core.ImportanceMedium: 1.0,
		core.ImportanceHigh:   2.0,
	}
}

// DefaultValues maps the categorical labels returned by the LLM scorer to
// numeric values in [0, 1]. Unknown labels fall back to 0.
func DefaultValues() map[string]float64 {
	return map[string]float64{
		"poor":      0.0,
		"fair":      1.0 / 3.0,
		"good":      2.0 / 3.0,
		"excellent": 1.0,
	}
}

// QuestionnaireScorer computes a single weighted fitness score for a
// candidate CV against a questionnaire. Per-criterion judgments come from
// the assistant; this type only does the aggregation.
type QuestionnaireScorer struct {
	assistant ai.Assistant
	weights   map[core.Importance]float64
	values    map[string]float64
	logger    *slog.Logger
}

// ScorerOption configures a QuestionnaireScorer.
type ScorerOption func(*QuestionnaireScorer) error

// WithWeights overrides the importance-to-weight table.
func WithWeights(weights map[core.Importance]float64) ScorerOption {
	return func(s *QuestionnaireScorer) error {
		if weights != nil {
			s.weights = weights
		}
		return nil
	}
}

// WithValues overrides the label-to-value table.
func WithValues(values map[string]float64) ScorerOption {
	return func(s *QuestionnaireScorer) error {
		if values != nil {
			s.values = values
		}
		return nil
	}
}

// WithScorerLogger sets a custom logger.
// Default is slog.Default().
func WithScorerLogger(logger *slog.Logger) ScorerOption {
	return func(s *QuestionnaireScorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewQuestionnaireScorer creates a new questionnaire scorer.
func NewQuestionnaireScorer(provider ai.AIProvider, opts ...ScorerOption) (*QuestionnaireScorer, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &QuestionnaireScorer{
		assistant: provider.Assistant(),
		weights:   DefaultWeights(),
		values:    DefaultValues(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Score judges candidateCV against every item of the questionnaire and
// returns the per-criterion numeric values together with the weighted
// fitness aggregate. An empty questionnaire yields 0.0 without calling
// the assistant.
func (s *QuestionnaireScorer) Score(ctx context.Context, candidateCV string, questionnaire *core.Questionnaire) ([]float64, float64, error) {
	if questionnaire == nil || len(questionnaire.Items) == 0 {
		return nil, 0.0, nil
	}

	criteria := CriteriaFromItems(questionnaire.Items)

	labels, err := s.assistant.ScoreCandidate(ctx, candidateCV, criteria)
	if err != nil {
		s.logger.Error("error scoring candidate", "err", err)
		return nil, 0, err
	}
	if len(labels) != len(questionnaire.Items) {
		return nil, 0, fmt.Errorf("%w: %d labels for %d criteria",
			ErrScoreCountMismatch, len(labels), len(questionnaire.Items))
	}

	values := make([]float64, len(labels))
	weights := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = s.values[label]
		weights[i] = s.weights[questionnaire.Items[i].Importance]
	}

	return values, WeightedFitness(values, weights), nil
}

// WeightedFitness computes sum(weight*value)/sum(weight). A zero total
// weight yields 0.0, never a division error.
func WeightedFitness(values, weights []float64) float64 {
	var weighted, total float64
	for i := range values {
		weighted += weights[i] * values[i]
		total += weights[i]
	}
	if total == 0 {
		return 0.0
	}
	return weighted / total
}

// CriteriaFromItems converts questionnaire items to the wire form the
// assistant expects.
func CriteriaFromItems(items []core.QuestionnaireItem) []ai.Criterion {
	criteria := make([]ai.Criterion, len(items))
	for i, item := range items {
		criteria[i] = ai.Criterion{
			Criterion:  item.Criterion,
			Importance: item.Importance.String(),
		}
	}
	return criteria
}
