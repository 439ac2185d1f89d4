package profile

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// DefaultTargetCount is the questionnaire size used when the caller does not
// ask for a specific one.
const DefaultTargetCount = 10

// Generator derives and persists the per-job profile.
type Generator struct {
	profiles  storage.ProfileRepository
	assistant ai.Assistant
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a new profile generator.
func NewGenerator(profiles storage.ProfileRepository, provider ai.AIProvider, opts ...Option) (*Generator, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	g := &Generator{
		profiles:  profiles,
		assistant: provider.Assistant(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GenerateQuestionnaire derives a questionnaire for the job and persists it.
//
// If existing already has at least targetCount items it is returned
// unchanged; regenerating a sufficient rubric would only churn it. Otherwise
// the assistant generates fresh criteria, primed with the existing rubric as
// a one-shot example when one exists, and the two sets are merged: existing
// items first, new items appended, deduplicated by exact criterion text.
//
// With exact set, a merged set smaller than targetCount is an error
// (ErrInsufficientCriteria); a larger one is trimmed to targetCount by
// importance descending, ties keeping their original order.
func (g *Generator) GenerateQuestionnaire(ctx context.Context, job *core.Job, existing *core.Questionnaire, targetCount int, exact bool) (*core.Questionnaire, error) {
	if job == nil {
		return nil, ErrJobRequired
	}
	if targetCount <= 0 {
		targetCount = DefaultTargetCount
	}

	// Already sufficient: do not regenerate.
	if existing != nil && len(existing.Items) >= targetCount {
		return existing, nil
	}

	var examples []ai.CriteriaExample
	if existing != nil && len(existing.Items) > 0 {
		// One-shot priming keeps generated criteria stylistically aligned
		// with what the rubric already has.
		examples = append(examples, ai.CriteriaExample{
			JobDescription: job.Description,
			Criteria:       criteriaFromItems(existing.Items),
		})
	}

	generated, err := g.assistant.GenerateCriteria(ctx, job.Description, examples)
	if err != nil {
		g.logger.Error("error generating criteria", "job", job.Id, "err", err)
		return nil, err
	}

	var existingItems []core.QuestionnaireItem
	var questionnaireID core.ID
	if existing != nil {
		existingItems = existing.Items
		questionnaireID = existing.Id
	}

	merged := MergeCriteria(existingItems, generated)

	if exact {
		if len(merged) < targetCount {
			return nil, ErrInsufficientCriteria
		}
		if len(merged) > targetCount {
			merged = TrimByImportance(merged, targetCount)
		}
	}

	questionnaire := &core.Questionnaire{
		Id:    questionnaireID,
		JobId: job.Id,
		Items: merged,
	}
	return g.profiles.UpsertQuestionnaire(ctx, questionnaire)
}

// GenerateIdealResume derives a synthetic ideal resume for the job and
// persists it, overwriting any previous one. A blank generation is an error;
// the previous row is left untouched in that case.
func (g *Generator) GenerateIdealResume(ctx context.Context, job *core.Job) (*core.IdealCandidate, error) {
	if job == nil {
		return nil, ErrJobRequired
	}

	resume, err := g.assistant.GenerateIdealResume(ctx, job.Description)
	if err != nil {
		g.logger.Error("error generating ideal resume", "job", job.Id, "err", err)
		return nil, err
	}
	if strings.TrimSpace(resume) == "" {
		return nil, ErrEmptyResume
	}

	ideal := &core.IdealCandidate{
		JobId:  job.Id,
		Resume: resume,
	}
	return g.profiles.UpsertIdealCandidate(ctx, ideal)
}

// MergeCriteria merges generated criteria into an existing item list.
// Existing items come first in their original order; generated criteria are
// appended unless their exact text is already present. The dedup key is the
// case-sensitive criterion text.
func MergeCriteria(existing []core.QuestionnaireItem, generated []ai.Criterion) []core.QuestionnaireItem {
	merged := make([]core.QuestionnaireItem, 0, len(existing)+len(generated))
	seen := make(map[string]bool, len(existing)+len(generated))

	for _, item := range existing {
		if seen[item.Criterion] {
			continue
		}
		seen[item.Criterion] = true
		merged = append(merged, item)
	}

	for _, criterion := range generated {
		if seen[criterion.Criterion] {
			continue
		}
		seen[criterion.Criterion] = true
		merged = append(merged, core.QuestionnaireItem{
			Criterion:  criterion.Criterion,
			Importance: core.ParseImportance(criterion.Importance),
		})
	}

	return merged
}

// TrimByImportance returns the target highest-importance items. The sort is
// stable, so items of equal importance keep their original relative order.
func TrimByImportance(items []core.QuestionnaireItem, target int) []core.QuestionnaireItem {
	if len(items) <= target {
		return items
	}

	trimmed := make([]core.QuestionnaireItem, len(items))
	copy(trimmed, items)

	slices.SortStableFunc(trimmed, func(a, b core.QuestionnaireItem) int {
		return int(b.Importance) - int(a.Importance)
	})

	return trimmed[:target]
}

func criteriaFromItems(items []core.QuestionnaireItem) []ai.Criterion {
	criteria := make([]ai.Criterion, len(items))
	for i, item := range items {
		criteria[i] = ai.Criterion{
			Criterion:  item.Criterion,
			Importance: item.Importance.String(),
		}
	}
	return criteria
}
