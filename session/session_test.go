package session

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/ai/mock"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/profile"
	"github.com/poiesic/hirank/storage"
	"github.com/poiesic/hirank/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	manager   *Manager
	repos     *badger.Repositories
	embedder  *mock.MockEmbedder
	assistant *mock.MockAssistant
	job       *core.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	mockEmbedder := mock.NewMockEmbedder()
	mockAssistant := mock.NewMockAssistant()
	provider := mock.NewMockProviderWithServices(mockEmbedder, mockAssistant)

	manager, err := NewManager(Stores{
		Jobs:       repos.Jobs,
		Candidates: repos.Candidates,
		Documents:  repos.Documents,
		Profiles:   repos.Profiles,
		Scores:     repos.Scores,
	}, provider)
	require.NoError(t, err)

	added, err := repos.Jobs.AddJobs(context.Background(), &core.Job{
		Title:       "Backend Engineer",
		Description: "Build and operate Go services.",
	})
	require.NoError(t, err)

	return &fixture{
		manager:   manager,
		repos:     repos,
		embedder:  mockEmbedder,
		assistant: mockAssistant,
		job:       added[0],
	}
}

func (f *fixture) session(t *testing.T) *Session {
	t.Helper()
	s, err := f.manager.Session(context.Background(), f.job.Id)
	require.NoError(t, err)
	return s
}

// addCandidateWithCV stores an embedded CV document and a candidate owning it.
func (f *fixture) addCandidateWithCV(t *testing.T, name, cv string, vector []float32) *core.Candidate {
	t.Helper()
	ctx := context.Background()

	docs, err := f.repos.Documents.UpsertDocuments(ctx, &core.Document{Contents: cv, Vector: vector})
	require.NoError(t, err)

	added, err := f.repos.Candidates.AddCandidates(ctx, &core.Candidate{Name: name, CVDocumentId: docs[0].Id})
	require.NoError(t, err)
	return added[0]
}

func TestSessionMissingJob(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Session(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFreshJobSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.session(t)

	// Derived state is explicitly empty, not missing.
	assert.Empty(t, s.Questionnaire().Items)
	assert.Equal(t, "", s.IdealCandidate().Resume)
	assert.Empty(t, s.CandidateScores())
	assert.Empty(t, s.FitnessRows())

	// And storage now holds the explicit empty rows.
	questionnaire, err := f.repos.Profiles.GetQuestionnaire(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Empty(t, questionnaire.Items)

	ideal, err := f.repos.Profiles.GetIdealCandidate(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Equal(t, "", ideal.Resume)
}

func TestSessionReusedForSameJob(t *testing.T) {
	f := newFixture(t)

	first := f.session(t)
	second := f.session(t)
	assert.Same(t, first, second)
}

func TestSessionReplacedOnJobSwitch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.repos.Jobs.AddJobs(ctx, &core.Job{Title: "SRE", Description: "Keep the lights on."})
	require.NoError(t, err)

	first := f.session(t)
	require.NoError(t, first.AddQuestionnaireItem(ctx, core.QuestionnaireItem{
		Criterion: "Has experience with Go", Importance: core.ImportanceHigh,
	}))

	// Switch to the other job, then back. The rehydrated session must see
	// the persisted item because the mutation wrote through.
	_, err = f.manager.Session(ctx, other[0].Id)
	require.NoError(t, err)

	back, err := f.manager.Session(ctx, f.job.Id)
	require.NoError(t, err)
	assert.NotSame(t, first, back)
	require.Len(t, back.Questionnaire().Items, 1)
	assert.Equal(t, "Has experience with Go", back.Questionnaire().Items[0].Criterion)
}

func TestSetQuestionnaireJobMismatch(t *testing.T) {
	f := newFixture(t)
	s := f.session(t)

	err := s.SetQuestionnaire(context.Background(), &core.Questionnaire{JobId: f.job.Id + 1})
	assert.ErrorIs(t, err, ErrJobMismatch)
}

func TestAddQuestionnaireItemDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	item := core.QuestionnaireItem{Criterion: "Has experience with Go", Importance: core.ImportanceHigh}
	require.NoError(t, s.AddQuestionnaireItem(ctx, item))

	err := s.AddQuestionnaireItem(ctx, item)
	assert.ErrorIs(t, err, ErrDuplicateCriterion)
}

func TestRemoveQuestionnaireItemSelectors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "A", Importance: core.ImportanceLow}))
	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "B", Importance: core.ImportanceHigh}))

	// Neither selector set.
	err := s.RemoveQuestionnaireItem(ctx, ItemSelector{})
	assert.ErrorIs(t, err, ErrAmbiguousSelector)

	// Both selectors set.
	criterion := "A"
	index := 0
	err = s.RemoveQuestionnaireItem(ctx, ItemSelector{Criterion: &criterion, Index: &index})
	assert.ErrorIs(t, err, ErrAmbiguousSelector)

	// Index beyond the two items.
	err = s.RemoveQuestionnaireItem(ctx, ByIndex(5))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Unknown criterion.
	err = s.RemoveQuestionnaireItem(ctx, ByCriterion("missing"))
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.RemoveQuestionnaireItem(ctx, ByCriterion("A")))
	require.Len(t, s.Questionnaire().Items, 1)

	require.NoError(t, s.RemoveQuestionnaireItem(ctx, ByIndex(0)))
	assert.Empty(t, s.Questionnaire().Items)
}

func TestClearQuestionnaireKeepsRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "A", Importance: core.ImportanceLow}))
	id := s.Questionnaire().Id

	require.NoError(t, s.ClearQuestionnaire(ctx))
	assert.Empty(t, s.Questionnaire().Items)
	assert.Equal(t, id, s.Questionnaire().Id)

	stored, err := f.repos.Profiles.GetQuestionnaire(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Empty(t, stored.Items)
}

func TestGenerateQuestionnaireUpdatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	f.assistant.GenerateCriteriaFunc = func(_ context.Context, _ string, _ []ai.CriteriaExample) ([]ai.Criterion, error) {
		return []ai.Criterion{
			{Criterion: "Has experience with Go", Importance: "high"},
			{Criterion: "Has run production systems", Importance: "medium"},
		}, nil
	}

	generated, err := s.GenerateQuestionnaire(ctx, 2, false, true)
	require.NoError(t, err)
	assert.Len(t, generated.Items, 2)
	assert.Len(t, s.Questionnaire().Items, 2)

	stored, err := f.repos.Profiles.GetQuestionnaire(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestIdealCandidateSetAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	err := s.SetIdealCandidate(ctx, "  ")
	assert.ErrorIs(t, err, profile.ErrEmptyResume)

	require.NoError(t, s.SetIdealCandidate(ctx, "A strong resume."))
	assert.Equal(t, "A strong resume.", s.IdealCandidate().Resume)

	require.NoError(t, s.DeleteIdealCandidate(ctx))
	assert.Equal(t, "", s.IdealCandidate().Resume)

	stored, err := f.repos.Profiles.GetIdealCandidate(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Equal(t, "", stored.Resume)
}

func TestScoreThenDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	require.NoError(t, s.AddCandidateScore(ctx, 1, 0.9))
	require.NoError(t, s.AddCandidateScore(ctx, 2, 0.95))

	scores := s.CandidateScores()
	require.Len(t, scores, 2)
	assert.Equal(t, core.ID(2), scores[0].CandidateId)
	assert.Equal(t, 0.95, scores[0].Score)
	assert.Equal(t, core.ID(1), scores[1].CandidateId)

	require.NoError(t, s.DeleteCandidateScore(ctx, 2))

	scores = s.CandidateScores()
	require.Len(t, scores, 1)
	assert.Equal(t, core.ID(1), scores[0].CandidateId)

	stored, err := f.repos.Scores.ListScores(ctx, f.job.Id)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, core.ID(1), stored[0].CandidateId)
}

func TestAddCandidateScoreUpserts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.session(t)

	require.NoError(t, s.AddCandidateScore(ctx, 1, 0.5))
	require.NoError(t, s.AddCandidateScore(ctx, 1, 0.8))

	scores := s.CandidateScores()
	require.Len(t, scores, 1)
	assert.Equal(t, 0.8, scores[0].Score)
}

func TestRankCandidatesIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		switch text {
		case "Build and operate Go services.":
			return []float32{1, 0, 0}, nil
		case "close cv":
			return []float32{0.9, 0.1, 0}, nil
		default:
			return []float32{0, 1, 0}, nil
		}
	}

	near := f.addCandidateWithCV(t, "Near", "close cv", []float32{0.9, 0.1, 0})
	far := f.addCandidateWithCV(t, "Far", "far cv", []float32{0, 1, 0})

	s := f.session(t)

	first, err := s.RankCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, near.Id, first[0].CandidateId)
	assert.Equal(t, far.Id, first[1].CandidateId)

	second, err := s.RankCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].CandidateId, second[i].CandidateId)
		assert.Equal(t, first[i].Score, second[i].Score)
	}

	// No residual rows from the first rank.
	stored, err := f.repos.Scores.ListScores(ctx, f.job.Id)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestGenerateScoresRequiresQuestionnaire(t *testing.T) {
	f := newFixture(t)
	s := f.session(t)

	_, err := s.GenerateScores(context.Background())
	assert.ErrorIs(t, err, ErrEmptyQuestionnaire)
}

func TestGenerateScores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	strong := f.addCandidateWithCV(t, "Strong", "strong cv", []float32{1, 0, 0})
	weak := f.addCandidateWithCV(t, "Weak", "weak cv", []float32{0, 1, 0})

	f.assistant.ScoreCandidateFunc = func(_ context.Context, candidateCV string, criteria []ai.Criterion) ([]string, error) {
		if candidateCV == "strong cv" {
			return []string{"excellent", "excellent"}, nil
		}
		return []string{"poor", "fair"}, nil
	}

	s := f.session(t)
	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "Knows Go", Importance: core.ImportanceHigh}))
	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "Ships", Importance: core.ImportanceMedium}))

	// Without explicit ids, candidates holding a score row are scored.
	require.NoError(t, s.AddCandidateScore(ctx, strong.Id, 0.1))
	require.NoError(t, s.AddCandidateScore(ctx, weak.Id, 0.9))

	rows, err := s.GenerateScores(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Fitness rows persisted.
	stored, err := f.repos.Scores.GetFitness(ctx, strong.Id, f.job.Id, s.Questionnaire().Id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stored.Fitness)
	assert.Len(t, stored.Scores, 2)

	// Coarse scores reconciled with the fitness aggregate: the strong
	// candidate now outranks the weak one despite the initial ordering.
	scores := s.CandidateScores()
	require.Len(t, scores, 2)
	assert.Equal(t, strong.Id, scores[0].CandidateId)
	assert.Equal(t, 1.0, scores[0].Score)
	assert.Equal(t, weak.Id, scores[1].CandidateId)
}

func TestGenerateScoresSkipsCandidatesWithoutCV(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	added, err := f.repos.Candidates.AddCandidates(ctx, &core.Candidate{Name: "No CV"})
	require.NoError(t, err)

	s := f.session(t)
	require.NoError(t, s.AddQuestionnaireItem(ctx, core.QuestionnaireItem{Criterion: "Knows Go", Importance: core.ImportanceHigh}))

	rows, err := s.GenerateScores(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
