package profile

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/ai/mock"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeneratorFixture(t *testing.T) (*Generator, *badger.Repositories, *mock.MockAssistant) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	mockAssistant := mock.NewMockAssistant()
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), mockAssistant)

	generator, err := NewGenerator(repos.Profiles, provider)
	require.NoError(t, err)

	return generator, repos, mockAssistant
}

func criteriaResponse(criteria ...ai.Criterion) func(ctx context.Context, jobDescription string, examples []ai.CriteriaExample) ([]ai.Criterion, error) {
	return func(_ context.Context, _ string, _ []ai.CriteriaExample) ([]ai.Criterion, error) {
		return criteria, nil
	}
}

func TestGenerateQuestionnairePersists(t *testing.T) {
	generator, repos, mockAssistant := newGeneratorFixture(t)
	mockAssistant.GenerateCriteriaFunc = criteriaResponse(
		ai.Criterion{Criterion: "Has experience with Go", Importance: "high"},
		ai.Criterion{Criterion: "Has run production systems", Importance: "medium"},
	)

	ctx := context.Background()
	job := &core.Job{Id: 1, Description: "Go backend role"}

	questionnaire, err := generator.GenerateQuestionnaire(ctx, job, nil, 2, false)
	require.NoError(t, err)
	require.Len(t, questionnaire.Items, 2)
	assert.Equal(t, core.ID(1), questionnaire.JobId)
	assert.NotZero(t, questionnaire.Id)

	stored, err := repos.Profiles.GetQuestionnaire(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, questionnaire.Items, stored.Items)
}

func TestGenerateQuestionnaireIdempotentWhenSufficient(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)

	existing := &core.Questionnaire{
		Id:    5,
		JobId: 1,
		Items: []core.QuestionnaireItem{
			{Criterion: "A", Importance: core.ImportanceHigh},
			{Criterion: "B", Importance: core.ImportanceLow},
		},
	}

	job := &core.Job{Id: 1, Description: "Go backend role"}
	result, err := generator.GenerateQuestionnaire(context.Background(), job, existing, 2, false)
	require.NoError(t, err)

	assert.Equal(t, existing, result)
	assert.Zero(t, mockAssistant.CallCount())
}

func TestGenerateQuestionnaireMergesSuperset(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)
	mockAssistant.GenerateCriteriaFunc = criteriaResponse(
		ai.Criterion{Criterion: "B", Importance: "high"},
		ai.Criterion{Criterion: "C", Importance: "medium"},
	)

	existing := &core.Questionnaire{
		JobId: 1,
		Items: []core.QuestionnaireItem{
			{Criterion: "A", Importance: core.ImportanceMedium},
			{Criterion: "B", Importance: core.ImportanceLow},
		},
	}

	job := &core.Job{Id: 1, Description: "Go backend role"}
	result, err := generator.GenerateQuestionnaire(context.Background(), job, existing, 3, false)
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "A", result.Items[0].Criterion)
	assert.Equal(t, "B", result.Items[1].Criterion)
	assert.Equal(t, "C", result.Items[2].Criterion)
	// The existing B wins over the generated one.
	assert.Equal(t, core.ImportanceLow, result.Items[1].Importance)
}

func TestGenerateQuestionnaireExactTooFew(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)
	mockAssistant.GenerateCriteriaFunc = criteriaResponse(
		ai.Criterion{Criterion: "Only one", Importance: "high"},
	)

	job := &core.Job{Id: 1, Description: "Go backend role"}
	_, err := generator.GenerateQuestionnaire(context.Background(), job, nil, 3, true)
	assert.ErrorIs(t, err, ErrInsufficientCriteria)
}

func TestGenerateQuestionnaireExactTrims(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)
	mockAssistant.GenerateCriteriaFunc = criteriaResponse(
		ai.Criterion{Criterion: "low one", Importance: "low"},
		ai.Criterion{Criterion: "high one", Importance: "high"},
		ai.Criterion{Criterion: "medium one", Importance: "medium"},
		ai.Criterion{Criterion: "high two", Importance: "high"},
	)

	job := &core.Job{Id: 1, Description: "Go backend role"}
	result, err := generator.GenerateQuestionnaire(context.Background(), job, nil, 2, true)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "high one", result.Items[0].Criterion)
	assert.Equal(t, "high two", result.Items[1].Criterion)
}

func TestGenerateQuestionnairePrimesWithExisting(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)

	var gotExamples []ai.CriteriaExample
	mockAssistant.GenerateCriteriaFunc = func(_ context.Context, _ string, examples []ai.CriteriaExample) ([]ai.Criterion, error) {
		gotExamples = examples
		return []ai.Criterion{{Criterion: "New", Importance: "medium"}}, nil
	}

	existing := &core.Questionnaire{
		JobId: 1,
		Items: []core.QuestionnaireItem{{Criterion: "Seed", Importance: core.ImportanceHigh}},
	}

	job := &core.Job{Id: 1, Description: "Go backend role"}
	_, err := generator.GenerateQuestionnaire(context.Background(), job, existing, 2, false)
	require.NoError(t, err)

	require.Len(t, gotExamples, 1)
	require.Len(t, gotExamples[0].Criteria, 1)
	assert.Equal(t, "Seed", gotExamples[0].Criteria[0].Criterion)
}

func TestGenerateIdealResumeOverwrites(t *testing.T) {
	generator, repos, mockAssistant := newGeneratorFixture(t)

	ctx := context.Background()
	job := &core.Job{Id: 1, Description: "Go backend role"}

	mockAssistant.GenerateIdealResumeFunc = func(_ context.Context, _ string) (string, error) {
		return "First resume.", nil
	}
	_, err := generator.GenerateIdealResume(ctx, job)
	require.NoError(t, err)

	mockAssistant.GenerateIdealResumeFunc = func(_ context.Context, _ string) (string, error) {
		return "Second resume.", nil
	}
	_, err = generator.GenerateIdealResume(ctx, job)
	require.NoError(t, err)

	stored, err := repos.Profiles.GetIdealCandidate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Second resume.", stored.Resume)
}

func TestGenerateIdealResumeRejectsBlank(t *testing.T) {
	generator, _, mockAssistant := newGeneratorFixture(t)
	mockAssistant.GenerateIdealResumeFunc = func(_ context.Context, _ string) (string, error) {
		return "   ", nil
	}

	job := &core.Job{Id: 1, Description: "Go backend role"}
	_, err := generator.GenerateIdealResume(context.Background(), job)
	assert.ErrorIs(t, err, ErrEmptyResume)
}

func TestTrimByImportanceStable(t *testing.T) {
	items := []core.QuestionnaireItem{
		{Criterion: "low", Importance: core.ImportanceLow},
		{Criterion: "high a", Importance: core.ImportanceHigh},
		{Criterion: "medium", Importance: core.ImportanceMedium},
		{Criterion: "high b", Importance: core.ImportanceHigh},
	}

	trimmed := TrimByImportance(items, 3)
	require.Len(t, trimmed, 3)
	assert.Equal(t, "high a", trimmed[0].Criterion)
	assert.Equal(t, "high b", trimmed[1].Criterion)
	assert.Equal(t, "medium", trimmed[2].Criterion)
}
