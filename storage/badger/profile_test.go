package badger

import (
	"context"
	"testing"

	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireUpsertAndGet(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	questionnaire := &core.Questionnaire{
		JobId: 7,
		Items: []core.QuestionnaireItem{
			{Criterion: "Has experience with Go", Importance: core.ImportanceHigh},
			{Criterion: "Has worked with key-value stores", Importance: core.ImportanceMedium},
		},
	}

	stored, err := repos.Profiles.UpsertQuestionnaire(ctx, questionnaire)
	require.NoError(t, err)
	assert.NotZero(t, stored.Id)
	assert.False(t, stored.UpdatedAt.IsZero())

	retrieved, err := repos.Profiles.GetQuestionnaire(ctx, 7)
	require.NoError(t, err)
	require.Len(t, retrieved.Items, 2)
	assert.Equal(t, "Has experience with Go", retrieved.Items[0].Criterion)
	assert.Equal(t, core.ImportanceHigh, retrieved.Items[0].Importance)
}

func TestQuestionnaireOnePerJob(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	first := &core.Questionnaire{
		JobId: 3,
		Items: []core.QuestionnaireItem{{Criterion: "First", Importance: core.ImportanceLow}},
	}
	stored, err := repos.Profiles.UpsertQuestionnaire(ctx, first)
	require.NoError(t, err)

	// A second upsert for the same job replaces the row.
	second := &core.Questionnaire{
		Id:    stored.Id,
		JobId: 3,
		Items: []core.QuestionnaireItem{{Criterion: "Second", Importance: core.ImportanceHigh}},
	}
	_, err = repos.Profiles.UpsertQuestionnaire(ctx, second)
	require.NoError(t, err)

	retrieved, err := repos.Profiles.GetQuestionnaire(ctx, 3)
	require.NoError(t, err)
	require.Len(t, retrieved.Items, 1)
	assert.Equal(t, "Second", retrieved.Items[0].Criterion)
	assert.Equal(t, stored.Id, retrieved.Id)
}

func TestQuestionnaireMissingAndDelete(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	_, err = repos.Profiles.GetQuestionnaire(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repos.Profiles.DeleteQuestionnaire(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repos.Profiles.UpsertQuestionnaire(ctx, &core.Questionnaire{
		JobId: 99,
		Items: []core.QuestionnaireItem{{Criterion: "Anything", Importance: core.ImportanceMedium}},
	})
	require.NoError(t, err)

	require.NoError(t, repos.Profiles.DeleteQuestionnaire(ctx, 99))

	_, err = repos.Profiles.GetQuestionnaire(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIdealCandidateOverwrite(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	_, err = repos.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{JobId: 5, Resume: "First draft."})
	require.NoError(t, err)

	_, err = repos.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{JobId: 5, Resume: "Second draft."})
	require.NoError(t, err)

	retrieved, err := repos.Profiles.GetIdealCandidate(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Second draft.", retrieved.Resume)
}

func TestIdealCandidateMissing(t *testing.T) {
	repos, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	_, err = repos.Profiles.GetIdealCandidate(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
