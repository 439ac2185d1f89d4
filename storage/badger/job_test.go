package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

func TestJobBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	job := &core.Job{
		Title:       "Backend Engineer",
		Company:     "Initech",
		Description: "Build and operate Go services.",
	}

	added, err := repos.Jobs.AddJobs(ctx, job)
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 job, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := repos.Jobs.GetJob(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}

	if retrieved.Title != "Backend Engineer" {
		t.Fatalf("Expected 'Backend Engineer', got '%s'", retrieved.Title)
	}
}

func TestJobUpdate(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Jobs.AddJobs(ctx, &core.Job{
		Title:       "Backend Engineer",
		Description: "Initial description.",
	})
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}

	added[0].Description = "Revised description."
	if _, err := repos.Jobs.UpdateJobs(ctx, added[0]); err != nil {
		t.Fatalf("Failed to update job: %v", err)
	}

	retrieved, err := repos.Jobs.GetJob(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}

	if retrieved.Description != "Revised description." {
		t.Fatalf("Expected updated description, got '%s'", retrieved.Description)
	}

	if retrieved.UpdatedAt.Before(retrieved.InsertedAt) {
		t.Fatal("Expected UpdatedAt >= InsertedAt")
	}
}

func TestJobUpdateMissing(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Jobs.UpdateJobs(context.Background(), &core.Job{Id: 999, Title: "Ghost"})
	if err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestJobDeleteCascades(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Jobs.AddJobs(ctx, &core.Job{Title: "SRE", Description: "Keep the lights on."})
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}
	jobID := added[0].Id

	// Populate derived rows for the job.
	_, err = repos.Profiles.UpsertQuestionnaire(ctx, &core.Questionnaire{
		JobId: jobID,
		Items: []core.QuestionnaireItem{{Criterion: "Has been on call", Importance: core.ImportanceHigh}},
	})
	if err != nil {
		t.Fatalf("Failed to upsert questionnaire: %v", err)
	}

	_, err = repos.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{JobId: jobID, Resume: "Ideal SRE."})
	if err != nil {
		t.Fatalf("Failed to upsert ideal candidate: %v", err)
	}

	if err := repos.Scores.UpsertScore(ctx, &core.CandidateScore{JobId: jobID, CandidateId: 1, Score: 0.7}); err != nil {
		t.Fatalf("Failed to upsert score: %v", err)
	}

	if err := repos.Scores.UpsertFitness(ctx, &core.CandidateFitness{
		JobId:           jobID,
		CandidateId:     1,
		QuestionnaireId: 1,
		Scores:          []float64{1.0},
		Fitness:         1.0,
	}); err != nil {
		t.Fatalf("Failed to upsert fitness: %v", err)
	}

	if err := repos.Jobs.DeleteJobs(ctx, jobID); err != nil {
		t.Fatalf("Failed to delete job: %v", err)
	}

	if _, err := repos.Jobs.GetJob(ctx, jobID); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound for job, got %v", err)
	}

	if _, err := repos.Profiles.GetQuestionnaire(ctx, jobID); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound for questionnaire, got %v", err)
	}

	if _, err := repos.Profiles.GetIdealCandidate(ctx, jobID); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound for ideal candidate, got %v", err)
	}

	scores, err := repos.Scores.ListScores(ctx, jobID)
	if err != nil {
		t.Fatalf("Failed to list scores: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("Expected no scores after cascade, got %d", len(scores))
	}

	fitness, err := repos.Scores.ListFitness(ctx, jobID)
	if err != nil {
		t.Fatalf("Failed to list fitness: %v", err)
	}
	if len(fitness) != 0 {
		t.Fatalf("Expected no fitness rows after cascade, got %d", len(fitness))
	}
}

func TestListJobsPagination(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repos.Jobs.AddJobs(ctx, &core.Job{Title: "Job", Description: "Description"})
		if err != nil {
			t.Fatalf("Failed to add job: %v", err)
		}
	}

	all, err := repos.Jobs.ListJobs(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 jobs, got %d", len(all))
	}

	// IDs should come back in ascending order
	for i := 1; i < len(all); i++ {
		if all[i].Id <= all[i-1].Id {
			t.Fatalf("Expected ascending ID order, got %d after %d", all[i].Id, all[i-1].Id)
		}
	}

	page, err := repos.Jobs.ListJobs(ctx, 2, 2)
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(page))
	}
	if page[0].Id != all[2].Id {
		t.Fatalf("Expected page to start at third job, got ID %d", page[0].Id)
	}

	empty, err := repos.Jobs.ListJobs(ctx, 10, 100)
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Expected empty page, got %d jobs", len(empty))
	}

	_, err = repos.Jobs.ListJobs(ctx, -1, 0)
	if !errors.Is(err, storage.ErrInvalidQuery) {
		t.Fatalf("Expected ErrInvalidQuery for negative limit, got %v", err)
	}
}
