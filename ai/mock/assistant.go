package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/hirank/ai"
)

// MockAssistant is a test double for ai.Assistant.
// It allows custom behavior injection via function fields.
type MockAssistant struct {
	// GenerateCriteriaFunc is called by GenerateCriteria if set.
	// If nil, uses default deterministic behavior.
	GenerateCriteriaFunc func(ctx context.Context, jobDescription string, examples []ai.CriteriaExample) ([]ai.Criterion, error)

	// GenerateIdealResumeFunc is called by GenerateIdealResume if set.
	// If nil, uses default deterministic behavior.
	GenerateIdealResumeFunc func(ctx context.Context, jobDescription string) (string, error)

	// ScoreCandidateFunc is called by ScoreCandidate if set.
	// If nil, every criterion scores "good".
	ScoreCandidateFunc func(ctx context.Context, candidateCV string, criteria []ai.Criterion) ([]string, error)

	callCount int
}

// NewMockAssistant creates a mock assistant with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockAssistant().
func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

// GenerateCriteria derives simple mock criteria from the job description.
// Default behavior: one medium-importance criterion per distinct word,
// capped at five.
func (m *MockAssistant) GenerateCriteria(ctx context.Context, jobDescription string, examples []ai.CriteriaExample) ([]ai.Criterion, error) {
	m.callCount++

	if m.GenerateCriteriaFunc != nil {
		return m.GenerateCriteriaFunc(ctx, jobDescription, examples)
	}

	words := strings.Fields(strings.ToLower(jobDescription))
	seen := make(map[string]bool)
	criteria := make([]ai.Criterion, 0, 5)
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		criteria = append(criteria, ai.Criterion{
			Criterion:  fmt.Sprintf("Has experience with %s", word),
			Importance: "medium",
		})
		if len(criteria) == 5 {
			break
		}
	}
	return criteria, nil
}

// GenerateIdealResume produces a deterministic resume stub.
func (m *MockAssistant) GenerateIdealResume(ctx context.Context, jobDescription string) (string, error) {
	m.callCount++

	if m.GenerateIdealResumeFunc != nil {
		return m.GenerateIdealResumeFunc(ctx, jobDescription)
	}

	return "Ideal candidate resume for: " + jobDescription, nil
}

// ScoreCandidate scores every criterion "good" by default.
func (m *MockAssistant) ScoreCandidate(ctx context.Context, candidateCV string, criteria []ai.Criterion) ([]string, error) {
	m.callCount++

	if m.ScoreCandidateFunc != nil {
		return m.ScoreCandidateFunc(ctx, candidateCV, criteria)
	}

	labels := make([]string, len(criteria))
	for i := range labels {
		labels[i] = "good"
	}
	return labels, nil
}

// CallCount returns the number of times any method was called.
func (m *MockAssistant) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAssistant) Reset() {
	m.callCount = 0
	m.GenerateCriteriaFunc = nil
	m.GenerateIdealResumeFunc = nil
	m.ScoreCandidateFunc = nil
}
