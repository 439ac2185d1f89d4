// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/hirank/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// parseAttempts bounds the retry loop for malformed LLM JSON.
const parseAttempts = 3

// Assistant implements ai.Assistant using OpenAI-compatible chat APIs.
// All three operations run in JSON mode at temperature 0 and retry parsing
// up to parseAttempts times on malformed output.
type Assistant struct {
	client llms.Model
	logger *slog.Logger
}

// criterion is an internal type used for JSON unmarshaling.
// It matches the structure expected by the LLM.
type criterion struct {
	Criterion  string `json:"criterion"`
	Importance string `json:"importance"`
}

// criteriaResponse is the wrapper structure for criteria generation.
type criteriaResponse struct {
	Criteria []criterion `json:"criteria"`
}

// resumeResponse is the wrapper structure for ideal-resume generation.
type resumeResponse struct {
	Resume string `json:"resume"`
}

// scoresResponse is the wrapper structure for candidate scoring.
type scoresResponse struct {
	Scores []string `json:"scores"`
}

// newAssistant is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAssistant(config *ai.Config) (*Assistant, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AssistantHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.AssistantModel),
	)
	if err != nil {
		return nil, err
	}

	return &Assistant{
		client: client,
		logger: slog.Default().With("component", "openai-assistant"),
	}, nil
}

// NewAssistant creates a new assistant using the provided configuration.
//
// Returns ai.Assistant interface to enforce abstraction.
func NewAssistant(config *ai.Config) (ai.Assistant, error) {
	return newAssistant(config)
}

// GenerateCriteria derives evaluation criteria from a job description.
func (a *Assistant) GenerateCriteria(ctx context.Context, jobDescription string, examples []ai.CriteriaExample) ([]ai.Criterion, error) {
	var result criteriaResponse
	err := a.generate(ctx, buildCriteriaSystemPrompt(examples), jobDescription, &result)
	if err != nil {
		return nil, err
	}

	criteria := make([]ai.Criterion, 0, len(result.Criteria))
	for _, c := range result.Criteria {
		if strings.TrimSpace(c.Criterion) == "" {
			continue
		}
		importance := strings.ToLower(strings.TrimSpace(c.Importance))
		if !slices.Contains(ai.ImportanceLabels, importance) {
			a.logger.Warn("model produced unknown importance label", "label", c.Importance)
			importance = "medium"
		}
		criteria = append(criteria, ai.Criterion{
			Criterion:  strings.TrimSpace(c.Criterion),
			Importance: importance,
		})
	}

	a.logger.Debug("generated criteria", "total", len(result.Criteria), "kept", len(criteria))
	return criteria, nil
}

// GenerateIdealResume synthesizes an exemplary resume for a job description.
func (a *Assistant) GenerateIdealResume(ctx context.Context, jobDescription string) (string, error) {
	var result resumeResponse
	err := a.generate(ctx, resumePromptTemplate, jobDescription, &result)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.Resume), nil
}

// ScoreCandidate judges a candidate CV against evaluation criteria.
// Labels outside ai.ScoreLabels are coerced to "poor" so that the returned
// slice always has one valid label per criterion.
func (a *Assistant) ScoreCandidate(ctx context.Context, candidateCV string, criteria []ai.Criterion) ([]string, error) {
	if len(criteria) == 0 {
		return []string{}, nil
	}

	var result scoresResponse
	err := a.generate(ctx, buildScoringSystemPrompt(criteria), candidateCV, &result)
	if err != nil {
		return nil, err
	}

	if len(result.Scores) != len(criteria) {
		return nil, fmt.Errorf("score count mismatch: expected %d, received %d", len(criteria), len(result.Scores))
	}

	labels := make([]string, len(result.Scores))
	for i, s := range result.Scores {
		label := strings.ToLower(strings.TrimSpace(s))
		if !slices.Contains(ai.ScoreLabels, label) {
			a.logger.Warn("model produced unknown score label", "label", s)
			label = "poor"
		}
		labels[i] = label
	}

	return labels, nil
}

// generate runs one JSON-mode completion and unmarshals the response into out,
// retrying up to parseAttempts times when the model returns malformed JSON.
func (a *Assistant) generate(ctx context.Context, systemPrompt, userPrompt string, out any) error {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= parseAttempts; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return fmt.Errorf("model returned no choices")
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			a.logger.Warn("error parsing assistant response",
				"attempt", attempt,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	a.logger.Error("failed to parse assistant response after retries", "err", lastErr)
	return lastErr
}
