package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/hirank/ai"
)

const criteriaResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "criteria": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "criterion": {
            "type": "string"
          },
          "importance": {
            "type": "string",
            "enum": ["low", "medium", "high"]
          }
        },
        "required": ["criterion", "importance"],
        "additionalProperties": false
      }
    }
  },
  "required": ["criteria"],
  "additionalProperties": false
}`

const criteriaPromptTemplate = `You are an experienced technical recruiter. Derive a candidate evaluation
questionnaire from the job description given by the user, and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Each criterion is a single verifiable statement about the candidate, e.g. "Has 5+ years of production Go experience".
- Importance must be exactly one of: %s. Rate must-have requirements "high", standard expectations "medium", nice-to-haves "low".
- Cover skills, experience, education and domain knowledge actually named or clearly implied by the job description. Do not hallucinate requirements.
- Each criterion must be distinct; no near-duplicates.
- If the job description contains no usable requirements, return "criteria": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const resumePromptTemplate = `You are an expert resume writer. The user message is a target job description.
Write the resume of the IDEAL candidate for that job: someone who satisfies every stated requirement,
with concrete employers, dates, technologies and accomplishments. Plain text, no markdown tables.

Output ONLY valid JSON of the form {"resume": "<the full resume text>"}. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }. The JSON must parse without errors; escape newlines inside the resume string.`

const scoringPromptTemplate = `You are an experienced technical recruiter. The user message is a candidate's CV.
Judge the candidate against each evaluation criterion listed below, in order.

Criteria:
%s

Output ONLY valid JSON of the form {"scores": ["<label>", ...]} with exactly %d labels, one per criterion,
in the same order as the criteria above. Each label must be exactly one of: %s.
- "poor": the CV shows no evidence for the criterion.
- "fair": weak or indirect evidence.
- "good": solid evidence.
- "excellent": strong, direct evidence exceeding the criterion.
Judge only from the CV text; do not give the benefit of the doubt. Start your response directly with the
opening brace { and end with the closing brace }. The JSON must parse without errors.`

// buildCriteriaSystemPrompt creates the criteria-generation system prompt,
// appending existing questionnaires as few-shot examples when provided.
func buildCriteriaSystemPrompt(examples []ai.CriteriaExample) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, criteriaPromptTemplate,
		criteriaResponseSchema,
		strings.Join(ai.ImportanceLabels, ", "))

	for _, example := range examples {
		if len(example.Criteria) == 0 {
			continue
		}
		sb.WriteString("\n\nExample:\nInput: ")
		sb.WriteString(example.JobDescription)
		sb.WriteString("\nOutput:\n{\n  \"criteria\": [\n")
		for i, c := range example.Criteria {
			fmt.Fprintf(&sb, "    {\"criterion\":%q,\"importance\":%q}", c.Criterion, c.Importance)
			if i < len(example.Criteria)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("  ]\n}")
	}

	return sb.String()
}

// buildScoringSystemPrompt creates the scoring system prompt with the
// criteria list embedded.
func buildScoringSystemPrompt(criteria []ai.Criterion) string {
	var sb strings.Builder
	for i, c := range criteria {
		fmt.Fprintf(&sb, "%d. %s (importance: %s)\n", i+1, c.Criterion, c.Importance)
	}
	return fmt.Sprintf(scoringPromptTemplate,
		strings.TrimRight(sb.String(), "\n"),
		len(criteria),
		strings.Join(ai.ScoreLabels, ", "))
}
