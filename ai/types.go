package ai

// Criterion is one evaluation criterion proposed by the assistant.
// Importance is a label from ImportanceLabels; the session layer converts it
// to a core.Importance level.
type Criterion struct {
	// Criterion is the evaluation criterion text.
	Criterion string

	// Importance is "low", "medium" or "high".
	Importance string
}

// CriteriaExample is a one-shot priming example for criteria generation:
// a job description paired with the criteria a reviewer accepted for it.
type CriteriaExample struct {
	JobDescription string
	Criteria       []Criterion
}

// ImportanceLabels defines the valid importance values for generated criteria.
var ImportanceLabels = []string{
	"low",
	"medium",
	"high",
}

// ScoreLabels defines the valid categorical labels for candidate scoring,
// ordered worst to best. The questionnaire scorer maps these to numeric
// values via a caller-supplied table.
var ScoreLabels = []string{
	"poor",
	"fair",
	"good",
	"excellent",
}
