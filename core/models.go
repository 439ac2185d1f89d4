package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Jobs, candidates and questionnaires draw IDs from database sequences;
// documents use content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Importance weights a questionnaire criterion.
type Importance int

const (
	// ImportanceLow marks a nice-to-have criterion.
	ImportanceLow Importance = iota + 1
	// ImportanceMedium marks a standard criterion.
	ImportanceMedium
	// ImportanceHigh marks a must-have criterion.
	ImportanceHigh
)

// String returns the canonical lowercase label for an importance level.
func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "low"
	case ImportanceMedium:
		return "medium"
	case ImportanceHigh:
		return "high"
	}
	return "unknown"
}

// ParseImportance maps a label to an Importance level.
// Unknown labels map to ImportanceMedium, which keeps LLM output usable
// even when the model invents a synonym.
func ParseImportance(label string) Importance {
	switch label {
	case "low":
		return ImportanceLow
	case "medium":
		return ImportanceMedium
	case "high":
		return ImportanceHigh
	}
	return ImportanceMedium
}

// Job represents a job posting. Description is the canonical text that
// drives questionnaire and ideal-candidate generation.
type Job struct {
	Id          ID
	Title       string
	Company     string
	Description string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Candidate represents a person under consideration.
// CVDocumentId is 0 until a CV document is attached; a candidate without a
// CV cannot be ranked or scored.
type Candidate struct {
	Id           ID
	Name         string
	CVDocumentId ID
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// DocumentChunk is one ordered segment of an extracted document.
type DocumentChunk struct {
	Text   string
	Vector []float32 // Embedded lazily; empty until computed
}

// Document represents the extracted text of an uploaded file.
// Chunk order is significant (page/section order).
type Document struct {
	Id         ID
	Contents   string
	Chunks     []DocumentChunk
	Vector     []float32 // Whole-document embedding; empty until computed
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// QuestionnaireItem is one weighted evaluation criterion.
// Criterion text is the uniqueness key within a questionnaire.
type QuestionnaireItem struct {
	Criterion  string
	Importance Importance
}

// Questionnaire is the full evaluation rubric for one job.
// Exactly one questionnaire exists per job; an empty item list means
// "not yet generated".
type Questionnaire struct {
	Id        ID
	JobId     ID
	Items     []QuestionnaireItem
	UpdatedAt time.Time
}

// HasCriterion reports whether the questionnaire already contains the
// criterion, matched by case-sensitive exact text.
func (q *Questionnaire) HasCriterion(criterion string) bool {
	for _, item := range q.Items {
		if item.Criterion == criterion {
			return true
		}
	}
	return false
}

// IdealCandidate is the synthetic ideal-resume text for one job.
// One row per job; an empty Resume means "not generated".
type IdealCandidate struct {
	JobId     ID
	Resume    string
	UpdatedAt time.Time
}

// CandidateScore is the coarse ranking score of a candidate against a job.
// (JobId, CandidateId) is the composite key; rows are replaced wholesale on
// re-ranking. Higher score means better match.
type CandidateScore struct {
	JobId       ID
	CandidateId ID
	Score       float64
	UpdatedAt   time.Time
}

// CandidateFitness is the fine-grained per-criterion score set for one
// candidate against one questionnaire. Scores holds the mapped numeric value
// per criterion, in questionnaire order; Fitness is the weighted aggregate.
type CandidateFitness struct {
	CandidateId     ID
	JobId           ID
	QuestionnaireId ID
	Scores          []float64
	Fitness         float64
	UpdatedAt       time.Time
}

// DocumentMatch is a document hit from vector similarity search.
// Distance is the raw metric distance; smaller means more similar.
type DocumentMatch struct {
	Document *Document
	Distance float32
}
