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


package core

import "fmt"

// ValidateJob validates a Job according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Description must not be empty
//
// NOT validated:
//   - Company (optional)
//   - ID (0 is valid from database sequences)
func ValidateJob(job *Job) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", ErrInvalidJob)
	}

	if job.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJob, ErrEmptyTitle)
	}

	if job.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJob, ErrEmptyDescription)
	}

	return nil
}

// ValidateCandidate validates a Candidate according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - CVDocumentId (0 is valid until a CV is attached)
//   - ID (0 is valid from database sequences)
func ValidateCandidate(candidate *Candidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	if candidate.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyCandidateName)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Contents must not be empty
//
// NOT validated (populated by the ingest pipeline):
//   - Vector and chunk vectors (empty until embedding runs)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContents)
	}

	return nil
}

// ValidateQuestionnaireItem validates a QuestionnaireItem according to domain rules.
//
// Validation rules:
//   - Criterion must not be empty
//   - Importance must be a valid level
func ValidateQuestionnaireItem(item *QuestionnaireItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidQuestionnaireItem)
	}

	if item.Criterion == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuestionnaireItem, ErrEmptyCriterion)
	}

	if err := ValidateImportance(item.Importance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuestionnaireItem, err)
	}

	return nil
}

// ValidateImportance validates that an Importance has a valid value.
func ValidateImportance(importance Importance) error {
	if importance < ImportanceLow || importance > ImportanceHigh {
		return fmt.Errorf("%w: value %d", ErrInvalidImportance, importance)
	}
	return nil
}
