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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJob indicates a Job failed validation.
	ErrInvalidJob = errors.New("invalid job")

	// ErrInvalidCandidate indicates a Candidate failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidQuestionnaireItem indicates a QuestionnaireItem failed validation.
	ErrInvalidQuestionnaireItem = errors.New("invalid questionnaire item")

	// ErrEmptyDescription indicates the job Description field is empty.
	ErrEmptyDescription = errors.New("job description cannot be empty")

	// ErrEmptyTitle indicates the job Title field is empty.
	ErrEmptyTitle = errors.New("job title cannot be empty")

	// ErrEmptyCandidateName indicates the candidate Name field is empty.
	ErrEmptyCandidateName = errors.New("candidate name cannot be empty")

	// ErrEmptyContents indicates the document Contents field is empty.
	ErrEmptyContents = errors.New("document contents cannot be empty")

	// ErrEmptyCriterion indicates the criterion text is empty.
	ErrEmptyCriterion = errors.New("criterion cannot be empty")

	// ErrInvalidImportance indicates an invalid Importance value.
	ErrInvalidImportance = errors.New("invalid importance")

	// ErrUnsupportedMetric indicates an unknown similarity metric.
	ErrUnsupportedMetric = errors.New("unsupported similarity metric")

	// ErrVectorLengthMismatch indicates two vectors of different dimensions.
	ErrVectorLengthMismatch = errors.New("vector length mismatch")
)
