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


package session

import "errors"

var (
	// ErrStoresRequired is returned when a required repository is not provided.
	ErrStoresRequired = errors.New("storage repositories required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrJobMismatch is returned when a questionnaire is set on a session
	// bound to a different job.
	ErrJobMismatch = errors.New("questionnaire job id does not match session job")

	// ErrAmbiguousSelector is returned when an item selector names both a
	// criterion and an index, or neither.
	ErrAmbiguousSelector = errors.New("exactly one of criterion or index must be given")

	// ErrIndexOutOfRange is returned when an item index falls outside the
	// questionnaire.
	ErrIndexOutOfRange = errors.New("item index out of range")

	// ErrItemNotFound is returned when no questionnaire item matches the
	// given criterion text.
	ErrItemNotFound = errors.New("questionnaire item not found")

	// ErrDuplicateCriterion is returned when an added item's criterion text
	// is already present in the questionnaire.
	ErrDuplicateCriterion = errors.New("duplicate criterion")

	// ErrEmptyQuestionnaire is returned when fitness scoring is requested
	// for a job without questionnaire items.
	ErrEmptyQuestionnaire = errors.New("questionnaire has no items")
)
