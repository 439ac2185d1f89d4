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


package rank

import "errors"

var (
	// ErrDocumentRepositoryRequired is returned when a document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository required")

	// ErrCandidateRepositoryRequired is returned when a candidate repository is not provided.
	ErrCandidateRepositoryRequired = errors.New("candidate repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrScoreFuncRequired is returned when a scoring function is not provided.
	ErrScoreFuncRequired = errors.New("score function required")

	// ErrLengthMismatch is returned when the ids and documents passed to the
	// reranker have different lengths.
	ErrLengthMismatch = errors.New("ids and documents length mismatch")

	// ErrScoreCountMismatch is returned when the assistant produces a label
	// count different from the questionnaire length.
	ErrScoreCountMismatch = errors.New("score count does not match criteria count")
)
