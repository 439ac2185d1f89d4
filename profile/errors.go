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


package profile

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrJobRequired is returned when a nil job is passed to a generator.
	ErrJobRequired = errors.New("job required")

	// ErrInsufficientCriteria is returned when an exact item count was
	// demanded but merging produced fewer unique criteria.
	ErrInsufficientCriteria = errors.New("insufficient unique criteria")

	// ErrEmptyResume is returned when the generated or supplied ideal
	// resume text is blank.
	ErrEmptyResume = errors.New("empty resume text")
)
