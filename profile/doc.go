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


// Package profile derives the per-job evaluation profile: the questionnaire
// (a weighted list of criteria) and the ideal-candidate resume. Both are
// generated from the job description by the assistant and persisted through
// the profile repository.
//
// Questionnaire generation merges with any existing rubric and never
// regenerates one that already has enough items. Ideal-resume generation
// always overwrites.
package profile
