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


// Package session binds one job to its derived search state: questionnaire,
// ideal-candidate resume, ranked candidate scores and fitness rows.
//
// A Manager hands out one live Session at a time. Requesting a session for a
// different job tears the cached one down and rehydrates from storage, which
// is always safe because every mutation writes through to storage before it
// touches the cache. First access for a job persists explicit empty rows for
// the questionnaire and ideal candidate, so a fresh job is distinguishable
// from a missing one.
//
// Sessions serialize their operations with an internal mutex. Two sessions
// in different processes can still race on the same job; that limitation is
// inherited from the storage model and is not hidden here.
package session
