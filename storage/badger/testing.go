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


package badger

import "github.com/poiesic/hirank/storage"

// Repositories bundles every repository backed by one Backend.
// Useful for tests and for the top-level database wiring.
type Repositories struct {
	Jobs       storage.JobRepository
	Candidates storage.CandidateRepository
	Documents  storage.DocumentRepository
	Profiles   storage.ProfileRepository
	Scores     storage.ScoreRepository
	Backend    *Backend
}

// Close closes every repository and then the backend.
// The first error encountered is returned.
func (r *Repositories) Close() error {
	var firstErr error
	closers := []interface{ Close() error }{
		r.Jobs, r.Candidates, r.Documents, r.Profiles, r.Scores, r.Backend,
	}
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewRepositories opens a Backend at path and constructs every repository
// on top of it. Pass inMemory=true for an ephemeral database.
func NewRepositories(path string, inMemory bool) (*Repositories, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{Backend: backend}

	jobs, err := NewJobRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Jobs = jobs

	candidates, err := NewCandidateRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Candidates = candidates

	documents, err := NewDocumentRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Documents = documents

	profiles, err := NewProfileRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Profiles = profiles

	scores, err := NewScoreRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Scores = scores

	return repos, nil
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must close the returned Repositories when done.
func NewMemoryRepositories() (*Repositories, error) {
	return NewRepositories("", true)
}
