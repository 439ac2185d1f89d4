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


package hirank

import (
	"log/slog"

	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/ai/openai"
	"github.com/poiesic/hirank/ingest"
	"github.com/poiesic/hirank/rank"
	"github.com/poiesic/hirank/session"
	"github.com/poiesic/hirank/storage"
	"github.com/poiesic/hirank/storage/badger"
)

type Database struct {
	repos    *badger.Repositories
	provider ai.AIProvider
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage keeps all data in memory. Nothing is persisted.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend and repositories
	repos, err := badger.NewRepositories(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repos.Close()
		return nil, err
	}

	return &Database{
		repos:    repos,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.repos.Close(); err != nil {
		db.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) JobRepository() storage.JobRepository {
	return db.repos.Jobs
}

func (db *Database) CandidateRepository() storage.CandidateRepository {
	return db.repos.Candidates
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.repos.Documents
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.repos.Profiles
}

func (db *Database) ScoreRepository() storage.ScoreRepository {
	return db.repos.Scores
}

func (db *Database) NewSessionManager(opts ...session.Option) (*session.Manager, error) {
	stores := session.Stores{
		Jobs:       db.repos.Jobs,
		Candidates: db.repos.Candidates,
		Documents:  db.repos.Documents,
		Profiles:   db.repos.Profiles,
		Scores:     db.repos.Scores,
	}
	return session.NewManager(stores, db.provider, opts...)
}

func (db *Database) NewRanker(opts ...rank.Option) (*rank.Ranker, error) {
	return rank.NewRanker(db.repos.Documents, db.repos.Candidates, db.provider, opts...)
}

func (db *Database) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.repos.Documents, db.repos.Candidates, db.provider, opts...)
}
