package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// ScoreRepository implements storage.ScoreRepository for BadgerDB.
// Score rows are keyed by (job, candidate) and fitness rows by
// (job, candidate, questionnaire), so every write is an upsert.
type ScoreRepository struct {
	backend *Backend
}

var _ storage.ScoreRepository = (*ScoreRepository)(nil)

// NewScoreRepository creates a new ScoreRepository.
func NewScoreRepository(backend *Backend) (*ScoreRepository, error) {
	return &ScoreRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ScoreRepository has no resources to release.
func (r *ScoreRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ScoreRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// ListScores retrieves all score rows for a job, ordered by score descending.
func (r *ScoreRepository) ListScores(ctx context.Context, jobID core.ID) ([]*core.CandidateScore, error) {
	var results []*core.CandidateScore
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialScoreKey(jobID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var score *core.CandidateScore
			err := iter.Item().Value(func(val []byte) error {
				var err error
				score, err = storage.UnmarshalCandidateScore(val)
				return err
			})
			if err != nil {
				return err
			}
			if score != nil {
				results = append(results, score)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortScoresDescending(results)
	return results, nil
}

// UpsertScore stores one score row, replacing any existing row for the same
// (job, candidate) pair.
func (r *ScoreRepository) UpsertScore(ctx context.Context, score *core.CandidateScore) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		score.UpdatedAt = time.Now().UTC()

		key := makeScoreKey(score.JobId, score.CandidateId)
		value := storage.MarshalCandidateScore(score)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ReplaceScores atomically deletes every score row for the job and inserts
// the given rows.
func (r *ScoreRepository) ReplaceScores(ctx context.Context, jobID core.ID, scores []*core.CandidateScore) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteKeysWithPrefix(tx, makePartialScoreKey(jobID)); err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, score := range scores {
			score.JobId = jobID
			score.UpdatedAt = now

			key := makeScoreKey(score.JobId, score.CandidateId)
			value := storage.MarshalCandidateScore(score)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteScore removes the score row for one (job, candidate) pair.
func (r *ScoreRepository) DeleteScore(ctx context.Context, jobID, candidateID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeScoreKey(jobID, candidateID)

		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteScoresForJob removes all score rows for a job.
// Returns the number of rows deleted.
func (r *ScoreRepository) DeleteScoresForJob(ctx context.Context, jobID core.ID) (int, error) {
	deleted := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialScoreKey(jobID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// UpsertFitness stores one fitness row, replacing any existing row for the
// same (candidate, job, questionnaire) key.
func (r *ScoreRepository) UpsertFitness(ctx context.Context, fitness *core.CandidateFitness) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		fitness.UpdatedAt = time.Now().UTC()

		key := makeFitnessKey(fitness.JobId, fitness.CandidateId, fitness.QuestionnaireId)
		value := storage.MarshalCandidateFitness(fitness)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetFitness retrieves one fitness row.
func (r *ScoreRepository) GetFitness(ctx context.Context, candidateID, jobID, questionnaireID core.ID) (*core.CandidateFitness, error) {
	var result *core.CandidateFitness
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeFitnessKey(jobID, candidateID, questionnaireID)
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalCandidateFitness(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListFitness retrieves all fitness rows for a job in candidate-ID order.
func (r *ScoreRepository) ListFitness(ctx context.Context, jobID core.ID) ([]*core.CandidateFitness, error) {
	var results []*core.CandidateFitness
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialFitnessKey(jobID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var fitness *core.CandidateFitness
			err := iter.Item().Value(func(val []byte) error {
				var err error
				fitness, err = storage.UnmarshalCandidateFitness(val)
				return err
			})
			if err != nil {
				return err
			}
			if fitness != nil {
				results = append(results, fitness)
			}
		}
		return nil
	}, false)
	return results, err
}

// sortScoresDescending orders score rows best first. Ties sort by candidate
// ID ascending so the order is deterministic.
func sortScoresDescending(scores []*core.CandidateScore) {
	slices.SortFunc(scores, func(a, b *core.CandidateScore) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.CandidateId < b.CandidateId {
			return -1
		}
		if a.CandidateId > b.CandidateId {
			return 1
		}
		return 0
	})
}
