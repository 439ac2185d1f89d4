package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) (*JobRepository, error) {
	idSeq, err := backend.GetSequence(jobIDSeq)
	if err != nil {
		return nil, err
	}

	return &JobRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *JobRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddJobs adds one or more jobs to storage.
func (r *JobRepository) AddJobs(ctx context.Context, jobs ...*core.Job) ([]*core.Job, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, job := range jobs {
			if job.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				job.Id = core.ID(nextID)
			}

			if job.InsertedAt.IsZero() {
				job.InsertedAt = time.Now().UTC()
			}
			job.UpdatedAt = job.InsertedAt

			key := makeJobKey(job.Id)
			value := storage.MarshalJob(job)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return jobs, err
}

// UpdateJobs updates existing jobs.
func (r *JobRepository) UpdateJobs(ctx context.Context, jobs ...*core.Job) ([]*core.Job, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, job := range jobs {
			key := makeJobKey(job.Id)

			old, err := readJob(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			job.InsertedAt = old.InsertedAt
			job.UpdatedAt = time.Now().UTC()

			value := storage.MarshalJob(job)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return jobs, err
}

// DeleteJobs removes jobs by their IDs. All derived rows for the job, its
// questionnaire, ideal candidate, scores and fitness rows, are removed in
// the same transaction.
func (r *JobRepository) DeleteJobs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeJobKey(id)

			job, err := readJob(tx, key)
			if err != nil {
				return err
			}
			if job == nil {
				return storage.ErrNotFound
			}

			// Cascade to derived rows. Missing rows are fine,
			// badger deletes are idempotent.
			if err := tx.Delete(makeQuestionnaireKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(makeIdealKey(id)); err != nil {
				return err
			}
			if err := deleteKeysWithPrefix(tx, makePartialScoreKey(id)); err != nil {
				return err
			}
			if err := deleteKeysWithPrefix(tx, makePartialFitnessKey(id)); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetJob retrieves a single job by ID.
func (r *JobRepository) GetJob(ctx context.Context, id core.ID) (*core.Job, error) {
	var result *core.Job
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(id)
		var err error
		result, err = readJob(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListJobs retrieves jobs in ID order, skipping offset rows and returning
// up to limit rows. A limit <= 0 means no limit.
func (r *JobRepository) ListJobs(ctx context.Context, limit, offset int) ([]*core.Job, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	var results []*core.Job
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var job *core.Job
			err := iter.Item().Value(func(val []byte) error {
				var err error
				job, err = storage.UnmarshalJob(val)
				return err
			})
			if err != nil {
				return err
			}
			if job != nil {
				results = append(results, job)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys are formatted as text, so iteration order is not numeric.
	slices.SortFunc(results, func(a, b *core.Job) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	return paginate(results, limit, offset), nil
}

// deleteKeysWithPrefix deletes all keys with the given prefix within the
// transaction. Keys are collected before deletion because badger does not
// allow deleting under an open iterator.
func deleteKeysWithPrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
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
	return nil
}

// validatePage rejects negative paging parameters.
func validatePage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return fmt.Errorf("%w: limit %d, offset %d", storage.ErrInvalidQuery, limit, offset)
	}
	return nil
}

// paginate applies offset and limit to a result slice.
func paginate[T any](results []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(results) {
			return nil
		}
		results = results[offset:]
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// readJob reads a job from the transaction.
func readJob(tx *badger.Txn, key []byte) (*core.Job, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var job *core.Job
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		job, unmarshalErr = storage.UnmarshalJob(val)
		return unmarshalErr
	})
	return job, err
}
