package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
type CandidateRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) (*CandidateRepository, error) {
	idSeq, err := backend.GetSequence(candidateIDSeq)
	if err != nil {
		return nil, err
	}

	return &CandidateRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *CandidateRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *CandidateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCandidates adds one or more candidates to storage.
func (r *CandidateRepository) AddCandidates(ctx context.Context, candidates ...*core.Candidate) ([]*core.Candidate, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, candidate := range candidates {
			if candidate.Id == 0 {
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
				candidate.Id = core.ID(nextID)
			}

			if candidate.InsertedAt.IsZero() {
				candidate.InsertedAt = time.Now().UTC()
			}
			candidate.UpdatedAt = candidate.InsertedAt

			key := makeCandidateKey(candidate.Id)
			value := storage.MarshalCandidate(candidate)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return candidates, err
}

// UpdateCandidates updates existing candidates.
func (r *CandidateRepository) UpdateCandidates(ctx context.Context, candidates ...*core.Candidate) ([]*core.Candidate, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, candidate := range candidates {
			key := makeCandidateKey(candidate.Id)

			old, err := readCandidate(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			candidate.InsertedAt = old.InsertedAt
			candidate.UpdatedAt = time.Now().UTC()

			value := storage.MarshalCandidate(candidate)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return candidates, err
}

// DeleteCandidates removes candidates by their IDs.
func (r *CandidateRepository) DeleteCandidates(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)

			candidate, err := readCandidate(tx, key)
			if err != nil {
				return err
			}
			if candidate == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCandidate retrieves a single candidate by ID.
func (r *CandidateRepository) GetCandidate(ctx context.Context, id core.ID) (*core.Candidate, error) {
	var result *core.Candidate
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCandidateKey(id)
		var err error
		result, err = readCandidate(tx, key)
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

// GetCandidates retrieves multiple candidates by their IDs.
// Missing candidates are skipped without error.
func (r *CandidateRepository) GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.Candidate, error) {
	var result []*core.Candidate
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)
			candidate, err := readCandidate(tx, key)
			if err != nil {
				return err
			}
			if candidate != nil {
				result = append(result, candidate)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListCandidates retrieves candidates in ID order, skipping offset rows and
// returning up to limit rows. A limit <= 0 means no limit.
func (r *CandidateRepository) ListCandidates(ctx context.Context, limit, offset int) ([]*core.Candidate, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}

	var results []*core.Candidate
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidatePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var candidate *core.Candidate
			err := iter.Item().Value(func(val []byte) error {
				var err error
				candidate, err = storage.UnmarshalCandidate(val)
				return err
			})
			if err != nil {
				return err
			}
			if candidate != nil {
				results = append(results, candidate)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.Candidate) int {
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

// readCandidate reads a candidate from the transaction.
func readCandidate(tx *badger.Txn, key []byte) (*core.Candidate, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var candidate *core.Candidate
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		candidate, unmarshalErr = storage.UnmarshalCandidate(val)
		return unmarshalErr
	})
	return candidate, err
}
