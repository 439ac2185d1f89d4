package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
// Questionnaire and ideal-candidate rows are keyed by job ID, which makes
// every write an upsert and enforces one row of each per job.
type ProfileRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	idSeq, err := backend.GetSequence(questionnaireIDSeq)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ProfileRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetQuestionnaire retrieves the questionnaire for a job.
func (r *ProfileRepository) GetQuestionnaire(ctx context.Context, jobID core.ID) (*core.Questionnaire, error) {
	var result *core.Questionnaire
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeQuestionnaireKey(jobID)
		var err error
		result, err = readQuestionnaire(tx, key)
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

// UpsertQuestionnaire stores the questionnaire for its job, replacing any
// existing row.
func (r *ProfileRepository) UpsertQuestionnaire(ctx context.Context, questionnaire *core.Questionnaire) (*core.Questionnaire, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if questionnaire.Id == 0 {
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
			questionnaire.Id = core.ID(nextID)
		}

		questionnaire.UpdatedAt = time.Now().UTC()

		key := makeQuestionnaireKey(questionnaire.JobId)
		value := storage.MarshalQuestionnaire(questionnaire)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return questionnaire, err
}

// DeleteQuestionnaire removes a job's questionnaire row.
func (r *ProfileRepository) DeleteQuestionnaire(ctx context.Context, jobID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeQuestionnaireKey(jobID)

		existing, err := readQuestionnaire(tx, key)
		if err != nil {
			return err
		}
		if existing == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetIdealCandidate retrieves the ideal-candidate row for a job.
func (r *ProfileRepository) GetIdealCandidate(ctx context.Context, jobID core.ID) (*core.IdealCandidate, error) {
	var result *core.IdealCandidate
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeIdealKey(jobID)
		var err error
		result, err = readIdealCandidate(tx, key)
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

// UpsertIdealCandidate stores the ideal-candidate row for its job, replacing
// any existing row.
func (r *ProfileRepository) UpsertIdealCandidate(ctx context.Context, ideal *core.IdealCandidate) (*core.IdealCandidate, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ideal.UpdatedAt = time.Now().UTC()

		key := makeIdealKey(ideal.JobId)
		value := storage.MarshalIdealCandidate(ideal)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return ideal, err
}

// DeleteIdealCandidate removes a job's ideal-candidate row.
func (r *ProfileRepository) DeleteIdealCandidate(ctx context.Context, jobID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeIdealKey(jobID)

		existing, err := readIdealCandidate(tx, key)
		if err != nil {
			return err
		}
		if existing == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readQuestionnaire reads a questionnaire from the transaction.
func readQuestionnaire(tx *badger.Txn, key []byte) (*core.Questionnaire, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var questionnaire *core.Questionnaire
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		questionnaire, unmarshalErr = storage.UnmarshalQuestionnaire(val)
		return unmarshalErr
	})
	return questionnaire, err
}

// readIdealCandidate reads an ideal-candidate row from the transaction.
func readIdealCandidate(tx *badger.Txn, key []byte) (*core.IdealCandidate, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var ideal *core.IdealCandidate
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		ideal, unmarshalErr = storage.UnmarshalIdealCandidate(val)
		return unmarshalErr
	})
	return ideal, err
}
