package rank

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/hirank/core"
)

// ScoreFunc scores one document against a query. Higher is better.
// In practice this is an LLM judgment and is the expensive part of reranking.
type ScoreFunc func(ctx context.Context, query, document string) (float64, error)

// RerankedItem is one scored entry in a reranked shortlist.
type RerankedItem struct {
	Id    core.ID
	Score float64
}

// Reranker re-orders a shortlist by applying a scoring function to every
// (query, document) pair. Scoring calls are independent, so they may fan out
// across a worker pool when parallelism is enabled. The default is serial:
// parallel LLM calls share rate limits with everything else in the process,
// so fan-out is opt-in.
type Reranker struct {
	scoreFunc   ScoreFunc
	parallelism int
	logger      *slog.Logger
}

// RerankerOption configures a Reranker.
type RerankerOption func(*Reranker) error

// WithRerankerLogger sets a custom logger.
// Default is slog.Default().
func WithRerankerLogger(logger *slog.Logger) RerankerOption {
	return func(r *Reranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithParallelism sets the number of concurrent scoring workers.
// Values below 2 keep scoring serial.
func WithParallelism(workers int) RerankerOption {
	return func(r *Reranker) error {
		if workers < 1 {
			workers = 1
		}
		r.parallelism = workers
		return nil
	}
}

// NewReranker creates a new reranker around a scoring function.
func NewReranker(scoreFunc ScoreFunc, opts ...RerankerOption) (*Reranker, error) {
	if scoreFunc == nil {
		return nil, ErrScoreFuncRequired
	}

	r := &Reranker{
		scoreFunc:   scoreFunc,
		parallelism: 1,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rerank scores every (query, document) pair and returns the topK entries
// ordered by score descending. ids and documents must have the same length.
// A topK of -1 (or any value < 0) returns all entries sorted; a topK larger
// than the input returns everything.
func (r *Reranker) Rerank(ctx context.Context, query string, ids []core.ID, documents []string, topK int) ([]*RerankedItem, error) {
	if len(ids) != len(documents) {
		return nil, ErrLengthMismatch
	}
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]*RerankedItem, len(ids))

	var err error
	if r.parallelism > 1 {
		err = r.scoreParallel(ctx, query, ids, documents, results)
	} else {
		err = r.scoreSerial(ctx, query, ids, documents, results)
	}
	if err != nil {
		return nil, err
	}

	// Workers finish in arbitrary order; the sort restores it.
	slices.SortStableFunc(results, func(a, b *RerankedItem) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

func (r *Reranker) scoreSerial(ctx context.Context, query string, ids []core.ID, documents []string, results []*RerankedItem) error {
	for i := range ids {
		score, err := r.scoreFunc(ctx, query, documents[i])
		if err != nil {
			r.logger.Error("error scoring document", "id", ids[i], "err", err)
			return err
		}
		results[i] = &RerankedItem{Id: ids[i], Score: score}
	}
	return nil
}

func (r *Reranker) scoreParallel(ctx context.Context, query string, ids []core.ID, documents []string, results []*RerankedItem) error {
	pool, err := ants.NewPool(r.parallelism)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := range ids {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			score, scoreErr := r.scoreFunc(ctx, query, documents[i])
			if scoreErr != nil {
				r.logger.Error("error scoring document", "id", ids[i], "err", scoreErr)
				mu.Lock()
				if firstErr == nil {
					firstErr = scoreErr
				}
				mu.Unlock()
				return
			}
			results[i] = &RerankedItem{Id: ids[i], Score: score}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	return firstErr
}
