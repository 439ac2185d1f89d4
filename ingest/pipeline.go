package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/storage"
)

// CVUpload is one resume upload bound to its candidate.
type CVUpload struct {
	CandidateId core.ID
	Filename    string
	Raw         []byte
}

// Pipeline converts, embeds and stores uploaded CVs, then links each stored
// document to its candidate. Uploads in a batch are processed concurrently
// on a worker pool; each upload's document row and embeddings are still
// written in one transaction.
type Pipeline struct {
	documents  storage.DocumentRepository
	candidates storage.CandidateRepository
	embedder   ai.Embedder
	converter  Converter
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithConverter sets the document converter.
// Default is a plain-text converter.
func WithConverter(converter Converter) Option {
	return func(p *Pipeline) error {
		if converter == nil {
			return ErrConverterRequired
		}
		p.converter = converter
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	candidates storage.CandidateRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents:  documents,
		candidates: candidates,
		embedder:   provider.Embedder(),
		converter:  &TextConverter{},
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Release shuts down the worker pool.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// IngestCV converts one upload, embeds its text and chunks, stores the
// document and links it to the candidate. Returns the stored document.
func (p *Pipeline) IngestCV(ctx context.Context, upload CVUpload) (*core.Document, error) {
	candidate, err := p.candidates.GetCandidate(ctx, upload.CandidateId)
	if err != nil {
		return nil, err
	}

	contents, chunkTexts, err := p.converter.Convert(ctx, upload.Filename, upload.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	doc := &core.Document{Contents: contents}
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	// One embedding call covers the document and all its chunks.
	texts := append([]string{contents}, chunkTexts...)
	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		p.logger.Error("error embedding document", "candidate", upload.CandidateId, "err", err)
		return nil, err
	}

	doc.Vector = vectors[0]
	doc.Chunks = make([]core.DocumentChunk, len(chunkTexts))
	for i, text := range chunkTexts {
		doc.Chunks[i] = core.DocumentChunk{Text: text, Vector: vectors[i+1]}
	}

	stored, err := p.documents.UpsertDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}

	candidate.CVDocumentId = stored[0].Id
	if _, err := p.candidates.UpdateCandidates(ctx, candidate); err != nil {
		return nil, err
	}

	p.logger.Info("ingested CV",
		"candidate", upload.CandidateId,
		"document", stored[0].Id,
		"chunks", len(stored[0].Chunks))

	return stored[0], nil
}

// IngestCVs processes a batch of uploads concurrently. Documents come back
// in upload order. The first failure aborts the batch result, but uploads
// already in flight still run to completion.
func (p *Pipeline) IngestCVs(ctx context.Context, uploads []CVUpload) ([]*core.Document, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	results := make([]*core.Document, len(uploads))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := range uploads {
		i := i
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			doc, err := p.IngestCV(ctx, uploads[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = doc
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
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
