package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// mockVectorDim is the dimensionality of generated test embeddings. Small
// enough to keep similarity tests fast, large enough that distinct texts
// land far apart.
const mockVectorDim = 64

// MockEmbedder is a test double for ai.Embedder.
// Without injected behavior it produces a stable pseudo-random unit vector
// per input text, so distance-based tests are deterministic.
type MockEmbedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText returns a deterministic embedding derived from the text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return hashVector(text), nil
}

// EmbedTexts returns one deterministic embedding per input text.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = hashVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// hashVector maps a text to a unit vector. The FNV hash of the text seeds an
// xorshift generator, so equal texts always map to the same vector.
func hashVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64() | 1

	vector := make([]float32, mockVectorDim)
	var sumSquares float64
	for i := range vector {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		// Spread components over [-1, 1)
		v := float64(int64(state%2048)-1024) / 1024.0
		vector[i] = float32(v)
		sumSquares += v * v
	}

	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
