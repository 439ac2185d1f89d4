package ingest

import (
	"context"
	"strings"
)

// Converter extracts text from an uploaded file. Implementations handle the
// file formats they understand (PDF, DOCX, markdown); conversion failures
// surface as errors, never as partial text. Conversion may call out to an
// external extraction service, hence the context.
type Converter interface {
	// Convert returns the full extracted text and its ordered chunks.
	// Chunk order is significant and must follow page/section order.
	Convert(ctx context.Context, filename string, raw []byte) (string, []string, error)
}

// TextConverter treats uploads as plain UTF-8 text, splitting chunks on
// blank lines. It covers .txt and .md resumes; richer formats need a real
// extraction backend behind the Converter interface.
type TextConverter struct{}

var _ Converter = (*TextConverter)(nil)

// Convert splits the raw bytes into paragraph chunks.
func (c *TextConverter) Convert(_ context.Context, _ string, raw []byte) (string, []string, error) {
	text := string(raw)

	var chunks []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			chunks = append(chunks, block)
		}
	}

	return text, chunks, nil
}
