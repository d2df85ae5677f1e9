// Package extract turns uploaded resume documents (PDF, DOCX, TXT) into
// markdown text.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"

	"github.com/resumeai/platform/internal/core/domain"
	"github.com/resumeai/platform/internal/core/ports"
)

// Extractor implements ports.Extractor. Results are cached by content
// digest, so re-uploading the same file skips the parse.
type Extractor struct {
	mu    sync.Mutex
	cache map[digest.Digest]*ports.ExtractionResult
}

func NewExtractor() *Extractor {
	return &Extractor{cache: make(map[digest.Digest]*ports.ExtractionResult)}
}

// SupportedFormats returns the handled file extensions.
func (e *Extractor) SupportedFormats() []string {
	return []string{".pdf", ".docx", ".txt"}
}

// Extract parses the document selected by the filename's extension and
// returns its text converted to markdown.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (*ports.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := digest.FromBytes(data)
	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text  string
		pages int
		err   error
	)
	switch ext {
	case ".pdf":
		text, pages, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".txt":
		text, err = extractTXT(data)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	result := &ports.ExtractionResult{
		Markdown:  ConvertToMarkdown(text),
		Digest:    key.String(),
		PageCount: pages,
	}

	e.mu.Lock()
	e.cache[key] = result
	e.mu.Unlock()

	return result, nil
}
