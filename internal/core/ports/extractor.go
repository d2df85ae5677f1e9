package ports

import "context"

// ExtractionResult contains the extracted document text and metadata.
type ExtractionResult struct {
	// Markdown is the extracted text after markdown conversion.
	Markdown string
	// Digest is the sha256 digest of the raw document bytes.
	Digest string
	// PageCount is the number of pages, for formats that have pages.
	PageCount int
}

// Extractor extracts text content from uploaded documents. The filename's
// extension selects the extraction method.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (*ExtractionResult, error)
	// SupportedFormats returns the file extensions this extractor handles.
	SupportedFormats() []string
}
