package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/resumeai/platform/internal/core/domain"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>WORK EXPERIENCE</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDOCX(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract(context.Background(), "resume.docx", buildDOCX(t, sampleDocumentXML))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "**WORK EXPERIENCE**\nSenior Engineer"
	if res.Markdown != want {
		t.Errorf("markdown = %q, want %q", res.Markdown, want)
	}
	if res.Digest == "" {
		t.Error("digest is empty")
	}
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	if _, err := w.Create("word/styles.xml"); err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	e := NewExtractor()
	if _, err := e.Extract(context.Background(), "resume.docx", buf.Bytes()); err == nil {
		t.Error("expected error for docx without word/document.xml")
	}
}

func TestExtractTXT(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract(context.Background(), "resume.txt", []byte("EDUCATION\n• BSc"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "**EDUCATION**\n- BSc"
	if res.Markdown != want {
		t.Errorf("markdown = %q, want %q", res.Markdown, want)
	}
}

func TestExtractTXTInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	_, err := e.Extract(context.Background(), "resume.txt", []byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewExtractor()
	_, err := e.Extract(context.Background(), "resume.odt", []byte("whatever"))
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractUppercaseExtension(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract(context.Background(), "RESUME.TXT", []byte("hello"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Markdown != "hello" {
		t.Errorf("markdown = %q, want %q", res.Markdown, "hello")
	}
}

// buildEmptyPDF assembles a minimal valid PDF whose page tree has no pages.
// Offsets in the xref table are computed while writing, so the fixture stays
// correct if the objects change.
func buildEmptyPDF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, 2)
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart)
	return buf.Bytes()
}

func TestExtractEmptyPDF(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract(context.Background(), "resume.pdf", buildEmptyPDF(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Markdown != "" {
		t.Errorf("markdown = %q, want empty", res.Markdown)
	}
	if res.PageCount != 0 {
		t.Errorf("page count = %d, want 0", res.PageCount)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract(context.Background(), "resume.pdf", []byte("not a pdf")); err == nil {
		t.Error("expected error for corrupt pdf")
	}
}

func TestExtractCachesByDigest(t *testing.T) {
	e := NewExtractor()
	data := []byte("SUMMARY\nbuilds things")

	first, err := e.Extract(context.Background(), "a.txt", data)
	if err != nil {
		t.Fatalf("first extract failed: %v", err)
	}
	// Same bytes under a different name hit the cache.
	second, err := e.Extract(context.Background(), "b.txt", data)
	if err != nil {
		t.Fatalf("second extract failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached result to be returned for identical content")
	}
}
