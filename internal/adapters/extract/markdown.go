package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

var (
	bulletRe   = regexp.MustCompile(`(?m)^\s*[•●▪]\s*`)
	numberedRe = regexp.MustCompile(`(?m)^\s*(\d+)\.\s*`)
	headingRe  = regexp.MustCompile(`(?m)^([A-Z][A-Z\s-]+:?)$`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// ConvertToMarkdown applies light markdown formatting to extracted resume
// text: bullet glyphs become list dashes, numbered lists are renormalized,
// ALL-CAPS section headers are bolded and runs of blank lines collapse.
func ConvertToMarkdown(text string) string {
	text = bulletRe.ReplaceAllString(text, "- ")
	text = numberedRe.ReplaceAllString(text, "$1. ")
	text = headingRe.ReplaceAllString(text, "**$1**")
	text = blankRunRe.ReplaceAllString(strings.TrimSpace(text), "\n\n")
	return text
}

// RenderHTML renders markdown to HTML for resume previews.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
