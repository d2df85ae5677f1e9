package extract

import (
	"fmt"
	"unicode/utf8"

	"github.com/resumeai/platform/internal/core/domain"
)

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text file is not valid UTF-8", domain.ErrInvalidInput)
	}
	return string(data), nil
}
