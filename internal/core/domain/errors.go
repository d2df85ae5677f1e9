package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyResponse     = errors.New("model returned no text")

	ErrResumeNotFound    = fmt.Errorf("resume %w", ErrNotFound)
	ErrSessionNotFound   = fmt.Errorf("session %w", ErrNotFound)
	ErrBuildNotFound     = fmt.Errorf("build %w", ErrNotFound)
	ErrContainerNotFound = fmt.Errorf("container %w", ErrNotFound)

	// Build context validation errors. A missing manifest must surface at
	// the dependency-install stage of the descriptor, never earlier.
	ErrMissingManifest   = fmt.Errorf("%w: dependency manifest missing from build context", ErrInvalidInput)
	ErrMissingEntrypoint = fmt.Errorf("%w: application entry point missing from build context", ErrInvalidInput)
)
