package ports

import (
	"context"

	"github.com/resumeai/platform/internal/core/domain"
)

// BuildRequest describes one image build. Exactly one of RepoURL or
// ContextDir provides the build context.
type BuildRequest struct {
	RepoURL    string
	ContextDir string
	ImageRef   string
	Spec       domain.ImageSpec
}

// BuilderService defines operations for building container images from source code.
type BuilderService interface {
	// BuildImage fetches the build context, renders the packaging
	// descriptor into it and builds an image. It returns the normalized
	// image reference or an error.
	BuildImage(ctx context.Context, req BuildRequest) (string, error)
}
