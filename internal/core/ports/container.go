package ports

import (
	"context"
	"io"

	"github.com/resumeai/platform/internal/core/domain"
)

// ContainerService defines the core operations for managing containers.
// This interface allows us to switch between Docker, Podman, or Kubernetes
// without changing the business logic.
type ContainerService interface {
	ListContainers(ctx context.Context) ([]domain.Container, error)
	// StartContainer runs image with appPort published on the host and
	// returns the container ID.
	StartContainer(ctx context.Context, image string, appPort int) (string, error)
	StopContainer(ctx context.Context, id string) error
	GetContainerLogs(ctx context.Context, id string) (io.ReadCloser, error)
}
