package docker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/resumeai/platform/internal/core/domain"
)

// Adapter implements ports.ContainerService using the Docker SDK.
type Adapter struct {
	cli    *client.Client
	logger *slog.Logger
}

// NewAdapter creates a new Docker adapter instance.
func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli, logger: slog.Default()}, nil
}

// ListContainers returns the containers known to the daemon with details.
func (a *Adapter) ListContainers(ctx context.Context) ([]domain.Container, error) {
	containers, err := a.cli.ContainerList(ctx, types.ContainerListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	var result []domain.Container
	for _, c := range containers {
		// Use the first name if available, remove slash
		name := ""
		if len(c.Names) > 0 {
			name = c.Names[0][1:]
		}

		ip := ""
		if c.NetworkSettings != nil {
			for _, network := range c.NetworkSettings.Networks {
				if network.IPAddress != "" {
					ip = network.IPAddress
					break
				}
			}
		}

		port := 0
		for _, p := range c.Ports {
			if p.PrivatePort != 0 {
				port = int(p.PrivatePort)
				break
			}
		}

		result = append(result, domain.Container{
			ID:        c.ID[:12], // Short ID
			Name:      name,
			Image:     c.Image,
			Status:    c.Status,
			State:     c.State,
			IPAddress: ip,
			Port:      port,
		})
	}
	return result, nil
}

// StartContainer creates and starts a container from a given image with the
// app port published on an ephemeral host port.
func (a *Adapter) StartContainer(ctx context.Context, image string, appPort int) (string, error) {
	if appPort <= 0 {
		appPort = domain.DefaultStreamlitPort
	}

	// Ensure the image exists. Locally built images are not pullable, so a
	// pull failure is not fatal; the create call reports a truly missing
	// image.
	reader, err := a.cli.ImagePull(ctx, image, types.ImagePullOptions{})
	if err != nil {
		a.logger.WarnContext(ctx, "image pull skipped", "image", image, "error", err)
	} else {
		io.Copy(io.Discard, reader)
		reader.Close()
	}

	containerPort, err := nat.NewPort("tcp", strconv.Itoa(appPort))
	if err != nil {
		return "", fmt.Errorf("failed to build port spec: %w", err)
	}

	resp, err := a.cli.ContainerCreate(ctx, &container.Config{
		Image:        image,
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
	}, &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{{HostIP: "0.0.0.0"}},
		},
	}, nil, nil, "")
	if err != nil {
		return "", fmt.Errorf("failed to create container: %w", err)
	}

	if err := a.cli.ContainerStart(ctx, resp.ID, types.ContainerStartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container: %w", err)
	}

	a.logger.InfoContext(ctx, "container started", "id", resp.ID[:12], "image", image, "port", appPort)
	return resp.ID, nil
}

// StopContainer stops a running container.
func (a *Adapter) StopContainer(ctx context.Context, id string) error {
	// Timeout can be configurable, but keeping it simple for now
	timeout := 10 * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return a.cli.ContainerStop(ctx, id, container.StopOptions{})
}

// GetContainerLogs returns a stream of container logs. Streamlit writes its
// startup and request logs to stderr.
func (a *Adapter) GetContainerLogs(ctx context.Context, id string) (io.ReadCloser, error) {
	options := types.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     false, // Can be true for streaming
		Timestamps: true,
	}
	return a.cli.ContainerLogs(ctx, id, options)
}
