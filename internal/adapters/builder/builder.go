// Package builder produces container images that package the Streamlit
// resume assistant: base image, pinned pip, manifest install, app copy,
// exposed port and the streamlit startup command.
package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	git "github.com/go-git/go-git/v5"
	"github.com/google/go-containerregistry/pkg/name"

	"github.com/resumeai/platform/internal/core/domain"
	"github.com/resumeai/platform/internal/core/ports"
)

type Adapter struct {
	cli    *client.Client
	logger *slog.Logger
}

func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli, logger: slog.Default()}, nil
}

// BuildImage prepares the build context (clone or local directory), renders
// the packaging descriptor into it and drives the daemon build. It returns
// the normalized image reference.
func (a *Adapter) BuildImage(ctx context.Context, req ports.BuildRequest) (string, error) {
	ref, err := normalizeImageRef(req.ImageRef)
	if err != nil {
		return "", err
	}
	if err := req.Spec.Validate(); err != nil {
		return "", err
	}

	dir, cleanup, err := a.prepareContext(ctx, req)
	if err != nil {
		return "", err
	}
	defer cleanup()

	if err := ValidateContext(dir, req.Spec); err != nil {
		return "", err
	}
	if err := EnsureDockerfile(dir, req.Spec); err != nil {
		return "", err
	}

	tar, err := archive.TarWithOptions(dir, &archive.TarOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to create build context: %w", err)
	}

	a.logger.InfoContext(ctx, "building image", "image", ref, "context", dir)
	resp, err := a.cli.ImageBuild(ctx, tar, types.ImageBuildOptions{
		Tags:       []string{ref},
		Dockerfile: "Dockerfile",
		Remove:     true, // Remove intermediate containers
	})
	if err != nil {
		return "", fmt.Errorf("failed to build image: %w", err)
	}
	defer resp.Body.Close()

	if err := drainBuildOutput(resp.Body); err != nil {
		return "", err
	}
	return ref, nil
}

// prepareContext returns the directory holding the build context. Git
// contexts are shallow-cloned into a temp dir removed by cleanup; local
// contexts are used in place.
func (a *Adapter) prepareContext(ctx context.Context, req ports.BuildRequest) (string, func(), error) {
	if req.RepoURL == "" && req.ContextDir == "" {
		return "", nil, fmt.Errorf("%w: either repo_url or context_dir is required", domain.ErrInvalidInput)
	}
	if req.RepoURL == "" {
		return req.ContextDir, func() {}, nil
	}

	tmpDir, err := os.MkdirTemp("", "resumeai-build-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	a.logger.InfoContext(ctx, "cloning repository", "url", req.RepoURL)
	_, err = git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL:   req.RepoURL,
		Depth: 1, // Shallow clone for speed
	})
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to clone repo: %w", err)
	}
	return tmpDir, cleanup, nil
}

// ValidateContext checks that the context can reach the dependency-install
// step and the startup command: the manifest and entry point must exist. A
// missing manifest fails here, before any daemon work, which keeps the
// failure at the dependency-install stage of the descriptor.
func ValidateContext(dir string, spec domain.ImageSpec) error {
	manifest := spec.Manifest
	if manifest == "" {
		manifest = domain.DefaultManifest
	}
	entrypoint := spec.Entrypoint
	if entrypoint == "" {
		entrypoint = domain.DefaultEntrypoint
	}

	if _, err := os.Stat(filepath.Join(dir, manifest)); err != nil {
		return fmt.Errorf("%w (%s)", domain.ErrMissingManifest, manifest)
	}
	if _, err := os.Stat(filepath.Join(dir, entrypoint)); err != nil {
		return fmt.Errorf("%w (%s)", domain.ErrMissingEntrypoint, entrypoint)
	}
	return nil
}

// EnsureDockerfile writes the rendered descriptor into the context unless
// the application ships its own Dockerfile.
func EnsureDockerfile(dir string, spec domain.ImageSpec) error {
	path := filepath.Join(dir, "Dockerfile")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(spec.Dockerfile()), 0o644); err != nil {
		return fmt.Errorf("failed to write Dockerfile: %w", err)
	}
	return nil
}

// normalizeImageRef validates the requested tag and returns its normalized
// form (e.g. "resume-app" -> "resume-app:latest").
func normalizeImageRef(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: image reference is required", domain.ErrInvalidInput)
	}
	parsed, err := name.ParseReference(ref, name.WithDefaultRegistry(""))
	if err != nil {
		return "", fmt.Errorf("%w: invalid image reference %q: %v", domain.ErrInvalidInput, ref, err)
	}
	return parsed.Name(), nil
}

// buildMessage is one line of the daemon's build output stream.
type buildMessage struct {
	Stream string `json:"stream"`
	Error  string `json:"error"`
}

// drainBuildOutput consumes the build stream until EOF so the build
// finishes, surfacing any error message the daemon reports.
func drainBuildOutput(r io.Reader) error {
	dec := json.NewDecoder(r)
	for {
		var msg buildMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read build output: %w", err)
		}
		if msg.Error != "" {
			return fmt.Errorf("build failed: %s", msg.Error)
		}
	}
}
