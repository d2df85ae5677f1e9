package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeai/platform/internal/core/domain"
	"github.com/resumeai/platform/internal/core/ports"
)

// ContainerHandler serves container lifecycle and image build endpoints.
type ContainerHandler struct {
	service ports.ContainerService
	builder ports.BuilderService
	store   ports.Store
	spec    domain.ImageSpec
}

func NewContainerHandler(service ports.ContainerService, builder ports.BuilderService, store ports.Store, spec domain.ImageSpec) *ContainerHandler {
	return &ContainerHandler{service: service, builder: builder, store: store, spec: spec}
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	containers, err := h.service.ListContainers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(containers)
}

type startContainerRequest struct {
	Image string `json:"image"`
	Port  int    `json:"port"`
}

func (h *ContainerHandler) StartContainer(c *fiber.Ctx) error {
	var req startContainerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image name is required",
		})
	}
	if req.Port == 0 {
		req.Port = h.spec.Port
	}

	containerID, err := h.service.StartContainer(c.Context(), req.Image, req.Port)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    containerID,
		"image": req.Image,
	})
}

func (h *ContainerHandler) StopContainer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Container ID is required",
		})
	}

	if err := h.service.StopContainer(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *ContainerHandler) GetContainerLogs(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Container ID is required",
		})
	}

	logs, err := h.service.GetContainerLogs(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	c.Set("Content-Type", "text/plain")
	return c.SendStream(logs)
}

type startBuildRequest struct {
	RepoURL    string            `json:"repo_url"`
	ContextDir string            `json:"context_dir"`
	Image      string            `json:"image"`
	Spec       *domain.ImageSpec `json:"spec"`
}

// StartBuild runs an image build and records its outcome. The build is
// synchronous; a failed build ends as a failed record, not a retry.
func (h *ContainerHandler) StartBuild(c *fiber.Ctx) error {
	var req startBuildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image name is required",
		})
	}

	spec := h.spec
	if req.Spec != nil {
		spec = *req.Spec
	}

	build := &domain.Build{
		ID:        uuid.NewString(),
		RepoURL:   req.RepoURL,
		ImageRef:  req.Image,
		Spec:      spec,
		Status:    domain.BuildStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateBuild(c.Context(), build); err != nil {
		return writeError(c, err)
	}
	if err := h.store.UpdateBuildStatus(c.Context(), build.ID, domain.BuildStatusRunning, ""); err != nil {
		return writeError(c, err)
	}

	ref, err := h.builder.BuildImage(c.Context(), ports.BuildRequest{
		RepoURL:    req.RepoURL,
		ContextDir: req.ContextDir,
		ImageRef:   req.Image,
		Spec:       spec,
	})
	if err != nil {
		if uerr := h.store.UpdateBuildStatus(c.Context(), build.ID, domain.BuildStatusFailed, err.Error()); uerr != nil {
			return writeError(c, uerr)
		}
		return writeError(c, err)
	}

	if err := h.store.UpdateBuildStatus(c.Context(), build.ID, domain.BuildStatusSucceeded, ""); err != nil {
		return writeError(c, err)
	}

	build.ImageRef = ref
	build.Status = domain.BuildStatusSucceeded
	return c.Status(fiber.StatusCreated).JSON(build)
}

func (h *ContainerHandler) GetBuild(c *fiber.Ctx) error {
	build, err := h.store.GetBuild(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(build)
}
