package http

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeai/platform/internal/adapters/extract"
	"github.com/resumeai/platform/internal/core/domain"
	"github.com/resumeai/platform/internal/core/ports"
)

// AssistantHandler serves resume uploads and chat sessions.
type AssistantHandler struct {
	store     ports.Store
	extractor ports.Extractor
	chat      ports.ChatModel
	maxTurns  int
	maxUpload int64
}

func NewAssistantHandler(store ports.Store, extractor ports.Extractor, chat ports.ChatModel, maxTurns int, maxUpload int64) *AssistantHandler {
	return &AssistantHandler{
		store:     store,
		extractor: extractor,
		chat:      chat,
		maxTurns:  maxTurns,
		maxUpload: maxUpload,
	}
}

// UploadResume accepts a multipart "file" field, extracts its text and
// stores the markdown. With ?session_id=<id> the resume also replaces that
// session's current one.
func (h *AssistantHandler) UploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'file' is required",
		})
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": fmt.Sprintf("file exceeds the %d byte limit", h.maxUpload),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fmt.Errorf("failed to read upload: %w", err))
	}

	result, err := h.extractor.Extract(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return writeError(c, err)
	}

	resume := &domain.Resume{
		ID:         uuid.NewString(),
		Filename:   fileHeader.Filename,
		Digest:     result.Digest,
		Markdown:   result.Markdown,
		UploadedAt: time.Now().UTC(),
	}
	if err := h.store.SaveResume(c.Context(), resume); err != nil {
		return writeError(c, err)
	}

	if sessionID := c.Query("session_id"); sessionID != "" {
		if err := h.store.AttachResume(c.Context(), sessionID, resume.ID); err != nil {
			return writeError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *AssistantHandler) GetResume(c *fiber.Ctx) error {
	resume, err := h.store.GetResume(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resume)
}

// PreviewResume renders the stored markdown as HTML.
func (h *AssistantHandler) PreviewResume(c *fiber.Ctx) error {
	resume, err := h.store.GetResume(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	html, err := extract.RenderHTML(resume.Markdown)
	if err != nil {
		return writeError(c, err)
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

type createSessionRequest struct {
	ResumeID string `json:"resume_id"`
}

func (h *AssistantHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	if req.ResumeID != "" {
		if _, err := h.store.GetResume(c.Context(), req.ResumeID); err != nil {
			return writeError(c, err)
		}
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		ResumeID:  req.ResumeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateSession(c.Context(), session); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *AssistantHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.store.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session)
}

// ClearSession drops the session's history and detaches its resume.
func (h *AssistantHandler) ClearSession(c *fiber.Ctx) error {
	if err := h.store.ClearSession(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AssistantHandler) ListMessages(c *fiber.Ctx) error {
	if _, err := h.store.GetSession(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	messages, err := h.store.ListMessages(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(messages)
}

type postMessageRequest struct {
	Content string `json:"content"`
}

// PostMessage appends the user's turn, generates the assistant reply over
// the trimmed history (with the session's resume injected as context) and
// returns the reply.
func (h *AssistantHandler) PostMessage(c *fiber.Ctx) error {
	var req postMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "content is required",
		})
	}

	session, err := h.store.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	history, err := h.store.ListMessages(c.Context(), session.ID)
	if err != nil {
		return writeError(c, err)
	}

	userMsg := &domain.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      domain.RoleUser,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.AppendMessage(c.Context(), userMsg); err != nil {
		return writeError(c, err)
	}

	turns, err := h.buildTurns(c, session, history, req.Content)
	if err != nil {
		return writeError(c, err)
	}

	reply, err := h.chat.Generate(c.Context(), turns)
	if err != nil {
		return writeError(c, err)
	}

	modelMsg := &domain.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      domain.RoleModel,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.AppendMessage(c.Context(), modelMsg); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(modelMsg)
}

// buildTurns assembles the generation request: the resume context first,
// then the memory-trimmed history, then the new user message. The resume
// turn never falls out of the window.
func (h *AssistantHandler) buildTurns(c *fiber.Ctx, session *domain.Session, history []domain.Message, content string) ([]domain.Turn, error) {
	memory := domain.NewMemory(h.maxTurns)
	for _, m := range history {
		memory.Add(m.Role, m.Content)
	}

	var turns []domain.Turn
	if session.ResumeID != "" {
		resume, err := h.store.GetResume(c.Context(), session.ResumeID)
		if err != nil {
			return nil, err
		}
		turns = append(turns, domain.Turn{
			Role:    domain.RoleUser,
			Content: "Here is the user's resume:\n\n" + resume.Markdown,
		})
	}
	turns = append(turns, memory.Turns()...)
	turns = append(turns, domain.Turn{Role: domain.RoleUser, Content: content})
	return turns, nil
}
