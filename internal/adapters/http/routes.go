package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(app *fiber.App, assistant *AssistantHandler, containers *ContainerHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	resumes := v1.Group("/resumes")
	resumes.Post("/", assistant.UploadResume)
	resumes.Get("/:id", assistant.GetResume)
	resumes.Get("/:id/preview", assistant.PreviewResume)

	sessions := v1.Group("/sessions")
	sessions.Post("/", assistant.CreateSession)
	sessions.Get("/:id", assistant.GetSession)
	sessions.Delete("/:id", assistant.ClearSession)
	sessions.Get("/:id/messages", assistant.ListMessages)
	sessions.Post("/:id/messages", assistant.PostMessage)

	c := v1.Group("/containers")
	c.Get("/", containers.ListContainers)
	c.Post("/", containers.StartContainer)
	c.Delete("/:id", containers.StopContainer)
	c.Get("/:id/logs", containers.GetContainerLogs)

	builds := v1.Group("/builds")
	builds.Post("/", containers.StartBuild)
	builds.Get("/:id", containers.GetBuild)
}
