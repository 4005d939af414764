package server

import (
	"github.com/gofiber/fiber/v2"

	"todo-list/internal/errors"
)

// health handles GET /health.
func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// getTask handles GET /api/task/:id.
func (s *Server) getTask(c *fiber.Ctx) error {
	task, err := s.api.GetTask(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(taskResponseFrom(*task))
}

// createTask handles POST /api/task. The body is decoded into a field map
// so the validation pipeline can report type errors per field.
func (s *Server) createTask(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return s.respondError(c, errors.NewValidationError("request body must be valid JSON.", err))
	}

	task, err := s.api.CreateTask(c.UserContext(), body)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(taskResponseFrom(*task))
}

// deleteTask handles DELETE /api/task/:id. Deletes are idempotent: an
// unknown identifier yields a 200 with a zero deletedCount.
func (s *Server) deleteTask(c *fiber.Ctx) error {
	result, err := s.api.DeleteTask(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(DeletionResponse{
		Acknowledged: result.Acknowledged,
		DeletedCount: result.DeletedCount,
	})
}
