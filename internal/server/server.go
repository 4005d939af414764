package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"todo-list/internal/api"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/validation"
)

// Server exposes the task API over HTTP.
type Server struct {
	app *fiber.App
	api api.API
	log zerolog.Logger
}

// New creates a new Server wired to the given task API.
func New(apiInstance api.API, logger zerolog.Logger) *Server {
	s := &Server{
		api: apiInstance,
		log: logging.ForComponent(logger, "http"),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(s.requestLogger())

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.app.Get("/health", s.health)

	group := s.app.Group("/api")
	group.Get("/task/:id", s.getTask)
	group.Post("/task", s.createTask)
	group.Delete("/task/:id", s.deleteTask)
}

// Listen starts serving on the given address and blocks until shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// respondError is the single boundary that normalizes errors into the
// {error} envelope. Validation failures map to 400, unknown identifiers to
// 404, and everything else to a generic 500.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	if errors.ShouldLogError(err) {
		s.log.Error().Err(err).Str(logging.Path, c.Path()).Msg("request failed")
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: validationErr.GetUserFriendlyMessage()})
	}

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: appErr.Message})
		case errors.ErrorTypeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: appErr.Message})
		}
	}

	// The concrete failure type is not guaranteed at this boundary
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "An unknown error occurred."})
}

// handleError is the fiber-level catch-all for errors that escape the
// handlers, including recovered panics.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unknown error occurred."

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		s.log.Error().Err(err).Msg("unhandled error")
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.log.Info().
			Str(logging.Method, c.Method()).
			Str(logging.Path, c.Path()).
			Int(logging.Status, c.Response().StatusCode()).
			Dur(logging.Duration, time.Since(start)).
			Str(logging.RequestID, c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return err
	}
}
