package cli

import (
	"errors"
	"fmt"
	"net/http"

	"todo-list/internal/client"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for request failures
func (eh *ErrorHandler) Handle(operation string, err error) error {
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Body != "" {
			return fmt.Errorf("failed to %s: %s", operation, reqErr.Body)
		}
		return fmt.Errorf("failed to %s: %d %s", operation, reqErr.StatusCode, reqErr.Status)
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsNotFound checks if an error is a not-found response
func (eh *ErrorHandler) IsNotFound(err error) bool {
	var reqErr *client.RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}
