package server

import (
	"time"

	"todo-list/internal/domain"
)

// TaskResponse is the wire representation of a task. JSON has no date type,
// so dateCreated serializes as an ISO-8601 string.
type TaskResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsChecked   bool      `json:"isChecked"`
	DateCreated time.Time `json:"dateCreated"`
}

// DeletionResponse mirrors the store's delete outcome
type DeletionResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}

func taskResponseFrom(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsChecked:   task.IsChecked,
		DateCreated: task.DateCreated,
	}
}
