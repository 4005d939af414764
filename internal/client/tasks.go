package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Task is the typed, display-ready form of a task. The wire form carries
// dateCreated as an ISO-8601 string; this form carries the parsed time.
type Task struct {
	ID          string
	Title       string
	Description string
	IsChecked   bool
	DateCreated time.Time
}

// TaskJSON is the shape of a task as received from the API.
type TaskJSON struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsChecked   bool   `json:"isChecked"`
	DateCreated string `json:"dateCreated"`
}

// ParseTask converts a wire task to its typed form. An unparseable
// dateCreated maps to the zero time rather than an error; callers can
// detect it with DateCreated.IsZero().
func ParseTask(wire TaskJSON) Task {
	dateCreated, err := time.Parse(time.RFC3339, wire.DateCreated)
	if err != nil {
		dateCreated = time.Time{}
	}
	return Task{
		ID:          wire.ID,
		Title:       wire.Title,
		Description: wire.Description,
		IsChecked:   wire.IsChecked,
		DateCreated: dateCreated,
	}
}

// CreateTaskRequest is the input for creating a new task. The identifier,
// completion flag, and creation timestamp are never client-supplied.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// DeletionResult reports the outcome of a delete request.
type DeletionResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// TaskClient calls the task API.
type TaskClient struct {
	client *Client
}

// NewTaskClient creates a task client on top of the request layer.
func NewTaskClient(c *Client) *TaskClient {
	return &TaskClient{client: c}
}

// CreateTask creates a new task and returns the full record.
func (tc *TaskClient) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := tc.client.Post(ctx, "/api/task", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wire TaskJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	task := ParseTask(wire)
	return &task, nil
}

// GetTask fetches a task by identifier.
func (tc *TaskClient) GetTask(ctx context.Context, id string) (*Task, error) {
	resp, err := tc.client.Get(ctx, "/api/task/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wire TaskJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	task := ParseTask(wire)
	return &task, nil
}

// DeleteTask deletes a task by identifier. Deleting an already-deleted task
// succeeds with a zero deleted count.
func (tc *TaskClient) DeleteTask(ctx context.Context, id string) (*DeletionResult, error) {
	resp, err := tc.client.Delete(ctx, "/api/task/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result DeletionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode deletion result: %w", err)
	}
	return &result, nil
}
