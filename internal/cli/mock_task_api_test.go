package cli

import (
	"context"
	"time"

	"todo-list/internal/client"
)

// mockTaskAPI is a canned-response TaskAPI for command handler tests.
type mockTaskAPI struct {
	createCalls int
	lastCreate  client.CreateTaskRequest
	createTask  *client.Task
	createErr   error

	lastGetID string
	getTask   *client.Task
	getErr    error

	lastDeleteID string
	deleteResult *client.DeletionResult
	deleteErr    error
}

func (m *mockTaskAPI) CreateTask(ctx context.Context, req client.CreateTaskRequest) (*client.Task, error) {
	m.createCalls++
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createTask, nil
}

func (m *mockTaskAPI) GetTask(ctx context.Context, id string) (*client.Task, error) {
	m.lastGetID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getTask, nil
}

func (m *mockTaskAPI) DeleteTask(ctx context.Context, id string) (*client.DeletionResult, error) {
	m.lastDeleteID = id
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return m.deleteResult, nil
}

func sampleDeletion() *client.DeletionResult {
	return &client.DeletionResult{Acknowledged: true, DeletedCount: 1}
}

func sampleTask() *client.Task {
	return &client.Task{
		ID:          "507f1f77bcf86cd799439011",
		Title:       "Buy milk",
		Description: "Semi-skimmed",
		DateCreated: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}
