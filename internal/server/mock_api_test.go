package server

import (
	"context"

	"todo-list/internal/domain"
)

// mockAPI implements the task API with swappable behavior per test.
type mockAPI struct {
	createFunc func(ctx context.Context, body map[string]interface{}) (*domain.Task, error)
	getFunc    func(ctx context.Context, id string) (*domain.Task, error)
	deleteFunc func(ctx context.Context, id string) (*domain.DeletionResult, error)
}

func (m *mockAPI) CreateTask(ctx context.Context, body map[string]interface{}) (*domain.Task, error) {
	return m.createFunc(ctx, body)
}

func (m *mockAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return m.getFunc(ctx, id)
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) (*domain.DeletionResult, error) {
	return m.deleteFunc(ctx, id)
}
