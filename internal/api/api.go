package api

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/repository/mongodb"
	"todo-list/internal/validation"
)

// API defines the interface for all task operations.
type API interface {
	// CreateTask validates a decoded creation request body, persists the
	// task, and returns the full record.
	CreateTask(ctx context.Context, body map[string]interface{}) (*domain.Task, error)

	// GetTask returns the task with the given identifier.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// DeleteTask removes the task with the given identifier. Deleting an
	// unknown identifier is not an error.
	DeleteTask(ctx context.Context, id string) (*domain.DeletionResult, error)
}

type apiImpl struct {
	repo          mongodb.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo mongodb.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

func (a *apiImpl) CreateTask(ctx context.Context, body map[string]interface{}) (*domain.Task, error) {
	// Validation runs before any persistence side effect
	input, err := a.taskValidator.ValidateTaskForCreation(body)
	if err != nil {
		return nil, err
	}

	doc := a.mapper.Task.InputToDatabase(*input)
	if err := a.repo.CreateTask(ctx, &doc); err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(doc)
	return &task, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	doc, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*doc)
	return &task, nil
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) (*domain.DeletionResult, error) {
	outcome, err := a.repo.DeleteTask(ctx, id)
	if err != nil {
		return nil, err
	}

	result := a.mapper.Deletion.FromDatabase(*outcome)
	return &result, nil
}
