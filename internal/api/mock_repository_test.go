package api

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"todo-list/internal/repository/mongodb"
)

// mockRepository is an in-memory Repository used to test the API layer
// without a running document store. It mirrors the store's identifier
// semantics: malformed ids fail validation, unknown ids are not found, and
// deletes are idempotent.
type mockRepository struct {
	tasks map[primitive.ObjectID]mongodb.TaskDocument

	createCalls int
	createErr   error
	getErr      error
	deleteErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		tasks: make(map[primitive.ObjectID]mongodb.TaskDocument),
	}
}

func (m *mockRepository) CreateTask(ctx context.Context, task *mongodb.TaskDocument) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}

	if task.DateCreated.IsZero() {
		task.DateCreated = time.Now().UTC()
	}
	task.ID = primitive.NewObjectID()
	m.tasks[task.ID] = *task
	return nil
}

func (m *mockRepository) GetTask(ctx context.Context, id string) (*mongodb.TaskDocument, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	oid, err := mongodb.ParseTaskID(id)
	if err != nil {
		return nil, err
	}
	task, ok := m.tasks[oid]
	if !ok {
		return nil, mongodb.HandleNoDocumentsError(mongo.ErrNoDocuments, "Task", id)
	}
	return &task, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id string) (*mongodb.DeleteOutcome, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}

	oid, err := mongodb.ParseTaskID(id)
	if err != nil {
		return nil, err
	}
	if _, ok := m.tasks[oid]; !ok {
		return &mongodb.DeleteOutcome{DeletedCount: 0}, nil
	}
	delete(m.tasks, oid)
	return &mongodb.DeleteOutcome{DeletedCount: 1}, nil
}

func (m *mockRepository) Close(ctx context.Context) error {
	return nil
}
