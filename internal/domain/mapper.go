package domain

import (
	"todo-list/internal/repository/mongodb"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromDatabase converts a stored task document to a domain Task.
func (m *TaskMapper) FromDatabase(doc mongodb.TaskDocument) Task {
	return Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		IsChecked:   doc.IsChecked,
		DateCreated: doc.DateCreated,
	}
}

// InputToDatabase converts a validated creation input to a task document.
// Identifier and creation timestamp are left unset; the persistence layer
// assigns both.
func (m *TaskMapper) InputToDatabase(input TaskInput) mongodb.TaskDocument {
	doc := mongodb.TaskDocument{
		Title: input.Title,
	}
	if input.Description != nil {
		doc.Description = *input.Description
	}
	if input.IsChecked != nil {
		doc.IsChecked = *input.IsChecked
	}
	return doc
}

// FromDatabaseSlice converts a slice of stored documents to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(docs []mongodb.TaskDocument) []Task {
	tasks := make([]Task, len(docs))
	for i, doc := range docs {
		tasks[i] = m.FromDatabase(doc)
	}
	return tasks
}

// DeletionMapper handles conversion of delete outcomes.
type DeletionMapper struct{}

// NewDeletionMapper creates a new DeletionMapper instance.
func NewDeletionMapper() *DeletionMapper {
	return &DeletionMapper{}
}

// FromDatabase converts a store delete outcome to a domain DeletionResult.
// The driver only reports counts for acknowledged writes, so Acknowledged is
// always true here.
func (m *DeletionMapper) FromDatabase(outcome mongodb.DeleteOutcome) DeletionResult {
	return DeletionResult{
		Acknowledged: true,
		DeletedCount: outcome.DeletedCount,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Deletion *DeletionMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     NewTaskMapper(),
		Deletion: NewDeletionMapper(),
	}
}
