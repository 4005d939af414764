package domain

import "time"

// Task is the to-do item entity, the sole domain object. ID and DateCreated
// are assigned by the persistence layer at creation and never mutated.
type Task struct {
	ID          string
	Title       string
	Description string
	IsChecked   bool
	DateCreated time.Time
}

// TaskInput is the creation contract, strictly narrower than Task: clients
// may never set the identifier, completion flag defaulting, or creation
// timestamp through it. Pointer fields distinguish absent from zero.
type TaskInput struct {
	Title       string
	Description *string
	IsChecked   *bool
}

// DeletionResult reports the outcome of a delete operation. Deleting an
// unknown identifier is not an error; DeletedCount is zero on the second
// delete of the same task.
type DeletionResult struct {
	Acknowledged bool
	DeletedCount int64
}
