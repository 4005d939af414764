package form

import (
	"context"
	"strings"

	"todo-list/internal/client"
)

// State is the submission lifecycle of the form.
type State string

const (
	// StateIdle means the form accepts input and can be submitted.
	StateIdle State = "idle"
	// StateSubmitting means a create request is in flight.
	StateSubmitting State = "submitting"
)

// TaskCreator is the one API call the form needs.
type TaskCreator interface {
	CreateTask(ctx context.Context, req client.CreateTaskRequest) (*client.Task, error)
}

// Errors holds the per-field validation flags shown to the user.
type Errors struct {
	Title bool
}

// TaskForm collects a title and description and submits them as a new task.
// It enforces a local title check before any network call and blocks
// re-submission while a request is in flight.
type TaskForm struct {
	creator TaskCreator

	state       State
	title       string
	description string
	errors      Errors

	// onCreated fires after a successful submission, before fields reset.
	onCreated func(client.Task)
	// notify reports a failed submission to the user.
	notify func(error)
}

// New creates an idle form bound to the given creator.
func New(creator TaskCreator) *TaskForm {
	return &TaskForm{
		creator: creator,
		state:   StateIdle,
	}
}

// OnCreated registers a callback invoked with the created task.
func (f *TaskForm) OnCreated(fn func(client.Task)) {
	f.onCreated = fn
}

// OnError registers a callback invoked when a submission fails.
func (f *TaskForm) OnError(fn func(error)) {
	f.notify = fn
}

// SetTitle updates the title field.
func (f *TaskForm) SetTitle(title string) {
	f.title = title
}

// SetDescription updates the description field.
func (f *TaskForm) SetDescription(description string) {
	f.description = description
}

// Title returns the current title field.
func (f *TaskForm) Title() string {
	return f.title
}

// Description returns the current description field.
func (f *TaskForm) Description() string {
	return f.description
}

// State returns the current submission state.
func (f *TaskForm) State() State {
	return f.state
}

// Errors returns the current field error flags.
func (f *TaskForm) Errors() Errors {
	return f.errors
}

// SaveDisabled reports whether the save action should be unavailable. It is
// true exactly while a submission is in flight.
func (f *TaskForm) SaveDisabled() bool {
	return f.state == StateSubmitting
}

// Submit runs one submission cycle. A blank title fails locally without any
// network traffic. On success the fields reset and the created task is
// handed to the OnCreated callback; on failure the fields are kept so the
// user can retry.
func (f *TaskForm) Submit(ctx context.Context) error {
	if f.state == StateSubmitting {
		return nil
	}

	f.errors = Errors{}

	if strings.TrimSpace(f.title) == "" {
		f.errors.Title = true
		return nil
	}

	req := client.CreateTaskRequest{Title: f.title}
	if f.description != "" {
		description := f.description
		req.Description = &description
	}

	f.state = StateSubmitting
	task, err := f.creator.CreateTask(ctx, req)
	f.state = StateIdle

	if err != nil {
		if f.notify != nil {
			f.notify(err)
		}
		return err
	}

	f.title = ""
	f.description = ""
	if f.onCreated != nil && task != nil {
		f.onCreated(*task)
	}
	return nil
}
