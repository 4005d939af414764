package validation

import (
	"todo-list/internal/domain"
)

// TaskValidator validates task creation and update request bodies before they
// reach persistence
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// creationChains returns the per-field rule chains for task creation.
// Field chains are independent of each other; within a chain, evaluation
// stops at the first failure.
func (tv *TaskValidator) creationChains() []Chain {
	return []Chain{
		{
			Field: "title",
			Rules: []Rule{
				{
					Type:    ErrorTypeRequired,
					Message: "A title is required.",
					Check:   func(f Field) bool { return f.Present },
				},
				{
					Type:    ErrorTypeInvalidValue,
					Message: "title cannot be empty.",
					Check:   func(f Field) bool { return tv.validator.IsNonEmpty(f.Value) },
				},
				{
					Type:    ErrorTypeInvalidType,
					Message: "title must be a string.",
					Check:   func(f Field) bool { return tv.validator.IsString(f.Value) },
				},
			},
		},
		{
			Field:    "description",
			Optional: true,
			Rules: []Rule{
				{
					Type:    ErrorTypeInvalidType,
					Message: "description must be a string.",
					Check:   func(f Field) bool { return tv.validator.IsString(f.Value) },
				},
			},
		},
		{
			Field:    "isChecked",
			Optional: true,
			Rules: []Rule{
				{
					Type:    ErrorTypeInvalidType,
					Message: "isChecked must be a boolean.",
					Check:   func(f Field) bool { return tv.validator.IsBool(f.Value) },
				},
			},
		},
	}
}

// updateChains returns the rule chains for the task update contract. The
// update route is not mounted yet; the contract is validated here so the
// mutation path can be added without schema work.
func (tv *TaskValidator) updateChains() []Chain {
	chains := tv.creationChains()
	chains = append(chains,
		Chain{
			Field: "_id",
			Rules: []Rule{
				{
					Type:    ErrorTypeRequired,
					Message: "A task id is required.",
					Check:   func(f Field) bool { return f.Present },
				},
				{
					Type:    ErrorTypeInvalidFormat,
					Message: "_id must be a valid task id.",
					Check:   func(f Field) bool { return tv.validator.IsObjectIDHex(f.Value) },
				},
			},
		},
		Chain{
			Field: "dateCreated",
			Rules: []Rule{
				{
					Type:    ErrorTypeRequired,
					Message: "A dateCreated is required.",
					Check:   func(f Field) bool { return f.Present },
				},
				{
					Type:    ErrorTypeInvalidFormat,
					Message: "dateCreated must be a valid date string.",
					Check:   func(f Field) bool { return tv.validator.IsDateTime(f.Value) },
				},
			},
		},
		Chain{
			Field:    "assignee",
			Optional: true,
			Rules: []Rule{
				{
					Type:    ErrorTypeInvalidFormat,
					Message: "assignee must be a valid user id.",
					Check:   func(f Field) bool { return tv.validator.IsObjectIDHex(f.Value) },
				},
			},
		},
	)
	return chains
}

// ValidateTaskForCreation validates a decoded creation request body and, on
// success, returns the sanitized input. All field failures are aggregated
// into a single ValidationError.
func (tv *TaskValidator) ValidateTaskForCreation(body map[string]interface{}) (*domain.TaskInput, error) {
	if err := RunChains(body, tv.creationChains()); err != nil {
		return nil, err
	}

	input := &domain.TaskInput{
		Title: tv.validator.Sanitize(body["title"].(string)),
	}
	if value, present := body["description"]; present {
		description := tv.validator.Sanitize(value.(string))
		input.Description = &description
	}
	if value, present := body["isChecked"]; present {
		isChecked := value.(bool)
		input.IsChecked = &isChecked
	}
	return input, nil
}

// ValidateTaskForUpdate validates a decoded update request body
func (tv *TaskValidator) ValidateTaskForUpdate(body map[string]interface{}) error {
	return RunChains(body, tv.updateChains())
}
