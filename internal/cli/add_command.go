package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"todo-list/internal/client"
	"todo-list/internal/form"
)

// AddCommand handles the add command
type AddCommand struct {
	api          TaskAPI
	errorHandler *ErrorHandler
	in           io.Reader
	out          io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(api TaskAPI) *AddCommand {
	return &AddCommand{
		api:          api,
		errorHandler: NewErrorHandler(),
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, description string) error {
	title := strings.Join(args, " ")

	// No title on the command line means interactive entry
	if title == "" {
		var err error
		title, description, err = c.promptForTask()
		if err != nil {
			return err
		}
	}

	return c.createTask(ctx, title, description)
}

// promptForTask reads a title and an optional description from the user.
func (c *AddCommand) promptForTask() (string, string, error) {
	reader := bufio.NewReader(c.in)

	fmt.Fprint(c.out, "Title: ")
	title, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", "", fmt.Errorf("failed to read title: %w", err)
	}

	fmt.Fprint(c.out, "Description (optional): ")
	description, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", "", fmt.Errorf("failed to read description: %w", err)
	}

	return strings.TrimSpace(title), strings.TrimSpace(description), nil
}

// createTask submits the task through the form state machine.
func (c *AddCommand) createTask(ctx context.Context, title, description string) error {
	taskForm := form.New(c.api)
	taskForm.SetTitle(title)
	taskForm.SetDescription(description)

	var created *client.Task
	taskForm.OnCreated(func(task client.Task) {
		created = &task
	})

	if err := taskForm.Submit(ctx); err != nil {
		return c.errorHandler.Handle("create task", err)
	}
	if taskForm.Errors().Title {
		return fmt.Errorf("A title is required.")
	}

	fmt.Fprintf(c.out, "Created task: %s (id: %s)\n", created.Title, created.ID)
	return nil
}
