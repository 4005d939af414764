package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// GetCommand handles the get command
type GetCommand struct {
	api          TaskAPI
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewGetCommand creates a new get command handler
func NewGetCommand(api TaskAPI) *GetCommand {
	return &GetCommand{
		api:          api,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Execute runs the get command
func (c *GetCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.api.GetTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("get task", err)
	}

	status := "open"
	if task.IsChecked {
		status = "done"
	}

	fmt.Fprintf(c.out, "Id:          %s\n", task.ID)
	fmt.Fprintf(c.out, "Title:       %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(c.out, "Description: %s\n", task.Description)
	}
	fmt.Fprintf(c.out, "Status:      %s\n", status)
	if !task.DateCreated.IsZero() {
		fmt.Fprintf(c.out, "Created:     %s\n", task.DateCreated.Format(time.RFC3339))
	}
	return nil
}
