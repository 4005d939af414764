package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          TaskAPI
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(api TaskAPI) *DeleteCommand {
	return &DeleteCommand{
		api:          api,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	result, err := c.api.DeleteTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if result.DeletedCount == 0 {
		fmt.Fprintf(c.out, "No task found with id %s\n", args[0])
		return nil
	}
	fmt.Fprintf(c.out, "Deleted task %s\n", args[0])
	return nil
}
