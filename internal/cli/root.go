package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/client"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultTimeout   = 30 * time.Second
)

// TaskAPI is the subset of the task client the commands need. Tests swap in
// a mock.
type TaskAPI interface {
	CreateTask(ctx context.Context, req client.CreateTaskRequest) (*client.Task, error)
	GetTask(ctx context.Context, id string) (*client.Task, error)
	DeleteTask(ctx context.Context, id string) (*client.DeletionResult, error)
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	api TaskAPI
}

// NewRootCommand creates the root cobra command with global flags. When api
// is nil, a task client is built from the --server-url flag before any
// subcommand runs.
func NewRootCommand(api TaskAPI) *RootCommand {
	root := &RootCommand{api: api}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line client for the to-do list service",
		Long: `todo is a command-line client for the to-do list service.

EXAMPLES:
  todo add "Buy milk"                       # Create a new task
  todo add                                  # Create a task interactively
  todo get 507f1f77bcf86cd799439011         # Fetch a task by id
  todo delete 507f1f77bcf86cd799439011      # Delete a task by id

CONFIGURATION:
  TODO_SERVER_URL                           Server base URL (default: http://localhost:8080)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root.api == nil {
				root.api = client.NewTaskClient(client.NewClient(root.serverURL()))
			}
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.String("server-url", "", "Server base URL (overrides TODO_SERVER_URL)")
	flags.Duration("timeout", defaultTimeout, "Request timeout")
}

// serverURL resolves the server base URL: flag, then environment, then the
// default.
func (r *RootCommand) serverURL() string {
	if url, _ := r.cmd.PersistentFlags().GetString("server-url"); url != "" {
		return url
	}
	if url := os.Getenv("TODO_SERVER_URL"); url != "" {
		return url
	}
	return defaultServerURL
}

// commandContext returns a context bounded by the --timeout flag.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout, _ := r.cmd.PersistentFlags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Long: `Create a new task with the given title.

Without arguments the command prompts for a title and an optional
description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			description, _ := cmd.Flags().GetString("description")
			addHandler := NewAddCommand(r.api)
			return addHandler.Execute(ctx, args, description)
		},
	}
	addCmd.Flags().StringP("description", "d", "", "Task description")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a task by id",
		Long:  "Fetch a single task by its identifier and print it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			getHandler := NewGetCommand(r.api)
			return getHandler.Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task by id",
		Long: `Delete a task by its identifier.

Deleting an already-deleted task succeeds and reports a count of zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			deleteHandler := NewDeleteCommand(r.api)
			return deleteHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		getCmd,
		deleteCmd,
	)
}
