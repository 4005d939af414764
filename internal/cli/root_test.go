package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RoutesToGet(t *testing.T) {
	api := &mockTaskAPI{getTask: sampleTask()}
	root := NewRootCommand(api)
	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs([]string{"get", "507f1f77bcf86cd799439011"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", api.lastGetID)
}

func TestRootCommand_RoutesToDelete(t *testing.T) {
	api := &mockTaskAPI{deleteResult: sampleDeletion()}
	root := NewRootCommand(api)
	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs([]string{"delete", "507f1f77bcf86cd799439011"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", api.lastDeleteID)
}

func TestRootCommand_GetRequiresID(t *testing.T) {
	root := NewRootCommand(&mockTaskAPI{})
	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs([]string{"get"})

	assert.Error(t, root.Execute())
}

func TestRootCommand_ServerURLResolution(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv("TODO_SERVER_URL", "")
		root := NewRootCommand(&mockTaskAPI{})
		assert.Equal(t, defaultServerURL, root.serverURL())
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("TODO_SERVER_URL", "http://todo.internal:9000")
		root := NewRootCommand(&mockTaskAPI{})
		assert.Equal(t, "http://todo.internal:9000", root.serverURL())
	})

	t.Run("Flag wins over environment", func(t *testing.T) {
		t.Setenv("TODO_SERVER_URL", "http://todo.internal:9000")
		root := NewRootCommand(&mockTaskAPI{})
		require.NoError(t, root.cmd.PersistentFlags().Set("server-url", "http://localhost:3000"))
		assert.Equal(t, "http://localhost:3000", root.serverURL())
	})
}
