package tasklifecycle

// file: internal/tasklifecycle/tasklifecycle_test.go

import (
	"context"
	"testing"

	"github.com/mcpcore/mcp/internal/logging"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(status mcptype.TaskStatus) *mcptype.Task {
	return &mcptype.Task{TaskID: "t-1", Status: status, CreatedAt: "2026-07-30T00:00:00Z"}
}

func TestMachine_HappyPath(t *testing.T) {
	task := newTask(mcptype.TaskStatusPending)
	m, err := New(task, logging.GetNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, mcptype.TaskStatusPending, m.Status())

	require.NoError(t, m.Start(context.Background()))
	assert.Equal(t, mcptype.TaskStatusWorking, m.Status())

	require.NoError(t, m.Complete(context.Background()))
	assert.Equal(t, mcptype.TaskStatusCompleted, m.Status())
	assert.Equal(t, mcptype.TaskStatusCompleted, m.Task().Status)
}

func TestMachine_InputRequiredRoundTrip(t *testing.T) {
	task := newTask(mcptype.TaskStatusPending)
	m, err := New(task, logging.GetNoopLogger())
	require.NoError(t, err)

	require.NoError(t, m.RequestInput(context.Background(), "need a file path"))
	assert.Equal(t, mcptype.TaskStatusInputRequired, m.Status())
	assert.Equal(t, "need a file path", m.Task().StatusMessage)

	require.NoError(t, m.Resume(context.Background()))
	assert.Equal(t, mcptype.TaskStatusWorking, m.Status())

	require.NoError(t, m.Fail(context.Background(), "boom"))
	assert.Equal(t, mcptype.TaskStatusFailed, m.Status())
	assert.Equal(t, "boom", m.Task().StatusMessage)
}

func TestMachine_CancelFromAnyLiveState(t *testing.T) {
	for _, start := range []mcptype.TaskStatus{
		mcptype.TaskStatusPending, mcptype.TaskStatusInputRequired, mcptype.TaskStatusWorking,
	} {
		task := newTask(start)
		m, err := New(task, logging.GetNoopLogger())
		require.NoError(t, err)
		require.True(t, m.CanCancel(), "expected cancel to be valid from %s", start)
		require.NoError(t, m.Cancel(context.Background()))
		assert.Equal(t, mcptype.TaskStatusCancelled, m.Status())
	}
}

func TestMachine_CannotCancelTerminalState(t *testing.T) {
	task := newTask(mcptype.TaskStatusCompleted)
	m, err := New(task, logging.GetNoopLogger())
	require.NoError(t, err)
	assert.False(t, m.CanCancel())
	assert.Error(t, m.Cancel(context.Background()))
}

func TestMachine_CompleteRequiresWorking(t *testing.T) {
	task := newTask(mcptype.TaskStatusPending)
	m, err := New(task, logging.GetNoopLogger())
	require.NoError(t, err)
	assert.Error(t, m.Complete(context.Background()))
	assert.Equal(t, mcptype.TaskStatusPending, m.Status())
}
