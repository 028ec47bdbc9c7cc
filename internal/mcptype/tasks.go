// file: internal/mcptype/tasks.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// TaskStatus is a task's position in its lifecycle, driven by
// internal/tasklifecycle's state machine.
type TaskStatus string

const (
	TaskStatusPending       TaskStatus = "pending"
	TaskStatusInputRequired TaskStatus = "input_required"
	TaskStatusWorking       TaskStatus = "working"
	TaskStatusCompleted     TaskStatus = "completed"
	TaskStatusFailed        TaskStatus = "failed"
	TaskStatusCancelled     TaskStatus = "cancelled"
)

// Task is a long-running, pollable unit of work created as the augmented
// result of some other request (tool call, sampling request, etc).
type Task struct {
	TaskID        string     `json:"taskId"`
	Status        TaskStatus `json:"status"`
	StatusMessage string     `json:"statusMessage,omitempty"`
	CreatedAt     string     `json:"createdAt"`
	Meta          Meta       `json:"_meta,omitempty"`
}

// GetTaskRequest polls a task's current status.
type GetTaskRequest struct {
	TaskID string `json:"taskId"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (GetTaskRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (GetTaskRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodTasksGet) }

// GetTaskResult is the current snapshot of a polled task.
type GetTaskResult struct {
	Task Task `json:"task"`
}

func (GetTaskResult) mcpServerResult() {}

// GetTaskResultRequest fetches the terminal result of a completed task.
type GetTaskResultRequest struct {
	TaskID string `json:"taskId"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (GetTaskResultRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (GetTaskResultRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodTasksResult) }

// GetTaskResultResult carries a completed task's underlying operation result.
type GetTaskResultResult struct {
	Result map[string]interface{} `json:"result"`
}

func (GetTaskResultResult) mcpServerResult() {}

// ListTasksRequest lists tasks the server currently knows about.
type ListTasksRequest struct {
	Cursor string `json:"cursor,omitempty"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (ListTasksRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ListTasksRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodTasksList) }

// ListTasksResult is the paginated task catalog.
type ListTasksResult struct {
	Tasks      []Task `json:"tasks"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func (ListTasksResult) mcpServerResult() {}

// CancelTaskRequest asks the server to cancel a running task.
type CancelTaskRequest struct {
	TaskID string `json:"taskId"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (CancelTaskRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (CancelTaskRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodTasksCancel) }

// CancelTaskResult confirms the task's post-cancellation status.
type CancelTaskResult struct {
	Task Task `json:"task"`
}

func (CancelTaskResult) mcpServerResult() {}

// TaskStatusNotification announces a task's status transition without the
// client having to poll GetTaskRequest.
type TaskStatusNotification struct {
	Task Task `json:"task"`
}

func (TaskStatusNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (TaskStatusNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsTasksStatus)
}
