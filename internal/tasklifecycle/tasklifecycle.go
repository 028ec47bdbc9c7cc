// Package tasklifecycle drives an mcptype.Task through its status
// transitions using internal/fsm, so a server handling the tasks/* methods
// never has to hand-check whether e.g. a cancel is valid from the task's
// current status.
package tasklifecycle

// file: internal/tasklifecycle/tasklifecycle.go

import (
	"context"

	"github.com/mcpcore/mcp/internal/fsm"
	"github.com/mcpcore/mcp/internal/logging"
	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
)

// Events a task can be driven through. Unlike the statuses themselves,
// these name the transition, not the destination, since one event (such as
// "cancel") can fire from more than one status.
const (
	EventStart        fsm.Event = "start"
	EventRequestInput fsm.Event = "request_input"
	EventResume       fsm.Event = "resume"
	EventComplete     fsm.Event = "complete"
	EventFail         fsm.Event = "fail"
	EventCancel       fsm.Event = "cancel"
)

func taskState(s mcptype.TaskStatus) fsm.State { return fsm.State(s) }

// Machine wraps an mcptype.Task with the fsm.FSM that governs which status
// transitions are legal from its current status.
type Machine struct {
	task *mcptype.Task
	fsm  fsm.FSM
}

// New builds a Machine for task, constructing and building the underlying
// FSM from task's current Status so a task resumed from storage starts in
// the right place rather than always at pending.
func New(task *mcptype.Task, logger logging.Logger) (*Machine, error) {
	m := &Machine{task: task}
	m.fsm = fsm.NewFSM(taskState(task.Status), logger)

	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{taskState(mcptype.TaskStatusPending)},
		Event: EventStart, To: taskState(mcptype.TaskStatusWorking),
	})
	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{taskState(mcptype.TaskStatusPending), taskState(mcptype.TaskStatusWorking)},
		Event: EventRequestInput, To: taskState(mcptype.TaskStatusInputRequired),
	})
	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{taskState(mcptype.TaskStatusInputRequired)},
		Event: EventResume, To: taskState(mcptype.TaskStatusWorking),
	})
	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{taskState(mcptype.TaskStatusWorking)},
		Event: EventComplete, To: taskState(mcptype.TaskStatusCompleted),
	})
	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{taskState(mcptype.TaskStatusWorking), taskState(mcptype.TaskStatusInputRequired)},
		Event: EventFail, To: taskState(mcptype.TaskStatusFailed),
	})
	m.fsm.AddTransition(fsm.Transition{
		From: []fsm.State{
			taskState(mcptype.TaskStatusPending),
			taskState(mcptype.TaskStatusInputRequired),
			taskState(mcptype.TaskStatusWorking),
		},
		Event: EventCancel, To: taskState(mcptype.TaskStatusCancelled),
	})

	if err := m.fsm.Build(); err != nil {
		return nil, mcperror.NewConstructionError(err.Error(), map[string]interface{}{"taskId": task.TaskID})
	}
	return m, nil
}

// Status returns the task's current status.
func (m *Machine) Status() mcptype.TaskStatus {
	return mcptype.TaskStatus(m.fsm.CurrentState())
}

// Task returns the underlying task, with Status kept in sync with the FSM.
func (m *Machine) Task() *mcptype.Task {
	m.task.Status = m.Status()
	return m.task
}

// CanCancel reports whether the task is presently in a cancellable status,
// for a tasks/cancel handler to short-circuit before attempting the event.
func (m *Machine) CanCancel() bool {
	return m.fsm.CanTransition(EventCancel)
}

// fire drives the underlying FSM and, on success, updates the task's
// StatusMessage to reflect the transition just taken.
func (m *Machine) fire(ctx context.Context, event fsm.Event, statusMessage string) error {
	if err := m.fsm.Transition(ctx, event, statusMessage); err != nil {
		return mcperror.ErrorWithDetails(err, mcperror.CategoryDispatch, mcperror.CodeInvalidRequest,
			map[string]interface{}{"taskId": m.task.TaskID, "event": string(event), "status": string(m.Status())})
	}
	m.task.Status = m.Status()
	m.task.StatusMessage = statusMessage
	return nil
}

// Start moves a pending task into working.
func (m *Machine) Start(ctx context.Context) error {
	return m.fire(ctx, EventStart, "")
}

// RequestInput moves the task into input_required, carrying the prompt the
// peer should see as statusMessage.
func (m *Machine) RequestInput(ctx context.Context, statusMessage string) error {
	return m.fire(ctx, EventRequestInput, statusMessage)
}

// Resume moves an input_required task back into working once the caller has
// supplied the requested input.
func (m *Machine) Resume(ctx context.Context) error {
	return m.fire(ctx, EventResume, "")
}

// Complete moves a working task into completed.
func (m *Machine) Complete(ctx context.Context) error {
	return m.fire(ctx, EventComplete, "")
}

// Fail moves the task into failed, carrying reason as statusMessage.
func (m *Machine) Fail(ctx context.Context, reason string) error {
	return m.fire(ctx, EventFail, reason)
}

// Cancel moves the task into cancelled, per tasks/cancel.
func (m *Machine) Cancel(ctx context.Context) error {
	return m.fire(ctx, EventCancel, "")
}
