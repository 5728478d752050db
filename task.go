// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KindTask is the fixed kind discriminator carried by every Task.
const KindTask = "task"

// TaskStatus pairs a task's lifecycle state with optional context.
type TaskStatus struct {
	// State is the current lifecycle state.
	State TaskState `json:"state"`

	// Message optionally explains the current status in human-readable form.
	Message *Message `json:"message,omitzero"`

	// Timestamp is an optional ISO-8601 datetime string recording when
	// this status was reached.
	Timestamp string `json:"timestamp,omitzero"`
}

// Task represents a unit of work exchanged between agents.
type Task struct {
	// ID is the unique identifier of the task.
	ID string `json:"id"`

	// ContextID groups related tasks into one conversation.
	ContextID string `json:"contextId"`

	// Status is the current status of the task.
	Status TaskStatus `json:"status"`

	// History holds the most recent messages exchanged for the task.
	History []*Message `json:"history,omitzero"`

	// Artifacts holds outputs generated by the task.
	Artifacts []*Artifact `json:"artifacts,omitzero"`

	// Metadata holds optional extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Kind is always "task".
	Kind string `json:"kind"`
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (t Task) MarshalJSON() ([]byte, error) {
	type task Task
	t.Kind = KindTask
	return Marshal(task(t))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Task) UnmarshalJSON(data []byte) error {
	type task Task
	var raw task
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode task: %w", err)
	}
	*t = Task(raw)
	t.Kind = KindTask
	return nil
}

// Validate ensures the Task is valid.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	if t.ContextID == "" {
		return fmt.Errorf("task context ID cannot be empty")
	}
	for i, artifact := range t.Artifacts {
		if artifact == nil {
			return fmt.Errorf("task artifact at index %d cannot be nil", i)
		}
		if err := artifact.Validate(); err != nil {
			return fmt.Errorf("task artifact at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// NewTask creates a Task in the "submitted" state seeded with message as
// the first history entry. Task and context ids are taken from the
// message when present, otherwise generated.
func NewTask(message *Message) (*Task, error) {
	if message == nil {
		return nil, fmt.Errorf("message cannot be nil")
	}
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request message: %w", err)
	}

	taskID := message.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := message.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	return &Task{
		ID:        taskID,
		ContextID: contextID,
		Status: TaskStatus{
			State:     TaskStateSubmitted,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		History: []*Message{message},
		Kind:    KindTask,
	}, nil
}

// CompletedTask creates a Task in the "completed" state carrying the
// given artifacts and optional history.
func CompletedTask(taskID, contextID string, artifacts []*Artifact, history []*Message) (*Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task ID cannot be empty")
	}
	if contextID == "" {
		return nil, fmt.Errorf("context ID cannot be empty")
	}
	for i, artifact := range artifacts {
		if artifact == nil {
			return nil, fmt.Errorf("artifact at index %d cannot be nil", i)
		}
		if err := artifact.Validate(); err != nil {
			return nil, fmt.Errorf("artifact at index %d is invalid: %w", i, err)
		}
	}
	for i, message := range history {
		if message == nil {
			return nil, fmt.Errorf("history message at index %d cannot be nil", i)
		}
		if err := message.Validate(); err != nil {
			return nil, fmt.Errorf("history message at index %d is invalid: %w", i, err)
		}
	}

	return &Task{
		ID:        taskID,
		ContextID: contextID,
		Status: TaskStatus{
			State: TaskStateCompleted,
		},
		History:   history,
		Artifacts: artifacts,
		Kind:      KindTask,
	}, nil
}
