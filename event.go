// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
)

// Streaming event kind discriminators.
const (
	KindStatusUpdate   = "status-update"
	KindArtifactUpdate = "artifact-update"
)

// TaskStatusUpdateEvent notifies the client of a change in a task's
// status during streaming.
type TaskStatusUpdateEvent struct {
	// TaskID is the id of the task that was updated.
	TaskID string `json:"taskId"`

	// ContextID is the context the task belongs to.
	ContextID string `json:"contextId"`

	// Kind is always "status-update".
	Kind string `json:"kind"`

	// Status is the new status of the task.
	Status TaskStatus `json:"status"`

	// Final is true when this is the last event of the stream for this
	// interaction.
	Final bool `json:"final"`

	// Metadata holds optional extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (e TaskStatusUpdateEvent) MarshalJSON() ([]byte, error) {
	type event TaskStatusUpdateEvent
	e.Kind = KindStatusUpdate
	return Marshal(event(e))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *TaskStatusUpdateEvent) UnmarshalJSON(data []byte) error {
	type event TaskStatusUpdateEvent
	var raw event
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode status update event: %w", err)
	}
	*e = TaskStatusUpdateEvent(raw)
	e.Kind = KindStatusUpdate
	return nil
}

// TaskArtifactUpdateEvent notifies the client that the task generated or
// updated an artifact during streaming.
type TaskArtifactUpdateEvent struct {
	// TaskID is the id of the task this artifact belongs to.
	TaskID string `json:"taskId"`

	// ContextID is the context the task belongs to.
	ContextID string `json:"contextId"`

	// Kind is always "artifact-update".
	Kind string `json:"kind"`

	// Artifact is the generated or updated artifact.
	Artifact *Artifact `json:"artifact"`

	// Append, when true, appends the artifact's parts to a previously
	// sent artifact with the same id.
	Append *bool `json:"append,omitzero"`

	// LastChunk, when true, marks the final chunk of the artifact.
	LastChunk *bool `json:"lastChunk,omitzero"`

	// Metadata holds optional extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (e TaskArtifactUpdateEvent) MarshalJSON() ([]byte, error) {
	type event TaskArtifactUpdateEvent
	e.Kind = KindArtifactUpdate
	return Marshal(event(e))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *TaskArtifactUpdateEvent) UnmarshalJSON(data []byte) error {
	type event TaskArtifactUpdateEvent
	var raw event
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode artifact update event: %w", err)
	}
	*e = TaskArtifactUpdateEvent(raw)
	e.Kind = KindArtifactUpdate
	return nil
}

// SendMessageResult is the result of message/send: either a completed
// exchange's Message or a Task tracking longer-running work. Exactly one
// field is set.
type SendMessageResult struct {
	Message *Message
	Task    *Task
}

// MarshalJSON implements [json.Marshaler] for the result union.
func (r SendMessageResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Message != nil:
		return Marshal(r.Message)
	case r.Task != nil:
		return Marshal(r.Task)
	default:
		return nil, fmt.Errorf("send message result has no variant set")
	}
}

// UnmarshalJSON implements [json.Unmarshaler], dispatching on the
// result's kind discriminator.
func (r *SendMessageResult) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode send message result kind: %w", err)
	}

	*r = SendMessageResult{}
	switch probe.Kind {
	case KindMessage:
		var m Message
		if err := Unmarshal(data, &m); err != nil {
			return err
		}
		r.Message = &m
	case KindTask:
		var t Task
		if err := Unmarshal(data, &t); err != nil {
			return err
		}
		r.Task = &t
	default:
		return fmt.Errorf("send message result kind %q: %w", probe.Kind, ErrUnknownDiscriminator)
	}
	return nil
}

// StreamingMessageResult is one event of a message/stream,
// tasks/stream, or tasks/resubscribe response sequence. Exactly one
// field is set.
type StreamingMessageResult struct {
	Message        *Message
	Task           *Task
	StatusUpdate   *TaskStatusUpdateEvent
	ArtifactUpdate *TaskArtifactUpdateEvent
}

// MarshalJSON implements [json.Marshaler] for the event union.
func (r StreamingMessageResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Message != nil:
		return Marshal(r.Message)
	case r.Task != nil:
		return Marshal(r.Task)
	case r.StatusUpdate != nil:
		return Marshal(r.StatusUpdate)
	case r.ArtifactUpdate != nil:
		return Marshal(r.ArtifactUpdate)
	default:
		return nil, fmt.Errorf("streaming message result has no variant set")
	}
}

// UnmarshalJSON implements [json.Unmarshaler], dispatching on the
// event's kind discriminator.
func (r *StreamingMessageResult) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode streaming result kind: %w", err)
	}

	*r = StreamingMessageResult{}
	switch probe.Kind {
	case KindMessage:
		var m Message
		if err := Unmarshal(data, &m); err != nil {
			return err
		}
		r.Message = &m
	case KindTask:
		var t Task
		if err := Unmarshal(data, &t); err != nil {
			return err
		}
		r.Task = &t
	case KindStatusUpdate:
		var e TaskStatusUpdateEvent
		if err := Unmarshal(data, &e); err != nil {
			return err
		}
		r.StatusUpdate = &e
	case KindArtifactUpdate:
		var e TaskArtifactUpdateEvent
		if err := Unmarshal(data, &e); err != nil {
			return err
		}
		r.ArtifactUpdate = &e
	default:
		return fmt.Errorf("streaming result kind %q: %w", probe.Kind, ErrUnknownDiscriminator)
	}
	return nil
}
