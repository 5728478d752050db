// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a provides the wire-level object model for the Agent-to-Agent
// (A2A) protocol: agent cards, messages, tasks, streaming events, and the
// JSON-RPC 2.0 envelopes that carry them, together with the JSON encoding
// rules that make independent implementations byte-compatible.
//
// The package performs no network I/O and executes no tasks. Every
// encode/decode operation is a pure function; decoded values are never
// mutated by the package after construction and may be shared across
// goroutines without synchronization.
package a2a

// Version is the version of the A2A protocol this package implements.
const Version = "0.3.0"

// TransportProtocol identifies a transport an agent endpoint speaks.
type TransportProtocol string

const (
	// TransportProtocolJSONRPC is JSON-RPC 2.0 over HTTP.
	TransportProtocolJSONRPC TransportProtocol = "JSONRPC"

	// TransportProtocolGRPC is gRPC over HTTP/2.
	TransportProtocolGRPC TransportProtocol = "GRPC"

	// TransportProtocolHTTPJSON is REST-style HTTP with JSON payloads.
	TransportProtocolHTTPJSON TransportProtocol = "HTTP+JSON"
)

// ParseTransportProtocol maps a wire token to a [TransportProtocol].
// Unrecognized tokens map to [TransportProtocolJSONRPC]; decoding a
// transport never fails, so cards from newer protocol revisions remain
// readable.
func ParseTransportProtocol(s string) TransportProtocol {
	switch s {
	case string(TransportProtocolGRPC):
		return TransportProtocolGRPC
	case string(TransportProtocolHTTPJSON):
		return TransportProtocolHTTPJSON
	default:
		return TransportProtocolJSONRPC
	}
}

// UnmarshalJSON implements [json.Unmarshaler] with the lenient token
// mapping of [ParseTransportProtocol].
func (t *TransportProtocol) UnmarshalJSON(data []byte) error {
	s, err := unmarshalToken(data)
	if err != nil {
		return err
	}
	*t = ParseTransportProtocol(s)
	return nil
}

// TaskState represents the lifecycle state of a Task.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been submitted and is awaiting execution.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the agent is actively working on the task.
	TaskStateWorking TaskState = "working"

	// TaskStateInputRequired indicates the task is paused waiting for user input.
	TaskStateInputRequired TaskState = "input-required"

	// TaskStateCompleted indicates the task finished successfully.
	TaskStateCompleted TaskState = "completed"

	// TaskStateCanceled indicates the task was canceled.
	TaskStateCanceled TaskState = "canceled"

	// TaskStateFailed indicates the task failed during execution.
	TaskStateFailed TaskState = "failed"

	// TaskStateRejected indicates the agent rejected the task before starting it.
	TaskStateRejected TaskState = "rejected"

	// TaskStateAuthRequired indicates the task requires authentication to proceed.
	TaskStateAuthRequired TaskState = "auth-required"

	// TaskStateUnknown indicates an unknown or indeterminate state.
	TaskStateUnknown TaskState = "unknown"
)

// ParseTaskState maps a wire token to a [TaskState]. Unrecognized tokens
// map to [TaskStateUnknown] rather than failing the decode.
func ParseTaskState(s string) TaskState {
	switch TaskState(s) {
	case TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired,
		TaskStateCompleted, TaskStateCanceled, TaskStateFailed,
		TaskStateRejected, TaskStateAuthRequired:
		return TaskState(s)
	default:
		return TaskStateUnknown
	}
}

// UnmarshalJSON implements [json.Unmarshaler] with the lenient token
// mapping of [ParseTaskState].
func (s *TaskState) UnmarshalJSON(data []byte) error {
	tok, err := unmarshalToken(data)
	if err != nil {
		return err
	}
	*s = ParseTaskState(tok)
	return nil
}

// Terminal reports whether the state is final for the task lifecycle.
func (s TaskState) Terminal() bool {
	switch s {
	case TaskStateCompleted, TaskStateCanceled, TaskStateFailed, TaskStateRejected:
		return true
	default:
		return false
	}
}

// Role represents the originator of a message turn.
type Role string

// Role constants for message senders.
const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// ParseRole maps a wire token to a [Role]. Unrecognized tokens map to
// [RoleUser].
func ParseRole(s string) Role {
	if Role(s) == RoleAgent {
		return RoleAgent
	}
	return RoleUser
}

// UnmarshalJSON implements [json.Unmarshaler] with the lenient token
// mapping of [ParseRole].
func (r *Role) UnmarshalJSON(data []byte) error {
	tok, err := unmarshalToken(data)
	if err != nil {
		return err
	}
	*r = ParseRole(tok)
	return nil
}
