// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// A2A RPC method names.
const (
	// MethodMessageSend is the method name for sending a message.
	MethodMessageSend = "message/send"
	// MethodMessageStream is the method name for sending a message and streaming updates.
	MethodMessageStream = "message/stream"
	// MethodTasksGet is the method name for getting a task.
	MethodTasksGet = "tasks/get"
	// MethodTasksStream is the method name for streaming updates of a task.
	MethodTasksStream = "tasks/stream"
	// MethodTasksList is the method name for listing tasks.
	MethodTasksList = "tasks/list"
	// MethodTasksCancel is the method name for canceling a task.
	MethodTasksCancel = "tasks/cancel"
	// MethodTasksPushNotificationConfigSet is the method name for setting a push notification configuration.
	MethodTasksPushNotificationConfigSet = "tasks/pushNotificationConfig/set"
	// MethodTasksPushNotificationConfigGet is the method name for getting a push notification configuration.
	MethodTasksPushNotificationConfigGet = "tasks/pushNotificationConfig/get"
	// MethodTasksPushNotificationConfigList is the method name for listing push notification configurations.
	MethodTasksPushNotificationConfigList = "tasks/pushNotificationConfig/list"
	// MethodTasksPushNotificationConfigDelete is the method name for deleting a push notification configuration.
	MethodTasksPushNotificationConfigDelete = "tasks/pushNotificationConfig/delete"
	// MethodTasksResubscribe is the method name for resubscribing to task updates.
	MethodTasksResubscribe = "tasks/resubscribe"
	// MethodAgentGetAuthenticatedExtendedCard is the method name for fetching the authenticated extended agent card.
	MethodAgentGetAuthenticatedExtendedCard = "agent/getAuthenticatedExtendedCard"
)

// ID is the identifier of a JSON-RPC message: a string, a number, an
// explicit null, or absent. The zero ID encodes as an omitted member.
// The null ID from [NullID] encodes as the JSON null; JSON-RPC 2.0
// mandates it on error responses to unparseable or id-less requests.
type ID struct {
	value any // string, int64, float64, or nil
	null  bool
}

// NewID creates an ID from a string or numeric value. An [ID] argument
// is returned unchanged.
func NewID(v any) ID {
	switch n := v.(type) {
	case ID:
		return n
	case int:
		return ID{value: int64(n)}
	case int32:
		return ID{value: int64(n)}
	case float64:
		if n == float64(int64(n)) {
			return ID{value: int64(n)}
		}
		return ID{value: n}
	default:
		return ID{value: v}
	}
}

// NullID returns the explicit null ID. Unlike the zero ID it survives
// encoding as the "id":null member.
func NullID() ID { return ID{null: true} }

// IsZero reports whether the ID is absent. The explicit null ID is not
// zero, so omitzero keeps it on the wire.
func (id ID) IsZero() bool { return id.value == nil && !id.null }

// IsNull reports whether the ID is the explicit null.
func (id ID) IsNull() bool { return id.null }

// Value returns the underlying string, int64, float64, or nil.
func (id ID) Value() any { return id.value }

// String renders the ID for correlation and logging.
func (id ID) String() string {
	switch v := id.value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		if id.null {
			return "null"
		}
		return "<nil>"
	}
}

// MarshalJSON implements [json.Marshaler].
func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == nil {
		return []byte("null"), nil
	}
	return Marshal(id.value)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	var v any
	if err := Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	switch v.(type) {
	case string, float64:
		*id = NewID(v)
		return nil
	case nil:
		*id = NullID()
		return nil
	default:
		return fmt.Errorf("id must be a string, number, or null, got %T", v)
	}
}

// JSONRPCMessage is the base structure of all JSON-RPC 2.0 messages.
type JSONRPCMessage struct {
	// JSONRPC is the protocol version, always "2.0".
	JSONRPC string `json:"jsonrpc"`

	// ID correlates a request with its response.
	ID ID `json:"id,omitzero"`
}

// NewJSONRPCMessage creates a new [JSONRPCMessage] with the given id.
func NewJSONRPCMessage(id any) JSONRPCMessage {
	return JSONRPCMessage{
		JSONRPC: "2.0",
		ID:      NewID(id),
	}
}

// JSONRPCRequest represents a JSON-RPC 2.0 request.
type JSONRPCRequest struct {
	JSONRPCMessage

	// Method identifies the operation to perform.
	Method string `json:"method"`
	// Params holds the raw, method-specific parameters.
	Params jsontext.Value `json:"params,omitzero"`
}

// UnmarshalJSON implements [json.Unmarshaler]. A params member holding
// an explicit null is normalized to an absent one.
func (r *JSONRPCRequest) UnmarshalJSON(data []byte) error {
	type request JSONRPCRequest
	var raw request
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if string(raw.Params) == "null" {
		raw.Params = nil
	}
	*r = JSONRPCRequest(raw)
	return nil
}

// JSONRPCError represents a JSON-RPC 2.0 error object. It travels as
// data inside a structurally valid response; receiving one is not a
// decode failure.
type JSONRPCError struct {
	// Code is the numeric error code, bound to the registry in errors.go.
	Code ErrorCode `json:"code"`
	// Message is a short description of the error.
	Message string `json:"message"`
	// Data holds optional additional error details.
	Data any `json:"data,omitzero"`
}

// Error implements the error interface.
func (e *JSONRPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", int64(e.Code), e.Message)
}

// JSONRPCResponse represents a JSON-RPC 2.0 response. The payload is the
// untagged union of a success carrying Result and a failure carrying
// Error; exactly one of the two members is present on the wire.
type JSONRPCResponse struct {
	JSONRPCMessage

	// Result is the raw result value of a successful call. It may be
	// the JSON null.
	Result jsontext.Value
	// Error is set instead of Result when the call failed.
	Error *JSONRPCError
}

// NewJSONRPCResponse creates a successful response wrapping the encoded
// result.
func NewJSONRPCResponse(id any, result any) (*JSONRPCResponse, error) {
	data, err := Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &JSONRPCResponse{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Result:         jsontext.Value(data),
	}, nil
}

// NewJSONRPCErrorResponse creates a failed response carrying rpcErr.
func NewJSONRPCErrorResponse(id any, rpcErr *JSONRPCError) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Error:          rpcErr,
	}
}

// MarshalJSON implements [json.Marshaler]. The in-memory state selects
// the variant: a set Error encodes the failure shape, anything else the
// success shape with an explicit result member.
func (r JSONRPCResponse) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return Marshal(struct {
			JSONRPCMessage
			Error *JSONRPCError `json:"error"`
		}{r.JSONRPCMessage, r.Error})
	}
	result := r.Result
	if len(result) == 0 {
		result = jsontext.Value("null")
	}
	return Marshal(struct {
		JSONRPCMessage
		Result jsontext.Value `json:"result"`
	}{r.JSONRPCMessage, result})
}

// UnmarshalJSON implements [json.Unmarshaler]. Variants are tried in
// declared order, result before error; the first whose required member
// is present wins even if the object spuriously carries both. An object
// with neither member fails with [ErrNoVariantMatched].
func (r *JSONRPCResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		JSONRPC string         `json:"jsonrpc"`
		ID      ID             `json:"id"`
		Result  jsontext.Value `json:"result"`
		Error   jsontext.Value `json:"error"`
	}
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	members, err := objectMembers(data)
	if err != nil {
		return err
	}

	*r = JSONRPCResponse{
		JSONRPCMessage: JSONRPCMessage{JSONRPC: raw.JSONRPC, ID: raw.ID},
	}
	switch {
	case hasMember(members, "result"):
		r.Result = raw.Result
		if len(r.Result) == 0 {
			r.Result = jsontext.Value("null")
		}
	case present(members, "error"):
		var rpcErr JSONRPCError
		if err := Unmarshal(raw.Error, &rpcErr); err != nil {
			return fmt.Errorf("decode error member: %w", err)
		}
		r.Error = &rpcErr
	default:
		return fmt.Errorf("response payload: %w", ErrNoVariantMatched)
	}
	return nil
}

// hasMember reports raw key presence. A null result is still a success
// payload under JSON-RPC 2.0, so the success variant tests key
// existence rather than non-nullness.
func hasMember(members map[string]jsontext.Value, key string) bool {
	_, ok := members[key]
	return ok
}

// DecodeResult decodes a successful response's result into v.
func (r *JSONRPCResponse) DecodeResult(v any) error {
	if r.Error != nil {
		return fmt.Errorf("response is an error: %w", r.Error)
	}
	if len(r.Result) == 0 {
		return fmt.Errorf("response has no result")
	}
	return Unmarshal(r.Result, v)
}
