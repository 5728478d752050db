// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

// ErrorCode is a JSON-RPC error code. The protocol defines a closed set
// of codes; every code outside the set maps to [CodeUnknownError].
type ErrorCode int64

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     ErrorCode = -32700
	CodeInvalidRequest ErrorCode = -32600
	CodeMethodNotFound ErrorCode = -32601
	CodeInvalidParams  ErrorCode = -32602
	CodeInternalError  ErrorCode = -32603
)

// A2A-specific error codes.
const (
	CodeUnknownError                           ErrorCode = -32000
	CodeTaskNotFound                           ErrorCode = -32001
	CodeTaskNotCancelable                      ErrorCode = -32002
	CodePushNotificationNotSupported           ErrorCode = -32003
	CodeUnsupportedOperation                   ErrorCode = -32004
	CodeContentTypeNotSupported                ErrorCode = -32005
	CodeInvalidAgentResponse                   ErrorCode = -32006
	CodeAuthenticatedExtendedCardNotConfigured ErrorCode = -32007
)

var errorDescriptions = map[ErrorCode]string{
	CodeParseError:     "Invalid JSON payload",
	CodeInvalidRequest: "Request payload validation error",
	CodeMethodNotFound: "Method not found",
	CodeInvalidParams:  "Invalid parameters",
	CodeInternalError:  "Internal error",

	CodeUnknownError:                           "Unknown error",
	CodeTaskNotFound:                           "Task not found",
	CodeTaskNotCancelable:                      "Task cannot be canceled",
	CodePushNotificationNotSupported:           "Push Notification is not supported",
	CodeUnsupportedOperation:                   "This operation is not supported",
	CodeContentTypeNotSupported:                "Incompatible content types",
	CodeInvalidAgentResponse:                   "Invalid agent response",
	CodeAuthenticatedExtendedCardNotConfigured: "Authenticated Extended Card is not configured",
}

// KindOf maps an arbitrary wire code into the registry. Codes without a
// registered meaning collapse to [CodeUnknownError]; the mapping is
// total and never fails.
func KindOf(code int64) ErrorCode {
	c := ErrorCode(code)
	if _, ok := errorDescriptions[c]; ok {
		return c
	}
	return CodeUnknownError
}

// Registered reports whether the code belongs to the closed set.
func (c ErrorCode) Registered() bool {
	_, ok := errorDescriptions[c]
	return ok
}

// Description returns the canonical human-readable description of the
// code, or the unknown-error description for unregistered codes.
func (c ErrorCode) Description() string {
	if d, ok := errorDescriptions[c]; ok {
		return d
	}
	return errorDescriptions[CodeUnknownError]
}

func newError(code ErrorCode, data any) *JSONRPCError {
	return &JSONRPCError{Code: code, Message: code.Description(), Data: data}
}

// NewParseError creates a [JSONRPCError] for unparseable request payloads.
func NewParseError(data any) *JSONRPCError { return newError(CodeParseError, data) }

// NewInvalidRequestError creates a [JSONRPCError] for malformed requests.
func NewInvalidRequestError(data any) *JSONRPCError { return newError(CodeInvalidRequest, data) }

// NewMethodNotFoundError creates a [JSONRPCError] for unknown methods.
func NewMethodNotFoundError() *JSONRPCError { return newError(CodeMethodNotFound, nil) }

// NewInvalidParamsError creates a [JSONRPCError] for invalid method parameters.
func NewInvalidParamsError(data any) *JSONRPCError { return newError(CodeInvalidParams, data) }

// NewInternalError creates a [JSONRPCError] for internal failures.
func NewInternalError(data any) *JSONRPCError { return newError(CodeInternalError, data) }

// NewUnknownError creates a [JSONRPCError] with the fallback code.
func NewUnknownError(data any) *JSONRPCError { return newError(CodeUnknownError, data) }

// NewTaskNotFoundError creates a [JSONRPCError] for unknown task ids.
func NewTaskNotFoundError(data any) *JSONRPCError { return newError(CodeTaskNotFound, data) }

// NewTaskNotCancelableError creates a [JSONRPCError] for tasks in a
// state that does not permit cancellation.
func NewTaskNotCancelableError(data any) *JSONRPCError { return newError(CodeTaskNotCancelable, data) }

// NewPushNotificationNotSupportedError creates a [JSONRPCError] for
// agents without push notification support.
func NewPushNotificationNotSupportedError() *JSONRPCError {
	return newError(CodePushNotificationNotSupported, nil)
}

// NewUnsupportedOperationError creates a [JSONRPCError] for operations
// the agent does not implement.
func NewUnsupportedOperationError() *JSONRPCError { return newError(CodeUnsupportedOperation, nil) }

// NewContentTypeNotSupportedError creates a [JSONRPCError] for media
// type mismatches.
func NewContentTypeNotSupportedError() *JSONRPCError {
	return newError(CodeContentTypeNotSupported, nil)
}

// NewInvalidAgentResponseError creates a [JSONRPCError] for malformed
// agent responses.
func NewInvalidAgentResponseError(data any) *JSONRPCError {
	return newError(CodeInvalidAgentResponse, data)
}

// NewAuthenticatedExtendedCardNotConfiguredError creates a
// [JSONRPCError] for agents without an authenticated extended card.
func NewAuthenticatedExtendedCardNotConfiguredError() *JSONRPCError {
	return newError(CodeAuthenticatedExtendedCardNotConfigured, nil)
}
