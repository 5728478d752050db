// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// PushNotificationAuthenticationInfo describes how an agent should
// authenticate when delivering push notifications.
type PushNotificationAuthenticationInfo struct {
	// Schemes lists the supported authentication schemes, e.g. "Basic"
	// or "Bearer".
	Schemes []string `json:"schemes"`
	// Credentials holds optional scheme-specific credential material.
	Credentials string `json:"credentials,omitzero"`
}

// PushNotificationConfig configures where and how task update
// notifications are delivered.
type PushNotificationConfig struct {
	// ID distinguishes multiple configurations per task. Defaults to
	// the task id when absent.
	ID string `json:"id,omitzero"`
	// URL is the endpoint to receive notifications.
	URL string `json:"url"`
	// Token is an optional value echoed back for verification.
	Token string `json:"token,omitzero"`
	// Authentication describes how to authenticate against URL.
	Authentication *PushNotificationAuthenticationInfo `json:"authentication,omitzero"`
}

// Validate checks the config for structural problems.
func (c *PushNotificationConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("push notification config must have a url")
	}
	return nil
}

// TaskPushNotificationConfig binds a push notification configuration to
// a task.
type TaskPushNotificationConfig struct {
	// TaskID is the task the configuration applies to.
	TaskID string `json:"taskId"`
	// PushNotificationConfig is the delivery configuration.
	PushNotificationConfig PushNotificationConfig `json:"pushNotificationConfig"`
}

// MessageSendConfiguration carries per-call preferences for
// message/send and message/stream.
type MessageSendConfiguration struct {
	// AcceptedOutputModes lists media types the client can handle.
	AcceptedOutputModes []string `json:"acceptedOutputModes,omitzero"`
	// HistoryLength bounds how much task history the response includes.
	HistoryLength *int `json:"historyLength,omitzero"`
	// PushNotificationConfig registers a notification endpoint for the
	// task created by this call.
	PushNotificationConfig *PushNotificationConfig `json:"pushNotificationConfig,omitzero"`
	// Blocking requests that the call wait for a terminal state.
	Blocking *bool `json:"blocking,omitzero"`
}

// MessageSendParams are the parameters of message/send and
// message/stream.
type MessageSendParams struct {
	// Message is the message to deliver to the agent.
	Message *Message `json:"message"`
	// Configuration holds optional per-call preferences.
	Configuration *MessageSendConfiguration `json:"configuration,omitzero"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate checks the params for structural problems.
func (p *MessageSendParams) Validate() error {
	if p.Message == nil {
		return fmt.Errorf("message/send params must have a message")
	}
	return p.Message.Validate()
}

// TaskQueryParams are the parameters of tasks/get, tasks/stream, and
// tasks/resubscribe.
type TaskQueryParams struct {
	// ID is the task to query.
	ID string `json:"id"`
	// HistoryLength bounds how much history the response includes.
	HistoryLength *int `json:"historyLength,omitzero"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// TaskIDParams are the parameters of methods addressing a task by id
// alone, such as tasks/cancel.
type TaskIDParams struct {
	// ID is the task to address.
	ID string `json:"id"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// ListTasksParams are the parameters of tasks/list. All filters are
// optional; an empty value requests the first page with server
// defaults.
type ListTasksParams struct {
	// ContextID restricts results to one conversation context.
	ContextID string `json:"contextId,omitzero"`
	// Status restricts results to tasks currently in this state.
	Status *TaskState `json:"status,omitzero"`
	// PageSize bounds the number of tasks returned.
	PageSize *int `json:"pageSize,omitzero"`
	// PageToken continues a previous listing.
	PageToken string `json:"pageToken,omitzero"`
	// HistoryLength bounds how much history each task includes.
	HistoryLength *int `json:"historyLength,omitzero"`
	// LastUpdatedAfter restricts results to tasks updated after this
	// time, in milliseconds since the Unix epoch.
	LastUpdatedAfter *int64 `json:"lastUpdatedAfter,omitzero"`
	// IncludeArtifacts requests that task artifacts be populated.
	IncludeArtifacts *bool `json:"includeArtifacts,omitzero"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// ListTasksResult is the result of tasks/list.
//
// NextPageToken deliberately breaks the optional-field convention: it is
// always emitted, and the empty string is the in-band signal that no
// further pages exist.
type ListTasksResult struct {
	// Tasks is the current page.
	Tasks []*Task `json:"tasks"`
	// TotalSize is the total number of tasks matching the filters.
	TotalSize int `json:"totalSize"`
	// PageSize is the page size that was applied.
	PageSize int `json:"pageSize"`
	// NextPageToken fetches the next page; "" means no more pages.
	NextPageToken string `json:"nextPageToken"`
}

// GetTaskPushNotificationConfigParams are the parameters of
// tasks/pushNotificationConfig/get.
type GetTaskPushNotificationConfigParams struct {
	// ID is the task whose configuration to fetch.
	ID string `json:"id"`
	// PushNotificationConfigID selects among multiple configurations.
	PushNotificationConfigID string `json:"pushNotificationConfigId,omitzero"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// ListTaskPushNotificationConfigParams are the parameters of
// tasks/pushNotificationConfig/list.
type ListTaskPushNotificationConfigParams struct {
	// ID is the task whose configurations to list.
	ID string `json:"id"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// DeleteTaskPushNotificationConfigParams are the parameters of
// tasks/pushNotificationConfig/delete.
type DeleteTaskPushNotificationConfigParams struct {
	// ID is the task whose configuration to delete.
	ID string `json:"id"`
	// PushNotificationConfigID selects the configuration to delete.
	PushNotificationConfigID string `json:"pushNotificationConfigId"`
	// Metadata holds extension values.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// A2ARequest is implemented by every typed request envelope and exposes
// the wire method name the envelope binds to.
type A2ARequest interface {
	// MethodName returns the RPC method of the request.
	MethodName() string
}

// SendMessageRequest is the envelope of message/send.
type SendMessageRequest struct {
	JSONRPCMessage
	Method string            `json:"method"`
	Params MessageSendParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (SendMessageRequest) MethodName() string { return MethodMessageSend }

// NewSendMessageRequest creates a message/send request.
func NewSendMessageRequest(id any, params MessageSendParams) *SendMessageRequest {
	return &SendMessageRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodMessageSend,
		Params:         params,
	}
}

// SendStreamingMessageRequest is the envelope of message/stream.
type SendStreamingMessageRequest struct {
	JSONRPCMessage
	Method string            `json:"method"`
	Params MessageSendParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (SendStreamingMessageRequest) MethodName() string { return MethodMessageStream }

// NewSendStreamingMessageRequest creates a message/stream request.
func NewSendStreamingMessageRequest(id any, params MessageSendParams) *SendStreamingMessageRequest {
	return &SendStreamingMessageRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodMessageStream,
		Params:         params,
	}
}

// GetTaskRequest is the envelope of tasks/get.
type GetTaskRequest struct {
	JSONRPCMessage
	Method string          `json:"method"`
	Params TaskQueryParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (GetTaskRequest) MethodName() string { return MethodTasksGet }

// NewGetTaskRequest creates a tasks/get request.
func NewGetTaskRequest(id any, params TaskQueryParams) *GetTaskRequest {
	return &GetTaskRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksGet,
		Params:         params,
	}
}

// ListTasksRequest is the envelope of tasks/list.
type ListTasksRequest struct {
	JSONRPCMessage
	Method string          `json:"method"`
	Params ListTasksParams `json:"params,omitzero"`
}

// MethodName implements [A2ARequest].
func (ListTasksRequest) MethodName() string { return MethodTasksList }

// NewListTasksRequest creates a tasks/list request.
func NewListTasksRequest(id any, params ListTasksParams) *ListTasksRequest {
	return &ListTasksRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksList,
		Params:         params,
	}
}

// CancelTaskRequest is the envelope of tasks/cancel.
type CancelTaskRequest struct {
	JSONRPCMessage
	Method string       `json:"method"`
	Params TaskIDParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (CancelTaskRequest) MethodName() string { return MethodTasksCancel }

// NewCancelTaskRequest creates a tasks/cancel request.
func NewCancelTaskRequest(id any, params TaskIDParams) *CancelTaskRequest {
	return &CancelTaskRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksCancel,
		Params:         params,
	}
}

// TaskResubscriptionRequest is the envelope of tasks/resubscribe.
type TaskResubscriptionRequest struct {
	JSONRPCMessage
	Method string          `json:"method"`
	Params TaskQueryParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (TaskResubscriptionRequest) MethodName() string { return MethodTasksResubscribe }

// NewTaskResubscriptionRequest creates a tasks/resubscribe request.
func NewTaskResubscriptionRequest(id any, params TaskQueryParams) *TaskResubscriptionRequest {
	return &TaskResubscriptionRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksResubscribe,
		Params:         params,
	}
}

// SetTaskPushNotificationConfigRequest is the envelope of
// tasks/pushNotificationConfig/set.
type SetTaskPushNotificationConfigRequest struct {
	JSONRPCMessage
	Method string                     `json:"method"`
	Params TaskPushNotificationConfig `json:"params"`
}

// MethodName implements [A2ARequest].
func (SetTaskPushNotificationConfigRequest) MethodName() string {
	return MethodTasksPushNotificationConfigSet
}

// NewSetTaskPushNotificationConfigRequest creates a
// tasks/pushNotificationConfig/set request.
func NewSetTaskPushNotificationConfigRequest(id any, params TaskPushNotificationConfig) *SetTaskPushNotificationConfigRequest {
	return &SetTaskPushNotificationConfigRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksPushNotificationConfigSet,
		Params:         params,
	}
}

// GetTaskPushNotificationConfigRequest is the envelope of
// tasks/pushNotificationConfig/get.
type GetTaskPushNotificationConfigRequest struct {
	JSONRPCMessage
	Method string                              `json:"method"`
	Params GetTaskPushNotificationConfigParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (GetTaskPushNotificationConfigRequest) MethodName() string {
	return MethodTasksPushNotificationConfigGet
}

// NewGetTaskPushNotificationConfigRequest creates a
// tasks/pushNotificationConfig/get request.
func NewGetTaskPushNotificationConfigRequest(id any, params GetTaskPushNotificationConfigParams) *GetTaskPushNotificationConfigRequest {
	return &GetTaskPushNotificationConfigRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksPushNotificationConfigGet,
		Params:         params,
	}
}

// ListTaskPushNotificationConfigRequest is the envelope of
// tasks/pushNotificationConfig/list.
type ListTaskPushNotificationConfigRequest struct {
	JSONRPCMessage
	Method string                               `json:"method"`
	Params ListTaskPushNotificationConfigParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (ListTaskPushNotificationConfigRequest) MethodName() string {
	return MethodTasksPushNotificationConfigList
}

// NewListTaskPushNotificationConfigRequest creates a
// tasks/pushNotificationConfig/list request.
func NewListTaskPushNotificationConfigRequest(id any, params ListTaskPushNotificationConfigParams) *ListTaskPushNotificationConfigRequest {
	return &ListTaskPushNotificationConfigRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksPushNotificationConfigList,
		Params:         params,
	}
}

// DeleteTaskPushNotificationConfigRequest is the envelope of
// tasks/pushNotificationConfig/delete.
type DeleteTaskPushNotificationConfigRequest struct {
	JSONRPCMessage
	Method string                                 `json:"method"`
	Params DeleteTaskPushNotificationConfigParams `json:"params"`
}

// MethodName implements [A2ARequest].
func (DeleteTaskPushNotificationConfigRequest) MethodName() string {
	return MethodTasksPushNotificationConfigDelete
}

// NewDeleteTaskPushNotificationConfigRequest creates a
// tasks/pushNotificationConfig/delete request.
func NewDeleteTaskPushNotificationConfigRequest(id any, params DeleteTaskPushNotificationConfigParams) *DeleteTaskPushNotificationConfigRequest {
	return &DeleteTaskPushNotificationConfigRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksPushNotificationConfigDelete,
		Params:         params,
	}
}

// GetAuthenticatedExtendedCardRequest is the envelope of
// agent/getAuthenticatedExtendedCard. The method takes no parameters.
type GetAuthenticatedExtendedCardRequest struct {
	JSONRPCMessage
	Method string `json:"method"`
}

// MethodName implements [A2ARequest].
func (GetAuthenticatedExtendedCardRequest) MethodName() string {
	return MethodAgentGetAuthenticatedExtendedCard
}

// NewGetAuthenticatedExtendedCardRequest creates an
// agent/getAuthenticatedExtendedCard request.
func NewGetAuthenticatedExtendedCardRequest(id any) *GetAuthenticatedExtendedCardRequest {
	return &GetAuthenticatedExtendedCardRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodAgentGetAuthenticatedExtendedCard,
	}
}
