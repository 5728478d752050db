// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
)

// KindMessage is the fixed kind discriminator carried by every Message.
const KindMessage = "message"

// Message represents a single communication turn between a client and an
// agent.
type Message struct {
	// Role identifies the sender, "user" or "agent".
	Role Role `json:"role"`

	// Parts is the ordered content of the turn.
	Parts []Part `json:"parts"`

	// Metadata holds optional extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Extensions lists URIs of protocol extensions relevant to this message.
	Extensions []string `json:"extensions,omitzero"`

	// ReferenceTaskIDs lists tasks this message refers to for context.
	ReferenceTaskIDs []string `json:"referenceTaskIds,omitzero"`

	// MessageID is the unique identifier of the message.
	MessageID string `json:"messageId"`

	// TaskID optionally binds the message to a task.
	TaskID string `json:"taskId,omitzero"`

	// ContextID optionally binds the message to a conversation context.
	ContextID string `json:"contextId,omitzero"`

	// Kind is always "message".
	Kind string `json:"kind"`
}

// NewMessage creates a Message with a generated message id and the kind
// discriminator set.
func NewMessage(role Role, parts []Part) *Message {
	return &Message{
		Role:      role,
		Parts:     parts,
		MessageID: uuid.NewString(),
		Kind:      KindMessage,
	}
}

// NewAgentTextMessage creates an agent message containing a single
// [TextPart]. Empty taskID and contextID are omitted from the encoding.
func NewAgentTextMessage(text, taskID, contextID string) *Message {
	m := NewMessage(RoleAgent, []Part{NewTextPart(text)})
	m.TaskID = taskID
	m.ContextID = contextID
	return m
}

// Validate ensures the Message is valid.
func (m Message) Validate() error {
	if m.Role != RoleAgent && m.Role != RoleUser {
		return fmt.Errorf("invalid message role: %s", m.Role)
	}
	if m.MessageID == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("message must contain at least one part")
	}
	for i, part := range m.Parts {
		if part == nil {
			return fmt.Errorf("message part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("message part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (m Message) MarshalJSON() ([]byte, error) {
	type message Message
	m.Kind = KindMessage
	return Marshal(message(m))
}

// UnmarshalJSON implements [json.Unmarshaler]; parts are decoded through
// the kind-dispatched [UnmarshalPart].
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role             Role             `json:"role"`
		Parts            []jsontext.Value `json:"parts"`
		Metadata         map[string]any   `json:"metadata"`
		Extensions       []string         `json:"extensions"`
		ReferenceTaskIDs []string         `json:"referenceTaskIds"`
		MessageID        string           `json:"messageId"`
		TaskID           string           `json:"taskId"`
		ContextID        string           `json:"contextId"`
	}
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	parts, err := unmarshalParts(raw.Parts)
	if err != nil {
		return fmt.Errorf("decode message parts: %w", err)
	}
	*m = Message{
		Role:             raw.Role,
		Parts:            parts,
		Metadata:         raw.Metadata,
		Extensions:       raw.Extensions,
		ReferenceTaskIDs: raw.ReferenceTaskIDs,
		MessageID:        raw.MessageID,
		TaskID:           raw.TaskID,
		ContextID:        raw.ContextID,
		Kind:             KindMessage,
	}
	return nil
}

// TextParts extracts the text content from every [TextPart] in parts.
func TextParts(parts []Part) []string {
	var texts []string
	for _, part := range parts {
		if tp, ok := part.(*TextPart); ok {
			texts = append(texts, tp.Text)
		}
	}
	return texts
}

// MessageText joins the text content of all text parts in the message
// with the given delimiter.
func MessageText(m *Message, delimiter string) string {
	if m == nil {
		return ""
	}
	return strings.Join(TextParts(m.Parts), delimiter)
}
