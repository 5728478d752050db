// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMessage_MarshalOmitsAbsentFields(t *testing.T) {
	m := Message{
		Role:      RoleUser,
		Parts:     []Part{NewTextPart("hi")},
		MessageID: "msg-1",
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"role":"user","parts":[{"kind":"text","text":"hi"}],"messageId":"msg-1","kind":"message"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	for _, absent := range []string{"taskId", "contextId", "metadata", "extensions", "referenceTaskIds"} {
		if strings.Contains(string(data), absent) {
			t.Errorf("Marshal() output contains %q, want it omitted", absent)
		}
	}
}

func TestMessage_UnmarshalNullEqualsAbsent(t *testing.T) {
	withNulls := `{"role":"agent","parts":[{"kind":"text","text":"ok"}],"messageId":"m1","taskId":null,"contextId":null,"metadata":null,"kind":"message"}`
	withoutNulls := `{"role":"agent","parts":[{"kind":"text","text":"ok"}],"messageId":"m1","kind":"message"}`

	var a, b Message
	if err := Unmarshal([]byte(withNulls), &a); err != nil {
		t.Fatalf("Unmarshal(withNulls) error = %v", err)
	}
	if err := Unmarshal([]byte(withoutNulls), &b); err != nil {
		t.Fatalf("Unmarshal(withoutNulls) error = %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("null members decoded differently from absent members (-withNulls +withoutNulls):\n%s", diff)
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	m := &Message{
		Role: RoleAgent,
		Parts: []Part{
			NewTextPart("result attached"),
			NewDataPart(map[string]any{"score": float64(12)}),
		},
		Metadata:         map[string]any{"trace": "abc"},
		Extensions:       []string{"https://example.com/ext/geo"},
		ReferenceTaskIDs: []string{"task-0"},
		MessageID:        "msg-42",
		TaskID:           "task-1",
		ContextID:        "ctx-1",
		Kind:             KindMessage,
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got Message
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*m, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMessage_UnmarshalDecodesUnknownRoleLeniently(t *testing.T) {
	data := `{"role":"supervisor","parts":[{"kind":"text","text":"x"}],"messageId":"m1","kind":"message"}`
	var m Message
	if err := Unmarshal([]byte(data), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m.Role != RoleUser {
		t.Errorf("role = %q, want fallback %q", m.Role, RoleUser)
	}
}

func TestMessage_UnmarshalRejectsUnknownPartKind(t *testing.T) {
	data := `{"role":"user","parts":[{"kind":"hologram"}],"messageId":"m1","kind":"message"}`
	var m Message
	if err := Unmarshal([]byte(data), &m); err == nil {
		t.Fatal("expected error for unknown part kind inside message")
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage(RoleUser, []Part{NewTextPart("hello")})
	if m.MessageID == "" {
		t.Error("NewMessage() did not generate a message id")
	}
	if m.Kind != KindMessage {
		t.Errorf("kind = %q, want %q", m.Kind, KindMessage)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestNewAgentTextMessage(t *testing.T) {
	m := NewAgentTextMessage("done", "task-9", "ctx-9")
	if m.Role != RoleAgent {
		t.Errorf("role = %q, want %q", m.Role, RoleAgent)
	}
	if m.TaskID != "task-9" || m.ContextID != "ctx-9" {
		t.Errorf("ids = (%q, %q), want (task-9, ctx-9)", m.TaskID, m.ContextID)
	}
	if got := MessageText(m, "\n"); got != "done" {
		t.Errorf("MessageText() = %q, want %q", got, "done")
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := map[string]struct {
		message Message
		wantErr bool
	}{
		"valid": {
			message: Message{
				Role:      RoleUser,
				Parts:     []Part{NewTextPart("hi")},
				MessageID: "m1",
			},
			wantErr: false,
		},
		"missing message id": {
			message: Message{
				Role:  RoleUser,
				Parts: []Part{NewTextPart("hi")},
			},
			wantErr: true,
		},
		"no parts": {
			message: Message{
				Role:      RoleUser,
				MessageID: "m1",
			},
			wantErr: true,
		},
		"invalid role": {
			message: Message{
				Role:      Role("system"),
				Parts:     []Part{NewTextPart("hi")},
				MessageID: "m1",
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error but got %v", err)
			}
		})
	}
}

func TestTextParts(t *testing.T) {
	parts := []Part{
		NewTextPart("one"),
		NewDataPart(map[string]any{"k": "v"}),
		NewTextPart("two"),
	}
	got := TextParts(parts)
	want := []string{"one", "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TextParts() mismatch (-want +got):\n%s", diff)
	}
}
