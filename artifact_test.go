// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArtifact_RoundTrip(t *testing.T) {
	artifact := Artifact{
		ArtifactID:  "art-1",
		Name:        "report",
		Description: "quarterly report",
		Parts: []Part{
			NewTextPart("see attachment"),
			NewFilePart(FileWithURI{
				FileBase: FileBase{Name: "q3.pdf", MIMEType: "application/pdf"},
				URI:      "https://example.com/q3.pdf",
			}),
		},
		Metadata: map[string]any{"pages": float64(12)},
	}

	data, err := Marshal(artifact)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got Artifact
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(artifact, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewArtifact(t *testing.T) {
	t.Run("generates artifact id", func(t *testing.T) {
		artifact, err := NewArtifact([]Part{NewTextPart("x")}, "name", "desc")
		if err != nil {
			t.Fatalf("NewArtifact() error = %v", err)
		}
		if artifact.ArtifactID == "" {
			t.Error("NewArtifact() did not generate an artifact id")
		}
	})

	t.Run("rejects empty parts", func(t *testing.T) {
		if _, err := NewArtifact(nil, "name", "desc"); err == nil {
			t.Error("expected error for empty parts")
		}
	})
}

func TestAppendArtifactToTask(t *testing.T) {
	newTask := func() *Task {
		return &Task{ID: "t1", ContextID: "c1", Status: TaskStatus{State: TaskStateWorking}, Kind: KindTask}
	}
	textArtifact := func(id, text string) *Artifact {
		return &Artifact{ArtifactID: id, Parts: []Part{NewTextPart(text)}}
	}
	boolPtr := func(b bool) *bool { return &b }

	t.Run("adds new artifact", func(t *testing.T) {
		task := newTask()
		event := &TaskArtifactUpdateEvent{
			TaskID:    "t1",
			ContextID: "c1",
			Artifact:  textArtifact("a1", "hello"),
		}
		if err := AppendArtifactToTask(context.Background(), task, event); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Fatalf("artifacts = %d, want 1", len(task.Artifacts))
		}
	})

	t.Run("replaces artifact with same id", func(t *testing.T) {
		task := newTask()
		task.Artifacts = []*Artifact{textArtifact("a1", "old")}
		event := &TaskArtifactUpdateEvent{
			TaskID:    "t1",
			ContextID: "c1",
			Artifact:  textArtifact("a1", "new"),
		}
		if err := AppendArtifactToTask(context.Background(), task, event); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Fatalf("artifacts = %d, want 1", len(task.Artifacts))
		}
		if got := MessageText(&Message{Parts: task.Artifacts[0].Parts}, ""); got != "new" {
			t.Errorf("artifact text = %q, want %q", got, "new")
		}
	})

	t.Run("appends parts to existing artifact", func(t *testing.T) {
		task := newTask()
		task.Artifacts = []*Artifact{textArtifact("a1", "part one ")}
		event := &TaskArtifactUpdateEvent{
			TaskID:    "t1",
			ContextID: "c1",
			Artifact:  textArtifact("a1", "part two"),
			Append:    boolPtr(true),
		}
		if err := AppendArtifactToTask(context.Background(), task, event); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Fatalf("artifacts = %d, want 1", len(task.Artifacts))
		}
		if got := len(task.Artifacts[0].Parts); got != 2 {
			t.Errorf("parts = %d, want 2", got)
		}
	})
}
