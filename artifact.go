// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
)

// Artifact represents an output generated by a task, composed of one or
// more parts.
type Artifact struct {
	// ArtifactID is the unique identifier of the artifact.
	ArtifactID string `json:"artifactId"`

	// Name is an optional human-readable name.
	Name string `json:"name,omitzero"`

	// Description is an optional human-readable description.
	Description string `json:"description,omitzero"`

	// Parts is the content of the artifact.
	Parts []Part `json:"parts"`

	// Extensions lists URIs of protocol extensions relevant to this artifact.
	Extensions []string `json:"extensions,omitzero"`

	// Metadata holds optional extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the Artifact is valid.
func (a Artifact) Validate() error {
	if a.ArtifactID == "" {
		return fmt.Errorf("artifact ID cannot be empty")
	}
	if len(a.Parts) == 0 {
		return fmt.Errorf("artifact must contain at least one part")
	}
	for i, part := range a.Parts {
		if part == nil {
			return fmt.Errorf("artifact part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("artifact part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// UnmarshalJSON implements [json.Unmarshaler]; parts are decoded through
// the kind-dispatched [UnmarshalPart].
func (a *Artifact) UnmarshalJSON(data []byte) error {
	var raw struct {
		ArtifactID  string           `json:"artifactId"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Parts       []jsontext.Value `json:"parts"`
		Extensions  []string         `json:"extensions"`
		Metadata    map[string]any   `json:"metadata"`
	}
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	parts, err := unmarshalParts(raw.Parts)
	if err != nil {
		return fmt.Errorf("decode artifact parts: %w", err)
	}
	*a = Artifact{
		ArtifactID:  raw.ArtifactID,
		Name:        raw.Name,
		Description: raw.Description,
		Parts:       parts,
		Extensions:  raw.Extensions,
		Metadata:    raw.Metadata,
	}
	return nil
}

// NewArtifact creates an Artifact from parts with a generated artifact id.
func NewArtifact(parts []Part, name, description string) (*Artifact, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("artifact must contain at least one part")
	}
	for i, part := range parts {
		if part == nil {
			return nil, fmt.Errorf("part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return nil, fmt.Errorf("part at index %d is invalid: %w", i, err)
		}
	}
	return &Artifact{
		ArtifactID:  uuid.NewString(),
		Name:        name,
		Description: description,
		Parts:       parts,
	}, nil
}

// NewTextArtifact creates an Artifact containing a single [TextPart].
func NewTextArtifact(name, text, description string) (*Artifact, error) {
	if text == "" {
		return nil, fmt.Errorf("text content cannot be empty")
	}
	return NewArtifact([]Part{NewTextPart(text)}, name, description)
}

// NewDataArtifact creates an Artifact containing a single [DataPart].
func NewDataArtifact(name string, data map[string]any, description string) (*Artifact, error) {
	if data == nil {
		return nil, fmt.Errorf("data content cannot be nil")
	}
	return NewArtifact([]Part{NewDataPart(data)}, name, description)
}

// NewFileArtifact creates an Artifact containing a single [FilePart].
func NewFileArtifact(name string, file File, description string) (*Artifact, error) {
	if file == nil {
		return nil, fmt.Errorf("file content cannot be nil")
	}
	return NewArtifact([]Part{NewFilePart(file)}, name, description)
}

// AppendArtifactToTask folds a [TaskArtifactUpdateEvent] into a task:
// replacing or adding the artifact when the event is not an append, and
// appending parts to the matching artifact when it is.
func AppendArtifactToTask(ctx context.Context, task *Task, event *TaskArtifactUpdateEvent) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if event == nil || event.Artifact == nil {
		return fmt.Errorf("event artifact cannot be nil")
	}
	logger := slog.Default()

	artifactID := event.Artifact.ArtifactID
	existingIndex := -1
	for i, artifact := range task.Artifacts {
		if artifact.ArtifactID == artifactID {
			existingIndex = i
			break
		}
	}

	appendParts := event.Append != nil && *event.Append
	switch {
	case !appendParts:
		if existingIndex == -1 {
			logger.InfoContext(ctx, "adding new artifact to task",
				slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
			task.Artifacts = append(task.Artifacts, event.Artifact)
		} else {
			logger.InfoContext(ctx, "replacing artifact in task",
				slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
			task.Artifacts[existingIndex] = event.Artifact
		}
	case existingIndex >= 0:
		logger.InfoContext(ctx, "appending parts to artifact",
			slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
		existing := task.Artifacts[existingIndex]
		existing.Parts = append(existing.Parts, event.Artifact.Parts...)
	default:
		// Chunk for an artifact we have never seen; drop it.
		logger.InfoContext(ctx, "ignoring append for nonexistent artifact",
			slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
	}

	return nil
}
