// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// Part kind discriminators.
const (
	PartKindText = "text"
	PartKindFile = "file"
	PartKindData = "data"
)

// Part is one segment of a message or artifact: text, a file, or
// structured data. The encoded form carries a "kind" discriminator that
// selects the concrete type.
type Part interface {
	GetKind() string
	GetMetadata() map[string]any
	Validate() error
}

// TextPart represents a plain text segment.
type TextPart struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewTextPart creates a TextPart with the kind discriminator set.
func NewTextPart(text string) *TextPart {
	return &TextPart{Kind: PartKindText, Text: text}
}

// GetKind returns the part kind.
func (p TextPart) GetKind() string { return PartKindText }

// GetMetadata returns the part metadata.
func (p TextPart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the TextPart is valid.
func (p TextPart) Validate() error {
	if p.Kind != PartKindText {
		return fmt.Errorf("text part kind must be %q, got %q", PartKindText, p.Kind)
	}
	return nil
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (p TextPart) MarshalJSON() ([]byte, error) {
	type textPart TextPart
	p.Kind = PartKindText
	return Marshal(textPart(p))
}

// DataPart represents a structured data segment.
type DataPart struct {
	Kind     string         `json:"kind"`
	Data     map[string]any `json:"data"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewDataPart creates a DataPart with the kind discriminator set.
func NewDataPart(data map[string]any) *DataPart {
	return &DataPart{Kind: PartKindData, Data: data}
}

// GetKind returns the part kind.
func (p DataPart) GetKind() string { return PartKindData }

// GetMetadata returns the part metadata.
func (p DataPart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the DataPart is valid.
func (p DataPart) Validate() error {
	if p.Kind != PartKindData {
		return fmt.Errorf("data part kind must be %q, got %q", PartKindData, p.Kind)
	}
	if p.Data == nil {
		return fmt.Errorf("data part data cannot be nil")
	}
	return nil
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (p DataPart) MarshalJSON() ([]byte, error) {
	type dataPart DataPart
	p.Kind = PartKindData
	return Marshal(dataPart(p))
}

// File is file content carried inside a [FilePart], held either inline as
// bytes or by reference as a URI. The encoded form has no discriminator;
// the active alternative is recognized by which of "bytes"/"uri" is
// present, bytes checked first.
type File interface {
	GetURI() string
	GetBytes() []byte
}

// FileBase holds the fields common to both file alternatives.
type FileBase struct {
	// Name is an optional file name.
	Name string `json:"name,omitzero"`
	// MIMEType is the optional media type of the content.
	MIMEType string `json:"mimeType,omitzero"`
}

// FileWithBytes is a file with inline base64-encoded content.
type FileWithBytes struct {
	FileBase
	Bytes []byte `json:"bytes"`
}

// GetURI returns the empty string for byte-backed files.
func (f FileWithBytes) GetURI() string { return "" }

// GetBytes returns the file content.
func (f FileWithBytes) GetBytes() []byte { return f.Bytes }

// FileWithURI is a file referenced by URI.
type FileWithURI struct {
	FileBase
	URI string `json:"uri"`
}

// GetURI returns the file URI.
func (f FileWithURI) GetURI() string { return f.URI }

// GetBytes returns nil for URI-backed files.
func (f FileWithURI) GetBytes() []byte { return nil }

// unmarshalFile decodes the untagged bytes-or-URI union. Alternatives are
// tried in declared order, bytes before uri; the first whose required
// field is present wins, even if the object also carries the other key.
func unmarshalFile(data []byte) (File, error) {
	members, err := objectMembers(data)
	if err != nil {
		return nil, err
	}
	switch {
	case present(members, "bytes"):
		var f FileWithBytes
		if err := Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode file bytes variant: %w", err)
		}
		return f, nil
	case present(members, "uri"):
		var f FileWithURI
		if err := Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode file uri variant: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("file content: %w", ErrNoVariantMatched)
	}
}

// FilePart represents a file segment.
type FilePart struct {
	Kind     string         `json:"kind"`
	File     File           `json:"file"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewFilePart creates a FilePart with the kind discriminator set.
func NewFilePart(file File) *FilePart {
	return &FilePart{Kind: PartKindFile, File: file}
}

// GetKind returns the part kind.
func (p FilePart) GetKind() string { return PartKindFile }

// GetMetadata returns the part metadata.
func (p FilePart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the FilePart is valid.
func (p FilePart) Validate() error {
	if p.Kind != PartKindFile {
		return fmt.Errorf("file part kind must be %q, got %q", PartKindFile, p.Kind)
	}
	if p.File == nil {
		return fmt.Errorf("file part file cannot be nil")
	}
	return nil
}

// MarshalJSON implements [json.Marshaler], forcing the kind discriminator.
func (p FilePart) MarshalJSON() ([]byte, error) {
	type filePart FilePart
	p.Kind = PartKindFile
	return Marshal(filePart(p))
}

// UnmarshalJSON implements [json.Unmarshaler]; the file member is the
// untagged bytes-or-URI union.
func (p *FilePart) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind     string         `json:"kind"`
		File     jsontext.Value `json:"file"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode file part: %w", err)
	}
	if len(raw.File) == 0 {
		return fmt.Errorf("file part missing file member")
	}
	file, err := unmarshalFile(raw.File)
	if err != nil {
		return err
	}
	p.Kind = PartKindFile
	p.File = file
	p.Metadata = raw.Metadata
	return nil
}

// MarshalPart encodes a [Part] with its kind discriminator.
func MarshalPart(part Part) ([]byte, error) {
	switch p := part.(type) {
	case *TextPart:
		return Marshal(p)
	case TextPart:
		return Marshal(p)
	case *FilePart:
		return Marshal(p)
	case FilePart:
		return Marshal(p)
	case *DataPart:
		return Marshal(p)
	case DataPart:
		return Marshal(p)
	default:
		return nil, fmt.Errorf("unknown part type: %T", part)
	}
}

// UnmarshalPart decodes a JSON part into the concrete [Part] selected by
// its kind discriminator. An unrecognized kind is a hard decode failure:
// without it the variant's field shape cannot be known.
func UnmarshalPart(data []byte) (Part, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode part kind: %w", err)
	}
	members, err := objectMembers(data)
	if err != nil {
		return nil, fmt.Errorf("decode part: %w", err)
	}

	switch probe.Kind {
	case PartKindText:
		if err := requireMembers(members, "text part", "text"); err != nil {
			return nil, err
		}
		var p TextPart
		if err := Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode text part: %w", err)
		}
		p.Kind = PartKindText
		return &p, nil
	case PartKindFile:
		if err := requireMembers(members, "file part", "file"); err != nil {
			return nil, err
		}
		var p FilePart
		if err := Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case PartKindData:
		if err := requireMembers(members, "data part", "data"); err != nil {
			return nil, err
		}
		var p DataPart
		if err := Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode data part: %w", err)
		}
		p.Kind = PartKindData
		return &p, nil
	default:
		return nil, fmt.Errorf("part kind %q: %w", probe.Kind, ErrUnknownDiscriminator)
	}
}

// unmarshalParts decodes an array of parts.
func unmarshalParts(raw []jsontext.Value) ([]Part, error) {
	if raw == nil {
		return nil, nil
	}
	parts := make([]Part, len(raw))
	for i, data := range raw {
		part, err := UnmarshalPart(data)
		if err != nil {
			return nil, fmt.Errorf("part at index %d: %w", i, err)
		}
		parts[i] = part
	}
	return parts, nil
}
