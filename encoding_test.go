// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"
	"testing"
)

func TestMarshal_DeterministicMapOrder(t *testing.T) {
	m := map[string]any{"zebra": 1, "alpha": 2, "mike": 3}

	first, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"alpha":2,"mike":3,"zebra":1}`
	if string(first) != want {
		t.Errorf("Marshal() = %s, want %s", first, want)
	}
	// Same value, same bytes, every time.
	for i := 0; i < 16; i++ {
		again, err := Marshal(m)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("Marshal() unstable: %s vs %s", first, again)
		}
	}
}

func TestMarshal_EmptyButSetSliceIsEmitted(t *testing.T) {
	// A nil slice is an absent field; an empty non-nil slice is present
	// and must keep its key.
	m := Message{
		Role:       RoleUser,
		Parts:      []Part{NewTextPart("x")},
		MessageID:  "m1",
		Extensions: []string{},
	}
	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"extensions":[]`; !strings.Contains(string(data), want) {
		t.Errorf("Marshal() dropped the empty-but-set extensions member: %s", data)
	}

	m.Extensions = nil
	data, err = Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "extensions") {
		t.Errorf("Marshal() emitted the absent extensions member: %s", data)
	}
}

func TestUnmarshal_NullMemberEqualsAbsent(t *testing.T) {
	type record struct {
		Name string         `json:"name,omitzero"`
		Meta map[string]any `json:"meta,omitzero"`
	}

	var withNull, without record
	if err := Unmarshal([]byte(`{"name":null,"meta":null}`), &withNull); err != nil {
		t.Fatalf("Unmarshal(withNull) error = %v", err)
	}
	if err := Unmarshal([]byte(`{}`), &without); err != nil {
		t.Fatalf("Unmarshal(without) error = %v", err)
	}
	if withNull.Name != without.Name || (withNull.Meta == nil) != (without.Meta == nil) {
		t.Errorf("null members decoded differently: %+v vs %+v", withNull, without)
	}
}

func TestPresent(t *testing.T) {
	members, err := objectMembers([]byte(`{"a":1,"b":null}`))
	if err != nil {
		t.Fatalf("objectMembers() error = %v", err)
	}
	if !present(members, "a") {
		t.Error("present(a) = false, want true")
	}
	if present(members, "b") {
		t.Error("present(b) = true, want false for null member")
	}
	if present(members, "c") {
		t.Error("present(c) = true, want false for missing member")
	}
}
