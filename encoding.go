// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Decode failure sentinels. Both identify malformed shape; protocol-level
// errors travel as [JSONRPCError] data and never surface through these.
var (
	// ErrUnknownDiscriminator reports a tagged union whose tag field named
	// a variant this package does not know.
	ErrUnknownDiscriminator = errors.New("unknown discriminator")

	// ErrNoVariantMatched reports an untagged union object that satisfied
	// no variant's required field set.
	ErrNoVariantMatched = errors.New("no union variant matched")

	// ErrMissingMember reports a variant object without one of its
	// required members.
	ErrMissingMember = errors.New("missing required member")
)

// wireOptions are the encoding options applied to all output of this
// package. Map keys are sorted so canonical output is reproducible
// byte-for-byte.
var wireOptions = json.JoinOptions(
	json.Deterministic(true),
)

// Marshal encodes v as canonical A2A wire JSON: optional fields with no
// value are omitted entirely and map keys appear in ascending lexical
// order.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v, wireOptions)
}

// Unmarshal decodes A2A wire JSON into v. A key that is present with an
// explicit null is treated the same as an absent key.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// unmarshalToken decodes a JSON string scalar used as an enum token.
func unmarshalToken(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("decode enum token: %w", err)
	}
	return s, nil
}

// objectMembers splits a JSON object into its top-level members. Union
// decoding probes the result for discriminator and required fields.
func objectMembers(data []byte) (map[string]jsontext.Value, error) {
	var members map[string]jsontext.Value
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return members, nil
}

// present reports whether the member key exists with a non-null value.
// An explicit null is equivalent to absence for variant selection.
func present(members map[string]jsontext.Value, key string) bool {
	v, ok := members[key]
	if !ok {
		return false
	}
	return string(v) != "null"
}

// requireMembers checks that every key is present with a non-null value.
// A null member counts as absent.
func requireMembers(members map[string]jsontext.Value, variant string, keys ...string) error {
	for _, key := range keys {
		if !present(members, key) {
			return fmt.Errorf("%s %q: %w", variant, key, ErrMissingMember)
		}
	}
	return nil
}
