// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

// Package cardsign signs and verifies agent cards with detached JSON Web
// Signatures (RFC 7515). The signed payload is the card's canonical wire
// encoding with the signatures member removed, so a card can carry any
// number of signatures without any of them covering the others.
package cardsign

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jws"

	"github.com/go-agentic/a2a"
)

// ErrNoSignatures is returned by Verify when the card carries no
// signatures at all.
var ErrNoSignatures = errors.New("agent card has no signatures")

// Payload returns the canonical byte sequence a card signature covers:
// the card encoded with sorted map keys and without its signatures
// member.
func Payload(card *a2a.AgentCard) ([]byte, error) {
	unsigned := *card
	unsigned.Signatures = nil
	data, err := a2a.Marshal(&unsigned)
	if err != nil {
		return nil, fmt.Errorf("encode card payload: %w", err)
	}
	return data, nil
}

// Sign computes a detached JWS over the card using alg and key, and
// returns the signature to append to the card's signatures list. The
// card itself is not modified. Keys carrying a key ID, such as jwk.Key
// values, get the id recorded in the protected header.
func Sign(card *a2a.AgentCard, alg jwa.SignatureAlgorithm, key any) (a2a.AgentCardSignature, error) {
	payload, err := Payload(card)
	if err != nil {
		return a2a.AgentCardSignature{}, err
	}
	compact, err := jws.Sign(payload, jws.WithKey(alg, key))
	if err != nil {
		return a2a.AgentCardSignature{}, fmt.Errorf("sign card: %w", err)
	}
	protected, signature, err := splitCompact(compact)
	if err != nil {
		return a2a.AgentCardSignature{}, err
	}
	return a2a.AgentCardSignature{
		Protected: protected,
		Signature: signature,
	}, nil
}

// VerifySignature checks one detached signature against the card using
// key. The signature algorithm is read from the protected header.
func VerifySignature(card *a2a.AgentCard, sig a2a.AgentCardSignature, key any) error {
	payload, err := Payload(card)
	if err != nil {
		return err
	}
	alg, err := headerAlgorithm(sig.Protected)
	if err != nil {
		return err
	}
	compact := attachPayload(sig, payload)
	if _, err := jws.Verify(compact, jws.WithKey(alg, key)); err != nil {
		return fmt.Errorf("verify card signature: %w", err)
	}
	return nil
}

// Verify checks that at least one of the card's signatures verifies
// against key. It returns ErrNoSignatures for an unsigned card, and the
// last verification failure when none match.
func Verify(card *a2a.AgentCard, key any) error {
	if len(card.Signatures) == 0 {
		return ErrNoSignatures
	}
	var lastErr error
	for _, sig := range card.Signatures {
		if err := VerifySignature(card, sig, key); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// splitCompact extracts the protected header and signature segments of
// a compact JWS serialization.
func splitCompact(compact []byte) (protected, signature string, err error) {
	first, rest, ok := strings.Cut(string(compact), ".")
	if !ok {
		return "", "", fmt.Errorf("malformed compact jws: no header separator")
	}
	_, last, ok := strings.Cut(rest, ".")
	if !ok {
		return "", "", fmt.Errorf("malformed compact jws: no payload separator")
	}
	return first, last, nil
}

// attachPayload reassembles a compact serialization from a detached
// signature and the payload it covers.
func attachPayload(sig a2a.AgentCardSignature, payload []byte) []byte {
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	out := make([]byte, 0, len(sig.Protected)+len(encoded)+len(sig.Signature)+2)
	out = append(out, sig.Protected...)
	out = append(out, '.')
	out = append(out, encoded...)
	out = append(out, '.')
	out = append(out, sig.Signature...)
	return out
}

// headerAlgorithm decodes the protected header and resolves its alg
// member against the registered signature algorithms.
func headerAlgorithm(protected string) (jwa.SignatureAlgorithm, error) {
	raw, err := base64.RawURLEncoding.DecodeString(protected)
	if err != nil {
		return jwa.SignatureAlgorithm{}, fmt.Errorf("decode protected header: %w", err)
	}
	var header struct {
		Alg string `json:"alg"`
	}
	if err := a2a.Unmarshal(raw, &header); err != nil {
		return jwa.SignatureAlgorithm{}, fmt.Errorf("parse protected header: %w", err)
	}
	alg, ok := jwa.LookupSignatureAlgorithm(header.Alg)
	if !ok {
		return jwa.SignatureAlgorithm{}, fmt.Errorf("unsupported signature algorithm %q", header.Alg)
	}
	return alg, nil
}
