// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSecurityScheme_Dispatch(t *testing.T) {
	tests := map[string]struct {
		data     string
		wantType string
	}{
		"apiKey": {
			data:     `{"type":"apiKey","name":"X-API-Key","in":"header"}`,
			wantType: SecuritySchemeTypeAPIKey,
		},
		"http": {
			data:     `{"type":"http","scheme":"bearer","bearerFormat":"JWT"}`,
			wantType: SecuritySchemeTypeHTTP,
		},
		"mutualTLS": {
			data:     `{"type":"mutualTLS"}`,
			wantType: SecuritySchemeTypeMutualTLS,
		},
		"oauth2": {
			data:     `{"type":"oauth2","flows":{"clientCredentials":{"tokenUrl":"https://example.com/token","scopes":{"read":"read access"}}}}`,
			wantType: SecuritySchemeTypeOAuth2,
		},
		"openIdConnect": {
			data:     `{"type":"openIdConnect","openIdConnectUrl":"https://example.com/.well-known/openid-configuration"}`,
			wantType: SecuritySchemeTypeOpenIDConnect,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got SecurityScheme
			if err := Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got.SchemeType() != tt.wantType {
				t.Errorf("SchemeType() = %q, want %q", got.SchemeType(), tt.wantType)
			}
		})
	}
}

func TestSecurityScheme_UnknownType(t *testing.T) {
	var got SecurityScheme
	err := Unmarshal([]byte(`{"type":"negotiate"}`), &got)
	if err == nil {
		t.Fatal("expected error for unknown scheme type")
	}
	if !errors.Is(err, ErrUnknownDiscriminator) {
		t.Errorf("error = %v, want ErrUnknownDiscriminator", err)
	}
}

func TestSecurityScheme_MissingRequiredMember(t *testing.T) {
	tests := map[string]string{
		"apiKey without name or in": `{"type":"apiKey"}`,
		"apiKey without in":         `{"type":"apiKey","name":"X-API-Key"}`,
		"apiKey with null name":     `{"type":"apiKey","name":null,"in":"header"}`,
		"http without scheme":       `{"type":"http","description":"basic auth"}`,
		"oauth2 without flows":      `{"type":"oauth2"}`,
		"openIdConnect without url": `{"type":"openIdConnect"}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var got SecurityScheme
			err := Unmarshal([]byte(data), &got)
			if err == nil {
				t.Fatalf("Unmarshal(%s) succeeded, want error", data)
			}
			if !errors.Is(err, ErrMissingMember) {
				t.Errorf("error = %v, want ErrMissingMember", err)
			}
		})
	}
}

func TestSecurityScheme_MutualTLSHasNoRequiredMembers(t *testing.T) {
	var got SecurityScheme
	if err := Unmarshal([]byte(`{"type":"mutualTLS"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.MutualTLS == nil {
		t.Fatal("MutualTLS variant not set")
	}
}

func TestSecurityScheme_RoundTrip(t *testing.T) {
	scheme := SecurityScheme{
		APIKey: &APIKeySecurityScheme{
			Type:        SecuritySchemeTypeAPIKey,
			Name:        "X-API-Key",
			In:          LocationHeader,
			Description: "service key",
		},
	}

	data, err := Marshal(scheme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got SecurityScheme
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(scheme, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSecurityScheme_PreservesExtensionMembers(t *testing.T) {
	// Members beyond the declared fields survive a decode/encode cycle
	// verbatim.
	data := `{"type":"http","scheme":"bearer","x-audience":"internal"}`
	var scheme SecurityScheme
	if err := Unmarshal([]byte(data), &scheme); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if scheme.HTTP == nil {
		t.Fatal("http variant not set")
	}
	if _, ok := scheme.HTTP.Extensions["x-audience"]; !ok {
		t.Fatalf("extension member not captured: %v", scheme.HTTP.Extensions)
	}

	out, err := Marshal(scheme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var round SecurityScheme
	if err := Unmarshal(out, &round); err != nil {
		t.Fatalf("Unmarshal(round) error = %v", err)
	}
	if diff := cmp.Diff(scheme, round); diff != "" {
		t.Errorf("extension members lost in round trip (-want +got):\n%s", diff)
	}
}

func TestSecurityScheme_MarshalForcesType(t *testing.T) {
	scheme := SecurityScheme{
		MutualTLS: &MutualTLSSecurityScheme{},
	}
	data, err := Marshal(scheme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"mutualTLS"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAPIKeySecurityScheme_Validate(t *testing.T) {
	tests := map[string]struct {
		scheme  APIKeySecurityScheme
		wantErr bool
	}{
		"valid": {
			scheme: APIKeySecurityScheme{Type: SecuritySchemeTypeAPIKey, Name: "key", In: LocationQuery},
		},
		"missing name": {
			scheme:  APIKeySecurityScheme{Type: SecuritySchemeTypeAPIKey, In: LocationQuery},
			wantErr: true,
		},
		"bad location": {
			scheme:  APIKeySecurityScheme{Type: SecuritySchemeTypeAPIKey, Name: "key", In: Location("body")},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.scheme.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error but got %v", err)
			}
		})
	}
}
