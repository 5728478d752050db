// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// SecurityScheme type discriminators, following the OpenAPI 3.0 Security
// Scheme Object.
const (
	SecuritySchemeTypeAPIKey        = "apiKey"
	SecuritySchemeTypeHTTP          = "http"
	SecuritySchemeTypeMutualTLS     = "mutualTLS"
	SecuritySchemeTypeOAuth2        = "oauth2"
	SecuritySchemeTypeOpenIDConnect = "openIdConnect"
)

// Location represents the location of an API key in HTTP requests.
type Location string

// Valid locations for API keys.
const (
	LocationCookie Location = "cookie"
	LocationHeader Location = "header"
	LocationQuery  Location = "query"
)

// Extensions is the open-ended member set an OpenAPI security scheme may
// carry beyond its declared fields, conventionally keyed "x-*". Captured
// members are re-emitted verbatim on encode.
type Extensions map[string]jsontext.Value

// APIKeySecurityScheme describes authentication with an API key sent in
// a header, query, or cookie parameter.
type APIKeySecurityScheme struct {
	// Type is always "apiKey".
	Type string `json:"type"`

	// Name is the name of the header, query, or cookie parameter.
	Name string `json:"name"`

	// In is the location of the API key.
	In Location `json:"in"`

	// Description is an optional description in CommonMark syntax.
	Description string `json:"description,omitzero"`

	// Extensions captures specification extensions (x-*).
	Extensions Extensions `json:",unknown"`
}

// MarshalJSON implements [json.Marshaler], forcing the type discriminator.
func (s APIKeySecurityScheme) MarshalJSON() ([]byte, error) {
	type scheme APIKeySecurityScheme
	s.Type = SecuritySchemeTypeAPIKey
	return Marshal(scheme(s))
}

// Validate ensures the APIKeySecurityScheme is valid.
func (s APIKeySecurityScheme) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("API key security scheme name cannot be empty")
	}
	if s.In != LocationCookie && s.In != LocationHeader && s.In != LocationQuery {
		return fmt.Errorf("invalid location for API key: %s", s.In)
	}
	return nil
}

// HTTPAuthSecurityScheme describes authentication with an RFC 7235 HTTP
// authentication scheme.
type HTTPAuthSecurityScheme struct {
	// Type is always "http".
	Type string `json:"type"`

	// Scheme is the HTTP authentication scheme, e.g. "basic" or "bearer".
	Scheme string `json:"scheme"`

	// BearerFormat is an optional hint describing the bearer token format.
	BearerFormat string `json:"bearerFormat,omitzero"`

	// Description is an optional description.
	Description string `json:"description,omitzero"`

	// Extensions captures specification extensions (x-*).
	Extensions Extensions `json:",unknown"`
}

// MarshalJSON implements [json.Marshaler], forcing the type discriminator.
func (s HTTPAuthSecurityScheme) MarshalJSON() ([]byte, error) {
	type scheme HTTPAuthSecurityScheme
	s.Type = SecuritySchemeTypeHTTP
	return Marshal(scheme(s))
}

// Validate ensures the HTTPAuthSecurityScheme is valid.
func (s HTTPAuthSecurityScheme) Validate() error {
	if s.Scheme == "" {
		return fmt.Errorf("HTTP auth security scheme scheme cannot be empty")
	}
	return nil
}

// MutualTLSSecurityScheme describes authentication with mutual TLS.
type MutualTLSSecurityScheme struct {
	// Type is always "mutualTLS".
	Type string `json:"type"`

	// Description is an optional description.
	Description string `json:"description,omitzero"`

	// Extensions captures specification extensions (x-*).
	Extensions Extensions `json:",unknown"`
}

// MarshalJSON implements [json.Marshaler], forcing the type discriminator.
func (s MutualTLSSecurityScheme) MarshalJSON() ([]byte, error) {
	type scheme MutualTLSSecurityScheme
	s.Type = SecuritySchemeTypeMutualTLS
	return Marshal(scheme(s))
}

// OAuthFlow configures a single supported OAuth2 flow.
type OAuthFlow struct {
	AuthorizationURL string            `json:"authorizationUrl,omitzero"`
	TokenURL         string            `json:"tokenUrl,omitzero"`
	RefreshURL       string            `json:"refreshUrl,omitzero"`
	Scopes           map[string]string `json:"scopes,omitzero"`
}

// OAuthFlows holds the configuration of the OAuth2 flows a scheme
// supports.
type OAuthFlows struct {
	Implicit          *OAuthFlow `json:"implicit,omitzero"`
	Password          *OAuthFlow `json:"password,omitzero"`
	ClientCredentials *OAuthFlow `json:"clientCredentials,omitzero"`
	AuthorizationCode *OAuthFlow `json:"authorizationCode,omitzero"`
	DeviceCode        *OAuthFlow `json:"deviceCode,omitzero"`
}

// OAuth2SecurityScheme describes authentication with OAuth2.
type OAuth2SecurityScheme struct {
	// Type is always "oauth2".
	Type string `json:"type"`

	// Flows holds the supported OAuth2 flow configurations.
	Flows *OAuthFlows `json:"flows"`

	// OAuth2MetadataURL is an optional RFC 8414 metadata URL.
	OAuth2MetadataURL string `json:"oauth2MetadataUrl,omitzero"`

	// Description is an optional description.
	Description string `json:"description,omitzero"`

	// Extensions captures specification extensions (x-*).
	Extensions Extensions `json:",unknown"`
}

// MarshalJSON implements [json.Marshaler], forcing the type discriminator.
func (s OAuth2SecurityScheme) MarshalJSON() ([]byte, error) {
	type scheme OAuth2SecurityScheme
	s.Type = SecuritySchemeTypeOAuth2
	return Marshal(scheme(s))
}

// Validate ensures the OAuth2SecurityScheme is valid.
func (s OAuth2SecurityScheme) Validate() error {
	if s.Flows == nil {
		return fmt.Errorf("OAuth2 security scheme flows cannot be nil")
	}
	return nil
}

// OpenIDConnectSecurityScheme describes authentication with OpenID
// Connect discovery.
type OpenIDConnectSecurityScheme struct {
	// Type is always "openIdConnect".
	Type string `json:"type"`

	// OpenIDConnectURL is the well-known OpenID Connect discovery URL.
	OpenIDConnectURL string `json:"openIdConnectUrl"`

	// Description is an optional description.
	Description string `json:"description,omitzero"`

	// Extensions captures specification extensions (x-*).
	Extensions Extensions `json:",unknown"`
}

// MarshalJSON implements [json.Marshaler], forcing the type discriminator.
func (s OpenIDConnectSecurityScheme) MarshalJSON() ([]byte, error) {
	type scheme OpenIDConnectSecurityScheme
	s.Type = SecuritySchemeTypeOpenIDConnect
	return Marshal(scheme(s))
}

// Validate ensures the OpenIDConnectSecurityScheme is valid.
func (s OpenIDConnectSecurityScheme) Validate() error {
	if s.OpenIDConnectURL == "" {
		return fmt.Errorf("OpenID Connect security scheme URL cannot be empty")
	}
	return nil
}

// SecurityScheme is the discriminated union of the authentication
// schemes an agent endpoint may declare, selected by the "type" member
// of the encoded form. Exactly one field is set.
type SecurityScheme struct {
	APIKey        *APIKeySecurityScheme
	HTTP          *HTTPAuthSecurityScheme
	MutualTLS     *MutualTLSSecurityScheme
	OAuth2        *OAuth2SecurityScheme
	OpenIDConnect *OpenIDConnectSecurityScheme
}

// SchemeType returns the type discriminator of the active variant, or
// the empty string when no variant is set.
func (s SecurityScheme) SchemeType() string {
	switch {
	case s.APIKey != nil:
		return SecuritySchemeTypeAPIKey
	case s.HTTP != nil:
		return SecuritySchemeTypeHTTP
	case s.MutualTLS != nil:
		return SecuritySchemeTypeMutualTLS
	case s.OAuth2 != nil:
		return SecuritySchemeTypeOAuth2
	case s.OpenIDConnect != nil:
		return SecuritySchemeTypeOpenIDConnect
	default:
		return ""
	}
}

// MarshalJSON implements [json.Marshaler] for the union type.
func (s SecurityScheme) MarshalJSON() ([]byte, error) {
	switch {
	case s.APIKey != nil:
		return Marshal(s.APIKey)
	case s.HTTP != nil:
		return Marshal(s.HTTP)
	case s.MutualTLS != nil:
		return Marshal(s.MutualTLS)
	case s.OAuth2 != nil:
		return Marshal(s.OAuth2)
	case s.OpenIDConnect != nil:
		return Marshal(s.OpenIDConnect)
	default:
		return nil, fmt.Errorf("no security scheme variant set")
	}
}

// UnmarshalJSON implements [json.Unmarshaler] for the union type. An
// unknown type discriminator is a hard decode failure since the variant
// field shape cannot be guessed.
func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode security scheme type: %w", err)
	}
	members, err := objectMembers(data)
	if err != nil {
		return fmt.Errorf("decode security scheme: %w", err)
	}

	*s = SecurityScheme{}
	switch probe.Type {
	case SecuritySchemeTypeAPIKey:
		if err := requireMembers(members, "apiKey security scheme", "name", "in"); err != nil {
			return err
		}
		var v APIKeySecurityScheme
		if err := Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode apiKey security scheme: %w", err)
		}
		s.APIKey = &v
	case SecuritySchemeTypeHTTP:
		if err := requireMembers(members, "http security scheme", "scheme"); err != nil {
			return err
		}
		var v HTTPAuthSecurityScheme
		if err := Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode http security scheme: %w", err)
		}
		s.HTTP = &v
	case SecuritySchemeTypeMutualTLS:
		var v MutualTLSSecurityScheme
		if err := Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode mutualTLS security scheme: %w", err)
		}
		s.MutualTLS = &v
	case SecuritySchemeTypeOAuth2:
		if err := requireMembers(members, "oauth2 security scheme", "flows"); err != nil {
			return err
		}
		var v OAuth2SecurityScheme
		if err := Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode oauth2 security scheme: %w", err)
		}
		s.OAuth2 = &v
	case SecuritySchemeTypeOpenIDConnect:
		if err := requireMembers(members, "openIdConnect security scheme", "openIdConnectUrl"); err != nil {
			return err
		}
		var v OpenIDConnectSecurityScheme
		if err := Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode openIdConnect security scheme: %w", err)
		}
		s.OpenIDConnect = &v
	default:
		return fmt.Errorf("security scheme type %q: %w", probe.Type, ErrUnknownDiscriminator)
	}
	return nil
}
