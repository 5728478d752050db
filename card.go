// Copyright 2025 The Go Agentic Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
)

// A2A protocol path constants for agent card resolution.
const (
	// AgentCardWellKnownPath is the standard path for retrieving an
	// agent's public AgentCard.
	AgentCardWellKnownPath = "/.well-known/agent-card.json"

	// ExtendedAgentCardPath is the path for an authenticated extended
	// agent card.
	ExtendedAgentCardPath = "/agent/authenticatedExtendedCard"
)

// AgentProvider represents the service provider of an agent.
type AgentProvider struct {
	// Organization is the provider's organization name.
	Organization string `json:"organization"`

	// URL points at the provider's website or documentation.
	URL string `json:"url"`
}

// AgentExtension declares a protocol extension supported by an agent.
type AgentExtension struct {
	// URI uniquely identifies the extension.
	URI string `json:"uri"`

	// Description optionally explains how the agent uses the extension.
	Description string `json:"description,omitzero"`

	// Required, when true, means clients must comply with the extension
	// to interact with the agent.
	Required *bool `json:"required,omitzero"`

	// Params holds extension-specific configuration.
	Params map[string]any `json:"params,omitzero"`
}

// AgentCapabilities declares the optional protocol features an agent
// supports.
type AgentCapabilities struct {
	// Streaming is true when the agent supports SSE streaming responses.
	Streaming bool `json:"streaming"`

	// PushNotifications is true when the agent can deliver asynchronous
	// task updates to a callback URL.
	PushNotifications bool `json:"pushNotifications"`

	// StateTransitionHistory is true when the agent exposes a history of
	// task state transitions.
	StateTransitionHistory *bool `json:"stateTransitionHistory,omitzero"`

	// Extensions lists protocol extensions supported by the agent.
	Extensions []AgentExtension `json:"extensions,omitzero"`
}

// AgentInterface binds a target URL to the transport protocol available
// there, letting one agent expose the same functionality over several
// transports.
type AgentInterface struct {
	// URL is where the interface is available.
	URL string `json:"url"`

	// Transport is the protocol spoken at URL.
	Transport TransportProtocol `json:"transport"`
}

// AgentSkill describes one distinct capability the agent can perform.
type AgentSkill struct {
	// ID uniquely identifies the skill.
	ID string `json:"id"`

	// Name is a human-readable name for the skill.
	Name string `json:"name"`

	// Description explains the skill's purpose to clients and users.
	Description string `json:"description"`

	// Tags are keywords describing the skill.
	Tags []string `json:"tags"`

	// Examples are prompts or scenarios the skill can handle.
	Examples []string `json:"examples,omitzero"`

	// InputModes overrides the agent's default input MIME types.
	InputModes []string `json:"inputModes,omitzero"`

	// OutputModes overrides the agent's default output MIME types.
	OutputModes []string `json:"outputModes,omitzero"`

	// Security lists the security requirement alternatives (OR of ANDs)
	// needed to use the skill.
	Security []map[string][]string `json:"security,omitzero"`
}

// Validate ensures the AgentSkill is valid.
func (s AgentSkill) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("agent skill ID cannot be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("agent skill name cannot be empty")
	}
	return nil
}

// AgentCardSignature represents a detached JWS signature of an
// AgentCard, following the JSON serialization of RFC 7515.
type AgentCardSignature struct {
	// Protected is the Base64url-encoded protected JWS header.
	Protected string `json:"protected"`

	// Signature is the Base64url-encoded computed signature.
	Signature string `json:"signature"`

	// Header holds the optional unprotected JWS header values.
	Header map[string]any `json:"header,omitzero"`
}

// AgentCard is the self-describing manifest of an agent: identity,
// endpoints, capabilities, security requirements, and skills.
//
// A card may itself contain sensitive information; serving and
// protecting the card endpoint is the host application's concern.
type AgentCard struct {
	// ProtocolVersion is the A2A protocol version the agent supports.
	ProtocolVersion string `json:"protocolVersion"`

	// Name is a human-readable name for the agent.
	Name string `json:"name"`

	// Description explains the agent's purpose.
	Description string `json:"description"`

	// URL is the preferred endpoint for interacting with the agent. It
	// MUST support the transport named by PreferredTransport.
	URL string `json:"url"`

	// PreferredTransport is the transport of the preferred endpoint.
	// When absent it defaults to JSONRPC. An AdditionalInterfaces entry
	// SHOULD bind the same transport to URL; that consistency is
	// advisory and not enforced here.
	PreferredTransport TransportProtocol `json:"preferredTransport,omitzero"`

	// AdditionalInterfaces lists further transport/URL combinations the
	// agent exposes, enabling transport negotiation and fallback.
	AdditionalInterfaces []AgentInterface `json:"additionalInterfaces,omitzero"`

	// IconURL optionally points at an icon for the agent.
	IconURL string `json:"iconUrl,omitzero"`

	// Provider describes the agent's service provider.
	Provider *AgentProvider `json:"provider,omitzero"`

	// Version is the agent's own version number.
	Version string `json:"version"`

	// DocumentationURL optionally points at the agent's documentation.
	DocumentationURL string `json:"documentationUrl,omitzero"`

	// Capabilities declares the optional features the agent supports.
	Capabilities AgentCapabilities `json:"capabilities"`

	// SecuritySchemes names the authentication schemes available to
	// authorize requests, keyed by scheme name.
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitzero"`

	// Security lists the requirement alternatives that apply to all
	// interactions: an OR of ANDs over named schemes.
	Security []map[string][]string `json:"security,omitzero"`

	// DefaultInputModes is the default set of accepted input MIME types.
	DefaultInputModes []string `json:"defaultInputModes"`

	// DefaultOutputModes is the default set of produced output MIME types.
	DefaultOutputModes []string `json:"defaultOutputModes"`

	// Skills lists the capabilities the agent can perform.
	Skills []AgentSkill `json:"skills"`

	// SupportsAuthenticatedExtendedCard is true when an extended card is
	// available to authenticated users.
	SupportsAuthenticatedExtendedCard *bool `json:"supportsAuthenticatedExtendedCard,omitzero"`

	// Signatures holds detached JWS signatures computed over the card.
	Signatures []AgentCardSignature `json:"signatures,omitzero"`
}

// Validate ensures the AgentCard carries its required identity fields.
func (c AgentCard) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("agent card missing required field: name")
	}
	if c.URL == "" {
		return fmt.Errorf("agent card missing required field: url")
	}
	if c.Version == "" {
		return fmt.Errorf("agent card missing required field: version")
	}
	for i, skill := range c.Skills {
		if err := skill.Validate(); err != nil {
			return fmt.Errorf("skill #%d is invalid: %w", i+1, err)
		}
	}
	return nil
}

// FindSkill finds a skill by id.
func (c *AgentCard) FindSkill(skillID string) (*AgentSkill, bool) {
	for i := range c.Skills {
		if c.Skills[i].ID == skillID {
			return &c.Skills[i], true
		}
	}
	return nil, false
}
