/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trust

import (
	"time"
)

// Level is a trust classification of an entity. Each level maps to a distinct presentation treatment,
// so callers must switch on the value instead of deriving booleans from it.
type Level string

const (
	LevelTrustedHigh       Level = "trusted_high"
	LevelTrustedMedium     Level = "trusted_medium"
	LevelTrustedLow        Level = "trusted_low"
	LevelTrustedFederation Level = "trusted_federation"
	LevelUntrusted         Level = "untrusted"
	LevelUnknown           Level = "unknown"
)

// Valid reports whether l is one of the known trust levels.
func (l Level) Valid() bool {
	switch l {
	case LevelTrustedHigh, LevelTrustedMedium, LevelTrustedLow, LevelTrustedFederation,
		LevelUntrusted, LevelUnknown:
		return true
	default:
		return false
	}
}

// IsTrusted reports whether l is any of the trusted_* levels.
func (l Level) IsTrusted() bool {
	switch l {
	case LevelTrustedHigh, LevelTrustedMedium, LevelTrustedLow, LevelTrustedFederation:
		return true
	default:
		return false
	}
}

// Source tells where a trust decision came from.
type Source string

const (
	SourceLocal      Source = "local"
	SourceFederation Source = "federation"
	SourceUnknown    Source = "unknown"
)

// Action is an operation an entity asks to be authorized for.
type Action string

const (
	ActionIssue     Action = "issue"
	ActionVerify    Action = "verify"
	ActionRecognize Action = "recognize"
	ActionGovern    Action = "govern"
)

// Framework references a trust authority found inside a credential.
type Framework struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	RegistryURL string `json:"registryUrl,omitempty"`
}

// DisplayName returns the framework name, or its ID when no name is known.
func (f *Framework) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}

	return f.ID
}

// Anchor is a configured trust authority.
type Anchor struct {
	DID  string `json:"did"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Result is the outcome of a single-step authorization check of an issuer or verifier.
type Result struct {
	Level          Level     `json:"level"`
	Authorized     bool      `json:"authorized"`
	EntityDID      string    `json:"entityDid,omitempty"`
	CredentialType string    `json:"credentialType,omitempty"`
	Action         Action    `json:"action,omitempty"`
	Message        string    `json:"message,omitempty"`
	CheckedAt      time.Time `json:"checkedAt"`
}
