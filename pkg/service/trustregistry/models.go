/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustregistry

// RegistryStatus is the operational status reported in registry metadata.
type RegistryStatus string

const (
	StatusOperational RegistryStatus = "operational"
	StatusMaintenance RegistryStatus = "maintenance"
	StatusDegraded    RegistryStatus = "degraded"
)

// Metadata is returned by GET /v2/metadata.
type Metadata struct {
	Name                string             `json:"name"`
	Version             string             `json:"version"`
	Protocol            string             `json:"protocol"`
	Status              RegistryStatus     `json:"status"`
	SupportedActions    []string           `json:"supportedActions"`
	SupportedDIDMethods []string           `json:"supportedDIDMethods"`
	Features            Features           `json:"features"`
	Endpoints           *RegistryEndpoints `json:"endpoints,omitempty"`
}

type Features struct {
	Authorization     bool `json:"authorization"`
	Recognition       bool `json:"recognition"`
	Delegation        bool `json:"delegation"`
	PublicTrustedList bool `json:"publicTrustedList"`
}

type RegistryEndpoints struct {
	Authorization string           `json:"authorization,omitempty"`
	Public        *PublicEndpoints `json:"public,omitempty"`
}

type PublicEndpoints struct {
	LookupIssuer   string `json:"lookupIssuer,omitempty"`
	LookupVerifier string `json:"lookupVerifier,omitempty"`
}

// RequestContext carries evaluation parameters of a query.
type RequestContext struct {
	Time string `json:"time,omitempty"`
}

// AuthorizationRequest is the body of POST /v2/authorization.
type AuthorizationRequest struct {
	EntityID    string          `json:"entity_id"`
	AuthorityID string          `json:"authority_id"`
	Action      string          `json:"action"`
	Resource    string          `json:"resource"`
	Context     *RequestContext `json:"context,omitempty"`
}

// AuthorizationResponse is returned by POST /v2/authorization.
type AuthorizationResponse struct {
	EntityID      string                 `json:"entity_id"`
	AuthorityID   string                 `json:"authority_id"`
	Action        string                 `json:"action"`
	Resource      string                 `json:"resource"`
	Authorized    bool                   `json:"authorized"`
	TimeRequested string                 `json:"time_requested,omitempty"`
	TimeEvaluated string                 `json:"time_evaluated"`
	Message       string                 `json:"message"`
	Context       map[string]interface{} `json:"context,omitempty"`
}

// RecognitionRequest is the body of POST /v2/recognition. EntityID is the foreign authority and
// AuthorityID the local anchor.
type RecognitionRequest struct {
	EntityID    string          `json:"entity_id"`
	AuthorityID string          `json:"authority_id"`
	Action      string          `json:"action"`
	Resource    string          `json:"resource"`
	Context     *RequestContext `json:"context,omitempty"`
}

// RecognitionResponse is returned by POST /v2/recognition.
type RecognitionResponse struct {
	EntityID      string                 `json:"entity_id"`
	AuthorityID   string                 `json:"authority_id"`
	Action        string                 `json:"action"`
	Resource      string                 `json:"resource"`
	Recognized    bool                   `json:"recognized"`
	TimeRequested string                 `json:"time_requested,omitempty"`
	TimeEvaluated string                 `json:"time_evaluated"`
	Message       string                 `json:"message,omitempty"`
	Context       map[string]interface{} `json:"context,omitempty"`
}
