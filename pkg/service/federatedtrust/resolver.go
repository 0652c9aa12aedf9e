/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package federatedtrust_test -source=resolver.go -mock_names trustRegistry=MockTrustRegistry,authorityFinder=MockAuthorityFinder

package federatedtrust

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics/noop"
	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
	"github.com/trustbloc/wallet-trust/pkg/trust"
)

var logger = log.New("federated-trust")

// DefaultCredentialType is used when a request does not name a credential type.
const DefaultCredentialType = "Credential"

// Role selects which direct authorization check a resolution starts with.
type Role string

const (
	RoleIssuer   Role = "issuer"
	RoleVerifier Role = "verifier"
)

// Action returns the registry action authorized for the role.
func (r Role) Action() trust.Action {
	if r == RoleVerifier {
		return trust.ActionVerify
	}

	return trust.ActionIssue
}

type trustRegistry interface {
	CheckIssuerAuthorization(
		ctx context.Context,
		issuerDID, credentialType string,
	) (*trustregistry.AuthorizationResponse, error)
	CheckVerifierAuthorization(
		ctx context.Context,
		verifierDID, credentialType string,
	) (*trustregistry.AuthorizationResponse, error)
	CheckRecognition(
		ctx context.Context,
		foreignAuthorityDID, resource string,
	) (*trustregistry.RecognitionResponse, error)
}

type authorityFinder interface {
	FindAuthority(ctx context.Context, issuerDID string, credential []byte) (*trust.Framework, bool)
}

// Config defines configuration for Resolver.
type Config struct {
	Enabled   bool
	Registry  trustRegistry
	Discovery authorityFinder
	Metrics   metrics.Metrics
}

// Request identifies one resolution.
type Request struct {
	EntityDID      string          `json:"entityDid"`
	Role           Role            `json:"role,omitempty"`
	CredentialType string          `json:"credentialType,omitempty"`
	Credential     json.RawMessage `json:"credential,omitempty"`
}

// Result is a federated trust verdict. It is computed on every call and never cached.
type Result struct {
	Level          trust.Level      `json:"level"`
	Authorized     bool             `json:"authorized"`
	TrustSource    trust.Source     `json:"trustSource"`
	TrustAuthority *trust.Framework `json:"trustAuthority,omitempty"`
	Message        string           `json:"message,omitempty"`
	Err            error            `json:"-"`
}

// Resolver combines direct authorization with recognition of a foreign authority found in the credential.
type Resolver struct {
	enabled   bool
	registry  trustRegistry
	discovery authorityFinder
	metrics   metrics.Metrics
}

// NewResolver returns a new Resolver instance. A resolver without a registry behaves as disabled.
func NewResolver(cfg *Config) *Resolver {
	m := cfg.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Resolver{
		enabled:   cfg.Enabled && cfg.Registry != nil,
		registry:  cfg.Registry,
		discovery: cfg.Discovery,
		metrics:   m,
	}
}

// Resolve runs the resolution state machine. It never fails: registry errors are reported as the unknown level.
func (r *Resolver) Resolve(ctx context.Context, req *Request) *Result {
	started := time.Now()

	role := req.Role
	if role == "" {
		role = RoleIssuer
	}

	credentialType := req.CredentialType
	if credentialType == "" {
		credentialType = DefaultCredentialType
	}

	result := r.resolve(ctx, req.EntityDID, role, credentialType, req.Credential)

	r.metrics.ResolutionTime(time.Since(started))
	r.metrics.Resolution(string(result.Level), string(result.TrustSource))

	fields := []zap.Field{
		logfields.WithEntityDID(req.EntityDID),
		logfields.WithCredentialType(credentialType),
		logfields.WithTrustLevel(string(result.Level)),
		logfields.WithTrustSource(string(result.TrustSource)),
		logfields.WithAdditionalMessage(result.Message),
	}

	if result.TrustAuthority != nil {
		fields = append(fields, logfields.WithTrustAuthority(result.TrustAuthority.ID))
	}

	if result.Err != nil {
		logger.Warnc(ctx, "Federated trust resolution failed", append(fields, log.WithError(result.Err))...)
	} else {
		logger.Debugc(ctx, "Federated trust resolved", fields...)
	}

	return result
}

func (r *Resolver) resolve(
	ctx context.Context,
	entityDID string,
	role Role,
	credentialType string,
	credential []byte,
) *Result {
	if !r.enabled {
		return unknown("Trust registry not enabled", nil)
	}

	if entityDID == "" {
		return unknown(fmt.Sprintf("No %s DID provided", role), nil)
	}

	authResp, err := r.checkLocal(ctx, role, entityDID, credentialType)
	if err != nil {
		return unknown(err.Error(), err)
	}

	if authResp.Authorized {
		return &Result{
			Level:       trust.LevelTrustedHigh,
			Authorized:  true,
			TrustSource: trust.SourceLocal,
			Message:     orDefault(authResp.Message, "Authorized by local trust authority"),
		}
	}

	var (
		authority *trust.Framework
		found     bool
	)

	if r.discovery != nil {
		authority, found = r.discovery.FindAuthority(ctx, entityDID, credential)
	}

	if !found {
		return &Result{
			Level:       trust.LevelUntrusted,
			TrustSource: trust.SourceUnknown,
			Message:     orDefault(authResp.Message, notAuthorizedMessage(role)),
		}
	}

	recognition, err := r.registry.CheckRecognition(ctx, authority.ID, credentialType)
	if err != nil {
		return unknown(err.Error(), err)
	}

	if recognition.Recognized {
		return &Result{
			Level:          trust.LevelTrustedFederation,
			Authorized:     true,
			TrustSource:    trust.SourceFederation,
			TrustAuthority: authority,
			Message:        orDefault(recognition.Message, "Recognized via "+authority.DisplayName()),
		}
	}

	return &Result{
		Level:          trust.LevelUntrusted,
		TrustSource:    trust.SourceUnknown,
		TrustAuthority: authority,
		Message: orDefault(recognition.Message,
			fmt.Sprintf("Foreign authority %s is not recognized", authority.DisplayName())),
	}
}

func (r *Resolver) checkLocal(
	ctx context.Context,
	role Role,
	entityDID, credentialType string,
) (*trustregistry.AuthorizationResponse, error) {
	if role == RoleVerifier {
		return r.registry.CheckVerifierAuthorization(ctx, entityDID, credentialType)
	}

	return r.registry.CheckIssuerAuthorization(ctx, entityDID, credentialType)
}

func notAuthorizedMessage(role Role) string {
	if role == RoleVerifier {
		return "Verifier not authorized and no trust framework found"
	}

	return "Issuer not authorized and no trust framework found"
}

func unknown(message string, err error) *Result {
	return &Result{
		Level:       trust.LevelUnknown,
		TrustSource: trust.SourceUnknown,
		Message:     message,
		Err:         err,
	}
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}

	return def
}
