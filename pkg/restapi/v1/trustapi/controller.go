/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package trustapi_test -source=controller.go -mock_names registry=MockRegistry,trustChecker=MockTrustChecker,resolver=MockResolver

package trustapi

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/did"
	"github.com/trustbloc/wallet-trust/pkg/restapi/resterr"
	"github.com/trustbloc/wallet-trust/pkg/restapi/v1/util"
	"github.com/trustbloc/wallet-trust/pkg/service/federatedtrust"
	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
	"github.com/trustbloc/wallet-trust/pkg/trust"
	"github.com/trustbloc/wallet-trust/pkg/validator/jsonschema"
)

var logger = log.New("rest-trust")

const (
	resolveRequestSchemaID = "https://trustbloc.dev/wallet-trust/schemas/resolve-request.schema.json"

	requestIDHeader = "X-Request-ID"
	didParam        = "did"
)

//go:embed schemas/resolve-request.schema.json
var resolveRequestSchema []byte

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type registry interface {
	GetMetadata(ctx context.Context) (*trustregistry.Metadata, error)
	ClearCache(ctx context.Context)
}

type trustChecker interface {
	CheckIssuerTrust(ctx context.Context, issuerDID, credentialType string) *trust.Result
	CheckVerifierTrust(ctx context.Context, verifierDID, credentialType string) *trust.Result
	RefreshMetadata(ctx context.Context) (*trustregistry.Metadata, error)
}

type resolver interface {
	Resolve(ctx context.Context, req *federatedtrust.Request) *federatedtrust.Result
}

type schemaValidator interface {
	Validate(doc []byte, schemaID string, schema []byte) error
}

// Config defines configuration for Controller. Registry and Checker may be nil when the registry is disabled.
type Config struct {
	Enabled   bool
	Registry  registry
	Checker   trustChecker
	Resolver  resolver
	Policy    trust.Policy
	Validator schemaValidator
	Now       func() time.Time
}

// Controller exposes trust checks and registry administration over HTTP.
type Controller struct {
	enabled   bool
	registry  registry
	checker   trustChecker
	resolver  resolver
	policy    trust.Policy
	validator schemaValidator
	now       func() time.Time
}

// TrustCheckResponse is a direct authorization result with the client policy applied.
type TrustCheckResponse struct {
	*trust.Result
	Blocked bool `json:"blocked"`
	Warning bool `json:"warning"`
}

// ResolveResponse is a federated resolution result with the client policy applied.
type ResolveResponse struct {
	RequestID string `json:"requestId"`
	*federatedtrust.Result
	Blocked bool `json:"blocked"`
	Warning bool `json:"warning"`
}

// StatusResponse reports whether the registry can currently answer queries.
type StatusResponse struct {
	Enabled   bool                         `json:"enabled"`
	Available bool                         `json:"available"`
	Name      string                       `json:"name,omitempty"`
	Status    trustregistry.RegistryStatus `json:"status,omitempty"`
	Error     string                       `json:"error,omitempty"`
	CheckedAt time.Time                    `json:"checkedAt"`
}

// NewController registers the trust routes on r.
func NewController(r router, cfg *Config) *Controller {
	c := &Controller{
		enabled:   cfg.Enabled && cfg.Registry != nil && cfg.Checker != nil,
		registry:  cfg.Registry,
		checker:   cfg.Checker,
		resolver:  cfg.Resolver,
		policy:    cfg.Policy,
		validator: cfg.Validator,
		now:       cfg.Now,
	}

	if c.validator == nil {
		c.validator = jsonschema.NewCachingValidator()
	}

	if c.now == nil {
		c.now = time.Now
	}

	r.GET("/v1/trust/issuers/:did", c.GetIssuerTrust)
	r.GET("/v1/trust/verifiers/:did", c.GetVerifierTrust)
	r.POST("/v1/trust/resolve", c.Resolve)
	r.GET("/v1/registry/metadata", c.GetMetadata)
	r.GET("/v1/registry/status", c.GetStatus)
	r.DELETE("/v1/registry/cache", c.ClearCache)

	return c
}

// GetIssuerTrust checks whether the issuer is authorized for a credential type.
// GET /v1/trust/issuers/{did}?credentialType=.
func (c *Controller) GetIssuerTrust(e echo.Context) error {
	return c.checkTrust(e, "CheckIssuerTrust", trust.ActionIssue, c.checkIssuer)
}

// GetVerifierTrust checks whether the verifier is authorized for a credential type.
// GET /v1/trust/verifiers/{did}?credentialType=.
func (c *Controller) GetVerifierTrust(e echo.Context) error {
	return c.checkTrust(e, "CheckVerifierTrust", trust.ActionVerify, c.checkVerifier)
}

func (c *Controller) checkIssuer(ctx context.Context, entityDID, credentialType string) *trust.Result {
	return c.checker.CheckIssuerTrust(ctx, entityDID, credentialType)
}

func (c *Controller) checkVerifier(ctx context.Context, entityDID, credentialType string) *trust.Result {
	return c.checker.CheckVerifierTrust(ctx, entityDID, credentialType)
}

func (c *Controller) checkTrust(
	e echo.Context,
	operation string,
	action trust.Action,
	check func(ctx context.Context, entityDID, credentialType string) *trust.Result,
) error {
	if !c.enabled {
		return resterr.FromRegistryError(operation, resterr.ErrRegistryDisabled)
	}

	entityDID, err := entityDIDParam(e)
	if err != nil {
		return err
	}

	credentialType := e.QueryParam("credentialType")
	if credentialType == "" {
		credentialType = federatedtrust.DefaultCredentialType
	}

	result := check(e.Request().Context(), entityDID, credentialType)

	return util.WriteOutput(e)(&TrustCheckResponse{
		Result:  result,
		Blocked: c.policy.Block(result.Level, action),
		Warning: c.policy.Warn(result.Level),
	}, nil)
}

func entityDIDParam(e echo.Context) (string, error) {
	decoded, err := did.Decode(e.Param(didParam))
	if err != nil {
		return "", resterr.NewValidationError(resterr.InvalidValue, didParam, err)
	}

	entityDID := did.Normalize(decoded)

	if err = did.Validate(entityDID); err != nil {
		return "", resterr.NewValidationError(resterr.InvalidDID, didParam, err)
	}

	return entityDID, nil
}

// Resolve runs a federated trust resolution for the entity and credential in the request body.
// POST /v1/trust/resolve.
func (c *Controller) Resolve(e echo.Context) error {
	var req federatedtrust.Request

	if err := util.ReadValidatedBody(e, c.validator, resolveRequestSchemaID, resolveRequestSchema, &req); err != nil {
		return err
	}

	requestID := e.Request().Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	e.Response().Header().Set(requestIDHeader, requestID)

	ctx := e.Request().Context()

	result := c.resolver.Resolve(ctx, &req)

	logger.Debugc(ctx, "Resolve request served",
		logfields.WithRequestID(requestID),
		logfields.WithEntityDID(req.EntityDID),
		logfields.WithTrustLevel(string(result.Level)),
	)

	return util.WriteOutput(e)(&ResolveResponse{
		RequestID: requestID,
		Result:    result,
		Blocked:   c.policy.Block(result.Level, req.Role.Action()),
		Warning:   c.policy.Warn(result.Level),
	}, nil)
}

// GetMetadata returns the registry metadata. refresh=true bypasses the cache.
// GET /v1/registry/metadata.
func (c *Controller) GetMetadata(e echo.Context) error {
	if !c.enabled {
		return resterr.FromRegistryError("GetMetadata", resterr.ErrRegistryDisabled)
	}

	ctx := e.Request().Context()

	var (
		md  *trustregistry.Metadata
		err error
	)

	if e.QueryParam("refresh") == "true" {
		md, err = c.checker.RefreshMetadata(ctx)
	} else {
		md, err = c.registry.GetMetadata(ctx)
	}

	if err != nil {
		return resterr.FromRegistryError("GetMetadata", err)
	}

	return util.WriteOutput(e)(md, nil)
}

// GetStatus reports registry availability. It answers 200 even when the registry is down.
// GET /v1/registry/status.
func (c *Controller) GetStatus(e echo.Context) error {
	resp := &StatusResponse{
		Enabled:   c.enabled,
		CheckedAt: c.now().UTC(),
	}

	if c.enabled {
		md, err := c.registry.GetMetadata(e.Request().Context())
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Name = md.Name
			resp.Status = md.Status
			resp.Available = md.Status == trustregistry.StatusOperational
		}
	}

	return util.WriteOutput(e)(resp, nil)
}

// ClearCache drops every cached registry response.
// DELETE /v1/registry/cache.
func (c *Controller) ClearCache(e echo.Context) error {
	if !c.enabled {
		return resterr.FromRegistryError("ClearCache", resterr.ErrRegistryDisabled)
	}

	c.registry.ClearCache(e.Request().Context())

	logger.Info("Trust registry cache cleared")

	return e.NoContent(http.StatusNoContent)
}
