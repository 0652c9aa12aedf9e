/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package federatedtrust . Service

package federatedtrust

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/wallet-trust/pkg/service/federatedtrust"
)

type Service interface {
	Resolve(ctx context.Context, req *federatedtrust.Request) *federatedtrust.Result
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

// Resolve traces a resolution. Subject claims and proofs of the credential are redacted from the span.
func (w *Wrapper) Resolve(ctx context.Context, req *federatedtrust.Request) *federatedtrust.Result {
	ctx, span := w.tracer.Start(ctx, "federatedtrust.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("entity_did", req.EntityDID))
	span.SetAttributes(attribute.String("role", string(req.Role)))
	span.SetAttributes(attribute.String("credential_type", req.CredentialType))

	if len(req.Credential) > 0 {
		span.SetAttributes(attributeutil.RawJSON("credential", req.Credential, attributeutil.WithCredentialRedaction()))
	}

	result := w.svc.Resolve(ctx, req)

	span.SetAttributes(
		attribute.String("trust_level", string(result.Level)),
		attribute.String("trust_source", string(result.TrustSource)),
		attribute.Bool("authorized", result.Authorized),
	)

	if result.TrustAuthority != nil {
		span.SetAttributes(attribute.String("trust_authority", result.TrustAuthority.ID))
	}

	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Message)
	}

	return result
}
