/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package trustregistry . Service

package trustregistry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements trustregistry.ServiceInterface

type Service trustregistry.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) GetMetadata(ctx context.Context) (*trustregistry.Metadata, error) {
	ctx, span := w.tracer.Start(ctx, "trustregistry.GetMetadata")
	defer span.End()

	md, err := w.svc.GetMetadata(ctx)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("status", string(md.Status)))

	return md, nil
}

func (w *Wrapper) IsAvailable(ctx context.Context) bool {
	ctx, span := w.tracer.Start(ctx, "trustregistry.IsAvailable")
	defer span.End()

	available := w.svc.IsAvailable(ctx)

	span.SetAttributes(attribute.Bool("available", available))

	return available
}

func (w *Wrapper) CheckIssuerAuthorization(
	ctx context.Context,
	issuerDID, credentialType string,
) (*trustregistry.AuthorizationResponse, error) {
	ctx, span := w.tracer.Start(ctx, "trustregistry.CheckIssuerAuthorization")
	defer span.End()

	span.SetAttributes(attribute.String("issuer_did", issuerDID))
	span.SetAttributes(attribute.String("credential_type", credentialType))

	resp, err := w.svc.CheckIssuerAuthorization(ctx, issuerDID, credentialType)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Bool("authorized", resp.Authorized))

	return resp, nil
}

func (w *Wrapper) CheckVerifierAuthorization(
	ctx context.Context,
	verifierDID, credentialType string,
) (*trustregistry.AuthorizationResponse, error) {
	ctx, span := w.tracer.Start(ctx, "trustregistry.CheckVerifierAuthorization")
	defer span.End()

	span.SetAttributes(attribute.String("verifier_did", verifierDID))
	span.SetAttributes(attribute.String("credential_type", credentialType))

	resp, err := w.svc.CheckVerifierAuthorization(ctx, verifierDID, credentialType)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Bool("authorized", resp.Authorized))

	return resp, nil
}

func (w *Wrapper) CheckRecognition(
	ctx context.Context,
	foreignAuthorityDID, resource string,
) (*trustregistry.RecognitionResponse, error) {
	ctx, span := w.tracer.Start(ctx, "trustregistry.CheckRecognition")
	defer span.End()

	span.SetAttributes(attribute.String("foreign_authority_did", foreignAuthorityDID))
	span.SetAttributes(attribute.String("resource", resource))

	resp, err := w.svc.CheckRecognition(ctx, foreignAuthorityDID, resource)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Bool("recognized", resp.Recognized))

	return resp, nil
}

func (w *Wrapper) ClearCache(ctx context.Context) {
	ctx, span := w.tracer.Start(ctx, "trustregistry.ClearCache")
	defer span.End()

	w.svc.ClearCache(ctx)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if code := trustregistry.CodeOf(err); code != "" {
		span.SetAttributes(attribute.String("error_code", string(code)))
	}
}
