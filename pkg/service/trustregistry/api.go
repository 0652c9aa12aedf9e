/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package trustregistry_test -source=api.go -mock_names httpClient=MockHTTPClient,SharedCache=MockSharedCache

package trustregistry

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ServiceInterface is a client of a trust registry speaking the TRQP v2 authorization and recognition protocol.
type ServiceInterface interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	IsAvailable(ctx context.Context) bool
	CheckIssuerAuthorization(ctx context.Context, issuerDID, credentialType string) (*AuthorizationResponse, error)
	CheckVerifierAuthorization(ctx context.Context, verifierDID, credentialType string) (*AuthorizationResponse, error)
	CheckRecognition(ctx context.Context, foreignAuthorityDID, resource string) (*RecognitionResponse, error)
	ClearCache(ctx context.Context)
}

// Logger receives the request log of the client. *log.Log of logutil-go satisfies it.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// SharedCache is an optional second cache tier shared between service instances.
type SharedCache interface {
	Get(ctx context.Context, key string, value interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}
