/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "wallet_trust"

	// Registry trust registry client operations.
	Registry                    = "registry"
	RegistryRequestTimeMetric   = "request_seconds"
	RegistryRequestFailedMetric = "request_failures_total"
	RegistryHTTPClientMetric    = "http_client_seconds"

	// Cache registry response cache.
	Cache           = "cache"
	CacheHitMetric  = "hits_total"
	CacheMissMetric = "misses_total"

	// Resolver federated trust resolution.
	Resolver                = "resolver"
	ResolutionTimeMetric    = "resolution_seconds"
	ResolutionOutcomeMetric = "resolutions_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	RegistryRequestTime(operation string, value time.Duration)
	RegistryRequestFailed(operation, code string)
	CacheHit(queryType string)
	CacheMiss(queryType string)
	ResolutionTime(value time.Duration)
	Resolution(level, source string)
	InstrumentHTTPTransport(transport http.RoundTripper) http.RoundTripper
}
