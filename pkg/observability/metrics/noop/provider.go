/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"net/http"
	"time"

	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) RegistryRequestTime(_ string, _ time.Duration) {}
func (n *NoMetrics) RegistryRequestFailed(_, _ string)             {}
func (n *NoMetrics) CacheHit(_ string)                             {}
func (n *NoMetrics) CacheMiss(_ string)                            {}
func (n *NoMetrics) ResolutionTime(_ time.Duration)                {}
func (n *NoMetrics) Resolution(_, _ string)                        {}

// InstrumentHTTPTransport returns the transport unchanged.
func (n *NoMetrics) InstrumentHTTPTransport(transport http.RoundTripper) http.RoundTripper {
	return transport
}

type provider struct{}

// NewProvider returns a metrics provider that records nothing.
func NewProvider() metrics.Provider {
	return &provider{}
}

func (p *provider) Create() error            { return nil }
func (p *provider) Destroy() error           { return nil }
func (p *provider) Metrics() metrics.Metrics { return GetMetrics() }
