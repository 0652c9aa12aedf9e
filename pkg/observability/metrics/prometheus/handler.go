/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler implements a Prometheus /metrics endpoint.
type Handler struct {
	gatherer prometheus.Gatherer
}

// NewHandler returns a new /metrics endpoint which returns Prometheus formatted statistics
// from the default gatherer.
func NewHandler() *Handler {
	return &Handler{gatherer: prometheus.DefaultGatherer}
}

// Path returns the base path of the target URL for this Handler.
func (h *Handler) Path() string {
	return "/metrics"
}

// Method returns the HTTP method, which is always GET.
func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the Handler that should be invoked when an HTTP GET is requested to the target endpoint.
// This Handler must be registered with an HTTP server.
func (h *Handler) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	)
}
