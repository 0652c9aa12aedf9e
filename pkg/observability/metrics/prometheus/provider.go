/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

const (
	labelOperation = "operation"
	labelCode      = "code"
	labelQueryType = "query_type"
	labelLevel     = "level"
	labelSource    = "source"
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When httpServer is not nil
// it is started by Create and is expected to serve the /metrics handler.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation registered with the default prometheus registerer.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics(prometheus.DefaultRegisterer)
	})

	return instance
}

// PromMetrics manages the metrics of the trust service.
type PromMetrics struct {
	registryRequestTime   *prometheus.HistogramVec
	registryRequestFailed *prometheus.CounterVec
	httpClientTime        *prometheus.HistogramVec
	cacheHits             *prometheus.CounterVec
	cacheMisses           *prometheus.CounterVec
	resolutionTime        prometheus.Histogram
	resolutions           *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *PromMetrics {
	pm := &PromMetrics{
		registryRequestTime: newHistogramVec(
			metrics.Registry, metrics.RegistryRequestTimeMetric,
			"The time (in seconds) it takes to complete a trust registry query, including retries.",
			labelOperation,
		),
		registryRequestFailed: newCounterVec(
			metrics.Registry, metrics.RegistryRequestFailedMetric,
			"The number of trust registry queries that failed after all retries.",
			labelOperation, labelCode,
		),
		httpClientTime: newHistogramVec(
			metrics.Registry, metrics.RegistryHTTPClientMetric,
			"The time (in seconds) of single HTTP round trips to the trust registry.",
			labelCode, "method",
		),
		cacheHits: newCounterVec(
			metrics.Cache, metrics.CacheHitMetric,
			"The number of registry responses served from cache.",
			labelQueryType,
		),
		cacheMisses: newCounterVec(
			metrics.Cache, metrics.CacheMissMetric,
			"The number of registry queries not found in cache.",
			labelQueryType,
		),
		resolutionTime: newHistogram(
			metrics.Resolver, metrics.ResolutionTimeMetric,
			"The time (in seconds) it takes to resolve federated trust for an entity.",
			nil,
		),
		resolutions: newCounterVec(
			metrics.Resolver, metrics.ResolutionOutcomeMetric,
			"The number of trust resolutions by resulting level and source.",
			labelLevel, labelSource,
		),
	}

	reg.MustRegister(
		pm.registryRequestTime, pm.registryRequestFailed, pm.httpClientTime,
		pm.cacheHits, pm.cacheMisses, pm.resolutionTime, pm.resolutions,
	)

	return pm
}

// RegistryRequestTime records the time of a trust registry query.
func (pm *PromMetrics) RegistryRequestTime(operation string, value time.Duration) {
	pm.registryRequestTime.WithLabelValues(operation).Observe(value.Seconds())

	logger.Debug("trust registry request time", log.WithDuration(value))
}

// RegistryRequestFailed increments the failure counter for the given operation and error code.
func (pm *PromMetrics) RegistryRequestFailed(operation, code string) {
	pm.registryRequestFailed.WithLabelValues(operation, code).Inc()
}

// CacheHit increments the cache hit counter.
func (pm *PromMetrics) CacheHit(queryType string) {
	pm.cacheHits.WithLabelValues(queryType).Inc()
}

// CacheMiss increments the cache miss counter.
func (pm *PromMetrics) CacheMiss(queryType string) {
	pm.cacheMisses.WithLabelValues(queryType).Inc()
}

// ResolutionTime records the time of a federated trust resolution.
func (pm *PromMetrics) ResolutionTime(value time.Duration) {
	pm.resolutionTime.Observe(value.Seconds())

	logger.Debug("federated trust resolution time", log.WithDuration(value))
}

// Resolution counts a resolution outcome.
func (pm *PromMetrics) Resolution(level, source string) {
	pm.resolutions.WithLabelValues(level, source).Inc()
}

// InstrumentHTTPTransport wraps transport so that every round trip to the registry is observed.
func (pm *PromMetrics) InstrumentHTTPTransport(transport http.RoundTripper) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return promhttp.InstrumentRoundTripperDuration(pm.httpClientTime, transport)
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogramVec(subsystem, name, help string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
