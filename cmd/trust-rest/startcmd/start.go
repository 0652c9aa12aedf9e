/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echopprof "github.com/sevenNt/echo-pprof"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/cmd/common"
	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/observability/health/healthchecks"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics/noop"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/wallet-trust/pkg/observability/tracing"
	"github.com/trustbloc/wallet-trust/pkg/restapi/resterr"
	"github.com/trustbloc/wallet-trust/pkg/restapi/v1/mw"
	"github.com/trustbloc/wallet-trust/pkg/restapi/v1/trustapi"
	"github.com/trustbloc/wallet-trust/pkg/restapi/v1/version"
	"github.com/trustbloc/wallet-trust/pkg/storage/redis"
	"github.com/trustbloc/wallet-trust/pkg/storage/redis/responsestore"
	"github.com/trustbloc/wallet-trust/pkg/validator/jsonschema"
)

var logger = log.New("trust-rest")

const (
	healthCheckEndpoint = "/healthcheck"
	shutdownTimeout     = 10 * time.Second
	readHeaderTimeout   = 10 * time.Second
)

type server interface {
	ListenAndServe(ctx context.Context, host, certFile, keyFile string, router http.Handler) error
}

// HTTPServer serves the API with the standard Go HTTP server and shuts it down when the context is done.
type HTTPServer struct{}

// ListenAndServe blocks until the server fails or ctx is done.
func (s *HTTPServer) ListenAndServe(ctx context.Context, host, certFile, keyFile string, router http.Handler) error {
	srv := &http.Server{
		Addr:              host,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		if certFile != "" && keyFile != "" {
			errCh <- srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			errCh <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		logger.Info("Shutting down trust-rest")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

type options struct {
	version string
	server  server
}

// StartOpts configures the start command.
type StartOpts func(opts *options)

// WithVersion sets the version reported by /version.
func WithVersion(version string) StartOpts {
	return func(opts *options) {
		opts.version = version
	}
}

// WithHTTPServer replaces the HTTP server.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *options) {
		opts.server = srv
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start trust-rest",
		Long:  "Start trust-rest, the wallet trust verification REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			o := &options{server: &HTTPServer{}}

			for _, opt := range opts {
				opt(o)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return startServer(ctx, params, o)
		},
	}
}

func startServer(ctx context.Context, params *startupParameters, opts *options) error {
	common.SetLogLevels(logger, params.logLevel)

	shutdownTracing, tracer, err := tracing.Initialize(
		params.tracingParams.exporter,
		params.tracingParams.serviceName,
		tracing.WithServiceVersion(opts.version),
		tracing.WithRegistry(params.registryConfig.URL, params.registryConfig.EcosystemDID),
	)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	metricsProvider, err := createMetricsProvider(params.metricsParams)
	if err != nil {
		return err
	}

	defer func() {
		if destroyErr := metricsProvider.Destroy(); destroyErr != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(destroyErr))
		}
	}()

	e, ready, cleanup, err := buildEcho(params, opts.version, tracer, metricsProvider.Metrics())
	if err != nil {
		return err
	}

	defer cleanup()

	ready.Ready(true)

	logger.Info("Starting trust-rest", log.WithURL(params.hostURL),
		logfields.WithAdditionalMessage(fmt.Sprintf("registry enabled: %t", params.registryConfig.Enabled)))

	return opts.server.ListenAndServe(ctx, params.hostURL,
		params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath, e)
}

func buildEcho(
	params *startupParameters,
	ver string,
	tracer trace.Tracer,
	m metrics.Metrics,
) (*echo.Echo, *readiness, func(), error) {
	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get cert pool: %w", err)
	}

	tlsConfig := &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}

	registryCfg := params.registryConfig
	registryCfg.TLSConfig = tlsConfig

	cleanup := func() {}

	healthCfg := &healthchecks.Config{}

	if params.redisParameters.Enabled() {
		redisOpts := []redis.ClientOpt{redis.WithTraceProvider(otel.GetTracerProvider())}
		if params.redisParameters.TLS {
			redisOpts = append(redisOpts, redis.WithTLSConfig(tlsConfig))
		}

		redisClient, redisErr := common.ConnectRedis(params.redisParameters, logger, redisOpts...)
		if redisErr != nil {
			return nil, nil, nil, redisErr
		}

		cleanup = func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warn("Failed to close redis client", log.WithError(closeErr))
			}
		}

		var storeOpts []responsestore.Opt
		if params.redisParameters.KeyPrefix != "" {
			storeOpts = append(storeOpts, responsestore.WithKeyPrefix(params.redisParameters.KeyPrefix))
		}

		registryCfg.SharedCache = responsestore.New(redisClient, storeOpts...)
		healthCfg.Redis = redisClient
	}

	services, err := common.NewTrustServices(registryCfg, tracer, m)
	if err != nil {
		cleanup()

		return nil, nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper:   InfraSkipper,
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Debugc(c.Request().Context(), "HTTP request served",
				log.WithURL(v.URI), log.WithHTTPStatus(v.Status), logfields.WithMethod(v.Method))

			return nil
		},
	}))
	e.Use(mw.APIKeyAuth(params.apiKey))

	if params.enableProfiler {
		echopprof.Wrap(e)
	}

	ready := newReadinessController(e)

	trustCfg := &trustapi.Config{
		Enabled:   registryCfg.Enabled,
		Resolver:  services.Resolver,
		Policy:    registryCfg.Policy(),
		Validator: jsonschema.NewCachingValidator(),
	}

	versionCfg := version.Config{Version: ver}

	if services.Registry != nil {
		trustCfg.Registry = services.TracedRegistry
		trustCfg.Checker = services.Registry
		versionCfg.Registry = services.TracedRegistry
		healthCfg.Registry = services.Registry
	}

	trustapi.NewController(e, trustCfg)
	version.NewController(e, versionCfg)

	e.GET(healthCheckEndpoint, echo.WrapHandler(healthchecks.NewHandler(healthchecks.Get(healthCfg))))

	return e, ready, cleanup, nil
}

func createMetricsProvider(params *metricsParameters) (metrics.Provider, error) {
	if params.providerName != prometheusProviderName {
		return noop.NewProvider(), nil
	}

	handler := prometheus.NewHandler()

	mux := http.NewServeMux()
	mux.Handle(handler.Path(), handler.Handler())

	provider := prometheus.NewPrometheusProvider(&http.Server{
		Addr:              params.promHTTPURL,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	})

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider, nil
}
