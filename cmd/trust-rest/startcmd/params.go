/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/wallet-trust/cmd/common"
	"github.com/trustbloc/wallet-trust/pkg/observability/tracing"
	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the trust-rest instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "TRUST_REST_HOST_URL"

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "TRUST_REST_API_KEY"
	apiKeyFlagUsage = "API key expected in the X-API-Key header. Authentication is disabled when not set. " +
		commonEnvVarUsageText + apiKeyEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "TRUST_REST_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "TRUST_REST_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for trust-rest server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "TRUST_REST_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for trust-rest server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "TRUST_REST_TLS_KEY"

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "TRUST_REST_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLEnvKey    = "TRUST_REST_PROM_HTTP_URL"
	promHTTPURLFlagUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. " +
		commonEnvVarUsageText + promHTTPURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "TRUST_REST_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter type. Supported values: JAEGER, STDOUT. Tracing is disabled when " +
		"not set. " + commonEnvVarUsageText + tracingExporterEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "TRUST_REST_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Service name reported with the exported spans. Defaults to trust-rest. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	enableProfilerFlagName  = "enable-profiler"
	enableProfilerEnvKey    = "TRUST_REST_ENABLE_PROFILER"
	enableProfilerFlagUsage = "Serves pprof profiles under /debug/pprof. Defaults to false. " +
		commonEnvVarUsageText + enableProfilerEnvKey

	defaultTracingServiceName = "trust-rest"
	prometheusProviderName    = "prometheus"
)

type startupParameters struct {
	hostURL         string
	apiKey          string
	logLevel        string
	enableProfiler  bool
	tlsParameters   *tlsParameters
	metricsParams   *metricsParameters
	tracingParams   *tracingParams
	registryConfig  *trustregistry.Config
	redisParameters *common.RedisParameters
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type metricsParameters struct {
	providerName string
	promHTTPURL  string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	metricsParams, err := getMetricsParams(cmd)
	if err != nil {
		return nil, err
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	enableProfiler, err := common.GetBool(cmd, enableProfilerFlagName, enableProfilerEnvKey, false)
	if err != nil {
		return nil, err
	}

	registryConfig, err := common.RegistryParams(cmd)
	if err != nil {
		return nil, fmt.Errorf("trust registry: %w", err)
	}

	redisParams, err := common.RedisParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:         hostURL,
		apiKey:          cmdutils.GetUserSetOptionalVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey),
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		enableProfiler:  enableProfiler,
		tlsParameters:   tlsParams,
		metricsParams:   metricsParams,
		tracingParams:   tracingParams,
		registryConfig:  registryConfig,
		redisParameters: redisParams,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := common.GetBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

func getMetricsParams(cmd *cobra.Command) (*metricsParameters, error) {
	params := &metricsParameters{
		providerName: cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey),
	}

	switch params.providerName {
	case "":
		return params, nil
	case prometheusProviderName:
		promURL, err := cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
		if err != nil {
			return nil, err
		}

		params.promHTTPURL = promURL

		return params, nil
	default:
		return nil, fmt.Errorf("unsupported metrics provider: %s", params.providerName)
	}
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	params := &tracingParams{
		exporter:    cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey),
		serviceName: serviceName,
	}

	if !tracing.IsExportedSupported(params.exporter) {
		return nil, fmt.Errorf("unsupported tracing exporter: %s", params.exporter)
	}

	return params, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().String(apiKeyFlagName, "", apiKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().String(tlsCertificateFlagName, "", tlsCertificateFlagUsage)
	startCmd.Flags().String(tlsKeyFlagName, "", tlsKeyFlagUsage)
	startCmd.Flags().String(metricsProviderFlagName, "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)
	startCmd.Flags().String(tracingExporterFlagName, "", tracingExporterFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	startCmd.Flags().String(enableProfilerFlagName, "", enableProfilerFlagUsage)

	common.RegistryFlags(startCmd)
	common.RedisFlags(startCmd)
}
