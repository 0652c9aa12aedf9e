/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
	"github.com/trustbloc/wallet-trust/pkg/trust"
)

const commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

// Trust registry flags.
const (
	RegistryEnabledFlagName  = "trust-registry-enabled"
	RegistryEnabledEnvKey    = "TRUST_REGISTRY_ENABLED"
	registryEnabledFlagUsage = "Enables trust registry checks. Possible values [true] [false]. Defaults to false." +
		commonEnvVarUsageText + RegistryEnabledEnvKey

	RegistryURLFlagName  = "trust-registry-url"
	RegistryURLEnvKey    = "TRUST_REGISTRY_URL"
	registryURLFlagUsage = "Base URL of the trust registry. A trailing /v2 is ignored." +
		commonEnvVarUsageText + RegistryURLEnvKey

	EcosystemDIDFlagName  = "trust-registry-ecosystem-did"
	EcosystemDIDEnvKey    = "TRUST_REGISTRY_ECOSYSTEM_DID"
	ecosystemDIDFlagUsage = "DID of the ecosystem governance authority the registry answers for." +
		commonEnvVarUsageText + EcosystemDIDEnvKey

	CacheTTLFlagName  = "trust-registry-cache-ttl"
	CacheTTLEnvKey    = "TRUST_REGISTRY_CACHE_TTL"
	cacheTTLFlagUsage = "Default lifetime of cached registry responses, e.g. 5m. Defaults to 5m." +
		commonEnvVarUsageText + CacheTTLEnvKey

	ShowWarningFlagName  = "trust-registry-show-warning"
	ShowWarningEnvKey    = "TRUST_REGISTRY_SHOW_WARNING"
	showWarningFlagUsage = "Flags untrusted and unknown results with a warning. Defaults to true." +
		commonEnvVarUsageText + ShowWarningEnvKey

	BlockIssuersFlagName  = "trust-registry-block-untrusted-issuers"
	BlockIssuersEnvKey    = "TRUST_REGISTRY_BLOCK_UNTRUSTED_ISSUERS"
	blockIssuersFlagUsage = "Marks untrusted issuers as blocked. Defaults to false." +
		commonEnvVarUsageText + BlockIssuersEnvKey

	BlockVerifiersFlagName  = "trust-registry-block-untrusted-verifiers"
	BlockVerifiersEnvKey    = "TRUST_REGISTRY_BLOCK_UNTRUSTED_VERIFIERS"
	blockVerifiersFlagUsage = "Marks untrusted verifiers as blocked. Defaults to false." +
		commonEnvVarUsageText + BlockVerifiersEnvKey

	DevModeFlagName  = "trust-registry-dev-mode"
	DevModeEnvKey    = "TRUST_REGISTRY_DEV_MODE"
	devModeFlagUsage = "Enables the fallback authority during authority discovery. Defaults to false." +
		commonEnvVarUsageText + DevModeEnvKey

	FallbackDIDFlagName  = "trust-registry-fallback-did"
	FallbackDIDEnvKey    = "TRUST_REGISTRY_FALLBACK_DID"
	fallbackDIDFlagUsage = "DID of the fallback authority used in dev mode." +
		commonEnvVarUsageText + FallbackDIDEnvKey

	FallbackURLFlagName  = "trust-registry-fallback-url"
	FallbackURLEnvKey    = "TRUST_REGISTRY_FALLBACK_URL"
	fallbackURLFlagUsage = "Registry URL of the fallback authority used in dev mode." +
		commonEnvVarUsageText + FallbackURLEnvKey

	FallbackNameFlagName  = "trust-registry-fallback-name"
	FallbackNameEnvKey    = "TRUST_REGISTRY_FALLBACK_NAME"
	fallbackNameFlagUsage = "Display name of the fallback authority." +
		commonEnvVarUsageText + FallbackNameEnvKey

	LocalAnchorDIDFlagName  = "trust-registry-local-anchor-did"
	LocalAnchorDIDEnvKey    = "TRUST_REGISTRY_LOCAL_ANCHOR_DID"
	localAnchorDIDFlagUsage = "Authority asked about recognition of foreign authorities. " +
		"Defaults to the ecosystem DID." + commonEnvVarUsageText + LocalAnchorDIDEnvKey

	RetryCountFlagName  = "trust-registry-retry-count"
	RetryCountEnvKey    = "TRUST_REGISTRY_RETRY_COUNT"
	retryCountFlagUsage = "Number of retries after a failed registry request. Defaults to 1, negative disables." +
		commonEnvVarUsageText + RetryCountEnvKey

	RequestTimeoutFlagName  = "trust-registry-request-timeout"
	RequestTimeoutEnvKey    = "TRUST_REGISTRY_REQUEST_TIMEOUT"
	requestTimeoutFlagUsage = "Timeout of a single registry request attempt, e.g. 10s. Defaults to 10s." +
		commonEnvVarUsageText + RequestTimeoutEnvKey

	OAuthTokenURLFlagName  = "trust-registry-oauth-token-url"
	OAuthTokenURLEnvKey    = "TRUST_REGISTRY_OAUTH_TOKEN_URL"
	oAuthTokenURLFlagUsage = "Token endpoint for client credentials authentication towards the registry. " +
		"Authentication is disabled when not set." + commonEnvVarUsageText + OAuthTokenURLEnvKey

	OAuthClientIDFlagName  = "trust-registry-oauth-client-id"
	OAuthClientIDEnvKey    = "TRUST_REGISTRY_OAUTH_CLIENT_ID"
	oAuthClientIDFlagUsage = "OAuth2 client ID." + commonEnvVarUsageText + OAuthClientIDEnvKey

	OAuthClientSecretFlagName  = "trust-registry-oauth-client-secret" //nolint:gosec
	OAuthClientSecretEnvKey    = "TRUST_REGISTRY_OAUTH_CLIENT_SECRET" //nolint:gosec
	oAuthClientSecretFlagUsage = "OAuth2 client secret." + commonEnvVarUsageText + OAuthClientSecretEnvKey

	OAuthScopesFlagName  = "trust-registry-oauth-scopes"
	OAuthScopesEnvKey    = "TRUST_REGISTRY_OAUTH_SCOPES"
	oAuthScopesFlagUsage = "Comma-separated OAuth2 scopes." + commonEnvVarUsageText + OAuthScopesEnvKey
)

// RegistryFlags registers the trust registry flags.
func RegistryFlags(cmd *cobra.Command) {
	cmd.Flags().String(RegistryEnabledFlagName, "", registryEnabledFlagUsage)
	cmd.Flags().String(RegistryURLFlagName, "", registryURLFlagUsage)
	cmd.Flags().String(EcosystemDIDFlagName, "", ecosystemDIDFlagUsage)
	cmd.Flags().String(CacheTTLFlagName, "", cacheTTLFlagUsage)
	cmd.Flags().String(ShowWarningFlagName, "", showWarningFlagUsage)
	cmd.Flags().String(BlockIssuersFlagName, "", blockIssuersFlagUsage)
	cmd.Flags().String(BlockVerifiersFlagName, "", blockVerifiersFlagUsage)
	cmd.Flags().String(DevModeFlagName, "", devModeFlagUsage)
	cmd.Flags().String(FallbackDIDFlagName, "", fallbackDIDFlagUsage)
	cmd.Flags().String(FallbackURLFlagName, "", fallbackURLFlagUsage)
	cmd.Flags().String(FallbackNameFlagName, "", fallbackNameFlagUsage)
	cmd.Flags().String(LocalAnchorDIDFlagName, "", localAnchorDIDFlagUsage)
	cmd.Flags().String(RetryCountFlagName, "", retryCountFlagUsage)
	cmd.Flags().String(RequestTimeoutFlagName, "", requestTimeoutFlagUsage)
	cmd.Flags().String(OAuthTokenURLFlagName, "", oAuthTokenURLFlagUsage)
	cmd.Flags().String(OAuthClientIDFlagName, "", oAuthClientIDFlagUsage)
	cmd.Flags().String(OAuthClientSecretFlagName, "", oAuthClientSecretFlagUsage)
	cmd.Flags().StringSlice(OAuthScopesFlagName, []string{}, oAuthScopesFlagUsage)
}

// RegistryParams reads the trust registry configuration. The returned config is validated.
func RegistryParams(cmd *cobra.Command) (*trustregistry.Config, error) {
	cfg := &trustregistry.Config{
		URL:          cmdutils.GetUserSetOptionalVarFromString(cmd, RegistryURLFlagName, RegistryURLEnvKey),
		EcosystemDID: cmdutils.GetUserSetOptionalVarFromString(cmd, EcosystemDIDFlagName, EcosystemDIDEnvKey),
	}

	var err error

	bools := []struct {
		flag, env string
		def       bool
		dst       *bool
	}{
		{RegistryEnabledFlagName, RegistryEnabledEnvKey, false, &cfg.Enabled},
		{ShowWarningFlagName, ShowWarningEnvKey, true, &cfg.ShowWarningForUntrusted},
		{BlockIssuersFlagName, BlockIssuersEnvKey, false, &cfg.BlockUntrustedIssuers},
		{BlockVerifiersFlagName, BlockVerifiersEnvKey, false, &cfg.BlockUntrustedVerifiers},
		{DevModeFlagName, DevModeEnvKey, false, &cfg.DevMode},
	}

	for _, b := range bools {
		if *b.dst, err = GetBool(cmd, b.flag, b.env, b.def); err != nil {
			return nil, err
		}
	}

	if cfg.CacheTTL, err = GetDuration(cmd, CacheTTLFlagName, CacheTTLEnvKey, trustregistry.DefaultCacheTTL); err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = GetDuration(cmd, RequestTimeoutFlagName, RequestTimeoutEnvKey,
		trustregistry.DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	if retries := cmdutils.GetUserSetOptionalVarFromString(cmd, RetryCountFlagName, RetryCountEnvKey); retries != "" {
		if cfg.RetryCount, err = strconv.Atoi(retries); err != nil {
			return nil, fmt.Errorf("%s: invalid value [%s]: %w", RetryCountFlagName, retries, err)
		}
	}

	fallbackDID := cmdutils.GetUserSetOptionalVarFromString(cmd, FallbackDIDFlagName, FallbackDIDEnvKey)
	if fallbackDID != "" {
		cfg.FallbackAuthority = &trust.Anchor{
			DID:  fallbackDID,
			URL:  cmdutils.GetUserSetOptionalVarFromString(cmd, FallbackURLFlagName, FallbackURLEnvKey),
			Name: cmdutils.GetUserSetOptionalVarFromString(cmd, FallbackNameFlagName, FallbackNameEnvKey),
		}
	}

	anchorDID := cmdutils.GetUserSetOptionalVarFromString(cmd, LocalAnchorDIDFlagName, LocalAnchorDIDEnvKey)
	if anchorDID != "" {
		cfg.LocalAnchor = &trust.Anchor{DID: anchorDID, URL: cfg.URL}
	}

	tokenURL := cmdutils.GetUserSetOptionalVarFromString(cmd, OAuthTokenURLFlagName, OAuthTokenURLEnvKey)
	if tokenURL != "" {
		cfg.OAuth2 = &trustregistry.OAuth2Config{
			TokenURL:     tokenURL,
			ClientID:     cmdutils.GetUserSetOptionalVarFromString(cmd, OAuthClientIDFlagName, OAuthClientIDEnvKey),
			ClientSecret: cmdutils.GetUserSetOptionalVarFromString(cmd, OAuthClientSecretFlagName,
				OAuthClientSecretEnvKey),
			Scopes:       cmdutils.GetUserSetOptionalCSVVar(cmd, OAuthScopesFlagName, OAuthScopesEnvKey),
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetBool reads an optional boolean flag.
func GetBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	value := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid value [%s]: %w", flagName, value, err)
	}

	return b, nil
}

// GetDuration reads an optional duration flag.
func GetDuration(cmd *cobra.Command, flagName, envKey string, defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("%s: invalid value [%s]: %w", flagName, timeoutStr, err)
	}

	return timeout, nil
}
