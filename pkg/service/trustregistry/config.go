/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustregistry

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
	"github.com/trustbloc/wallet-trust/pkg/trust"
)

const (
	// DefaultRetryCount is the number of retries after a failed attempt.
	DefaultRetryCount = 1
	// DefaultRequestTimeout bounds a single HTTP attempt.
	DefaultRequestTimeout = 10 * time.Second
	// DefaultCacheTTL is the default lifetime of cached registry responses.
	DefaultCacheTTL = 5 * time.Minute
)

var (
	errNilConfig        = errors.New("trust registry config is nil")
	errMissingURL       = errors.New("trust registry url is required when the registry is enabled")
	errMissingEcosystem = errors.New("ecosystem did is required when the registry is enabled")
)

// Config configures the trust registry client. It is read once by NewService.
type Config struct {
	Enabled                 bool
	URL                     string
	EcosystemDID            string
	CacheTTL                time.Duration
	ShowWarningForUntrusted bool
	BlockUntrustedIssuers   bool
	BlockUntrustedVerifiers bool
	DevMode                 bool

	// FallbackAuthority is offered by authority discovery in dev mode.
	FallbackAuthority *trust.Anchor

	// LocalAnchor overrides EcosystemDID as the authority asked about recognition.
	LocalAnchor *trust.Anchor

	// RetryCount is the number of retries after the first attempt. Zero selects DefaultRetryCount,
	// a negative value disables retries.
	RetryCount int

	RequestTimeout time.Duration
	OAuth2         *OAuth2Config
	TLSConfig      *tls.Config
	HTTPClient     httpClient
	Logger         Logger
	Metrics        metrics.Metrics
	SharedCache    SharedCache
	Now            func() time.Time
}

// OAuth2Config enables client credentials authentication towards the registry.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Validate checks that an enabled configuration names a registry and an ecosystem.
func (c *Config) Validate() error {
	if c == nil {
		return errNilConfig
	}

	if !c.Enabled {
		return nil
	}

	if c.URL == "" {
		return errMissingURL
	}

	if c.EcosystemDID == "" {
		return errMissingEcosystem
	}

	return nil
}

// Policy returns the warn and block rules configured alongside the registry.
func (c *Config) Policy() trust.Policy {
	return trust.Policy{
		ShowWarningForUntrusted: c.ShowWarningForUntrusted,
		BlockUntrustedIssuers:   c.BlockUntrustedIssuers,
		BlockUntrustedVerifiers: c.BlockUntrustedVerifiers,
	}
}

func (c *Config) retryCount() int {
	switch {
	case c.RetryCount < 0:
		return 0
	case c.RetryCount == 0:
		return DefaultRetryCount
	default:
		return c.RetryCount
	}
}

func (c *Config) requestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}

	return c.RequestTimeout
}

func (c *Config) cacheTTL() time.Duration {
	if c.CacheTTL <= 0 {
		return DefaultCacheTTL
	}

	return c.CacheTTL
}
