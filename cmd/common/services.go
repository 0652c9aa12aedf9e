/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
	ftwrapper "github.com/trustbloc/wallet-trust/pkg/observability/tracing/wrappers/federatedtrust"
	trwrapper "github.com/trustbloc/wallet-trust/pkg/observability/tracing/wrappers/trustregistry"
	"github.com/trustbloc/wallet-trust/pkg/service/authoritydiscovery"
	"github.com/trustbloc/wallet-trust/pkg/service/federatedtrust"
	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
)

// TrustServices is the wired trust verification stack.
type TrustServices struct {
	// Registry and TracedRegistry are nil when the registry is disabled.
	Registry       *trustregistry.Service
	TracedRegistry *trwrapper.Wrapper

	Discovery *authoritydiscovery.Service
	Resolver  *ftwrapper.Wrapper
}

// NewTrustServices builds the registry client, authority discovery and the federated resolver.
func NewTrustServices(cfg *trustregistry.Config, tracer trace.Tracer, m metrics.Metrics) (*TrustServices, error) {
	cfg.Metrics = m

	s := &TrustServices{
		Discovery: authoritydiscovery.New(&authoritydiscovery.Config{
			DevMode:           cfg.DevMode,
			FallbackAuthority: cfg.FallbackAuthority,
		}),
	}

	resolverCfg := &federatedtrust.Config{
		Enabled:   cfg.Enabled,
		Discovery: s.Discovery,
		Metrics:   m,
	}

	if cfg.Enabled {
		svc, err := trustregistry.NewService(cfg)
		if err != nil {
			return nil, fmt.Errorf("create trust registry service: %w", err)
		}

		s.Registry = svc
		s.TracedRegistry = trwrapper.Wrap(svc, tracer)
		resolverCfg.Registry = s.TracedRegistry
	}

	s.Resolver = ftwrapper.Wrap(federatedtrust.NewResolver(resolverCfg), tracer)

	return s, nil
}
