/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/wallet-trust/pkg/observability/health/healthutil"
	redischeck "github.com/trustbloc/wallet-trust/pkg/observability/health/redis"
	registrycheck "github.com/trustbloc/wallet-trust/pkg/observability/health/registry"
)

const defaultTimeout = 10 * time.Second

type registryService interface {
	RequireAvailable(ctx context.Context) error
}

type redisClient interface {
	Ping(ctx context.Context) error
}

// Config lists the dependencies to check. Nil dependencies are skipped.
type Config struct {
	Registry registryService
	Redis    redisClient
}

// Get returns the health checks of the configured dependencies.
func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.Registry != nil {
		checks = append(checks, health.Check{
			Name:  "trust-registry",
			Check: registrycheck.New(config.Registry),
		})
	}

	if config.Redis != nil {
		checks = append(checks, health.Check{
			Name:  "redis",
			Check: redischeck.New(config.Redis),
		})
	}

	return checks
}

// NewHandler runs checks on every request and writes the JSON report, with response times per component.
func NewHandler(checks []health.Check) http.Handler {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(defaultTimeout),
		health.WithInterceptors(responseTimes.Interceptor()),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	return health.NewHandler(health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
	)
}
