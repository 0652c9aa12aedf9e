/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package authoritydiscovery_test . Strategy

package authoritydiscovery

import (
	"context"

	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/trust"
)

var logger = log.New("authority-discovery")

// Strategy looks for a foreign trust authority. credential is a JSON document and may be empty.
type Strategy interface {
	Name() string
	Find(ctx context.Context, issuerDID string, credential []byte) (*trust.Framework, bool)
}

// Config defines configuration for Service.
type Config struct {
	DevMode           bool
	FallbackAuthority *trust.Anchor

	// Strategies replaces the default strategy chain when set.
	Strategies []Strategy
}

// Service discovers the trust framework a credential claims to be governed by.
type Service struct {
	strategies []Strategy
}

// New returns a new Service instance. The default chain is termsOfUse, evidence, DID document and,
// in dev mode with a fallback authority configured, the fallback.
func New(cfg *Config) *Service {
	if cfg == nil {
		cfg = &Config{}
	}

	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = []Strategy{TermsOfUse{}, Evidence{}, DIDDocument{}}

		if cfg.DevMode && cfg.FallbackAuthority != nil {
			strategies = append(strategies, &Fallback{Anchor: *cfg.FallbackAuthority})
		}
	}

	return &Service{strategies: strategies}
}

// FindAuthority runs the strategies in order and returns the first authority found. A credential that is
// not valid JSON is treated as absent.
func (s *Service) FindAuthority(ctx context.Context, issuerDID string, credential []byte) (*trust.Framework, bool) {
	if len(credential) > 0 && !gjson.ValidBytes(credential) {
		logger.Debugc(ctx, "Credential is not valid JSON, ignoring it", logfields.WithEntityDID(issuerDID))

		credential = nil
	}

	for _, strategy := range s.strategies {
		framework, ok := strategy.Find(ctx, issuerDID, credential)
		if !ok {
			continue
		}

		logger.Debugc(ctx, "Trust authority discovered",
			logfields.WithStrategy(strategy.Name()),
			logfields.WithEntityDID(issuerDID),
			logfields.WithTrustAuthority(framework.ID),
		)

		return framework, true
	}

	logger.Debugc(ctx, "No trust authority found", logfields.WithEntityDID(issuerDID))

	return nil, false
}
