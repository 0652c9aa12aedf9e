/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"context"
	"fmt"
)

type availabilityChecker interface {
	RequireAvailable(ctx context.Context) error
}

// New returns a health check that passes while the trust registry reports the operational status.
func New(svc availabilityChecker) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := svc.RequireAvailable(ctx); err != nil {
			return fmt.Errorf("trust registry unavailable: %w", err)
		}

		return nil
	}
}
