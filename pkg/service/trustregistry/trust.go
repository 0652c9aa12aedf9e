/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustregistry

import (
	"context"

	"github.com/trustbloc/wallet-trust/pkg/trust"
)

// MapAuthorizationToTrustLevel maps a direct authorization answer to a trust level.
func MapAuthorizationToTrustLevel(authorized bool) trust.Level {
	if authorized {
		return trust.LevelTrustedHigh
	}

	return trust.LevelUntrusted
}

// CheckIssuerTrust checks issuer authorization and reports the outcome as a trust.Result.
// Registry failures yield the unknown level with the error message.
func (s *Service) CheckIssuerTrust(ctx context.Context, issuerDID, credentialType string) *trust.Result {
	resp, err := s.CheckIssuerAuthorization(ctx, issuerDID, credentialType)

	return s.toTrustResult(issuerDID, credentialType, trust.ActionIssue, resp, err)
}

// CheckVerifierTrust checks verifier authorization and reports the outcome as a trust.Result.
func (s *Service) CheckVerifierTrust(ctx context.Context, verifierDID, credentialType string) *trust.Result {
	resp, err := s.CheckVerifierAuthorization(ctx, verifierDID, credentialType)

	return s.toTrustResult(verifierDID, credentialType, trust.ActionVerify, resp, err)
}

func (s *Service) toTrustResult(
	entityDID, credentialType string,
	action trust.Action,
	resp *AuthorizationResponse,
	err error,
) *trust.Result {
	result := &trust.Result{
		EntityDID:      entityDID,
		CredentialType: credentialType,
		Action:         action,
		CheckedAt:      s.now().UTC(),
	}

	if err != nil {
		result.Level = trust.LevelUnknown
		result.Message = err.Error()

		return result
	}

	result.Level = MapAuthorizationToTrustLevel(resp.Authorized)
	result.Authorized = resp.Authorized
	result.Message = resp.Message

	return result
}
