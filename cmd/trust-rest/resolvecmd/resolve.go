/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolvecmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/cmd/common"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics/noop"
	"github.com/trustbloc/wallet-trust/pkg/restapi/v1/trustapi"
	"github.com/trustbloc/wallet-trust/pkg/service/federatedtrust"
)

var logger = log.New("trust-resolve")

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	entityDIDFlagName  = "entity-did"
	entityDIDEnvKey    = "TRUST_RESOLVE_ENTITY_DID"
	entityDIDFlagUsage = "DID of the issuer or verifier to resolve. " + commonEnvVarUsageText + entityDIDEnvKey

	roleFlagName  = "role"
	roleEnvKey    = "TRUST_RESOLVE_ROLE"
	roleFlagUsage = "Role of the entity: issuer or verifier. Defaults to issuer. " + commonEnvVarUsageText + roleEnvKey

	credentialTypeFlagName  = "credential-type"
	credentialTypeEnvKey    = "TRUST_RESOLVE_CREDENTIAL_TYPE"
	credentialTypeFlagUsage = "Credential type to check authorization for. Defaults to Credential. " +
		commonEnvVarUsageText + credentialTypeEnvKey

	credentialFileFlagName  = "credential-file"
	credentialFileEnvKey    = "TRUST_RESOLVE_CREDENTIAL_FILE"
	credentialFileFlagUsage = "Path of a JSON credential searched for a foreign trust authority. " +
		"Use - to read it from standard input. " + commonEnvVarUsageText + credentialFileEnvKey

	stdinPath = "-"
)

var errCredentialNotObject = errors.New("credential must be a JSON object")

// GetResolveCmd returns the Cobra resolve command.
func GetResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve federated trust of an entity",
		Long:  "Resolve federated trust of an issuer or verifier against the configured trust registry and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve(cmd)
		},
	}

	createFlags(cmd)

	return cmd
}

func resolve(cmd *cobra.Command) error {
	common.SetLogLevels(logger,
		cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey))

	req, err := getRequest(cmd)
	if err != nil {
		return err
	}

	registryCfg, err := common.RegistryParams(cmd)
	if err != nil {
		return fmt.Errorf("trust registry: %w", err)
	}

	services, err := common.NewTrustServices(registryCfg, trace.NewNoopTracerProvider().Tracer(""), noop.GetMetrics())
	if err != nil {
		return err
	}

	result := services.Resolver.Resolve(cmd.Context(), req)

	policy := registryCfg.Policy()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(&trustapi.ResolveResponse{
		RequestID: uuid.NewString(),
		Result:    result,
		Blocked:   policy.Block(result.Level, req.Role.Action()),
		Warning:   policy.Warn(result.Level),
	})
}

func getRequest(cmd *cobra.Command) (*federatedtrust.Request, error) {
	entityDID, err := cmdutils.GetUserSetVarFromString(cmd, entityDIDFlagName, entityDIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	req := &federatedtrust.Request{
		EntityDID:      entityDID,
		Role:           federatedtrust.Role(cmdutils.GetUserSetOptionalVarFromString(cmd, roleFlagName, roleEnvKey)),
		CredentialType: cmdutils.GetUserSetOptionalVarFromString(cmd, credentialTypeFlagName, credentialTypeEnvKey),
	}

	switch req.Role {
	case "", federatedtrust.RoleIssuer, federatedtrust.RoleVerifier:
	default:
		return nil, fmt.Errorf("unsupported role: %s", req.Role)
	}

	path := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialFileFlagName, credentialFileEnvKey)
	if path == "" {
		return req, nil
	}

	credential, err := readCredential(cmd, path)
	if err != nil {
		return nil, err
	}

	req.Credential = credential

	return req, nil
}

func readCredential(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		credential []byte
		err        error
	)

	if path == stdinPath {
		credential, err = io.ReadAll(cmd.InOrStdin())
	} else {
		credential, err = os.ReadFile(path) //nolint:gosec
	}

	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	if !gjson.ValidBytes(credential) || !gjson.ParseBytes(credential).IsObject() {
		return nil, errCredentialNotObject
	}

	return credential, nil
}

func createFlags(cmd *cobra.Command) {
	cmd.Flags().String(entityDIDFlagName, "", entityDIDFlagUsage)
	cmd.Flags().String(roleFlagName, "", roleFlagUsage)
	cmd.Flags().String(credentialTypeFlagName, "", credentialTypeFlagUsage)
	cmd.Flags().String(credentialFileFlagName, "", credentialFileFlagUsage)
	cmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.RegistryFlags(cmd)
}
