/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/storage/redis"
)

const (
	// RedisURLFlagName is the redis address list.
	RedisURLFlagName = "redis-url"
	// RedisURLEnvKey is the redis address list.
	RedisURLEnvKey = "REDIS_URL"
	// RedisURLFlagUsage describes the usage.
	RedisURLFlagUsage = "Comma-separated list of redis addresses (host:port) backing the shared registry " +
		"response cache. When not set, registry responses are cached in memory only. " +
		"Alternatively, this can be set with the following environment variable: " + RedisURLEnvKey

	// RedisMasterNameFlagName is the sentinel master name.
	RedisMasterNameFlagName = "redis-master-name"
	// RedisMasterNameEnvKey is the sentinel master name.
	RedisMasterNameEnvKey = "REDIS_MASTER_NAME"
	// RedisMasterNameFlagUsage describes the usage.
	RedisMasterNameFlagUsage = "Sentinel master name. Selects a failover client. " +
		"Alternatively, this can be set with the following environment variable: " + RedisMasterNameEnvKey

	// RedisPasswordFlagName is the redis password.
	RedisPasswordFlagName = "redis-password" //nolint:gosec
	// RedisPasswordEnvKey is the redis password.
	RedisPasswordEnvKey = "REDIS_PASSWORD" //nolint:gosec
	// RedisPasswordFlagUsage describes the usage.
	RedisPasswordFlagUsage = "Redis password. " +
		"Alternatively, this can be set with the following environment variable: " + RedisPasswordEnvKey

	// RedisKeyPrefixFlagName is the namespace of cached registry responses.
	RedisKeyPrefixFlagName = "redis-key-prefix"
	// RedisKeyPrefixEnvKey is the namespace of cached registry responses.
	RedisKeyPrefixEnvKey = "REDIS_KEY_PREFIX"
	// RedisKeyPrefixFlagUsage describes the usage.
	RedisKeyPrefixFlagUsage = "Prefix of the keys holding cached registry responses. " +
		"Alternatively, this can be set with the following environment variable: " + RedisKeyPrefixEnvKey

	// RedisTLSFlagName enables TLS towards redis.
	RedisTLSFlagName = "redis-tls"
	// RedisTLSEnvKey enables TLS towards redis.
	RedisTLSEnvKey = "REDIS_TLS"
	// RedisTLSFlagUsage describes the usage.
	RedisTLSFlagUsage = "Connects to redis over TLS using the configured CA certs. Defaults to false. " +
		"Alternatively, this can be set with the following environment variable: " + RedisTLSEnvKey

	// RedisTimeoutFlagName is the connection timeout.
	RedisTimeoutFlagName = "redis-timeout"
	// RedisTimeoutEnvKey is the connection timeout.
	RedisTimeoutEnvKey = "REDIS_TIMEOUT"
	// RedisTimeoutFlagUsage describes the usage.
	RedisTimeoutFlagUsage = "Total time in seconds to wait until redis is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + RedisTimeoutEnvKey

	// RedisTimeoutDefault is the default connection timeout in seconds.
	RedisTimeoutDefault = 30
)

var errRedisNotConfigured = errors.New("redis url is not set")

// RedisParameters holds redis configuration.
type RedisParameters struct {
	Addrs      []string
	MasterName string
	Password   string
	KeyPrefix  string
	TLS        bool
	Timeout    uint64
}

// Enabled reports whether a redis deployment is configured.
func (p *RedisParameters) Enabled() bool {
	return p != nil && len(p.Addrs) > 0
}

// RedisFlags registers the redis flags.
func RedisFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice(RedisURLFlagName, []string{}, RedisURLFlagUsage)
	cmd.Flags().String(RedisMasterNameFlagName, "", RedisMasterNameFlagUsage)
	cmd.Flags().String(RedisPasswordFlagName, "", RedisPasswordFlagUsage)
	cmd.Flags().String(RedisKeyPrefixFlagName, "", RedisKeyPrefixFlagUsage)
	cmd.Flags().String(RedisTLSFlagName, "", RedisTLSFlagUsage)
	cmd.Flags().String(RedisTimeoutFlagName, "", RedisTimeoutFlagUsage)
}

// RedisParams fetches the redis parameters configured for this command.
func RedisParams(cmd *cobra.Command) (*RedisParameters, error) {
	params := &RedisParameters{
		Addrs:      cmdutils.GetUserSetOptionalCSVVar(cmd, RedisURLFlagName, RedisURLEnvKey),
		MasterName: cmdutils.GetUserSetOptionalVarFromString(cmd, RedisMasterNameFlagName, RedisMasterNameEnvKey),
		Password:   cmdutils.GetUserSetOptionalVarFromString(cmd, RedisPasswordFlagName, RedisPasswordEnvKey),
		KeyPrefix:  cmdutils.GetUserSetOptionalVarFromString(cmd, RedisKeyPrefixFlagName, RedisKeyPrefixEnvKey),
		Timeout:    RedisTimeoutDefault,
	}

	var err error

	if params.TLS, err = GetBool(cmd, RedisTLSFlagName, RedisTLSEnvKey, false); err != nil {
		return nil, err
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, RedisTimeoutFlagName, RedisTimeoutEnvKey)
	if timeout != "" {
		t, parseErr := strconv.ParseUint(timeout, 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse redis timeout %s: %w", timeout, parseErr)
		}

		params.Timeout = t
	}

	return params, nil
}

// ConnectRedis connects to redis, retrying once per second until the configured timeout is spent.
func ConnectRedis(params *RedisParameters, logger *log.Log, opts ...redis.ClientOpt) (*redis.Client, error) {
	if !params.Enabled() {
		return nil, errRedisNotConfigured
	}

	if params.MasterName != "" {
		opts = append(opts, redis.WithMasterName(params.MasterName))
	}

	if params.Password != "" {
		opts = append(opts, redis.WithPassword(params.Password))
	}

	var client *redis.Client

	err := retry(
		func() error {
			var connErr error
			client, connErr = redis.New(params.Addrs, opts...)
			return connErr
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to redis, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
