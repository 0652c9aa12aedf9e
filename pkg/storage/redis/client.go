/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 15 * time.Second
)

type clientOpts struct {
	masterName    string
	password      string
	db            int
	tlsConfig     *tls.Config
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// ClientOpt configures the redis client.
type ClientOpt func(opts *clientOpts)

// WithTraceProvider instruments every redis command with a span.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// WithMasterName selects a sentinel-backed failover client.
func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

// WithDB selects the logical database. Ignored by cluster clients.
func WithDB(db int) ClientOpt {
	return func(opts *clientOpts) {
		opts.db = db
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithTimeout bounds the initial ping and every Ping call.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// Client holds the connection to the redis deployment backing the shared response cache.
type Client struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// New connects to redis and verifies the connection with a ping. The kind of client depends on the options:
// a master name yields a sentinel-backed failover client, two or more addresses a cluster client and a
// single address a plain client.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{
		timeout: defaultTimeout,
	}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		DB:                    opt.db,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	if opt.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	c := &Client{
		client:  client,
		timeout: opt.timeout,
	}

	if err := c.Ping(context.Background()); err != nil {
		_ = client.Close() //nolint:errcheck

		return nil, err
	}

	return c, nil
}

// API exposes the underlying go-redis client.
func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Ping checks that redis answers within the client timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
