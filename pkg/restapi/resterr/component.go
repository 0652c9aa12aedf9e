/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

// Component names the part of the service an error originated in.
type Component string

const (
	TrustRegistryComponent      Component = "trust-registry"
	AuthorityDiscoveryComponent Component = "authority-discovery"
	FederatedTrustComponent     Component = "federated-trust"
	SchemaValidatorComponent    Component = "schema-validator"
	RedisComponent              Component = "redis-service"
)
