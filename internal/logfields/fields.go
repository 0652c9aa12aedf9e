/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldAttempt           = "attempt"
	FieldCacheKey          = "cacheKey"
	FieldCommand           = "command"
	FieldCredentialType    = "credentialType"
	FieldEntityDID         = "entityDID"
	FieldEvent             = "event"
	FieldGeneration        = "generation"
	FieldJSONSchemaID      = "jsonSchemaID"
	FieldMethod            = "method"
	FieldOperation         = "operation"
	FieldRequestID         = "requestID"
	FieldRequestBody       = "requestBody"
	FieldResponseBody      = "responseBody"
	FieldRetries           = "retries"
	FieldSleep             = "sleep"
	FieldStrategy          = "strategy"
	FieldTrustAuthority    = "trustAuthority"
	FieldTrustLevel        = "trustLevel"
	FieldTrustSource       = "trustSource"
	FieldUserLogLevel      = "userLogLevel"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithAttempt sets the Attempt field (1-based number of the HTTP attempt).
func WithAttempt(attempt int) zap.Field {
	return zap.Int(FieldAttempt, attempt)
}

// WithCacheKey sets the CacheKey field.
func WithCacheKey(key string) zap.Field {
	return zap.String(FieldCacheKey, key)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithEntityDID sets the EntityDID field.
func WithEntityDID(did string) zap.Field {
	return zap.String(FieldEntityDID, did)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithGeneration sets the Generation field.
func WithGeneration(generation uint64) zap.Field {
	return zap.Uint64(FieldGeneration, generation)
}

// WithJSONSchemaID sets the JSONSchemaID field.
func WithJSONSchemaID(id string) zap.Field {
	return zap.String(FieldJSONSchemaID, id)
}

// WithMethod sets the HTTP Method field.
func WithMethod(method string) zap.Field {
	return zap.String(FieldMethod, method)
}

// WithOperation sets the Operation field.
func WithOperation(operation string) zap.Field {
	return zap.String(FieldOperation, operation)
}

// WithRequestID sets the RequestID field.
func WithRequestID(id string) zap.Field {
	return zap.String(FieldRequestID, id)
}

// WithRequestBody sets the RequestBody field.
func WithRequestBody(body []byte) zap.Field {
	return zap.ByteString(FieldRequestBody, body)
}

// WithResponseBody sets the ResponseBody field.
func WithResponseBody(body []byte) zap.Field {
	return zap.ByteString(FieldResponseBody, body)
}

// WithRetries sets the Retries field.
func WithRetries(retries int) zap.Field {
	return zap.Int(FieldRetries, retries)
}

// WithSleep sets the sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithStrategy sets the discovery Strategy field.
func WithStrategy(strategy string) zap.Field {
	return zap.String(FieldStrategy, strategy)
}

// WithTrustAuthority sets the TrustAuthority field.
func WithTrustAuthority(authorityID string) zap.Field {
	return zap.String(FieldTrustAuthority, authorityID)
}

// WithTrustLevel sets the TrustLevel field.
func WithTrustLevel(level string) zap.Field {
	return zap.String(FieldTrustLevel, level)
}

// WithTrustSource sets the TrustSource field.
func WithTrustSource(source string) zap.Field {
	return zap.String(FieldTrustSource, source)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
