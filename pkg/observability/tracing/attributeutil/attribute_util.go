/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redactedValue = "[REDACTED]"

// CredentialPaths are the credential members that carry holder data and are redacted by WithCredentialRedaction.
var CredentialPaths = []string{ //nolint:gochecknoglobals
	"credentialSubject",
	"credential.credentialSubject",
	"proof",
	"credential.proof",
}

// JSON returns attribute with the value marshaled to JSON. Value can be redacted using WithRedacted option.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	return RawJSON(key, b, opts...)
}

// RawJSON returns attribute for an already encoded JSON document. Invalid JSON yields an empty attribute value.
func RawJSON(key string, doc []byte, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	if !gjson.ValidBytes(doc) {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if gjson.GetBytes(doc, path).Exists() {
			doc, _ = sjson.SetBytes(doc, path, redactedValue)
		}
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(doc)),
	}
}

type options struct {
	redacted []string
}

type Opt func(*options)

// WithRedacted returns option that replaces value with [REDACTED] for the given key. The key is a path to the value
// to be redacted. Refer to https://github.com/tidwall/gjson/blob/master/SYNTAX.md for path syntax.
func WithRedacted(key string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, key)
	}
}

// WithCredentialRedaction redacts subject claims and proofs of a credential document.
func WithCredentialRedaction() Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, CredentialPaths...)
	}
}
