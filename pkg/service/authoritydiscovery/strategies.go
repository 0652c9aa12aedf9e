/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package authoritydiscovery

import (
	"context"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/wallet-trust/pkg/trust"
)

const (
	trustFrameworkPolicyType  = "TrustFrameworkPolicy"
	trustRegistryEvidenceType = "TrustRegistryEvidence"
)

// termsOfUsePaths lists where termsOfUse is looked up, in order. Wallet agents wrap the W3C credential
// in different envelopes.
var termsOfUsePaths = []string{ //nolint:gochecknoglobals
	"termsOfUse",
	"credential.termsOfUse",
	"json.termsOfUse",
	"credential.credentialSubject.termsOfUse",
	"attributes.termsOfUse",
}

var evidencePaths = []string{ //nolint:gochecknoglobals
	"evidence",
	"credential.evidence",
}

// TermsOfUse finds a TrustFrameworkPolicy entry in the credential's termsOfUse.
type TermsOfUse struct{}

func (TermsOfUse) Name() string {
	return "termsOfUse"
}

func (TermsOfUse) Find(_ context.Context, _ string, credential []byte) (*trust.Framework, bool) {
	terms, ok := firstPresent(credential, termsOfUsePaths)
	if !ok {
		return nil, false
	}

	return first(asList(terms), fromPolicy)
}

func fromPolicy(term gjson.Result) (*trust.Framework, bool) {
	if !hasType(term, trustFrameworkPolicyType) {
		return nil, false
	}

	if tf := term.Get("trustFramework"); tf.IsObject() {
		if id := tf.Get("id").String(); id != "" {
			return &trust.Framework{
				ID:          id,
				Name:        tf.Get("name").String(),
				RegistryURL: tf.Get("registryUrl").String(),
			}, true
		}
	}

	id := firstString(term, "authorityId", "authority")
	if id == "" {
		return nil, false
	}

	return &trust.Framework{
		ID:          id,
		Name:        term.Get("authorityName").String(),
		RegistryURL: term.Get("registryUrl").String(),
	}, true
}

// Evidence finds a TrustRegistryEvidence entry in the credential's evidence.
type Evidence struct{}

func (Evidence) Name() string {
	return "evidence"
}

func (Evidence) Find(_ context.Context, _ string, credential []byte) (*trust.Framework, bool) {
	evidence, ok := firstPresent(credential, evidencePaths)
	if !ok {
		return nil, false
	}

	return first(asList(evidence), fromEvidence)
}

func fromEvidence(ev gjson.Result) (*trust.Framework, bool) {
	if !hasType(ev, trustRegistryEvidenceType) {
		return nil, false
	}

	id := firstString(ev, "authority", "authorityId")
	if id == "" {
		return nil, false
	}

	return &trust.Framework{
		ID:          id,
		Name:        ev.Get("authorityName").String(),
		RegistryURL: firstString(ev, "registryUrl", "id"),
	}, true
}

// DIDDocument will look up a TrustRegistryService endpoint in the issuer's DID document. DID resolution
// is not available to this service, so it never finds anything.
type DIDDocument struct{}

func (DIDDocument) Name() string {
	return "didDocument"
}

func (DIDDocument) Find(context.Context, string, []byte) (*trust.Framework, bool) {
	return nil, false
}

// Fallback yields a configured authority regardless of the credential. It is only installed in dev mode.
type Fallback struct {
	Anchor trust.Anchor
}

func (f *Fallback) Name() string {
	return "devModeFallback"
}

func (f *Fallback) Find(context.Context, string, []byte) (*trust.Framework, bool) {
	if f.Anchor.DID == "" {
		return nil, false
	}

	return &trust.Framework{
		ID:          f.Anchor.DID,
		Name:        f.Anchor.Name,
		RegistryURL: f.Anchor.URL,
	}, true
}

// firstPresent returns the value at the first path that holds something other than null, false or "".
func firstPresent(doc []byte, paths []string) (gjson.Result, bool) {
	if len(doc) == 0 {
		return gjson.Result{}, false
	}

	for _, p := range paths {
		r := gjson.GetBytes(doc, p)

		if r.Exists() && r.Type != gjson.Null && r.Type != gjson.False && !(r.Type == gjson.String && r.Str == "") {
			return r, true
		}
	}

	return gjson.Result{}, false
}

func asList(r gjson.Result) []gjson.Result {
	if r.IsArray() {
		return r.Array()
	}

	return []gjson.Result{r}
}

func first(items []gjson.Result, extract func(gjson.Result) (*trust.Framework, bool)) (*trust.Framework, bool) {
	found := lo.FilterMap(items, func(item gjson.Result, _ int) (*trust.Framework, bool) {
		if !item.IsObject() {
			return nil, false
		}

		return extract(item)
	})

	if len(found) == 0 {
		return nil, false
	}

	return found[0], true
}

func hasType(r gjson.Result, typ string) bool {
	t := r.Get("type")

	if t.IsArray() {
		return lo.ContainsBy(t.Array(), func(v gjson.Result) bool {
			return v.String() == typ
		})
	}

	return t.String() == typ
}

func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}

	return ""
}
