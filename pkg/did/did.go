/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// Prefix is the scheme prefix every qualified DID starts with.
	Prefix = "did:"
	// DefaultMethod is applied to unqualified identifiers.
	DefaultMethod = "sov"
)

// ErrInvalidDID is returned when an identifier is not a syntactically valid DID.
var ErrInvalidDID = errors.New("invalid did")

// did = "did:" method-name ":" method-specific-id
var didRegexp = regexp.MustCompile(`^did:[a-z0-9]+:(?:[A-Za-z0-9._-]|%[0-9A-Fa-f]{2})*` +
	`(?::(?:[A-Za-z0-9._-]|%[0-9A-Fa-f]{2})*)*(?:[A-Za-z0-9._-]|%[0-9A-Fa-f]{2})$`)

// Normalize qualifies an unqualified identifier (e.g. a bare Indy DID) with the default method.
// Qualified and empty values are returned unchanged.
func Normalize(id string) string {
	if id == "" || strings.HasPrefix(id, Prefix) {
		return id
	}

	return Prefix + DefaultMethod + ":" + id
}

// Validate checks that id is a syntactically valid DID.
func Validate(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidDID)
	}

	if !didRegexp.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidDID, id)
	}

	return nil
}

// Method returns the method name of a qualified DID.
func Method(id string) (string, error) {
	if err := Validate(id); err != nil {
		return "", err
	}

	rest := strings.TrimPrefix(id, Prefix)

	return rest[:strings.Index(rest, ":")], nil
}

// Encode percent-encodes a DID for use as a single URL path segment. Every character outside the
// unreserved set is escaped, including the ':' separators of DID syntax.
func Encode(id string) string {
	return strings.ReplaceAll(url.QueryEscape(id), "+", "%20")
}

// Decode reverses Encode.
func Decode(segment string) (string, error) {
	id, err := url.PathUnescape(segment)
	if err != nil {
		return "", fmt.Errorf("decode did path segment: %w", err)
	}

	return id, nil
}
