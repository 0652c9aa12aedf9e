/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trust

// Policy decides how a client treats entities that are not trusted.
type Policy struct {
	ShowWarningForUntrusted bool `json:"showWarningForUntrusted"`
	BlockUntrustedIssuers   bool `json:"blockUntrustedIssuers"`
	BlockUntrustedVerifiers bool `json:"blockUntrustedVerifiers"`
}

// Warn reports whether a warning is shown for level. Registry outages (unknown) warn too.
func (p Policy) Warn(level Level) bool {
	if !p.ShowWarningForUntrusted {
		return false
	}

	return level == LevelUntrusted || level == LevelUnknown
}

// Block reports whether an interaction is refused. Only a definite untrusted answer blocks;
// an unknown level never does.
func (p Policy) Block(level Level, action Action) bool {
	if level != LevelUntrusted {
		return false
	}

	switch action {
	case ActionIssue:
		return p.BlockUntrustedIssuers
	case ActionVerify:
		return p.BlockUntrustedVerifiers
	default:
		return false
	}
}
