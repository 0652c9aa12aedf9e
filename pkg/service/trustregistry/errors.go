/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustregistry

import (
	"errors"
	"fmt"
)

// ErrorCode classifies trust registry failures.
type ErrorCode string

const (
	CodeNetworkError       ErrorCode = "NETWORK_ERROR"
	CodeTimeout            ErrorCode = "TIMEOUT"
	CodeInvalidResponse    ErrorCode = "INVALID_RESPONSE"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeInvalidDID         ErrorCode = "INVALID_DID"
	CodeFederationFailed   ErrorCode = "FEDERATION_FAILED"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrNetwork            = &Error{Code: CodeNetworkError, Message: "network error"}
	ErrTimeout            = &Error{Code: CodeTimeout, Message: "request timeout"}
	ErrInvalidResponse    = &Error{Code: CodeInvalidResponse, Message: "invalid response"}
	ErrServiceUnavailable = &Error{Code: CodeServiceUnavailable, Message: "service unavailable"}
	ErrInvalidDID         = &Error{Code: CodeInvalidDID, Message: "invalid did"}
	ErrFederationFailed   = &Error{Code: CodeFederationFailed, Message: "federation failed"}
)

// Error is returned by every failing registry operation.
type Error struct {
	Code       ErrorCode
	Message    string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// String includes the code and HTTP details, for logs.
func (e *Error) String() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (url: %s, status: %d, body: %s)", e.Code, e.Message, e.URL, e.StatusCode, e.Body)
	}

	return fmt.Sprintf("%s: %s (url: %s)", e.Code, e.Message, e.URL)
}

// CodeOf returns the code of a registry error, or an empty code for any other error.
func CodeOf(err error) ErrorCode {
	var regErr *Error

	if errors.As(err, &regErr) {
		return regErr.Code
	}

	return ""
}
