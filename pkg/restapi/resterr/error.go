/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
)

type ErrorCode string

const (
	SystemError         ErrorCode = "system-error"
	InvalidValue        ErrorCode = "invalid-value"
	BadRequest          ErrorCode = "bad-request"
	DoesntExist         ErrorCode = "doesnt-exist"
	Unauthorized        ErrorCode = "unauthorized"
	InvalidDID          ErrorCode = "invalid-did"
	RegistryDisabled    ErrorCode = "registry-disabled"
	RegistryUnavailable ErrorCode = "registry-unavailable"
	RegistryTimeout     ErrorCode = "registry-timeout"
	RegistryBadGateway  ErrorCode = "registry-bad-gateway"
)

func (c ErrorCode) Name() string {
	return string(c)
}

//nolint:gochecknoglobals
var statusByCode = map[ErrorCode]int{
	SystemError:         http.StatusInternalServerError,
	InvalidValue:        http.StatusBadRequest,
	BadRequest:          http.StatusBadRequest,
	DoesntExist:         http.StatusNotFound,
	Unauthorized:        http.StatusUnauthorized,
	InvalidDID:          http.StatusBadRequest,
	RegistryDisabled:    http.StatusServiceUnavailable,
	RegistryUnavailable: http.StatusServiceUnavailable,
	RegistryTimeout:     http.StatusGatewayTimeout,
	RegistryBadGateway:  http.StatusBadGateway,
}

var ErrRegistryDisabled = errors.New("trust registry not enabled")

type CustomError struct {
	Code            ErrorCode
	Component       Component
	FailedOperation string
	IncorrectValue  string
	Err             error
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewValidationError(code ErrorCode, field string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: field,
		Err:            err,
	}
}

func NewSystemError(component Component, operation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: operation,
		Err:             err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

// FromRegistryError translates a trust registry failure into the status the API reports for it.
func FromRegistryError(operation string, err error) *CustomError {
	if errors.Is(err, ErrRegistryDisabled) {
		return &CustomError{
			Code:            RegistryDisabled,
			Component:       TrustRegistryComponent,
			FailedOperation: operation,
			Err:             err,
		}
	}

	var code ErrorCode

	switch trustregistry.CodeOf(err) {
	case trustregistry.CodeInvalidDID:
		code = InvalidDID
	case trustregistry.CodeTimeout:
		code = RegistryTimeout
	case trustregistry.CodeNetworkError, trustregistry.CodeInvalidResponse:
		code = RegistryBadGateway
	case trustregistry.CodeServiceUnavailable:
		code = RegistryUnavailable
	default:
		code = SystemError
	}

	return &CustomError{
		Code:            code,
		Component:       TrustRegistryComponent,
		FailedOperation: operation,
		Err:             err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) HTTPStatus() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	msg := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		msg["incorrectValue"] = e.IncorrectValue
	}

	if e.Component != "" {
		msg["component"] = string(e.Component)
	}

	return e.HTTPStatus(), msg
}

// GetErrorDetails returns the message, code and component of the first CustomError in the chain.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), customErr.Code.Name(), customErr.Component
	}

	return err.Error(), "", ""
}
