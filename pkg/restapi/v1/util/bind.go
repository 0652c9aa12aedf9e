/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/wallet-trust/pkg/restapi/resterr"
	"github.com/trustbloc/wallet-trust/pkg/validator/jsonschema"
)

const (
	requestBody = "requestBody"

	maxBodySize = 1 << 20
)

type schemaValidator interface {
	Validate(doc []byte, schemaID string, schema []byte) error
}

func ReadBody(ctx echo.Context, body interface{}) error {
	if err := ctx.Bind(body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	return nil
}

// ReadValidatedBody checks the request body against a JSON schema before decoding it into body.
func ReadValidatedBody(
	ctx echo.Context,
	validator schemaValidator,
	schemaID string,
	schema []byte,
	body interface{},
) error {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBodySize))
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, requestBody, fmt.Errorf("read body: %w", err))
	}

	if err = validator.Validate(raw, schemaID, schema); err != nil {
		var validationErr *jsonschema.ValidationError

		if errors.As(err, &validationErr) {
			return resterr.NewValidationError(resterr.InvalidValue,
				strings.Join(validationErr.Fields(), ","), err)
		}

		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	if err = json.Unmarshal(raw, body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	return nil
}

func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return err
		}

		return ctx.JSONBlob(code, b)
	}
}
