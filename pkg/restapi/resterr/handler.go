/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/wallet-trust/internal/logfields"
)

var logger = log.New("rest-err")

// HTTPErrorHandler writes err as a JSON error response and records it on a span.
func HTTPErrorHandler(tracer trace.Tracer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code, message := processError(err)

		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		span.SetAttributes(attribute.Int("http_status", code))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Errorc(ctx, "HTTP request failed",
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			log.WithError(err),
		)

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err),
			logfields.WithAdditionalMessage(c.Request().RequestURI))
	}
}

func processError(err error) (int, interface{}) {
	var (
		httpErr   *echo.HTTPError
		customErr *CustomError
	)

	switch {
	case errors.As(err, &customErr):
		return customErr.HTTPCodeMsg()
	case errors.As(err, &httpErr):
		code, message := httpErr.Code, httpErr.Message
		if httpErr.Internal != nil {
			message = httpErr.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    "generic-error",
			"message": err.Error(),
		}
	}
}
