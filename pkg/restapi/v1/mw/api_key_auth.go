/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

const header = "X-API-Key"

// public endpoints, matched by suffix
var unauthenticatedPaths = []string{"/healthcheck", "/ready", "/version", "/metrics"} //nolint:gochecknoglobals

// APIKeyAuth returns a middleware that authenticates requests using the API key from X-API-Key header.
// An empty key disables the check.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" || isPublic(c.Request().URL.Path) {
				return next(c)
			}

			apiKeyHeader := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(apiKeyHeader), []byte(apiKey)) != 1 {
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				}
			}

			return next(c)
		}
	}
}

func isPublic(path string) bool {
	path = strings.ToLower(path)

	return lo.ContainsBy(unauthenticatedPaths, func(p string) bool {
		return strings.HasSuffix(path, p)
	})
}
