/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestInfraSkipper(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		result bool
	}{
		{
			name:   "health check endpoint",
			path:   "/healthcheck",
			result: true,
		},
		{
			name:   "readiness endpoint",
			path:   "/ready",
			result: true,
		},
		{
			name:   "version endpoint",
			path:   "/version",
			result: true,
		},
		{
			name:   "version system endpoint",
			path:   "/version/system",
			result: true,
		},
		{
			name:   "profiler endpoint",
			path:   "/debug/pprof/heap",
			result: true,
		},
		{
			name:   "trust endpoint",
			path:   "/v1/trust/resolve",
			result: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			ctx := echo.New().NewContext(req, httptest.NewRecorder())
			ctx.SetPath(tt.path)

			require.Equal(t, tt.result, InfraSkipper(ctx))
		})
	}
}
