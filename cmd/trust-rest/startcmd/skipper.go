/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const profilerEndpoints = "/debug/pprof"

// InfraSkipper skips request logging for probes, version and profiler endpoints.
func InfraSkipper(c echo.Context) bool {
	switch c.Path() {
	case healthCheckEndpoint, readinessEndpoint, "/version", "/version/system":
		return true
	}

	if strings.HasPrefix(c.Path(), profilerEndpoints) {
		return true
	}

	return echomw.DefaultSkipper(c)
}
