/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/wallet-trust/pkg/service/trustregistry"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type metadataProvider interface {
	GetMetadata(ctx context.Context) (*trustregistry.Metadata, error)
}

type Config struct {
	Version string

	// Registry is optional; without it the system version omits the registry.
	Registry metadataProvider
}

type Controller struct {
	version  string
	registry metadataProvider
}

type versionResponse struct {
	Version string `json:"version"`
}

type registryVersion struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Protocol string `json:"protocol"`
}

type systemVersionResponse struct {
	Version  string           `json:"version"`
	Registry *registryVersion `json:"registry,omitempty"`
}

func NewController(r router, cfg Config) *Controller {
	c := &Controller{
		version:  cfg.Version,
		registry: cfg.Registry,
	}

	r.GET("/version", c.Version)
	r.GET("/version/system", c.SystemVersion)

	return c
}

func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

// SystemVersion adds the version of the trust registry protocol in use. An unreachable registry is omitted.
func (c *Controller) SystemVersion(ctx echo.Context) error {
	resp := systemVersionResponse{Version: c.version}

	if c.registry != nil {
		if md, err := c.registry.GetMetadata(ctx.Request().Context()); err == nil {
			resp.Registry = &registryVersion{
				Name:     md.Name,
				Version:  md.Version,
				Protocol: md.Protocol,
			}
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
