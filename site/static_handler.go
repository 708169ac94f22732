// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

var contentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "text/javascript; charset=utf-8",
	".png": "image/png",
	".svg": "image/svg+xml",
}

func ServeStaticFile(c echo.Context) error {
	requestedPath := c.Param("*")

	cleanPath := path.Clean(requestedPath)
	if strings.Contains(cleanPath, "..") || strings.HasPrefix(cleanPath, "/") {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file path")
	}

	contentType, ok := contentTypes[strings.ToLower(path.Ext(cleanPath))]
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "File type not allowed")
	}

	data, err := fs.ReadFile(staticFS, path.Join("static", cleanPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to access file")
	}

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set("X-Frame-Options", "DENY")
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, contentType, data)
}
