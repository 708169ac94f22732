// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error as {"error": "..."}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			c.Logger().Debugf("%s: %v", message, he.Internal)
		}
	} else {
		c.Logger().Error(err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, ErrorResponse{Error: message})
	}
	if writeErr != nil {
		c.Logger().Error("Failed to write error response: ", writeErr)
	}
}
