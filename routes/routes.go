// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"mineeast-server/commons"
	"mineeast-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering api routes")
	api := e.Group("/api")
	api.POST("/signup", handlers.SignupHandler)
	api.GET("/plans", handlers.GetPlansHandler)

	admin := api.Group("/admin")
	admin.GET("/stats", handlers.GetAdminStatsHandler)
	admin.GET("/signups", handlers.GetSignupsHandler)
	commons.Logger.Info("api routes registered successfully")
}
