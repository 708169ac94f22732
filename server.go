// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"mineeast-server/commons"
	"mineeast-server/db"
	"mineeast-server/handlers"
	"mineeast-server/middlewares"
	"mineeast-server/rabbitmq"
	"mineeast-server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	cfg, err := commons.LoadAPIConfig()
	if err != nil {
		commons.Logger.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middlewares.RequestLogger(e))
	if commons.HasFlag("--debug") {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("16K"))
	e.Use(middlewares.SecurityHeaders())
	e.Validator = handlers.NewRequestValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	db.InitDB()
	if commons.HasFlag("--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
	}

	rabbitmq.InitPublisher()
	routes.RegisterRoutes(e)

	commons.RunServer(e, commons.ListenAddr(cfg.Port))

	if err := rabbitmq.Events.Close(); err != nil {
		commons.Logger.Error("Failed to close RabbitMQ publisher: ", err)
	}
}
