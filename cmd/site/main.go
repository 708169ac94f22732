// SPDX-License-Identifier: GPL-3.0-only

// Command site serves the public landing page and the admin page.
package main

import (
	"mineeast-server/client"
	"mineeast-server/commons"
	"mineeast-server/geo"
	"mineeast-server/middlewares"
	"mineeast-server/site"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	cfg, err := commons.LoadSiteConfig()
	if err != nil {
		commons.Logger.Fatal(err)
	}

	api, err := client.NewClient(cfg.APIURL, cfg.APITimeout)
	if err != nil {
		commons.Logger.Fatal(err)
	}
	geoClient, err := geo.NewClient(cfg.GeoIPURL, cfg.GeoIPTimeout)
	if err != nil {
		commons.Logger.Fatal(err)
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		commons.Logger.Fatal(err)
	}

	ipExtractor, err := site.IPExtractor(cfg.TrustedProxies)
	if err != nil {
		commons.Logger.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.IPExtractor = ipExtractor

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

	site.New(cfg, api, geoClient).Register(e)

	commons.RunServer(e, commons.ListenAddr(cfg.Port))
}
