// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"context"
	"sync"

	"mineeast-server/models"

	"github.com/labstack/echo/v4"
)

// AdminSource is the read side of the waitlist API.
type AdminSource interface {
	FetchStats(ctx context.Context) (models.StatsSnapshot, error)
	FetchSignups(ctx context.Context) ([]models.SignupRecord, error)
}

// AdminView is the data behind the admin page. Each half falls back to its
// zero value when its fetch fails.
type AdminView struct {
	Stats   models.StatsSnapshot
	Signups []models.SignupRecord
}

// LoadAdminView fetches stats and signups concurrently. Failures are logged
// and never returned.
func LoadAdminView(ctx context.Context, src AdminSource, logger echo.Logger) AdminView {
	var (
		view AdminView
		wg   sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, err := src.FetchStats(ctx)
		if err != nil {
			logger.Error("Failed to fetch waitlist stats: ", err)
			return
		}
		view.Stats = stats
	}()
	go func() {
		defer wg.Done()
		signups, err := src.FetchSignups(ctx)
		if err != nil {
			logger.Error("Failed to fetch signups: ", err)
			return
		}
		view.Signups = signups
	}()
	wg.Wait()

	return view
}
