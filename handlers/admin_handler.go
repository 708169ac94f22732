// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"mineeast-server/currency"
	"mineeast-server/db"
	"mineeast-server/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 50
	maxPerPage     = 100
)

// GetAdminStatsHandler godoc
// @Summary      Waitlist statistics
// @Description  Aggregates signup totals, recent activity and country distribution.
// @Tags         admin
// @Produce      json
// @Success      200 {object} models.StatsSnapshot "Statistics"
// @Failure      500 {object} ErrorResponse        "Internal server error"
// @Router       /api/admin/stats [get]
func GetAdminStatsHandler(c echo.Context) error {
	logger := c.Logger()

	stats, err := ComputeStats(db.Conn, now())
	if err != nil {
		logger.Errorf("Failed to compute waitlist stats: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute statistics")
	}
	return c.JSON(http.StatusOK, stats)
}

// ComputeStats aggregates the signups table as of at. "Today" starts at UTC
// midnight; "week" is the trailing seven days.
func ComputeStats(conn *gorm.DB, at time.Time) (models.StatsSnapshot, error) {
	at = at.UTC()
	startOfDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := at.Add(-7 * 24 * time.Hour)

	var stats models.StatsSnapshot
	if err := conn.Model(&models.Signup{}).Count(&stats.TotalSignups).Error; err != nil {
		return stats, fmt.Errorf("count signups: %w", err)
	}
	if err := conn.Model(&models.Signup{}).Where("created_at >= ?", startOfDay).Count(&stats.TodaySignups).Error; err != nil {
		return stats, fmt.Errorf("count today's signups: %w", err)
	}
	if err := conn.Model(&models.Signup{}).Where("created_at >= ?", weekAgo).Count(&stats.WeekSignups).Error; err != nil {
		return stats, fmt.Errorf("count this week's signups: %w", err)
	}

	var menaCount int64
	if err := conn.Model(&models.Signup{}).Where("country IN ?", currency.MENACountries).Count(&menaCount).Error; err != nil {
		return stats, fmt.Errorf("count MENA signups: %w", err)
	}
	stats.MenaPercentage = percentage(menaCount, stats.TotalSignups)

	var rows []struct {
		Country string
		Total   int64
	}
	if err := conn.Model(&models.Signup{}).
		Select("COALESCE(country, ?) AS country, COUNT(*) AS total", models.UnknownCountry).
		Group("country").
		Order("total DESC").
		Order("country ASC").
		Scan(&rows).Error; err != nil {
		return stats, fmt.Errorf("country distribution: %w", err)
	}
	stats.CountryDistribution = make([]models.CountryCount, 0, len(rows))
	for _, row := range rows {
		stats.CountryDistribution = append(stats.CountryDistribution, models.CountryCount{
			Country: row.Country,
			Count:   row.Total,
		})
	}
	return stats, nil
}

// percentage is part/total*100 rounded to one decimal, 0 for an empty total.
func percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(1).
		InexactFloat64()
}

// GetSignupsHandler godoc
// @Summary      List waitlist signups
// @Description  Returns signups newest first.
// @Tags         admin
// @Produce      json
// @Param        page      query  int  false  "Page number (default 1)"
// @Param        per_page  query  int  false  "Page size (default 50, max 100)"
// @Success      200 {object} SignupListResponse "Paginated signups"
// @Failure      500 {object} ErrorResponse      "Internal server error"
// @Router       /api/admin/signups [get]
func GetSignupsHandler(c echo.Context) error {
	logger := c.Logger()

	page := 1
	perPage := defaultPerPage
	if p := c.QueryParam("page"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}
	if pp := c.QueryParam("per_page"); pp != "" {
		if _, err := fmt.Sscanf(pp, "%d", &perPage); err != nil || perPage < 1 {
			perPage = defaultPerPage
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var total int64
	if err := db.Conn.Model(&models.Signup{}).Count(&total).Error; err != nil {
		logger.Errorf("Failed to count signups: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count signups")
	}

	offset := (page - 1) * perPage
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	var signups []models.Signup
	if err := db.Conn.Order("created_at DESC").Order("id DESC").
		Limit(perPage).
		Offset(offset).
		Find(&signups).Error; err != nil {
		logger.Errorf("Failed to fetch signups: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch signups")
	}

	records := make([]models.SignupRecord, 0, len(signups))
	for _, s := range signups {
		records = append(records, s.Record())
	}

	return c.JSON(http.StatusOK, SignupListResponse{
		Signups:     records,
		Total:       total,
		Pages:       totalPages,
		CurrentPage: page,
	})
}
