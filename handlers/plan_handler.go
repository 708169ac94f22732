// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"mineeast-server/currency"
	"mineeast-server/models"

	"github.com/labstack/echo/v4"
)

// GetPlansHandler godoc
// @Summary      Get hosting plans
// @Description  Lists the launch hosting plans with prices converted to the requested currency.
// @Tags         plans
// @Produce      json
// @Param        currency  query  string  false  "ISO 4217 code (default USD)"
// @Success      200 {object} PlansResponse  "Plans retrieved successfully"
// @Failure      400 {object} ErrorResponse  "Unsupported currency"
// @Router       /api/plans [get]
func GetPlansHandler(c echo.Context) error {
	logger := c.Logger()

	code := currency.USDCode
	if q := c.QueryParam("currency"); q != "" {
		normalized, err := currency.Normalize(q)
		if err != nil || !currency.HasRate(normalized) {
			logger.Warnf("Unsupported plan currency %q", q)
			return echo.NewHTTPError(http.StatusBadRequest, "Unsupported currency")
		}
		code = normalized
	}
	cur := currency.ByCode(code)

	plans := make([]PlanOption, 0, len(models.HostingPlans))
	for _, plan := range models.HostingPlans {
		plans = append(plans, PlanOption{
			Name:     string(plan.Name),
			Price:    currency.Convert(plan.Price, cur.Code),
			PriceUSD: plan.Price,
			Period:   currency.PeriodLabel(cur),
			Popular:  plan.Popular,
			Features: plan.Features,
		})
	}

	return c.JSON(http.StatusOK, PlansResponse{
		Message:  "Plans retrieved successfully",
		Currency: cur,
		Plans:    plans,
	})
}
