// SPDX-License-Identifier: GPL-3.0-only

package models

// UnknownCountry labels signups stored without a country.
const UnknownCountry = "N/A"

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// StatsSnapshot is recomputed on every request; holders must treat it as stale.
type StatsSnapshot struct {
	TotalSignups        int64          `json:"total_signups"`
	TodaySignups        int64          `json:"today_signups"`
	WeekSignups         int64          `json:"week_signups"`
	MenaPercentage      float64        `json:"mena_percentage"`
	CountryDistribution []CountryCount `json:"country_distribution"`
}
