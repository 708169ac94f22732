// SPDX-License-Identifier: GPL-3.0-only

package models

import "github.com/shopspring/decimal"

type PlanName string

const (
	StarterPlan PlanName = "Starter"
	GamerPlan   PlanName = "Gamer"
	ProPlan     PlanName = "Pro"
	ElitePlan   PlanName = "Elite"
)

// Plan is a hosting tier shown on the landing page. Price is monthly, in USD.
type Plan struct {
	Name     PlanName
	Price    decimal.Decimal
	Features []string
	Popular  bool
}

// HostingPlans is the launch price list, cheapest first.
var HostingPlans = []Plan{
	{
		Name:     StarterPlan,
		Price:    decimal.NewFromInt(5),
		Features: []string{"1 GB RAM", "10 GB SSD", "5 Player Slots", "Basic Support"},
	},
	{
		Name:     GamerPlan,
		Price:    decimal.NewFromInt(12),
		Features: []string{"2 GB RAM", "25 GB SSD", "15 Player Slots", "Priority Support", "DDoS Protection"},
		Popular:  true,
	},
	{
		Name:     ProPlan,
		Price:    decimal.NewFromInt(25),
		Features: []string{"4 GB RAM", "50 GB SSD", "30 Player Slots", "24/7 Support", "DDoS Protection", "Auto Backups"},
	},
	{
		Name:     ElitePlan,
		Price:    decimal.NewFromInt(45),
		Features: []string{"8 GB RAM", "100 GB SSD", "Unlimited Players", "24/7 Priority Support", "DDoS Protection", "Auto Backups", "Custom Plugins"},
	},
}
