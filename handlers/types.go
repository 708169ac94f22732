// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"mineeast-server/currency"
	"mineeast-server/models"

	"github.com/shopspring/decimal"
)

// swagger:model SignupRequest
type SignupRequest struct {
	// Email address to put on the waitlist
	// required: true
	Email string `json:"email" validate:"required" example:"steve@example.com"`
	// ISO 3166-1 alpha-2 country code, defaults to US
	Country string `json:"country" validate:"omitempty,iso3166_1_alpha2" example:"AE"`
	// ISO 4217 currency code the visitor saw prices in, defaults to USD
	Currency string `json:"currency" example:"AED"`
}

// swagger:model SignupResponse
type SignupResponse struct {
	// Message indicating successful signup
	Message string `json:"message" example:"Signup successful"`
	// Position of this signup on the waitlist
	SignupNumber int64 `json:"signup_number" example:"128"`
	// Waitlist size after this signup
	TotalSignups int64 `json:"total_signups" example:"128"`
}

// swagger:model SignupListResponse
type SignupListResponse struct {
	// Signups on this page, newest first
	Signups []models.SignupRecord `json:"signups"`
	// Total number of signups
	Total int64 `json:"total" example:"128"`
	// Total number of pages
	Pages int `json:"pages" example:"3"`
	// Current page number
	CurrentPage int `json:"current_page" example:"1"`
}

// swagger:model PlanOption
type PlanOption struct {
	// Plan name
	Name string `json:"name" example:"Gamer"`
	// Monthly price in the requested currency, whole units
	Price decimal.Decimal `json:"price" example:"44"`
	// Monthly list price in USD
	PriceUSD decimal.Decimal `json:"price_usd" example:"12"`
	// Billing period label
	Period string `json:"period" example:"mo"`
	// Whether the plan is highlighted as most popular
	Popular bool `json:"popular" example:"true"`
	// Plan features
	Features []string `json:"features"`
}

// swagger:model PlansResponse
type PlansResponse struct {
	// Operation success message
	Message string `json:"message" example:"Plans retrieved successfully"`
	// Currency prices are expressed in
	Currency currency.Currency `json:"currency"`
	// Hosting plans, cheapest first
	Plans []PlanOption `json:"plans"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Email already registered"`
}
