// SPDX-License-Identifier: GPL-3.0-only

// Package currency maps visitor countries to display currencies and converts
// USD list prices with a static exchange-rate table.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

const (
	USDCode        = "USD"
	DefaultCountry = "US"
)

var Default = Currency{Symbol: "$", Code: USDCode}

type countryCurrency struct {
	Country  string
	Currency Currency
}

// countries is ordered; CountryFor returns the first match.
var countries = []countryCurrency{
	{"AE", Currency{Symbol: "د.إ", Code: "AED"}},
	{"SA", Currency{Symbol: "﷼", Code: "SAR"}},
	{"EG", Currency{Symbol: "£", Code: "EGP"}},
	{"TR", Currency{Symbol: "₺", Code: "TRY"}},
	{"IL", Currency{Symbol: "₪", Code: "ILS"}},
	{"BH", Currency{Symbol: ".د.ب", Code: "BHD"}},
	{"KW", Currency{Symbol: "د.ك", Code: "KWD"}},
	{"QA", Currency{Symbol: "﷼", Code: "QAR"}},
	{"OM", Currency{Symbol: "﷼", Code: "OMR"}},
	{"JO", Currency{Symbol: "د.ا", Code: "JOD"}},
	{"LB", Currency{Symbol: "£", Code: "LBP"}},
}

// Units of each currency per USD. Approximate launch-time figures.
var rates = map[string]decimal.Decimal{
	"AED": decimal.RequireFromString("3.67"),
	"SAR": decimal.RequireFromString("3.75"),
	"EGP": decimal.RequireFromString("30.9"),
	"TRY": decimal.RequireFromString("34.2"),
	"ILS": decimal.RequireFromString("3.7"),
	"BHD": decimal.RequireFromString("0.377"),
	"KWD": decimal.RequireFromString("0.307"),
	"QAR": decimal.RequireFromString("3.64"),
	"OMR": decimal.RequireFromString("0.385"),
	"JOD": decimal.RequireFromString("0.709"),
	"LBP": decimal.RequireFromString("89500"),
}

// MENACountries are the countries counted as MENA in waitlist statistics.
var MENACountries = []string{"AE", "SA", "EG", "TR", "IL", "BH", "KW", "QA", "OM", "JO", "LB"}

// Resolve returns the display currency for an ISO 3166-1 alpha-2 country code.
// Matching is exact; anything unknown gets USD.
func Resolve(countryCode string) Currency {
	for _, cc := range countries {
		if cc.Country == countryCode {
			return cc.Currency
		}
	}
	return Default
}

// ByCode rebuilds a selection from its currency code, e.g. one echoed back by a
// form. Unknown codes get USD.
func ByCode(code string) Currency {
	for _, cc := range countries {
		if cc.Currency.Code == code {
			return cc.Currency
		}
	}
	return Default
}

// CountryFor is the reverse of Resolve. It is lossy by nature: it returns the
// first country in table order that uses the currency, and "US" when none does.
func CountryFor(c Currency) string {
	if c.Code == USDCode {
		return DefaultCountry
	}
	for _, cc := range countries {
		if cc.Currency.Code == c.Code {
			return cc.Country
		}
	}
	return DefaultCountry
}

// Convert turns a USD price into the given currency, rounded to a whole unit.
// A code without a listed rate converts 1:1.
func Convert(usdPrice decimal.Decimal, code string) decimal.Decimal {
	if code == USDCode {
		return usdPrice
	}
	rate, ok := rates[code]
	if !ok {
		rate = decimal.NewFromInt(1)
	}
	return usdPrice.Mul(rate).Round(0)
}

// HasRate reports whether code has a listed exchange rate.
func HasRate(code string) bool {
	if code == USDCode {
		return true
	}
	_, ok := rates[code]
	return ok
}

// PeriodLabel is the "per month" suffix shown next to prices.
func PeriodLabel(c Currency) string {
	if c.Code == USDCode {
		return "mo"
	}
	return "شهر"
}

// Normalize canonicalizes an ISO 4217 code ("aed" -> "AED").
func Normalize(code string) (string, error) {
	unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	return unit.String(), nil
}
