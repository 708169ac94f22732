// SPDX-License-Identifier: GPL-3.0-only

package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownCountries(t *testing.T) {
	tests := map[string]Currency{
		"AE": {Symbol: "د.إ", Code: "AED"},
		"SA": {Symbol: "﷼", Code: "SAR"},
		"EG": {Symbol: "£", Code: "EGP"},
		"TR": {Symbol: "₺", Code: "TRY"},
		"IL": {Symbol: "₪", Code: "ILS"},
		"BH": {Symbol: ".د.ب", Code: "BHD"},
		"KW": {Symbol: "د.ك", Code: "KWD"},
		"QA": {Symbol: "﷼", Code: "QAR"},
		"OM": {Symbol: "﷼", Code: "OMR"},
		"JO": {Symbol: "د.ا", Code: "JOD"},
		"LB": {Symbol: "£", Code: "LBP"},
	}
	for country, want := range tests {
		t.Run(country, func(t *testing.T) {
			assert.Equal(t, want, Resolve(country))
		})
	}
}

func TestResolveUnknownFallsBackToUSD(t *testing.T) {
	for _, country := range []string{"", "US", "DE", "ae", "default", "XX"} {
		assert.Equal(t, Currency{Symbol: "$", Code: "USD"}, Resolve(country), country)
	}
}

func TestConvertUSDIsIdentity(t *testing.T) {
	for _, price := range []string{"0", "5", "12", "25", "45", "9.99", "1000000.5"} {
		p := decimal.RequireFromString(price)
		assert.True(t, p.Equal(Convert(p, "USD")), price)
	}
}

func TestConvertRoundsToWholeUnits(t *testing.T) {
	tests := []struct {
		usd  int64
		code string
		want int64
	}{
		{5, "AED", 18},
		{12, "QAR", 44},
		{25, "SAR", 94},
		{45, "KWD", 14},
		{5, "LBP", 447500},
		{12, "BHD", 5},
	}
	for _, tt := range tests {
		got := Convert(decimal.NewFromInt(tt.usd), tt.code)
		assert.Equal(t, tt.want, got.IntPart(), "%d USD in %s", tt.usd, tt.code)
	}
}

func TestConvertWithoutRateIsOneToOne(t *testing.T) {
	got := Convert(decimal.RequireFromString("12.4"), "EUR")
	assert.Equal(t, int64(12), got.IntPart())
	assert.False(t, HasRate("EUR"))
	assert.True(t, HasRate("USD"))
	assert.True(t, HasRate("JOD"))
}

func TestCountryForRoundTrips(t *testing.T) {
	for _, cc := range countries {
		assert.Equal(t, cc.Country, CountryFor(Resolve(cc.Country)), cc.Country)
	}
}

func TestCountryForSharedSymbols(t *testing.T) {
	// QAR and OMR share a symbol but not a code.
	assert.Equal(t, "QA", CountryFor(Currency{Symbol: "﷼", Code: "QAR"}))
	assert.Equal(t, "OM", CountryFor(Currency{Symbol: "﷼", Code: "OMR"}))
	assert.Equal(t, "US", CountryFor(Default))
	assert.Equal(t, "US", CountryFor(Currency{Symbol: "€", Code: "EUR"}))
}

func TestByCode(t *testing.T) {
	assert.Equal(t, Resolve("AE"), ByCode("AED"))
	assert.Equal(t, Default, ByCode("USD"))
	assert.Equal(t, Default, ByCode(""))
	assert.Equal(t, Default, ByCode("<script>"))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "mo", PeriodLabel(Default))
	assert.Equal(t, "شهر", PeriodLabel(Resolve("SA")))
}

func TestNormalize(t *testing.T) {
	code, err := Normalize(" aed ")
	require.NoError(t, err)
	assert.Equal(t, "AED", code)

	_, err = Normalize("dollars")
	require.Error(t, err)
}

func TestEveryTableCurrencyHasRate(t *testing.T) {
	for _, cc := range countries {
		assert.True(t, HasRate(cc.Currency.Code), cc.Currency.Code)
		_, err := Normalize(cc.Currency.Code)
		assert.NoError(t, err, cc.Currency.Code)
	}
}
