// Package currency converts plan prices with a fixed rate table and renders
// them for display. Rates are deliberately static.
package currency

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Default = "EUR"

// rates are relative to one euro.
var rates = map[string]float64{
	"EUR": 1.0,
	"GBP": 0.85,
	"CHF": 0.95,
	"SEK": 11.0,
	"DKK": 7.5,
	"NOK": 10.5,
	"PLN": 4.3,
	"CZK": 24.0,
}

var symbols = map[string]string{
	"EUR": "€",
	"GBP": "£",
	"CHF": "CHF",
	"SEK": "kr",
	"DKK": "kr",
	"NOK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
}

var supported = []string{"EUR", "GBP", "CHF", "SEK", "DKK", "NOK", "PLN", "CZK"}

var byCountry = map[string]string{
	"FR": "EUR", "DE": "EUR", "IT": "EUR", "ES": "EUR", "PT": "EUR",
	"NL": "EUR", "BE": "EUR", "LU": "EUR", "IE": "EUR", "AT": "EUR",
	"FI": "EUR", "GR": "EUR", "SK": "EUR", "SI": "EUR", "CY": "EUR",
	"MT": "EUR", "EE": "EUR", "LV": "EUR", "LT": "EUR",
	"GB": "GBP",
	"CH": "CHF",
	"SE": "SEK",
	"DK": "DKK",
	"NO": "NOK",
	"PL": "PLN",
	"CZ": "CZK",
}

// Convert returns amount unchanged when either code is missing from the table.
func Convert(amount float64, from, to string) float64 {
	rFrom, ok := rates[from]
	if !ok {
		return amount
	}
	rTo, ok := rates[to]
	if !ok {
		return amount
	}
	return amount / rFrom * rTo
}

// Format renders amount for the given locale. If the locale or the currency
// cannot be handled it falls back to "12.34 EUR".
func Format(amount float64, code, locale string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback(amount, code)
		}
	}()

	tag, err := language.Parse(locale)
	if err != nil {
		return fallback(amount, code)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fallback(amount, code)
	}

	// x/text always places the symbol first ("€ 49,99" for fr).
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

func fallback(amount float64, code string) string {
	return fmt.Sprintf("%.2f %s", amount, code)
}

// Symbol returns code itself when no symbol is known.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

func IsSupported(code string) bool {
	_, ok := rates[code]
	return ok
}

func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// ForCountry suggests a currency for an ISO country code.
func ForCountry(country string) string {
	if c, ok := byCountry[country]; ok {
		return c
	}
	return Default
}
