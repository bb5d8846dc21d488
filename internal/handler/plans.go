package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/currency"
	"storefront/internal/i18n"
	"storefront/internal/model"
)

type planView struct {
	model.Plan
	Currency       string  `json:"currency"`
	Symbol         string  `json:"symbol"`
	LocalPrice     float64 `json:"localPrice"`
	FormattedPrice string  `json:"formattedPrice"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func ListPlansHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cur := strings.ToUpper(r.URL.Query().Get("currency"))
		if !currency.IsSupported(cur) {
			cur = currency.Default
		}
		locale := i18n.ResolveLocale(r.URL.Query().Get("lang"))

		views := make([]planView, 0, len(model.Plans))
		for _, p := range model.Plans {
			price := currency.Convert(p.Price, currency.Default, cur)
			views = append(views, planView{
				Plan:           p,
				Currency:       cur,
				Symbol:         currency.Symbol(cur),
				LocalPrice:     price,
				FormattedPrice: currency.Format(price, cur, locale),
			})
		}

		writeJSON(w, http.StatusOK, views)
	}
}

func SuggestCurrencyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := strings.ToUpper(r.URL.Query().Get("country"))
		code := currency.ForCountry(country)
		writeJSON(w, http.StatusOK, map[string]any{
			"currency":  code,
			"symbol":    currency.Symbol(code),
			"supported": currency.Supported(),
		})
	}
}

func ListCountriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.Countries)
	}
}
