// Package notify turns a captured order into the notifications that reach
// the sales team: a WhatsApp deep link and a best-effort form mirror.
package notify

import (
	"strconv"

	"storefront/internal/currency"
	"storefront/internal/i18n"
	"storefront/internal/model"
)

const emptyNote = "—"

// ComposeMessage renders the order summary sent over WhatsApp.
func ComposeMessage(d model.OrderDraft, tr i18n.Translator, locale string) string {
	note := d.Note
	if note == "" {
		note = emptyNote
	}

	return tr.T(locale, "whatsapp.orderMessage", map[string]string{
		"orderId":      d.OrderID,
		"name":         d.Name,
		"email":        d.Email,
		"phone":        d.Phone,
		"country":      d.Country,
		"planTitle":    d.PlanTitle,
		"durationText": DurationText(d.Duration, tr, locale),
		"price":        currency.Format(d.Price, d.Currency, locale),
		"note":         note,
	})
}

func DurationText(days int, tr i18n.Translator, locale string) string {
	switch days {
	case 30:
		return "1 " + tr.T(locale, "plans.month", nil)
	case 90:
		return "3 " + tr.T(locale, "plans.months", nil)
	case 365:
		return "1 " + tr.T(locale, "plans.year", nil)
	}
	return strconv.Itoa(days) + " " + tr.T(locale, "plans.days", nil)
}
