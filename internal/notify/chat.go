package notify

import (
	"net/url"
	"regexp"
	"strings"
)

var mobileUA = regexp.MustCompile(`(?i)Android|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

func IsMobile(userAgent string) bool {
	return mobileUA.MatchString(userAgent)
}

// NormalizePhone keeps digits only; wa.me wants the number without "+".
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// ChatLink builds the WhatsApp deep link. Mobile clients get wa.me, desktop
// clients the web API form.
func ChatLink(phone, message string, mobile bool) string {
	p := NormalizePhone(phone)
	text := encodeComponent(message)
	if mobile {
		return "https://wa.me/" + p + "?text=" + text
	}
	return "https://api.whatsapp.com/send?phone=" + p + "&text=" + text
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
