// Package i18n holds the few translated strings the order pipeline needs.
// Placeholders are written {{name}}.
package i18n

import (
	"strings"
)

const DefaultLocale = "en"

type Translator interface {
	T(locale, key string, args map[string]string) string
}

type Catalog map[string]map[string]string

// T falls back to English for unknown locales and to the key itself for
// unknown keys.
func (c Catalog) T(locale, key string, args map[string]string) string {
	msg, ok := c[ResolveLocale(locale)][key]
	if !ok {
		msg, ok = c[DefaultLocale][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// ResolveLocale maps "fr-FR", "FR" or "fr_CA" onto a supported locale.
func ResolveLocale(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := Default[lang]; ok {
		return lang
	}
	return DefaultLocale
}

func Locales() []string {
	return []string{"en", "fr", "es", "de", "it", "pt", "nl"}
}
