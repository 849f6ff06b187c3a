package locale

import (
	"context"
	"errors"
	"strings"
)

var ErrLocaleNotFound = errors.New("locale not found")

const (
	EN = "en"
	PT = "pt"
	ES = "es"
)

// DefaultLang is used when no supported locale is supplied.
const DefaultLang = PT

var LangList = []string{PT, EN, ES}

type Locale struct{}

// ParseLang accepts a bare code, a region tag ("pt-BR") or an
// Accept-Language header and returns the first supported language.
func ParseLang(lang string) string {
	for _, part := range strings.Split(lang, ",") {
		tag, _, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		base, _, _ := strings.Cut(tag, "-")
		switch base {
		case EN, "english":
			return EN
		case PT, "portuguese", "português":
			return PT
		case ES, "spanish", "español":
			return ES
		}
	}
	return DefaultLang
}

func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang returns the request language or DefaultLang.
func GetLang(ctx context.Context) string {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return DefaultLang
	}
	return lang
}

func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}
