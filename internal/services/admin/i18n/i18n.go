package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/useradmin/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the operator's language preference.
	LangCookieName = "useradmin_lang"
)

// cookieMaxAge keeps the language preference for a year.
const cookieMaxAge = 365 * 24 * time.Hour

var supportedTags = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the languages the screen is translated into, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// Default returns the language used when nothing in the request matches.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(catalog.Default().Catalog()))
}

// ResolveTag picks the request language from, in order, the lang query
// parameter, the language cookie and the Accept-Language header. fromQuery
// reports that the query parameter decided, so the choice can be persisted.
func ResolveTag(r *http.Request) (tag language.Tag, fromQuery bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := supported(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := supported(cookie.Value); ok {
			return tag, false
		}
	}
	if tag, ok := negotiate(r.Header.Get("Accept-Language")); ok {
		return tag, false
	}
	return Default(), false
}

// SetLanguageCookie persists tag as the operator's language.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// supported accepts only exact supported tags; "fr" does not become English.
func supported(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(raw)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag.String() == parsed.String() {
			return tag, true
		}
	}
	return language.Tag{}, false
}

func negotiate(header string) (language.Tag, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return language.Tag{}, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.Tag{}, false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}
