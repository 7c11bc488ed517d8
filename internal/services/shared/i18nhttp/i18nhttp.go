// Package i18nhttp builds language switcher data for server-rendered pages.
package i18nhttp

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// NormalizeTag coerces value to one of supported, falling back to the first
// supported tag.
func NormalizeTag(supported []language.Tag, value string) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return supported[0]
	}
	for _, tag := range supported {
		if tag == parsed {
			return tag
		}
	}
	return supported[0]
}

// BuildLanguageOptions returns supported language options with active selection.
// Each option links to path with the lang parameter replaced.
func BuildLanguageOptions(supported []language.Tag, activeLang string, path string, rawQuery string, labelForTag func(tag language.Tag) string) []LanguageOption {
	options := make([]LanguageOption, 0, len(supported))
	activeTag := NormalizeTag(supported, activeLang)
	for _, tag := range supported {
		label := tag.String()
		if labelForTag != nil {
			if resolved := strings.TrimSpace(labelForTag(tag)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageKeyLabel maps a language tag to its catalog label key.
func LanguageKeyLabel(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "pt":
		return "core.lang_pt_br"
	case "en":
		return "core.lang_en"
	default:
		return tag.String()
	}
}
