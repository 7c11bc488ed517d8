package templates

import (
	admini18n "github.com/louisbranch/useradmin/internal/services/admin/i18n"
	"github.com/louisbranch/useradmin/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer renders catalog keys; *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T renders key with loc. Without a localizer the key itself is shown.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// HomeURL is the application shell the breadcrumb trail starts from.
	HomeURL string
}

// LanguageOptions lists the switchable languages, marking the active one.
func LanguageOptions(page PageContext) []i18nhttp.LanguageOption {
	return i18nhttp.BuildLanguageOptions(admini18n.Supported(), page.Lang, page.CurrentPath, page.CurrentQuery, func(tag language.Tag) string {
		return T(page.Loc, i18nhttp.LanguageKeyLabel(tag))
	})
}
