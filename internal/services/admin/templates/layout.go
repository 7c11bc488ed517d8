package templates

import (
	"github.com/a-h/templ"
	sharedtemplates "github.com/louisbranch/useradmin/internal/services/shared/templates"
)

// AppName returns the localized application name.
func AppName(loc Localizer) string {
	return T(loc, "core.app_name")
}

// PageTitle returns the document title for a page titled by titleKey.
func PageTitle(loc Localizer, titleKey string) string {
	return sharedtemplates.ComposePageTitle(T(loc, titleKey), AppName(loc))
}

// UsersFullPage wraps the users page body in the admin chrome.
func UsersFullPage(view UsersPageView, page PageContext) templ.Component {
	loc := page.Loc
	breadcrumbs := []sharedtemplates.BreadcrumbItem{{Label: T(loc, "title.users")}}
	if page.HomeURL != "" {
		breadcrumbs = append([]sharedtemplates.BreadcrumbItem{{Label: T(loc, "core.home"), URL: page.HomeURL}}, breadcrumbs...)
	}
	return sharedtemplates.Layout(sharedtemplates.LayoutOptions{
		Title:         T(loc, "title.users"),
		Lang:          page.Lang,
		AppName:       AppName(loc),
		Heading:       T(loc, "users.title"),
		Breadcrumbs:   breadcrumbs,
		Languages:     LanguageOptions(page),
		LanguageLabel: T(loc, "core.language"),
	}, UsersPage(view, loc))
}
