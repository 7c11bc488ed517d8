// Package i18n provides localization helpers for the admin UI.
//
// Message text lives in the platform catalog; this package picks the
// language for a request and renders keys for it.
package i18n
