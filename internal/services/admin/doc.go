// Package admin implements the operator screen for managing user accounts.
//
// It translates browser actions into users API calls through the screen
// package and answers with HTMX fragments, so the page stays a thin
// presentation layer over the remote account system.
package admin
