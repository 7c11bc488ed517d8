// Package httpmux mounts the admin surfaces on the server root mux.
package httpmux

import (
	"net/http"

	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
)

// MountMetrics exposes the metrics handler outside the authenticated admin
// routes so scrapers need no session.
func MountMetrics(rootMux *http.ServeMux, metricsHandler http.Handler) {
	if rootMux == nil || metricsHandler == nil {
		return
	}
	rootMux.Handle(routepath.Metrics, metricsHandler)
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminHandler http.Handler) {
	if rootMux == nil || adminHandler == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminHandler)
}
