// Package users mounts the user management routes.
package users

import (
	"net/http"
	"strconv"
	"strings"

	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/useradmin/internal/services/shared/route"
)

// Service defines users route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersTable(w http.ResponseWriter, r *http.Request)
	HandleUserNew(w http.ResponseWriter, r *http.Request)
	HandleUserDialogClose(w http.ResponseWriter, r *http.Request)
	HandleUserSave(w http.ResponseWriter, r *http.Request)
	HandleUserEdit(w http.ResponseWriter, r *http.Request, userID int64)
	HandleUserDelete(w http.ResponseWriter, r *http.Request, userID int64)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Users, service.HandleUsersPage)
	mux.HandleFunc(routepath.UsersTable, service.HandleUsersTable)
	mux.HandleFunc(routepath.UsersNew, service.HandleUserNew)
	mux.HandleFunc(routepath.UsersDialog, service.HandleUserDialogClose)
	mux.HandleFunc(routepath.UsersSave, service.HandleUserSave)
	mux.HandleFunc(routepath.UsersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleUserPath(w, r, service)
	})
}

// HandleUserPath parses per-user subroutes and dispatches to service handlers.
func HandleUserPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.UsersPrefix)
	parts := sharedroute.SplitPathParts(path)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || userID < 0 {
		http.NotFound(w, r)
		return
	}
	switch parts[1] {
	case routepath.UserEditSegment:
		service.HandleUserEdit(w, r, userID)
	case routepath.UserDeleteSegment:
		service.HandleUserDelete(w, r, userID)
	default:
		http.NotFound(w, r)
	}
}
