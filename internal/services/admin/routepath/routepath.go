// Package routepath defines the admin URL layout.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root    = "/"
	Metrics = "/metrics"
)

const (
	Users       = "/users"
	UsersTable  = "/users/table"
	UsersNew    = "/users/new"
	UsersDialog = "/users/dialog"
	UsersSave   = "/users/save"
	UsersPrefix = "/users/"
)

// Path segments below UsersPrefix that address one account.
const (
	UserEditSegment   = "edit"
	UserDeleteSegment = "delete"
)

func User(userID int64) string {
	return UsersPrefix + strconv.FormatInt(userID, 10)
}

func UserEdit(userID int64) string {
	return User(userID) + "/" + UserEditSegment
}

func UserDelete(userID int64) string {
	return User(userID) + "/" + UserDeleteSegment
}

// UsersTablePage returns the table URL for the given page and page size.
func UsersTablePage(page, pageSize int) string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("page_size", strconv.Itoa(pageSize))
	return UsersTable + "?" + values.Encode()
}
