package screen

import (
	"strings"

	"github.com/louisbranch/useradmin/internal/services/admin/usersapi"
)

// DialogMode is the state of the user dialog.
type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreate
	DialogEdit
)

func (m DialogMode) String() string {
	switch m {
	case DialogCreate:
		return "create"
	case DialogEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Form holds the dialog fields. Password is write-only: it is never filled
// from a fetched account.
type Form struct {
	ID       int64
	Email    string        `validate:"required,email"`
	Password string
	Role     usersapi.Role `validate:"oneof=user admin"`
	IsActive bool
}

// Dialog is the user dialog: a mode plus the fields it edits.
type Dialog struct {
	Mode DialogMode
	Form Form
}

// ClosedDialog returns the dialog in its closed state.
func ClosedDialog() Dialog {
	return Dialog{Mode: DialogClosed}
}

// OpenCreate opens a blank dialog for a new account.
func OpenCreate() Dialog {
	return Dialog{
		Mode: DialogCreate,
		Form: Form{Role: usersapi.RoleUser, IsActive: true},
	}
}

// OpenEdit opens the dialog pre-filled with user. The password stays empty.
func OpenEdit(user usersapi.User) Dialog {
	return Dialog{
		Mode: DialogEdit,
		Form: Form{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		},
	}
}

// Close discards the form.
func (d Dialog) Close() Dialog {
	return ClosedDialog()
}

// IsOpen reports whether the dialog is shown.
func (d Dialog) IsOpen() bool {
	return d.Mode == DialogCreate || d.Mode == DialogEdit
}

// CreateRequest builds the create call body from the form.
func (d Dialog) CreateRequest() usersapi.CreateUserRequest {
	return usersapi.CreateUserRequest{
		Email:    strings.TrimSpace(d.Form.Email),
		Password: d.Form.Password,
		Role:     d.Form.Role,
	}
}

// UpdateRequest builds the update call body from the form. An empty password
// is omitted so the remote system keeps the current one.
func (d Dialog) UpdateRequest() usersapi.UpdateUserRequest {
	email := strings.TrimSpace(d.Form.Email)
	role := d.Form.Role
	active := d.Form.IsActive
	req := usersapi.UpdateUserRequest{
		Email:    &email,
		Role:     &role,
		IsActive: &active,
	}
	if d.Form.Password != "" {
		password := d.Form.Password
		req.Password = &password
	}
	return req
}
