package usersapi

import "strings"

// Role is the account role enumeration owned by the users API.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin}
}

// ParseRole normalizes raw into a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User is the read model of one account.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// UserPage is one page of the account list.
type UserPage struct {
	Items []User
	Total int
}

// CreateUserRequest is the body of a create call. Password is required.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserRequest is the body of a partial update. Nil fields are left
// unchanged by the remote system.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// listResponse distinguishes a missing items field from an empty page.
type listResponse struct {
	Items *[]User `json:"items"`
	Total int     `json:"total"`
}
