// Package screen holds the state transitions and error policy of the admin
// user screen. It is independent of HTTP: handlers feed it parsed input and
// render what it returns.
package screen

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/useradmin/internal/platform/requestctx"
	"github.com/louisbranch/useradmin/internal/services/admin/usersapi"
	"github.com/sirupsen/logrus"
)

// API is the subset of the users API the screen calls.
type API interface {
	ListUsers(ctx context.Context, skip, limit int) (usersapi.UserPage, error)
	CreateUser(ctx context.Context, req usersapi.CreateUserRequest) (usersapi.User, error)
	UpdateUser(ctx context.Context, id int64, req usersapi.UpdateUserRequest) (usersapi.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Table is one loaded page of the user table.
type Table struct {
	Pagination Pagination
	Rows       []usersapi.User
	Total      int
}

// Screen runs the user screen operations. It keeps no per-operator state, so
// one Screen serves concurrent requests.
type Screen struct {
	api      API
	logger   logrus.FieldLogger
	validate *validator.Validate
}

// New builds a screen over api. A nil logger discards log output.
func New(api API, logger logrus.FieldLogger) *Screen {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	validate := validator.New()
	validate.RegisterStructValidation(validateDialog, Dialog{})
	return &Screen{api: api, logger: logger, validate: validate}
}

// Load fetches the page described by p. Any failure yields an empty table
// with total 0; the error is logged and not returned.
func (s *Screen) Load(ctx context.Context, p Pagination) Table {
	p = p.normalized()
	table := Table{Pagination: p, Rows: []usersapi.User{}}
	if s.api == nil {
		return table
	}
	page, err := s.api.ListUsers(ctx, p.Skip(), p.Limit())
	if err != nil {
		entry := s.entry(ctx, usersapi.OpListUsers).WithFields(logrus.Fields{
			"skip":  p.Skip(),
			"limit": p.Limit(),
		}).WithError(err)
		if errors.Is(err, usersapi.ErrMalformedResponse) {
			entry.Error("invalid response structure")
		} else {
			entry.Error("fetch users failed")
		}
		return table
	}
	table.Rows = page.Items
	table.Total = page.Total
	return table
}

// Save submits the dialog. On success it returns the closed dialog and true;
// the caller refreshes the table. On failure the dialog is returned unchanged
// with false. Saving a closed dialog is a no-op.
func (s *Screen) Save(ctx context.Context, d Dialog) (Dialog, bool) {
	if !d.IsOpen() || s.api == nil {
		return d, false
	}
	op := usersapi.OpCreateUser
	if d.Mode == DialogEdit {
		op = usersapi.OpUpdateUser
	}
	if err := s.validate.Struct(d); err != nil {
		s.entry(ctx, op).WithField("user_id", formID(d)).WithError(err).Warn("user form rejected")
		return d, false
	}

	var err error
	switch d.Mode {
	case DialogCreate:
		_, err = s.api.CreateUser(ctx, d.CreateRequest())
	case DialogEdit:
		_, err = s.api.UpdateUser(ctx, d.Form.ID, d.UpdateRequest())
	}
	if err != nil {
		s.entry(ctx, op).WithField("user_id", formID(d)).WithError(err).Error("save user failed")
		return d, false
	}
	return d.Close(), true
}

// Delete removes account id when confirmed is true. It reports whether the
// account was deleted; the caller refreshes the table only then.
func (s *Screen) Delete(ctx context.Context, id int64, confirmed bool) bool {
	if !confirmed || s.api == nil {
		return false
	}
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.entry(ctx, usersapi.OpDeleteUser).WithField("user_id", strconv.FormatInt(id, 10)).WithError(err).Error("delete user failed")
		return false
	}
	return true
}

func (s *Screen) entry(ctx context.Context, op string) *logrus.Entry {
	fields := logrus.Fields{"operation": op}
	if actorID := requestctx.UserIDFromContext(ctx); actorID != "" {
		fields["actor_id"] = actorID
	}
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	return s.logger.WithFields(fields)
}

func formID(d Dialog) string {
	if d.Mode != DialogEdit {
		return ""
	}
	return strconv.FormatInt(d.Form.ID, 10)
}

func validateDialog(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(Dialog)
	if !ok {
		return
	}
	if d.Mode == DialogCreate && d.Form.Password == "" {
		sl.ReportError(d.Form.Password, "Password", "Password", "required_on_create", "")
	}
}
