package admin

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
	"github.com/louisbranch/useradmin/internal/services/admin/screen"
	"github.com/louisbranch/useradmin/internal/services/admin/templates"
	"github.com/louisbranch/useradmin/internal/services/admin/usersapi"
	"github.com/louisbranch/useradmin/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// HandleUsersPage renders the users page. The table loads in a follow-up
// request so the page shows a loading indicator first.
func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodGet) {
		return
	}
	pageCtx := h.pageContext(lang, loc, r)
	p := screen.ParsePagination(r.URL.Query())
	view := templates.UsersPageView{TableURL: routepath.UsersTablePage(p.Page, p.PageSize)}

	htmx.RenderPage(w, r, templates.UsersFullPage(view, pageCtx), templates.PageTitle(loc, "title.users"))
}

// HandleUsersTable renders one page of the users table.
func (h *Handler) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodGet) {
		return
	}
	table := h.screen.Load(r.Context(), screen.ParsePagination(r.URL.Query()))
	htmx.RenderFragment(w, r, templates.UsersTable(buildUsersTableView(table), loc))
}

// HandleUserNew opens the dialog in create mode.
func (h *Handler) HandleUserNew(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodGet) {
		return
	}
	p := screen.ParsePagination(r.URL.Query())
	htmx.RenderFragment(w, r, templates.UserDialog(buildUserDialogView(screen.OpenCreate(), p), loc))
}

// HandleUserEdit opens the dialog in edit mode, pre-filled from the row the
// operator selected.
func (h *Handler) HandleUserEdit(w http.ResponseWriter, r *http.Request, userID int64) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodGet) {
		return
	}
	query := r.URL.Query()
	role, ok := usersapi.ParseRole(query.Get("role"))
	if !ok {
		role = usersapi.RoleUser
	}
	user := usersapi.User{
		ID:       userID,
		Email:    strings.TrimSpace(query.Get("email")),
		Role:     role,
		IsActive: parseBool(query.Get("is_active")),
	}
	p := screen.ParsePagination(query)
	htmx.RenderFragment(w, r, templates.UserDialog(buildUserDialogView(screen.OpenEdit(user), p), loc))
}

// HandleUserDialogClose closes the dialog without saving.
func (h *Handler) HandleUserDialogClose(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodGet) {
		return
	}
	htmx.RenderFragment(w, r, templates.ClosedUserDialog(false))
}

// HandleUserSave creates or updates an account. On success the refreshed
// table replaces the current one and the dialog closes out of band; on any
// failure the response is empty so the dialog stays as it is.
func (h *Handler) HandleUserSave(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodPost) {
		return
	}
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.logger.WithError(err).Warn("parse user form")
		htmx.NoSwap(w)
		return
	}

	dialog := dialogFromForm(r.PostForm)
	p := screen.NewPagination(parseInt(r.PostForm.Get("page")), parseInt(r.PostForm.Get("page_size")))
	if _, ok := h.screen.Save(r.Context(), dialog); !ok {
		htmx.NoSwap(w)
		return
	}

	h.renderRefreshedTable(w, r, p, loc, true)
}

// HandleUserDelete deletes an account after the operator confirmed it.
func (h *Handler) HandleUserDelete(w http.ResponseWriter, r *http.Request, userID int64) {
	loc, _ := h.localizer(w, r)
	if !requireMethod(w, r, loc, http.MethodPost) {
		return
	}
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.logger.WithError(err).Warn("parse delete form")
		htmx.NoSwap(w)
		return
	}

	confirmed := parseBool(r.PostForm.Get("confirmed"))
	p := screen.NewPagination(parseInt(r.PostForm.Get("page")), parseInt(r.PostForm.Get("page_size")))
	if !h.screen.Delete(r.Context(), userID, confirmed) {
		htmx.NoSwap(w)
		return
	}

	h.renderRefreshedTable(w, r, p, loc, false)
}

func (h *Handler) renderRefreshedTable(w http.ResponseWriter, r *http.Request, p screen.Pagination, loc *message.Printer, closeDialog bool) {
	table := h.screen.Load(r.Context(), p)
	fragment := templates.UsersTable(buildUsersTableView(table), loc)
	if closeDialog {
		htmx.Retarget(w, "#"+templates.UsersTableID, "outerHTML")
		fragment = joinComponents(fragment, templates.ClosedUserDialog(true))
	}
	htmx.RenderFragment(w, r, fragment)
}

func buildUsersTableView(table screen.Table) templates.UsersTableView {
	p := table.Pagination
	from, to := p.Range(table.Total)
	view := templates.UsersTableView{
		Rows:     make([]templates.UserRow, 0, len(table.Rows)),
		Total:    table.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		From:     from,
		To:       to,
		TableURL: routepath.UsersTable,
		NewURL:   routepath.UsersNew + "?" + p.Query().Encode(),
	}
	for _, user := range table.Rows {
		view.Rows = append(view.Rows, templates.UserRow{
			ID:        user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
			Active:    user.IsActive,
			EditURL:   userEditURL(user, p),
			DeleteURL: routepath.UserDelete(user.ID),
		})
	}
	if p.HasPrevious() {
		view.PreviousURL = routepath.UsersTablePage(p.Page-1, p.PageSize)
	}
	if p.HasNext(table.Total) {
		view.NextURL = routepath.UsersTablePage(p.Page+1, p.PageSize)
	}
	for _, size := range screen.PageSizeOptions() {
		view.PageSizeOptions = append(view.PageSizeOptions, templates.PageSizeOption{
			Size:     size,
			Selected: size == p.PageSize,
		})
	}
	return view
}

func buildUserDialogView(dialog screen.Dialog, p screen.Pagination) templates.UserDialogView {
	roles := usersapi.Roles()
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, string(role))
	}
	return templates.UserDialogView{
		Open:      dialog.IsOpen(),
		Editing:   dialog.Mode == screen.DialogEdit,
		ID:        dialog.Form.ID,
		Email:     dialog.Form.Email,
		Role:      string(dialog.Form.Role),
		IsActive:  dialog.Form.IsActive,
		Roles:     roleNames,
		SaveURL:   routepath.UsersSave,
		CancelURL: routepath.UsersDialog,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}
}

// userEditURL carries the row fields so the edit dialog opens without
// another API round trip.
func userEditURL(user usersapi.User, p screen.Pagination) string {
	values := p.Query()
	values.Set("email", user.Email)
	values.Set("role", string(user.Role))
	values.Set("is_active", strconv.FormatBool(user.IsActive))
	return routepath.UserEdit(user.ID) + "?" + values.Encode()
}

// dialogFromForm rebuilds the submitted dialog. An unknown mode yields a
// closed dialog, which the screen treats as a no-op save.
func dialogFromForm(form url.Values) screen.Dialog {
	role, ok := usersapi.ParseRole(form.Get("role"))
	if !ok {
		role = usersapi.Role(strings.TrimSpace(form.Get("role")))
	}
	fields := screen.Form{
		Email:    strings.TrimSpace(form.Get("email")),
		Password: form.Get("password"),
		Role:     role,
		IsActive: true,
	}
	switch strings.TrimSpace(form.Get("mode")) {
	case "create":
		return screen.Dialog{Mode: screen.DialogCreate, Form: fields}
	case "edit":
		id, err := strconv.ParseInt(strings.TrimSpace(form.Get("id")), 10, 64)
		if err != nil || id < 0 {
			return screen.ClosedDialog()
		}
		fields.ID = id
		fields.IsActive = parseBool(form.Get("is_active"))
		return screen.Dialog{Mode: screen.DialogEdit, Form: fields}
	default:
		return screen.ClosedDialog()
	}
}

func joinComponents(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}

func parseInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
