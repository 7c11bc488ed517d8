package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	json "github.com/goccy/go-json"
	sharedtemplates "github.com/louisbranch/useradmin/internal/services/shared/templates"
)

// Element ids targeted by HTMX swaps on the users page.
const (
	UsersTableID   = "users-table"
	UserDialogID   = "user-dialog"
	UsersLoadingID = "users-loading"
)

// tableSync aborts an in-flight table request when a newer one starts.
const tableSync = "#" + UsersTableID + ":replace"

// UsersPageView provides data for the users page.
type UsersPageView struct {
	TableURL string
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID        int64
	Email     string
	Role      string
	Active    bool
	EditURL   string
	DeleteURL string
}

// PageSizeOption is one entry of the rows-per-page selector.
type PageSizeOption struct {
	Size     int
	Selected bool
}

// UsersTableView provides data for the users table fragment.
type UsersTableView struct {
	Rows            []UserRow
	Total           int
	Page            int
	PageSize        int
	From            int
	To              int
	PreviousURL     string
	NextURL         string
	TableURL        string
	NewURL          string
	PageSizeOptions []PageSizeOption
}

// UserDialogView provides data for the user dialog fragment.
type UserDialogView struct {
	Open      bool
	Editing   bool
	ID        int64
	Email     string
	Role      string
	IsActive  bool
	Roles     []string
	SaveURL   string
	CancelURL string
	Page      int
	PageSize  int
}

// UsersPage renders the users page body: the heading action, the lazily
// loaded table and the empty dialog slot.
func UsersPage(view UsersPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<section class="card bg-base-100 shadow-sm"><div class="card-body">`)
		h.Render(ctx, sharedtemplates.LoadingIndicator(UsersLoadingID, T(loc, "users.loading"), false))
		h.Render(ctx, sharedtemplates.LazyLoad(UsersTableID, view.TableURL, "", T(loc, "users.loading")))
		h.Raw(`</div></section>`)
		h.Render(ctx, ClosedUserDialog(false))
		return h.Err()
	})
}

// NewUserButton renders the button that opens the create dialog.
func NewUserButton(newURL string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<button type="button" class="btn btn-primary btn-sm"`)
		h.Attr("hx-get", newURL)
		h.Attr("hx-target", "#"+UserDialogID)
		h.Raw(` hx-swap="outerHTML">`)
		h.Text(T(loc, "users.action.new"))
		h.Raw(`</button>`)
		return h.Err()
	})
}

// UsersTable renders the table fragment swapped into #users-table.
func UsersTable(view UsersTableView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("id", UsersTableID)
		h.Attr("data-total", strconv.Itoa(view.Total))
		h.Raw(`><div class="mb-3 flex justify-end">`)
		h.Render(ctx, NewUserButton(view.NewURL, loc))
		h.Raw(`</div><div class="overflow-x-auto"><table class="table table-zebra"><thead><tr>`)
		for _, key := range []string{"users.column.id", "users.column.email", "users.column.role", "users.column.active", "users.column.actions"} {
			h.Raw(`<th>`)
			h.Text(T(loc, key))
			h.Raw(`</th>`)
		}
		h.Raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			h.Raw(`<tr><td colspan="5" class="text-center opacity-70">`)
			h.Text(T(loc, "users.table.empty"))
			h.Raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			renderUserRow(h, row, view, loc)
		}
		h.Raw(`</tbody></table></div>`)
		renderPagination(h, view, loc)
		h.Raw(`</div>`)
		return h.Err()
	})
}

func renderUserRow(h *sharedtemplates.HTMLWriter, row UserRow, view UsersTableView, loc Localizer) {
	h.Raw(`<tr`)
	h.Attr("data-user-id", strconv.FormatInt(row.ID, 10))
	h.Raw(`><td>`)
	h.Text(strconv.FormatInt(row.ID, 10))
	h.Raw(`</td><td>`)
	h.Text(row.Email)
	h.Raw(`</td><td>`)
	h.Text(T(loc, "users.role."+row.Role))
	h.Raw(`</td><td>`)
	if row.Active {
		h.Text(T(loc, "users.value.yes"))
	} else {
		h.Text(T(loc, "users.value.no"))
	}
	h.Raw(`</td><td class="flex gap-2">`)

	h.Raw(`<button type="button" class="btn btn-ghost btn-xs"`)
	h.Attr("hx-get", row.EditURL)
	h.Attr("hx-target", "#"+UserDialogID)
	h.Raw(` hx-swap="outerHTML">`)
	h.Text(T(loc, "users.action.edit"))
	h.Raw(`</button>`)

	h.Raw(`<button type="button" class="btn btn-error btn-outline btn-xs"`)
	h.Attr("hx-post", row.DeleteURL)
	h.Attr("hx-vals", deleteValues(view.Page, view.PageSize))
	h.Attr("hx-confirm", T(loc, "users.delete.confirm"))
	h.Attr("hx-target", "#"+UsersTableID)
	h.Raw(` hx-swap="outerHTML"`)
	h.Attr("hx-sync", tableSync)
	h.Attr("hx-indicator", "#"+UsersLoadingID)
	h.Raw(`>`)
	h.Text(T(loc, "users.action.delete"))
	h.Raw(`</button></td></tr>`)
}

func renderPagination(h *sharedtemplates.HTMLWriter, view UsersTableView, loc Localizer) {
	h.Raw(`<div class="mt-3 flex flex-wrap items-center justify-end gap-4 text-sm">`)

	h.Raw(`<form class="flex items-center gap-2"`)
	h.Attr("hx-get", view.TableURL)
	h.Raw(` hx-trigger="change"`)
	h.Attr("hx-target", "#"+UsersTableID)
	h.Raw(` hx-swap="outerHTML"`)
	h.Attr("hx-sync", tableSync)
	h.Attr("hx-indicator", "#"+UsersLoadingID)
	h.Raw(`><input type="hidden" name="page"`)
	h.Attr("value", strconv.Itoa(view.Page))
	h.Raw(`><label for="users-page-size">`)
	h.Text(T(loc, "users.pagination.rows_per_page"))
	h.Raw(`</label><select id="users-page-size" name="page_size" class="select select-bordered select-sm">`)
	for _, option := range view.PageSizeOptions {
		h.Raw(`<option`)
		h.Attr("value", strconv.Itoa(option.Size))
		h.AttrIf(option.Selected, "selected")
		h.Raw(`>`)
		h.Text(strconv.Itoa(option.Size))
		h.Raw(`</option>`)
	}
	h.Raw(`</select></form>`)

	h.Raw(`<span class="users-range">`)
	h.Text(T(loc, "users.pagination.range", view.From, view.To, view.Total))
	h.Raw(`</span><div class="join">`)
	renderPageButton(h, view.PreviousURL, "«", T(loc, "users.pagination.previous"))
	renderPageButton(h, view.NextURL, "»", T(loc, "users.pagination.next"))
	h.Raw(`</div></div>`)
}

func renderPageButton(h *sharedtemplates.HTMLWriter, target string, symbol string, label string) {
	h.Raw(`<button type="button" class="join-item btn btn-sm"`)
	h.Attr("aria-label", label)
	if target == "" {
		h.Raw(` disabled>`)
	} else {
		h.Attr("hx-get", target)
		h.Attr("hx-target", "#"+UsersTableID)
		h.Raw(` hx-swap="outerHTML"`)
		h.Attr("hx-sync", tableSync)
		h.Attr("hx-indicator", "#"+UsersLoadingID)
		h.Raw(`>`)
	}
	h.Text(symbol)
	h.Raw(`</button>`)
}

// UserDialog renders the dialog fragment swapped into #user-dialog.
func UserDialog(view UserDialogView, loc Localizer) templ.Component {
	if !view.Open {
		return ClosedUserDialog(false)
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("id", UserDialogID)
		h.Raw(`><dialog class="modal modal-open" open aria-labelledby="user-dialog-title"><div class="modal-box">`)
		h.Raw(`<h3 id="user-dialog-title" class="text-lg font-bold">`)
		if view.Editing {
			h.Text(T(loc, "users.dialog.edit_title"))
		} else {
			h.Text(T(loc, "users.dialog.create_title"))
		}
		h.Raw(`</h3><form class="mt-4 flex flex-col gap-3"`)
		h.Attr("hx-post", view.SaveURL)
		h.Attr("hx-target", "#"+UserDialogID)
		h.Raw(` hx-swap="outerHTML">`)

		hidden(h, "mode", dialogMode(view.Editing))
		if view.Editing {
			hidden(h, "id", strconv.FormatInt(view.ID, 10))
		}
		hidden(h, "page", strconv.Itoa(view.Page))
		hidden(h, "page_size", strconv.Itoa(view.PageSize))

		h.Raw(`<label class="form-control"><span class="label-text">`)
		h.Text(T(loc, "users.field.email"))
		h.Raw(`</span><input type="email" name="email" class="input input-bordered" required`)
		h.Attr("value", view.Email)
		h.Raw(`></label>`)

		h.Raw(`<label class="form-control"><span class="label-text">`)
		h.Text(T(loc, "users.field.password"))
		h.Raw(`</span><input type="password" name="password" class="input input-bordered" autocomplete="new-password"`)
		h.AttrIf(!view.Editing, "required")
		h.Raw(`>`)
		if view.Editing {
			h.Raw(`<span class="label-text-alt opacity-70">`)
			h.Text(T(loc, "users.field.password_hint"))
			h.Raw(`</span>`)
		}
		h.Raw(`</label>`)

		h.Raw(`<label class="form-control"><span class="label-text">`)
		h.Text(T(loc, "users.field.role"))
		h.Raw(`</span><select name="role" class="select select-bordered">`)
		for _, role := range view.Roles {
			h.Raw(`<option`)
			h.Attr("value", role)
			h.AttrIf(role == view.Role, "selected")
			h.Raw(`>`)
			h.Text(T(loc, "users.role."+role))
			h.Raw(`</option>`)
		}
		h.Raw(`</select></label>`)

		if view.Editing {
			h.Raw(`<label class="form-control"><span class="label-text">`)
			h.Text(T(loc, "users.field.status"))
			h.Raw(`</span><select name="is_active" class="select select-bordered"><option value="true"`)
			h.AttrIf(view.IsActive, "selected")
			h.Raw(`>`)
			h.Text(T(loc, "users.status.active"))
			h.Raw(`</option><option value="false"`)
			h.AttrIf(!view.IsActive, "selected")
			h.Raw(`>`)
			h.Text(T(loc, "users.status.inactive"))
			h.Raw(`</option></select></label>`)
		}

		h.Raw(`<div class="modal-action"><button type="button" class="btn"`)
		h.Attr("hx-get", view.CancelURL)
		h.Attr("hx-target", "#"+UserDialogID)
		h.Raw(` hx-swap="outerHTML">`)
		h.Text(T(loc, "users.action.cancel"))
		h.Raw(`</button><button type="submit" class="btn btn-primary">`)
		h.Text(T(loc, "users.action.save"))
		h.Raw(`</button></div></form></div></dialog></div>`)
		return h.Err()
	})
}

// ClosedUserDialog renders the empty dialog slot. With oob set the element
// carries hx-swap-oob so it replaces the open dialog alongside another swap.
func ClosedUserDialog(oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("id", UserDialogID)
		if oob {
			h.Raw(` hx-swap-oob="true"`)
		}
		h.Raw(`></div>`)
		return h.Err()
	})
}

func hidden(h *sharedtemplates.HTMLWriter, name string, value string) {
	h.Raw(`<input type="hidden"`)
	h.Attr("name", name)
	h.Attr("value", value)
	h.Raw(`>`)
}

func dialogMode(editing bool) string {
	if editing {
		return "edit"
	}
	return "create"
}

func deleteValues(page int, pageSize int) string {
	encoded, err := json.Marshal(map[string]string{
		"confirmed": "true",
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	})
	if err != nil {
		return `{"confirmed":"true"}`
	}
	return string(encoded)
}
