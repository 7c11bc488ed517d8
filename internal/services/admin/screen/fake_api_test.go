package screen

import (
	"context"
	"fmt"

	"github.com/louisbranch/useradmin/internal/services/admin/usersapi"
)

type listCall struct {
	skip  int
	limit int
}

type fakeAPI struct {
	page      usersapi.UserPage
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   []listCall
	createCalls []usersapi.CreateUserRequest
	updateIDs   []int64
	updateCalls []usersapi.UpdateUserRequest
	deleteCalls []int64
}

func (f *fakeAPI) ListUsers(_ context.Context, skip, limit int) (usersapi.UserPage, error) {
	f.listCalls = append(f.listCalls, listCall{skip: skip, limit: limit})
	if f.listErr != nil {
		return usersapi.UserPage{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, req usersapi.CreateUserRequest) (usersapi.User, error) {
	f.createCalls = append(f.createCalls, req)
	if f.createErr != nil {
		return usersapi.User{}, f.createErr
	}
	return usersapi.User{ID: 100, Email: req.Email, Role: req.Role, IsActive: true}, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, req usersapi.UpdateUserRequest) (usersapi.User, error) {
	f.updateIDs = append(f.updateIDs, id)
	f.updateCalls = append(f.updateCalls, req)
	if f.updateErr != nil {
		return usersapi.User{}, f.updateErr
	}
	return usersapi.User{ID: id}, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func samplePage(n, total int) usersapi.UserPage {
	items := make([]usersapi.User, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, usersapi.User{
			ID:       int64(i + 1),
			Email:    fmt.Sprintf("user%d@example.com", i+1),
			Role:     usersapi.RoleUser,
			IsActive: i%2 == 0,
		})
	}
	return usersapi.UserPage{Items: items, Total: total}
}
