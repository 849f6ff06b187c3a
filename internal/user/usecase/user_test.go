package usecase

import (
	"context"
	"testing"

	"tracker-api/internal/model"
	"tracker-api/internal/user"
	"tracker-api/internal/user/repository"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/permission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).([]model.User), args.Get(1).(paginator.Paginator), args.Error(2)
}

func (m *mockRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	args := m.Called(ctx, sc, opts)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	args := m.Called(ctx, sc, opts)
	if fn, ok := args.Get(0).(func(context.Context, model.Scope, repository.CreateOptions) model.User); ok {
		return fn(ctx, sc, opts), args.Error(1)
	}
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	args := m.Called(ctx, sc, opts)
	if fn, ok := args.Get(0).(func(context.Context, model.Scope, repository.UpdateOptions) model.User); ok {
		return fn(ctx, sc, opts), args.Error(1)
	}
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.Called(ctx, sc, id).Error(0)
}

func newUseCase(t *testing.T) (*usecase, *mockRepository) {
	t.Helper()
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)
	repo := &mockRepository{}
	return New(log.NewNop(), repo, enc, nil).(*usecase), repo
}

var adminScope = model.Scope{UserID: "admin-1", Username: "root", RawRole: "admin", Role: permission.RoleAdmin}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    user.CreateInput
		existing error
		wantRole string
		wantErr  error
	}{
		{name: "default role", input: user.CreateInput{Username: "ana", Password: "password1"}, existing: repository.ErrNotFound, wantRole: "usuario"},
		{name: "administrador stored as admin", input: user.CreateInput{Username: "bob", Password: "password1", Role: "Administrador"}, existing: repository.ErrNotFound, wantRole: "admin"},
		{name: "unknown role", input: user.CreateInput{Username: "eve", Password: "password1", Role: "monitor"}, wantErr: user.ErrInvalidRole},
		{name: "short password", input: user.CreateInput{Username: "eve", Password: "123"}, wantErr: user.ErrWeakPassword},
		{name: "missing username", input: user.CreateInput{Username: "  ", Password: "password1"}, wantErr: user.ErrFieldRequired},
		{name: "taken", input: user.CreateInput{Username: "ana", Password: "password1"}, existing: nil, wantErr: user.ErrUserExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newUseCase(t)
			repo.On("GetOne", ctx, adminScope, repository.GetOneOptions{Username: tt.input.Username}).
				Return(model.User{}, tt.existing).Maybe()
			repo.On("Create", ctx, adminScope, mock.Anything).
				Return(func(_ context.Context, _ model.Scope, o repository.CreateOptions) model.User { return o.User }, nil).Maybe()

			out, err := uc.Create(ctx, adminScope, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, out.User.Role)
			require.NotNil(t, out.User.PasswordHash)
			assert.NotEqual(t, tt.input.Password, *out.User.PasswordHash)
		})
	}
}

func TestUpdate_Role(t *testing.T) {
	ctx := context.Background()
	editor := "editor"
	bogus := "root"
	usuario := "usuario"
	inactive := false

	tests := []struct {
		name    string
		input   user.UpdateInput
		target  model.User
		want    string
		wantErr error
	}{
		{name: "promote", input: user.UpdateInput{ID: "u1", Role: &editor}, target: model.User{ID: "u1", Role: "usuario"}, want: "editor"},
		{name: "unknown role", input: user.UpdateInput{ID: "u1", Role: &bogus}, target: model.User{ID: "u1", Role: "usuario"}, wantErr: user.ErrInvalidRole},
		{name: "self demotion", input: user.UpdateInput{ID: "admin-1", Role: &usuario}, target: model.User{ID: "admin-1", Role: "admin"}, wantErr: user.ErrCannotModifySelf},
		{name: "self deactivate", input: user.UpdateInput{ID: "admin-1", IsActive: &inactive}, target: model.User{ID: "admin-1", Role: "admin"}, wantErr: user.ErrCannotModifySelf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newUseCase(t)
			repo.On("Detail", ctx, adminScope, tt.input.ID).Return(tt.target, nil)
			repo.On("Update", ctx, adminScope, mock.Anything).
				Return(func(_ context.Context, _ model.Scope, o repository.UpdateOptions) model.User { return o.User }, nil).Maybe()

			out, err := uc.Update(ctx, adminScope, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.User.Role)
		})
	}
}

func TestDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)
	repo.On("Detail", ctx, adminScope, "x").Return(model.User{}, repository.ErrNotFound)

	_, err := uc.Detail(ctx, adminScope, "x")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)

	assert.ErrorIs(t, uc.Delete(ctx, adminScope, adminScope.UserID), user.ErrCannotModifySelf)

	repo.On("Delete", ctx, adminScope, "u2").Return(nil)
	assert.NoError(t, uc.Delete(ctx, adminScope, "u2"))

	repo.On("Delete", ctx, adminScope, "u3").Return(repository.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, adminScope, "u3"), user.ErrUserNotFound)
}

func TestGet_RoleFilter(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)

	repo.On("Get", ctx, adminScope, repository.GetOptions{Filter: repository.Filter{Role: "admin"}}).
		Return([]model.User{{ID: "a"}}, paginator.Paginator{Total: 1}, nil)

	out, err := uc.Get(ctx, adminScope, user.GetInput{Filter: user.Filter{Role: "ADMINISTRADOR"}})
	require.NoError(t, err)
	assert.Len(t, out.Users, 1)

	_, err = uc.Get(ctx, adminScope, user.GetInput{Filter: user.Filter{Role: "visor"}})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
