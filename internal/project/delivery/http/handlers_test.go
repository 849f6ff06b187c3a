package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker-api/config"
	"tracker-api/internal/middleware"
	"tracker-api/internal/model"
	"tracker-api/internal/project"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, ip project.GetInput) (project.GetProjectOutput, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(project.GetProjectOutput), args.Error(1)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, ip project.CreateInput) (model.Project, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, ip project.UpdateInput) (model.Project, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.Called(ctx, sc, id).Error(0)
}

func (m *mockUseCase) Export(ctx context.Context, sc model.Scope, ip project.ExportInput, w io.Writer) error {
	args := m.Called(ctx, sc, ip, w)
	_, _ = io.WriteString(w, "id,name\np1,Pump\n")
	return args.Error(0)
}

type server struct {
	r   *gin.Engine
	uc  *mockUseCase
	jwt scope.Manager
}

func newServer(t *testing.T) server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt, err := scope.New("a-very-long-test-secret-of-32-bytes!", time.Hour)
	require.NoError(t, err)
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)

	uc := &mockUseCase{}
	mw := middleware.New(log.NewNop(), jwt, nil, enc, config.CookieConfig{Name: "tracker_auth"})
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api/v1"), mw)
	return server{r: r, uc: uc, jwt: jwt}
}

func (s server) token(t *testing.T, role string) string {
	t.Helper()
	p := scope.Payload{Username: "x", Role: role}
	p.Subject = "u-" + role
	tok, err := s.jwt.CreateToken(p)
	require.NoError(t, err)
	return tok
}

func (s server) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func TestRoutePermissions(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "usuario cannot create", role: "usuario", method: http.MethodPost, path: "/api/v1/projects", body: `{"name":"x"}`, want: http.StatusForbidden},
		{name: "editor cannot create", role: "editor", method: http.MethodPost, path: "/api/v1/projects", body: `{"name":"x"}`, want: http.StatusForbidden},
		{name: "admin creates", role: "administrador", method: http.MethodPost, path: "/api/v1/projects", body: `{"name":"x"}`, want: http.StatusCreated},
		{name: "supervisor cannot edit", role: "supervisor", method: http.MethodPut, path: "/api/v1/projects/p1", body: `{}`, want: http.StatusForbidden},
		{name: "editor edits", role: "EDITOR", method: http.MethodPut, path: "/api/v1/projects/p1", body: `{}`, want: http.StatusOK},
		{name: "editor cannot delete", role: "editor", method: http.MethodDelete, path: "/api/v1/projects/p1", want: http.StatusForbidden},
		{name: "admin deletes", role: "admin", method: http.MethodDelete, path: "/api/v1/projects/p1", want: http.StatusOK},
		{name: "supervisor cannot export", role: "supervisor", method: http.MethodGet, path: "/api/v1/projects/export", want: http.StatusForbidden},
		{name: "monitor cannot export", role: "monitor", method: http.MethodGet, path: "/api/v1/projects/export", want: http.StatusForbidden},
		{name: "editor exports", role: "editor", method: http.MethodGet, path: "/api/v1/projects/export", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			s.uc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.Project{ID: "p1"}, nil).Maybe()
			s.uc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(model.Project{ID: "p1"}, nil).Maybe()
			s.uc.On("Delete", mock.Anything, mock.Anything, "p1").Return(nil).Maybe()
			s.uc.On("Export", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

			w := s.do(tt.method, tt.path, s.token(t, tt.role), tt.body)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "missing permission")
			}
		})
	}
}

func TestExport_CSV(t *testing.T) {
	s := newServer(t)
	s.uc.On("Export", mock.Anything, mock.Anything, project.ExportInput{Filter: project.Filter{Status: model.ProjectStatusActive}}, mock.Anything).Return(nil)

	w := s.do(http.MethodGet, "/api/v1/projects/export?status=Active", s.token(t, "editor"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "projects-")
	assert.Equal(t, "id,name\np1,Pump\n", w.Body.String())
}

func TestCreate_InvalidDate(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/api/v1/projects", s.token(t, "admin"), `{"name":"x","start_date":"01/07/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
