package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker-api/config"
	"tracker-api/internal/middleware"
	"tracker-api/internal/model"
	"tracker-api/internal/note"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/paginator"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, ip note.GetInput) (note.GetNoteOutput, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(note.GetNoteOutput), args.Error(1)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, ip note.CreateInput) (model.Note, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, ip note.UpdateInput) (model.Note, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.Called(ctx, sc, id).Error(0)
}

func newServer(t *testing.T) (*gin.Engine, *mockUseCase, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt, err := scope.New("a-very-long-test-secret-of-32-bytes!", time.Hour)
	require.NoError(t, err)
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)

	p := scope.Payload{Username: "ana", Role: "usuario"}
	p.Subject = "u1"
	tok, err := jwt.CreateToken(p)
	require.NoError(t, err)

	uc := &mockUseCase{}
	mw := middleware.New(log.NewNop(), jwt, nil, enc, config.CookieConfig{Name: "tracker_auth"})
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api/v1"), mw)
	return r, uc, tok
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGet_ForwardsFilter(t *testing.T) {
	r, uc, tok := newServer(t)

	uc.On("Get", mock.Anything, mock.Anything, mock.MatchedBy(func(ip note.GetInput) bool {
		return ip.Filter.All && ip.Filter.Search == "pump" && ip.Filter.Pinned != nil && *ip.Filter.Pinned
	})).Return(note.GetNoteOutput{Paginator: paginator.Paginator{}}, nil)

	w := do(r, http.MethodGet, "/api/v1/notes?all=true&search=pump&pinned=true", tok, "")
	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mockUseCase)
		want   int
	}{
		{
			name:   "listing others is forbidden",
			method: http.MethodGet,
			path:   "/api/v1/notes?all=true",
			setup: func(uc *mockUseCase) {
				uc.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(note.GetNoteOutput{}, note.ErrForbidden)
			},
			want: http.StatusForbidden,
		},
		{
			name:   "missing note",
			method: http.MethodGet,
			path:   "/api/v1/notes/n1",
			setup: func(uc *mockUseCase) {
				uc.On("Detail", mock.Anything, mock.Anything, "n1").Return(model.Note{}, note.ErrNoteNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name:   "title too long",
			method: http.MethodPut,
			path:   "/api/v1/notes/n1",
			body:   `{"title":"x"}`,
			setup: func(uc *mockUseCase) {
				uc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(model.Note{}, note.ErrTitleTooLong)
			},
			want: http.StatusBadRequest,
		},
		{
			name:   "create without title",
			method: http.MethodPost,
			path:   "/api/v1/notes",
			body:   `{"content":"x"}`,
			setup:  func(uc *mockUseCase) {},
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc, tok := newServer(t)
			tt.setup(uc)

			w := do(r, tt.method, tt.path, tok, tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCreate_UsesCallerScope(t *testing.T) {
	r, uc, tok := newServer(t)

	uc.On("Create", mock.Anything, mock.MatchedBy(func(sc model.Scope) bool {
		return sc.UserID == "u1"
	}), note.CreateInput{Title: "Pump", Pinned: true}).
		Return(model.Note{ID: "n1", UserID: "u1", Title: "Pump", Pinned: true}, nil)

	w := do(r, http.MethodPost, "/api/v1/notes", tok, `{"title":"Pump","pinned":true}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"n1"`)
}

func TestUnauthenticated(t *testing.T) {
	r, _, _ := newServer(t)
	w := do(r, http.MethodGet, "/api/v1/notes", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
