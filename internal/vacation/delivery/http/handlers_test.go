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
	"tracker-api/internal/vacation"
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

func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, ip vacation.GetInput) (vacation.GetVacationOutput, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(vacation.GetVacationOutput), args.Error(1)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Vacation, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(model.Vacation), args.Error(1)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, ip vacation.CreateInput) (model.Vacation, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Vacation), args.Error(1)
}

func (m *mockUseCase) Decide(ctx context.Context, sc model.Scope, ip vacation.DecideInput) (model.Vacation, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Vacation), args.Error(1)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.Called(ctx, sc, id).Error(0)
}

func newServer(t *testing.T, role string) (*gin.Engine, *mockUseCase, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt, err := scope.New("a-very-long-test-secret-of-32-bytes!", time.Hour)
	require.NoError(t, err)
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)

	p := scope.Payload{Username: "ana", Role: role}
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

func TestDecide_RequiresEditProjects(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{name: "usuario", role: "usuario", want: http.StatusForbidden},
		{name: "supervisor", role: "supervisor", want: http.StatusForbidden},
		{name: "visor", role: "visor", want: http.StatusForbidden},
		{name: "editor", role: "editor", want: http.StatusOK},
		{name: "admin", role: "Administrador", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc, tok := newServer(t, tt.role)
			uc.On("Decide", mock.Anything, mock.Anything, vacation.DecideInput{ID: "v1", Status: model.VacationStatusApproved}).
				Return(model.Vacation{ID: "v1", Status: model.VacationStatusApproved}, nil)

			w := do(r, http.MethodPut, "/api/v1/vacations/v1/status", tok, `{"status":"Approved"}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(uc *mockUseCase)
		want  int
	}{
		{
			name: "created",
			body: `{"start_date":"2025-07-10","end_date":"2025-07-14","reason":"beach"}`,
			setup: func(uc *mockUseCase) {
				uc.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(ip vacation.CreateInput) bool {
					return ip.StartDate.Day() == 10 && ip.EndDate.Day() == 14 && ip.Reason != nil
				})).Return(model.Vacation{ID: "v1", Status: model.VacationStatusPending}, nil)
			},
			want: http.StatusCreated,
		},
		{
			name:  "bad date",
			body:  `{"start_date":"10/07/2025","end_date":"2025-07-14"}`,
			setup: func(uc *mockUseCase) {},
			want:  http.StatusBadRequest,
		},
		{
			name: "overlap",
			body: `{"start_date":"2025-07-10","end_date":"2025-07-14"}`,
			setup: func(uc *mockUseCase) {
				uc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.Vacation{}, vacation.ErrOverlap)
			},
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc, tok := newServer(t, "usuario")
			tt.setup(uc)

			w := do(r, http.MethodPost, "/api/v1/vacations", tok, tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGet_MonthFilter(t *testing.T) {
	r, uc, tok := newServer(t, "supervisor")
	uc.On("Get", mock.Anything, mock.Anything, mock.MatchedBy(func(ip vacation.GetInput) bool {
		return ip.Filter.All && ip.Filter.Month == "2025-07"
	})).Return(vacation.GetVacationOutput{}, nil)

	w := do(r, http.MethodGet, "/api/v1/vacations?all=true&month=2025-07", tok, "")
	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestDelete_NotPending(t *testing.T) {
	r, uc, tok := newServer(t, "usuario")
	uc.On("Delete", mock.Anything, mock.Anything, "v1").Return(vacation.ErrNotPending)

	w := do(r, http.MethodDelete, "/api/v1/vacations/v1", tok, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
