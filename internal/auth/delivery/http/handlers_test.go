package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tracker-api/config"
	"tracker-api/internal/auth/usecase"
	"tracker-api/internal/middleware"
	"tracker-api/internal/model"
	"tracker-api/internal/user"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRevocations struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ttl > 0 {
		m.ids[jti] = true
	}
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[jti], nil
}

type stubUsers struct {
	user.UseCase
	usr model.User
}

func (s stubUsers) GetOne(_ context.Context, _ model.Scope, ip user.GetOneInput) (model.User, error) {
	if ip.Username != s.usr.Username {
		return model.User{}, user.ErrUserNotFound
	}
	return s.usr, nil
}

func (s stubUsers) DetailMe(_ context.Context, sc model.Scope) (user.UserOutput, error) {
	if sc.UserID != s.usr.ID {
		return user.UserOutput{}, user.ErrUserNotFound
	}
	return user.UserOutput{User: s.usr}, nil
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)
	jwt, err := scope.New("a-very-long-test-secret-of-32-bytes!", time.Hour)
	require.NoError(t, err)
	hash, err := enc.HashPassword("password1")
	require.NoError(t, err)

	name := "Maria Supervisora"
	users := stubUsers{usr: model.User{ID: "u1", Username: "maria", FullName: &name, PasswordHash: &hash, Role: "Supervisor"}}
	revocations := &memRevocations{ids: map[string]bool{}}
	cookie := config.CookieConfig{Name: "tracker_auth", MaxAge: 3600, SameSite: "Lax"}

	uc := usecase.New(log.NewNop(), revocations, users, jwt, enc)
	mw := middleware.New(log.NewNop(), jwt, revocations, enc, cookie)
	h := New(log.NewNop(), uc, nil, cookie)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), mw)
	return r
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginMeLogout(t *testing.T) {
	r := newServer(t)

	w := do(r, http.MethodPost, "/api/v1/auth/login", "", `{"username":"maria","password":"password1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "tracker_auth=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	var login struct {
		Data struct {
			Token       string          `json:"token"`
			Role        string          `json:"role"`
			Permissions map[string]bool `json:"permissions"`
			User        struct {
				DisplayName string `json:"display_name"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, "Supervisor", login.Data.Role)
	assert.Equal(t, "Maria Supervisora", login.Data.User.DisplayName)
	assert.True(t, login.Data.Permissions["viewAllProjects"])
	assert.True(t, login.Data.Permissions["viewReports"])
	assert.False(t, login.Data.Permissions["editProjects"])
	assert.Len(t, login.Data.Permissions, 8)

	token := login.Data.Token
	w = do(r, http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"granted":["viewAllProjects","viewReports"]`)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Failures(t *testing.T) {
	r := newServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "wrong password", body: `{"username":"maria","password":"nope"}`, want: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"password1"}`, want: http.StatusUnauthorized},
		{name: "missing fields", body: `{}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, http.MethodPost, "/api/v1/auth/login", "", tt.body).Code)
		})
	}
}
