package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker-api/config"
	"tracker-api/internal/model"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/response"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevocations map[string]bool

func (f fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f[jti], nil
}

type fixture struct {
	mw      Middleware
	jwt     scope.Manager
	enc     encrypter.Encrypter
	revoked fakeRevocations
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := scope.New("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	enc, err := encrypter.New("0123456789abcdef")
	require.NoError(t, err)

	revoked := fakeRevocations{}
	return fixture{
		mw:      New(log.NewNop(), m, revoked, enc, config.CookieConfig{Name: "tracker_auth"}),
		jwt:     m,
		enc:     enc,
		revoked: revoked,
	}
}

func (f fixture) token(t *testing.T, role string) (string, string) {
	t.Helper()
	tok, err := f.jwt.CreateToken(scope.Payload{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Username:         "ana",
		Role:             role,
	})
	require.NoError(t, err)
	p, err := f.jwt.Verify(tok)
	require.NoError(t, err)
	return tok, p.ID
}

func (f fixture) router(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	all := append([]gin.HandlerFunc{}, handlers...)
	all = append(all, func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		response.OK(c, gin.H{"role": sc.Role.String()})
	})
	r.GET("/x", all...)
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	f := newFixture(t)
	tok, _ := f.token(t, "editor")
	revokedTok, revokedJTI := f.token(t, "editor")
	f.revoked[revokedJTI] = true

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{name: "no token", setup: func(r *http.Request) {}, status: http.StatusUnauthorized},
		{name: "bad scheme", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }, status: http.StatusUnauthorized},
		{name: "bad token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, status: http.StatusUnauthorized},
		{name: "revoked", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+revokedTok) }, status: http.StatusUnauthorized},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }, status: http.StatusOK},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "tracker_auth", Value: tok}) }, status: http.StatusOK},
	}

	r := f.router(f.mw.Auth())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			tt.setup(req)
			assert.Equal(t, tt.status, do(r, req).Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		role   string
		perms  []permission.Permission
		any    bool
		status int
	}{
		{name: "admin deletes", role: "admin", perms: []permission.Permission{permission.DeleteProjects}, status: http.StatusOK},
		{name: "administrador deletes", role: "Administrador", perms: []permission.Permission{permission.DeleteProjects}, status: http.StatusOK},
		{name: "editor cannot delete", role: "editor", perms: []permission.Permission{permission.DeleteProjects}, status: http.StatusForbidden},
		{name: "editor exports", role: "editor", perms: []permission.Permission{permission.ExportData}, status: http.StatusOK},
		{name: "supervisor all needs export", role: "supervisor", perms: []permission.Permission{permission.ViewReports, permission.ExportData}, status: http.StatusForbidden},
		{name: "supervisor any", role: "supervisor", perms: []permission.Permission{permission.ViewReports, permission.ExportData}, any: true, status: http.StatusOK},
		{name: "usuario reports", role: "usuario", perms: []permission.Permission{permission.ViewReports}, status: http.StatusForbidden},
		{name: "unknown role", role: "monitor", perms: []permission.Permission{permission.ViewAllProjects}, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := f.mw.RequirePermission(tt.perms...)
			if tt.any {
				guard = f.mw.RequireAnyPermission(tt.perms...)
			}
			r := f.router(f.mw.Auth(), guard)

			tok, _ := f.token(t, tt.role)
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			w := do(r, req)
			require.Equal(t, tt.status, w.Code)

			if tt.status == http.StatusForbidden {
				var body response.Resp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, response.PermissionErrorCode, body.ErrorCode)
				assert.NotEmpty(t, body.Errors)
			}
		})
	}
}

func TestRequirePermission_NoScope(t *testing.T) {
	f := newFixture(t)
	r := f.router(f.mw.RequirePermission(permission.ViewReports))
	w := do(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStreamAuth_Ticket(t *testing.T) {
	f := newFixture(t)
	r := f.router(f.mw.StreamAuth())

	raw, err := json.Marshal(model.Scope{UserID: "user-1", RawRole: "supervisor", JTI: "j1"})
	require.NoError(t, err)
	ticket, err := f.enc.SealTicket(string(raw), time.Minute)
	require.NoError(t, err)

	w := do(r, httptest.NewRequest(http.MethodGet, "/x?ticket="+ticket, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "supervisor")

	f.revoked["j1"] = true
	w = do(r, httptest.NewRequest(http.MethodGet, "/x?ticket="+ticket, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/x?ticket=garbage", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig([]string{"http://app.local", "*.example.com"})))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://app.local")
	w := do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = do(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	assert.True(t, isOriginAllowed("https://api.example.com", []string{"*.example.com"}))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/x", func(c *gin.Context) { panic("boom") })

	w := do(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
