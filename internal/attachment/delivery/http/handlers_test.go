package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracker-api/internal/attachment"
	"tracker-api/internal/model"
	"tracker-api/pkg/log"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	attachment.UseCase
	mock.Mock
}

func (m *mockUseCase) Upload(ctx context.Context, sc model.Scope, ip attachment.UploadInput) (model.Attachment, error) {
	body, _ := io.ReadAll(ip.Reader)
	args := m.Called(ctx, sc, ip.ProjectID, ip.FileName, string(body))
	return args.Get(0).(model.Attachment), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, projectID string) ([]model.Attachment, error) {
	args := m.Called(ctx, sc, projectID)
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sc := model.Scope{UserID: "e1", RawRole: "editor", Role: permission.RoleEditor}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
	})
	r.POST("/projects/:id/files", h.Upload)
	r.GET("/projects/:id/files", h.List)
	return r
}

func multipartBody(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name  string
		field string
		ucErr error
		want  int
	}{
		{name: "ok", field: "file", want: http.StatusCreated},
		{name: "wrong field", field: "upload", want: http.StatusBadRequest},
		{name: "type rejected", field: "file", ucErr: attachment.ErrFileTypeNotAllowed, want: http.StatusUnsupportedMediaType},
		{name: "too large", field: "file", ucErr: attachment.ErrFileTooLarge, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Upload", mock.Anything, mock.Anything, "p1", "notes.txt", "hello").
				Return(model.Attachment{ID: "f1", FileName: "notes.txt"}, tt.ucErr).Maybe()

			body, ct := multipartBody(t, tt.field, "notes.txt", "hello")
			req := httptest.NewRequest(http.MethodPost, "/projects/p1/files", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			newRouter(New(log.NewNop(), uc, nil)).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestList_HiddenProject(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("List", mock.Anything, mock.Anything, "p9").Return([]model.Attachment(nil), attachment.ErrProjectNotFound)

	w := httptest.NewRecorder()
	newRouter(New(log.NewNop(), uc, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/p9/files", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
