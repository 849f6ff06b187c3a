package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"tracker-api/internal/attachment"
	"tracker-api/internal/model"
	projectRepo "tracker-api/internal/project/repository"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of an upload is read to detect its type.
const sniffLen = 3072

// allowedTypes are accepted upload MIME types; entries ending in "/" match a prefix.
var allowedTypes = []string{
	"image/",
	"text/plain",
	"text/csv",
	"application/pdf",
	"application/zip",
	"application/json",
	"application/msword",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.",
	"application/vnd.oasis.opendocument.",
}

func isAllowed(contentType string) bool {
	for _, t := range allowedTypes {
		if strings.HasSuffix(t, "/") || strings.HasSuffix(t, ".") {
			if strings.HasPrefix(contentType, t) {
				return true
			}
			continue
		}
		if contentType == t {
			return true
		}
	}
	return false
}

// sniff detects the content type of r and returns a reader that still yields
// the whole stream.
func sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	// Drop parameters such as "; charset=utf-8".
	ct, _, _ := strings.Cut(mt.String(), ";")
	return ct, io.MultiReader(bytes.NewReader(head), r), nil
}

func objectKey(projectID, id, fileName string) string {
	return fmt.Sprintf("projects/%s/%s%s", projectID, id, strings.ToLower(path.Ext(fileName)))
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

// visibleProject loads a project and hides it when sc may not see it.
func (uc *usecase) visibleProject(ctx context.Context, sc model.Scope, projectID string) (model.Project, error) {
	p, err := uc.projects.Detail(ctx, sc, projectID)
	if err != nil {
		if errors.Is(err, projectRepo.ErrNotFound) {
			return model.Project{}, attachment.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "internal.attachment.usecase.visibleProject.Detail: %v", err)
		return model.Project{}, err
	}
	if !p.VisibleTo(sc) {
		return model.Project{}, attachment.ErrProjectNotFound
	}
	return p, nil
}
