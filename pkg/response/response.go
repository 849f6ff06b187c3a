package response

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime"
	"strings"

	"tracker-api/pkg/discord"
	"tracker-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError(), c, nil))
}

func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError(), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var (
		validationErr  *errors.ValidationError
		permissionErr  *errors.PermissionError
		validationsErr *errors.ValidationErrorCollector
		permissionsErr *errors.PermissionErrorCollector
		httpErr        *errors.HTTPError
	)

	switch {
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: validationErr.Code,
			Message:   validationErr.Error(),
		}
	case stderrors.As(err, &permissionErr):
		return http.StatusForbidden, Resp{
			ErrorCode: permissionErr.Code,
			Message:   permissionErr.Error(),
		}
	case stderrors.As(err, &validationsErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    validationsErr.Errors(),
		}
	case stderrors.As(err, &permissionsErr):
		return http.StatusForbidden, Resp{
			ErrorCode: PermissionErrorCode,
			Message:   PermissionErrorMsg,
			Errors:    permissionsErr.Errors(),
		}
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			report := buildInternalServerErrorReport(c, err.Error(), captureStackTrace())
			sendDiscordMessageAsync(d, report)
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error writes err using its typed form; unknown errors become 500 and are
// reported to d when non-nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks err up in eMap before falling back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr, nil)
			return
		}
	}
	Error(c, err, d)
}

// PanicError renders a recovered panic value as a 500.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if current.Len()+len(line) > DiscordMaxMessageLen {
			if current.Len() > 0 {
				chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
				current.Reset()
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}

// sensitiveHeaders are never copied into error reports.
var sensitiveHeaders = map[string]struct{}{
	"Authorization": {},
	"Cookie":        {},
	"X-Device-Key":  {},
}

func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ TRACKER API ERROR ================\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.String())
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString("---------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers :\n")
		for key, values := range c.Request.Header {
			if _, skip := sensitiveHeaders[key]; skip {
				continue
			}
			fmt.Fprintf(&sb, "    %s: %s\n", key, strings.Join(values, ", "))
		}
		sb.WriteString("---------------------------------------------------\n")
	}

	if params := c.Request.URL.Query().Encode(); params != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", params)
	}

	if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err == nil && len(bodyBytes) > 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			fmt.Fprintf(&sb, "Body    :\n    %s\n", string(bodyBytes))
			sb.WriteString("---------------------------------------------------\n")
		}
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("===================================================\n")
	return sb.String()
}
