package errors

import "strings"

// PermissionError reports a capability the caller lacks. Field holds the
// capability name.
type PermissionError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewPermissionError(code int, field string, messages ...string) *PermissionError {
	return &PermissionError{Code: code, Field: field, Messages: messages}
}

func (e *PermissionError) Error() string {
	return joinMessages(e.Field, e.Messages)
}

// PermissionErrorCollector gathers every missing capability of a request.
type PermissionErrorCollector struct {
	errors []*PermissionError
}

func NewPermissionErrorCollector() *PermissionErrorCollector {
	return &PermissionErrorCollector{errors: make([]*PermissionError, 0)}
}

func (c *PermissionErrorCollector) Add(err *PermissionError) *PermissionErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

func (c *PermissionErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *PermissionErrorCollector) Errors() []*PermissionError {
	return c.errors
}

func (c *PermissionErrorCollector) Error() string {
	msgs := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}
