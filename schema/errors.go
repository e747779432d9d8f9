package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Issue is a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

var _ huma.ErrorDetailer = (*Issue)(nil)

func (i *Issue) Error() string {
	return i.Path + ": " + i.Message
}

// ErrorDetail implements [huma.ErrorDetailer].
func (i *Issue) ErrorDetail() *huma.ErrorDetail {
	return &huma.ErrorDetail{Location: "body." + i.Path, Message: i.Message, Value: i.Value}
}

// ValidationError carries every [Issue] found in an input.
type ValidationError struct {
	Issues []*Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Errors returns the issues as errors, in the form expected by [huma.NewError].
func (e *ValidationError) Errors() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		errs = append(errs, issue)
	}
	return errs
}

// issues accumulates [Issue] under a path prefix.
// A muted issues drops what is added to it.
type issues struct {
	prefix string
	list   *[]*Issue
	muted  bool
}

func newIssues() issues { return issues{list: new([]*Issue)} }

func (is issues) field(name string) issues {
	if is.prefix != "" {
		name = is.prefix + "." + name
	}
	return issues{prefix: name, list: is.list, muted: is.muted}
}

func (is issues) index(i int) issues {
	return issues{prefix: is.prefix + "[" + strconv.Itoa(i) + "]", list: is.list, muted: is.muted}
}

func (is issues) add(value any, format string, args ...any) {
	if is.muted {
		return
	}
	*is.list = append(*is.list, &Issue{Path: is.prefix, Message: fmt.Sprintf(format, args...), Value: value})
}

func (is issues) err() error {
	if len(*is.list) == 0 {
		return nil
	}
	return &ValidationError{Issues: *is.list}
}
