package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// MessageValidationFailed is the error message of every rejected request body.
const MessageValidationFailed = "Validation failed"

//nolint:gochecknoinits // huma only allows replacing its error constructor globally
func init() { huma.NewError = NewError }

// ErrorModel is the body of every error response.
// Details are only set on 400 responses.
type ErrorModel struct {
	status  int
	Message string              `json:"error"             doc:"error message"      example:"Contact not found"`
	Details []*huma.ErrorDetail `json:"details,omitempty" doc:"validation failures"`
}

var _ huma.StatusError = (*ErrorModel)(nil)

func (e *ErrorModel) Error() string  { return e.Message }
func (e *ErrorModel) GetStatus() int { return e.status }

// NewError replaces [huma.NewError].
// huma reports schema failures as 422 and body parsing failures as 400 with
// details; both are answered like any other validation failure.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	switch {
	case status == http.StatusUnprocessableEntity:
		status, msg = http.StatusBadRequest, MessageValidationFailed
	case status == http.StatusBadRequest && len(errs) > 0:
		msg = MessageValidationFailed
	}

	e := &ErrorModel{status: status, Message: msg}
	if status != http.StatusBadRequest {
		return e
	}

	e.Details = make([]*huma.ErrorDetail, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			e.Details = append(e.Details, detailer.ErrorDetail())
		} else {
			e.Details = append(e.Details, &huma.ErrorDetail{Message: err.Error()})
		}
	}
	return e
}
