package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure by the part of the system that produced it.
type Kind string

const (
	KindGeneric    Kind = ""
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindStorage    Kind = "storage"
	KindRender     Kind = "render"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Kind    Kind              `json:"kind,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	cause   error
}

var InvalidVisitor = &Failure{Code: http.StatusBadRequest, Message: "missing visitor identifier", Kind: KindValidation}
var InvalidHouse = &Failure{Code: http.StatusBadRequest, Message: "house must be a number between 1 and 12", Kind: KindValidation}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// ValidationError reports missing or invalid user input. Fields maps each
// offending field name to its message.
func ValidationError(msg string, fields map[string]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindValidation,
		Fields:  fields,
	}
}

// NetworkError reports a failed, timed out or rejected outbound request.
func NetworkError(msg string, err error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		Kind:    KindNetwork,
		cause:   err,
	}
}

// StorageError reports that the journal store could not be read or written.
func StorageError(msg string, err error) error {
	return &Failure{
		Code:    http.StatusInsufficientStorage,
		Message: msg,
		Kind:    KindStorage,
		cause:   err,
	}
}

// RenderError reports that a page feature could not be constructed.
func RenderError(msg string, err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		Kind:    KindRender,
		cause:   err,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsKind reports whether err carries a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
