package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Kind separates failures that share an HTTP code, such as a missing
	// schema and a generic internal error.
	Kind Kind `json:"-"`
}

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindUnavailable
	KindSchemaMissing
)

var ErrDatabaseUnavailable = &Failure{Code: http.StatusServiceUnavailable, Message: "database unavailable", Kind: KindUnavailable}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindBadRequest,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindBadRequest,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Kind:    KindInternal,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindNotFound,
	}
}

// Unavailable returns a new Failure for a backing resource that cannot be reached.
func Unavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
			Kind:    KindUnavailable,
		}
	}

	return nil
}

// SchemaMissing returns a new Failure for queries against a table that does not exist.
func SchemaMissing(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Kind:    KindSchemaMissing,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface. Errors that are not a
// Failure are internal.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && GetKind(err) == KindNotFound
}

func IsUnavailable(err error) bool {
	return err != nil && GetKind(err) == KindUnavailable
}

func IsBadRequest(err error) bool {
	return err != nil && GetKind(err) == KindBadRequest
}

func IsSchemaMissing(err error) bool {
	return err != nil && GetKind(err) == KindSchemaMissing
}
