package errs

import (
	"errors"
)

type Kind string

const (
	KindBusiness       Kind = "business"
	KindInfrastructure Kind = "infrastructure"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
)

// Stable codes exposed to API clients.
const (
	CodeBusiness       = "APP-ERR-001"
	CodeInfrastructure = "APP-ERR-002"
	CodeAuthentication = "APP-ERR-003"
	CodeAuthorization  = "APP-ERR-004"
	CodeValidation     = "APP-ERR-005"
	CodeNotFound       = "APP-ERR-006"
	CodeConflict       = "APP-ERR-007"

	CodeFileMissing  = "FILE-ERR-001"
	CodeFileType     = "FILE-ERR-002"
	CodeFileTooLarge = "FILE-ERR-003"
	CodeFileUpload   = "FILE-ERR-004"
)

var defaultCodes = map[Kind]string{
	KindBusiness:       CodeBusiness,
	KindInfrastructure: CodeInfrastructure,
	KindAuthentication: CodeAuthentication,
	KindAuthorization:  CodeAuthorization,
	KindValidation:     CodeValidation,
	KindNotFound:       CodeNotFound,
	KindConflict:       CodeConflict,
}

// AppError is the error type the HTTP boundary knows how to render.
// Cause stays reachable through errors.Is / errors.As.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(kind Kind, cause error, msg string, details map[string]any) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    defaultCodes[kind],
		Message: msg,
		Details: details,
		cause:   cause,
	}
}

func Validation(cause error, msg string, details map[string]any) *AppError {
	return newAppError(KindValidation, cause, msg, details)
}

func Business(cause error, msg string, details map[string]any) *AppError {
	return newAppError(KindBusiness, cause, msg, details)
}

func NotFound(cause error, resource string, id any) *AppError {
	return newAppError(KindNotFound, cause, resource+" not found", map[string]any{
		"resource": resource,
		"id":       id,
	})
}

func Conflict(cause error, msg string, details map[string]any) *AppError {
	return newAppError(KindConflict, cause, msg, details)
}

func Unauthenticated(cause error, msg string) *AppError {
	return newAppError(KindAuthentication, cause, msg, nil)
}

func Forbidden(cause error, msg string, details map[string]any) *AppError {
	return newAppError(KindAuthorization, cause, msg, details)
}

func Infrastructure(cause error, msg string) *AppError {
	return newAppError(KindInfrastructure, cause, msg, nil)
}

// File builds a validation error carrying one of the FILE-ERR codes.
func File(code string, cause error, msg string, details map[string]any) *AppError {
	e := newAppError(KindValidation, cause, msg, details)
	e.Code = code
	return e
}

func AsApp(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	appErr, ok := AsApp(err)
	return ok && appErr.Kind == kind
}
