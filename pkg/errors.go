package pkg

import "errors"

// ErrorKind groups application errors the way callers need to react to them.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindConflict        ErrorKind = "CONFLICT"
	KindInternal        ErrorKind = "INTERNAL"
)

// AppError is a domain error with a stable code and a user-facing message.
//
// Sentinel AppErrors are compared by identity, so errors.Is works as with
// any errors.New value.
type AppError struct {
	Code    string
	Message string
	Kind    ErrorKind
	Err     error
}

func NewDomainError(code, message string, err error, kind ErrorKind) *AppError {
	return &AppError{Code: code, Message: message, Err: err, Kind: kind}
}

func NewDomainErrorSimple(code, message string, kind ErrorKind) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Classify returns the first AppError in err's chain, or an INTERNAL_ERROR
// wrapping err when there is none.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, KindInternal)
}
