package utils

import "errors"

// Error kinds shared by every layer. Services wrap them with fmt.Errorf("%w: ...")
// or NewError, and handlers map them to status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrAuth       = errors.New("invalid credentials")
	ErrStorage    = errors.New("storage failure")
	ErrNotFound   = errors.New("not found")
)

// Error carries a message that is safe to show to the user.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// NewValidationError keeps the per-field messages next to the summary.
func NewValidationError(message string, fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: message, Fields: fields}
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// ErrorMessage returns the user-facing message of err, or fallback when err
// carries none.
func ErrorMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// ErrorFields returns the per-field messages attached to err, if any.
func ErrorFields(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
