package errors

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrTooManyAttachments   = errors.New("too many attachments")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrTimeout              = errors.New("upstream timeout")
	ErrInternal             = errors.New("internal server error")
)
