package domain

import (
	"errors"
	"fmt"
)

// Kind classifies errors for the request boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrMalformedBody   = newError(KindValidation, "malformed_body", "Invalid request")
	ErrMissingField    = newError(KindValidation, "missing_field", "Missing required fields")
	ErrInvalidURL      = newError(KindValidation, "invalid_url", "Invalid URL format")
	ErrInvalidColor    = newError(KindValidation, "invalid_color", "Invalid color format")
	ErrIndexOutOfRange = newError(KindValidation, "index_out_of_range", "Category or site index out of range")

	ErrUnauthorized = newError(KindUnauthorized, "unauthorized", "Unauthorized")

	ErrSiteNotFound        = newError(KindNotFound, "site_not_found", "Site not found")
	ErrApplicationNotFound = newError(KindNotFound, "application_not_found", "Application not found")

	ErrDuplicateCategory = newError(KindConflict, "duplicate_category", "Category already exists")
	ErrAlreadyProcessed  = newError(KindConflict, "already_processed", "Application already processed")

	ErrStorage         = newError(KindStorage, "storage", "Internal server error")
	ErrCorruptDocument = newError(KindStorage, "corrupt_document", "Internal server error")
)

// AsError returns the classified error in err's chain.
// Unclassified errors are reported as storage failures.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return ErrStorage
}

// KindOf is a shorthand for AsError(err).Kind.
func KindOf(err error) Kind {
	return AsError(err).Kind
}
