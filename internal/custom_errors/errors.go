package custom_errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer. Handlers branch on the kind,
// never on the concrete error value.
type Kind int

const (
	KindPersistence Kind = iota
	KindInvalidIdentifier
	KindValidationFailed
	KindReferenceNotFound
	KindDuplicateKey
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindValidationFailed:
		return "ValidationFailed"
	case KindReferenceNotFound:
		return "ReferenceNotFound"
	case KindDuplicateKey:
		return "DuplicateKey"
	case KindNotFound:
		return "NotFound"
	default:
		return "PersistenceError"
	}
}

type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Details []FieldViolation
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewValidation(details []FieldViolation) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Validation failed", Details: details}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap keeps the kind and message of e and attaches cause for logging.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Details: e.Details, Err: cause}
}

// Is matches a wrapped copy against the sentinel it was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message && len(t.Details) == 0
}

// KindOf reports the kind of err. Errors outside the taxonomy are persistence failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// DetailsOf returns the field violations carried by err, if any.
func DetailsOf(err error) []FieldViolation {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

var (
	ErrInvalidUserID = New(KindInvalidIdentifier, "Invalid user ID")
	ErrInvalidPostID = New(KindInvalidIdentifier, "Invalid post ID")

	ErrUserNotFound   = New(KindNotFound, "User not found")
	ErrPostNotFound   = New(KindNotFound, "Post not found")
	ErrAuthorNotFound = New(KindReferenceNotFound, "Author not found")
	ErrEmailExists    = New(KindDuplicateKey, "Email already exists")

	ErrDatabaseQuery = New(KindPersistence, "database query failed")
	ErrDatabaseScan  = New(KindPersistence, "database scan failed")
	ErrUserHasPosts  = New(KindPersistence, "user is still referenced by posts")
)
