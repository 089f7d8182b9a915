package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"filmhub/internal/microservices/http-api/repository"
)

// Failure kinds. Match them with errors.Is; anything else coming out of a
// service is a store failure and is passed through unchanged.
var (
	ErrNotFound         = errors.New("not found")
	ErrMissingReference = errors.New("missing reference")
	ErrValidation       = errors.New("validation failed")
)

// Error is a typed failure carrying a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func missingReference(format string, args ...any) error {
	return &Error{Kind: ErrMissingReference, Message: fmt.Sprintf(format, args...)}
}

func validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Validation wraps a transport-level decoding problem so handlers report it
// like any other validation failure.
func Validation(err error) error {
	return &Error{Kind: ErrValidation, Message: err.Error()}
}

// checkID rejects ids that cannot have been generated by the store.
func checkID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return validation("invalid %s id: %q", kind, id)
	}
	return nil
}

// lookupErr turns a repository miss into a not-found failure for kind.
func lookupErr(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("%s %s not found", kind, id)
	}
	return err
}
