package services

import (
	"errors"
	"fmt"
)

// NotFoundError is the single error kind for every missing-entity lookup.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

func notFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrNotAuthor is returned when a mutation requires ownership the caller
// does not have.
var ErrNotAuthor = errors.New("only the author can do that")
