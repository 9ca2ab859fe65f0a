package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for authentication and authorization failures.
var (
	// ErrUnauthorized means the caller presented no token or an invalid one.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrForbidden means the caller is authenticated but does not own the
	// resource it is trying to mutate.
	ErrForbidden = errors.New("not authorized to perform requested action")
	// ErrInvalidCredentials means a login attempt with a wrong email or
	// password. Both cases read the same to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError reports a missing resource or a broken ownership link. A
// resource reached through the wrong parent reads the same as one that does
// not exist at all.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource kind and id.
func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// BadRequestError reports a malformed or illegal request payload.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

// BadRequest builds a BadRequestError with the given reason.
func BadRequest(reason string) error {
	return &BadRequestError{Reason: reason}
}

// ConflictError surfaces a store constraint violation, such as a duplicate
// customer email or a variant requested twice under one service request.
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("request conflicts with constraint %s", e.Constraint)
	}
	return "request conflicts with existing data"
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
