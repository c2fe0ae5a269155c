// Package apperrors defines the domain error taxonomy shared by services
// and translated to HTTP statuses at the handler boundary.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers empty, unknown and mismatched login
	// credentials alike, so callers cannot probe for existing accounts.
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrUnauthorized means no authenticated identity was presented
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden means the authenticated identity lacks the required role
	ErrForbidden = errors.New("insufficient permissions")

	// ErrDuplicateUsername means the username is already registered
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail means the email is already registered
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrCommentNotOwned means the comment does not belong to the post it
	// was addressed under
	ErrCommentNotOwned = errors.New("comment does not belong to post")
)

// ResourceNotFoundError reports an absent entity looked up by a field value
type ResourceNotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// NewNotFound creates a ResourceNotFoundError for an id lookup
func NewNotFound(resource string, value any) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, Field: "id", Value: value}
}

// ValidationError reports a payload field violating a content constraint
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

// MissingFieldError reports a required registration field that was absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidSortFieldError reports a sort key that does not resolve to a
// post field
type InvalidSortFieldError struct {
	Field string
}

func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("invalid sort field: %s", e.Field)
}

// CategoryNotEmptyError reports a category deletion blocked by posts that
// still reference it
type CategoryNotEmptyError struct {
	ID int
}

func (e *CategoryNotEmptyError) Error() string {
	return fmt.Sprintf("category %d still has posts and cannot be deleted", e.ID)
}

// RoleNotConfiguredError reports a role missing from the registry. This is
// an initialization defect: seeding must run before registration is served.
type RoleNotConfiguredError struct {
	Name string
}

func (e *RoleNotConfiguredError) Error() string {
	return fmt.Sprintf("role not configured: %s", e.Name)
}
