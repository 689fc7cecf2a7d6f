// Package validation provides common validation utilities and the error type
// used for domain violations.
package validation

import "fmt"

// DomainError reports an operation given a value outside its accepted domain.
// Field names the offending parameter, Value is the rejected input, and Reason
// describes the valid set or range.
type DomainError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v %s", e.Field, e.Value, e.Reason)
}

// NewDomainError constructs a DomainError for the given field and value.
func NewDomainError(field string, value interface{}, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}
