package errkind

import (
	"fmt"
	"strings"
	"time"
)

// Tag distinguishes the kinds of CommonError.
type Tag string

const (
	TagNetwork    Tag = "NetworkError"
	TagHTTP       Tag = "HttpError"
	TagValidation Tag = "ValidationError"
	TagNotFound   Tag = "NotFoundError"
	TagParse      Tag = "ParseError"
	TagTimeout    Tag = "TimeoutError"
)

// CommonError is the closed union of failure kinds defined in this package.
// The unexported method keeps other packages from adding kinds.
type CommonError interface {
	error
	Tag() Tag
	commonError()
}

var (
	_ CommonError = (*NetworkError)(nil)
	_ CommonError = (*HTTPError)(nil)
	_ CommonError = (*ValidationError)(nil)
	_ CommonError = (*NotFoundError)(nil)
	_ CommonError = (*ParseError)(nil)
	_ CommonError = (*TimeoutError)(nil)
)

// NetworkError reports that a remote endpoint could not be reached.
type NetworkError struct {
	Cause error
	// URL is empty when unknown.
	URL string
}

func (e *NetworkError) Tag() Tag      { return TagNetwork }
func (e *NetworkError) Unwrap() error { return e.Cause }
func (e *NetworkError) commonError()  {}

func (e *NetworkError) Error() string {
	msg := "network error"
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// HTTPError reports a non-successful protocol status.
type HTTPError struct {
	Status     int
	StatusText string
	URL        string
}

func (e *HTTPError) Tag() Tag     { return TagHTTP }
func (e *HTTPError) commonError() {}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d %s: %s", e.Status, e.StatusText, e.URL)
}

// ValidationError carries one or more validation messages, optionally bound
// to a field.
type ValidationError struct {
	Messages []string
	Field    string
}

func (e *ValidationError) Tag() Tag     { return TagValidation }
func (e *ValidationError) commonError() {}

func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Field != "" {
		msg += " on " + e.Field
	}
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, ", ")
	}
	return msg
}

// NotFoundError reports a missing resource. ID is empty when unknown.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Tag() Tag     { return TagNotFound }
func (e *NotFoundError) commonError() {}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
	}
	return e.Resource + " not found"
}

// ParseError reports input that could not be decoded.
type ParseError struct {
	Cause error
	// Input is the offending input, empty when unknown.
	Input string
}

func (e *ParseError) Tag() Tag      { return TagParse }
func (e *ParseError) Unwrap() error { return e.Cause }
func (e *ParseError) commonError()  {}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// TimeoutError reports that Operation gave up after Timeout.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Tag() Tag     { return TagTimeout }
func (e *TimeoutError) commonError() {}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Operation, e.Timeout)
}

// Network builds a NetworkError. url may be empty.
func Network(cause error, url string) *NetworkError {
	return &NetworkError{Cause: cause, URL: url}
}

func HTTP(status int, statusText, url string) *HTTPError {
	return &HTTPError{Status: status, StatusText: statusText, URL: url}
}

// Validation builds a ValidationError not bound to a field.
func Validation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// FieldValidation builds a ValidationError bound to field.
func FieldValidation(field string, messages ...string) *ValidationError {
	return &ValidationError{Messages: messages, Field: field}
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func Parse(cause error, input string) *ParseError {
	return &ParseError{Cause: cause, Input: input}
}

func Timeout(operation string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{Operation: operation, Timeout: timeout}
}
