package extract

import (
	"errors"
	"fmt"
)

// ErrNoUsableData reports a backend object that matches neither the nested
// {job_data, company_data} shape nor a flat job record.
var ErrNoUsableData = errors.New("backend response contains no usable job or company data")

// ValidationError rejects input text before any backend call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "input rejected: " + e.Reason
}

// ParseError reports backend output that could not be recovered to valid
// JSON after the single repair attempt. Context holds a window of the text
// around the failure position.
type ParseError struct {
	Offset  int64
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("parse backend response at offset %d: %v (near %q)", e.Offset, e.Err, e.Context)
	}
	return fmt.Sprintf("parse backend response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BackendError wraps a transport or authentication failure from the
// generative backend.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return "generative backend: " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
