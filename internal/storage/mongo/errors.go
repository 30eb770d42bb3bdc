package mongo

import "strings"

// ValidationError reports a record missing required schema fields. The check
// is structural only; it does not validate value types or content.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "record is missing required fields: " + strings.Join(e.Missing, ", ")
}

// StoreError wraps a connectivity or write failure against the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "document store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
