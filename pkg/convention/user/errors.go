package user

import (
	"fmt"
)

type DecodeErrorKind string

const (
	InvalidEncoding    DecodeErrorKind = "invalid_encoding"
	MalformedStructure DecodeErrorKind = "malformed_structure"
	MissingField       DecodeErrorKind = "missing_field"
	TypeMismatch       DecodeErrorKind = "type_mismatch"
	InvalidValue       DecodeErrorKind = "invalid_value"
)

// DecodeError is returned when a payload cannot become a Record. It is always
// caused by the caller and never worth retrying.
type DecodeError struct {
	Kind     DecodeErrorKind
	Field    string
	Expected string
	Err      error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidEncoding:
		return "payload is not valid UTF-8"
	case MalformedStructure:
		if e.Err != nil {
			return fmt.Sprintf("payload is not a JSON object: %v", e.Err)
		}
		return "payload is not a JSON object"
	case MissingField:
		return fmt.Sprintf("missing required field %q", e.Field)
	case TypeMismatch, InvalidValue:
		return fmt.Sprintf("field %q must be %s", e.Field, e.Expected)
	}
	return fmt.Sprintf("decode error: %s", e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type WriteErrorKind string

const (
	StoreUnavailable     WriteErrorKind = "store_unavailable"
	ConfigurationMissing WriteErrorKind = "configuration_missing"
	RejectedByStore      WriteErrorKind = "rejected_by_store"
)

// WriteError is returned when a Record could not be persisted.
type WriteError struct {
	Kind WriteErrorKind
	Err  error
}

func (e *WriteError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same write may succeed if attempted again.
func (e *WriteError) Retryable() bool {
	return e.Kind == StoreUnavailable
}
