package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Decode turns a raw request body into a Record. Missing or mistyped fields
// are rejected, never defaulted.
func Decode(payload []byte) (Record, error) {
	if !utf8.Valid(payload) {
		return Record{}, &DecodeError{Kind: InvalidEncoding}
	}

	fields, err := decodeObject(payload)
	if err != nil {
		return Record{}, &DecodeError{Kind: MalformedStructure, Err: err}
	}

	name, err := decodeName(fields)
	if err != nil {
		return Record{}, err
	}

	age, err := decodeAge(fields)
	if err != nil {
		return Record{}, err
	}

	return Record{Name: name, Age: age}, nil
}

func decodeObject(payload []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage

	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}

	// a bare null decodes into a nil map without error
	if fields == nil {
		return nil, errors.New("null document")
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after object")
	}

	return fields, nil
}

func decodeName(fields map[string]json.RawMessage) (string, error) {
	raw, exists := fields["name"]
	if !exists {
		return "", &DecodeError{Kind: MissingField, Field: "name"}
	}

	value, err := decodeValue(raw)
	if err != nil {
		return "", &DecodeError{Kind: MalformedStructure, Field: "name", Err: err}
	}

	name, ok := value.(string)
	if !ok {
		return "", &DecodeError{Kind: TypeMismatch, Field: "name", Expected: "a string"}
	}

	if name == "" {
		return "", &DecodeError{Kind: InvalidValue, Field: "name", Expected: "a non-empty string"}
	}

	return name, nil
}

func decodeAge(fields map[string]json.RawMessage) (uint16, error) {
	raw, exists := fields["age"]
	if !exists {
		return 0, &DecodeError{Kind: MissingField, Field: "age"}
	}

	value, err := decodeValue(raw)
	if err != nil {
		return 0, &DecodeError{Kind: MalformedStructure, Field: "age", Err: err}
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, &DecodeError{Kind: TypeMismatch, Field: "age", Expected: "an integer"}
	}

	age, err := number.Int64()
	if err != nil {
		return 0, &DecodeError{Kind: TypeMismatch, Field: "age", Expected: "an integer", Err: err}
	}

	if age < MinAge || age > MaxAge {
		return 0, &DecodeError{
			Kind:     InvalidValue,
			Field:    "age",
			Expected: fmt.Sprintf("between %d and %d", MinAge, MaxAge),
		}
	}

	return uint16(age), nil
}

// decodeValue keeps numbers as json.Number so quoted digits and floats stay
// distinguishable from integers.
func decodeValue(raw json.RawMessage) (any, error) {
	var value any

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	return value, nil
}
