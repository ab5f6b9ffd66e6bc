package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		expected Record
		kind     DecodeErrorKind
		field    string
	}{
		{
			name:     "valid payload",
			payload:  []byte(`{"name":"Alice","age":30}`),
			expected: Record{Name: "Alice", Age: 30},
		},
		{
			name:     "lower age bound",
			payload:  []byte(`{"name":"Newborn","age":0}`),
			expected: Record{Name: "Newborn", Age: 0},
		},
		{
			name:     "upper age bound",
			payload:  []byte(`{"age":150,"name":"Methuselah"}`),
			expected: Record{Name: "Methuselah", Age: 150},
		},
		{
			name:     "unknown fields are ignored",
			payload:  []byte(`{"name":"Alice","age":30,"email":"alice@example.com"}`),
			expected: Record{Name: "Alice", Age: 30},
		},
		{
			name:     "surrounding whitespace",
			payload:  []byte("\n  {\"name\": \"Zoë\", \"age\": 41}\n"),
			expected: Record{Name: "Zoë", Age: 41},
		},
		{
			name:    "invalid utf-8",
			payload: []byte{'{', '"', 'n', 'a', 'm', 'e', '"', ':', '"', 0xff, 0xfe, '"', '}'},
			kind:    InvalidEncoding,
		},
		{
			name:    "not json",
			payload: []byte(`name=Alice&age=30`),
			kind:    MalformedStructure,
		},
		{
			name:    "empty body",
			payload: []byte(``),
			kind:    MalformedStructure,
		},
		{
			name:    "json array",
			payload: []byte(`[{"name":"Alice","age":30}]`),
			kind:    MalformedStructure,
		},
		{
			name:    "json null",
			payload: []byte(`null`),
			kind:    MalformedStructure,
		},
		{
			name:    "trailing data",
			payload: []byte(`{"name":"Alice","age":30}{"name":"Bob","age":31}`),
			kind:    MalformedStructure,
		},
		{
			name:    "missing age",
			payload: []byte(`{"name":"Bob"}`),
			kind:    MissingField,
			field:   "age",
		},
		{
			name:    "missing name",
			payload: []byte(`{"age":30}`),
			kind:    MissingField,
			field:   "name",
		},
		{
			name:    "empty object reports name first",
			payload: []byte(`{}`),
			kind:    MissingField,
			field:   "name",
		},
		{
			name:    "age as text",
			payload: []byte(`{"name":"Alice","age":"thirty"}`),
			kind:    TypeMismatch,
			field:   "age",
		},
		{
			name:    "age as quoted digits",
			payload: []byte(`{"name":"Alice","age":"30"}`),
			kind:    TypeMismatch,
			field:   "age",
		},
		{
			name:    "age as fraction",
			payload: []byte(`{"name":"Alice","age":30.5}`),
			kind:    TypeMismatch,
			field:   "age",
		},
		{
			name:    "age as null",
			payload: []byte(`{"name":"Alice","age":null}`),
			kind:    TypeMismatch,
			field:   "age",
		},
		{
			name:    "name as number",
			payload: []byte(`{"name":42,"age":30}`),
			kind:    TypeMismatch,
			field:   "name",
		},
		{
			name:    "empty name",
			payload: []byte(`{"name":"","age":30}`),
			kind:    InvalidValue,
			field:   "name",
		},
		{
			name:    "negative age",
			payload: []byte(`{"name":"Alice","age":-1}`),
			kind:    InvalidValue,
			field:   "age",
		},
		{
			name:    "age above range",
			payload: []byte(`{"name":"Alice","age":151}`),
			kind:    InvalidValue,
			field:   "age",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.payload)

			if tc.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
				return
			}

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected *DecodeError, got %v", err)
			assert.Equal(t, tc.kind, decodeErr.Kind)
			assert.Equal(t, tc.field, decodeErr.Field)
			assert.Equal(t, Record{}, got)
			assert.NotEmpty(t, decodeErr.Error())
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	payload := []byte(`{"name":"Alice","age":30}`)
	original := append([]byte(nil), payload...)

	first, err := Decode(payload)
	require.NoError(t, err)

	second, err := Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, payload)
}

func TestDecodeErrorMessages(t *testing.T) {
	assert.Equal(t, `missing required field "age"`, (&DecodeError{Kind: MissingField, Field: "age"}).Error())
	assert.Equal(t, `field "age" must be an integer`, (&DecodeError{Kind: TypeMismatch, Field: "age", Expected: "an integer"}).Error())
	assert.Equal(t, "payload is not valid UTF-8", (&DecodeError{Kind: InvalidEncoding}).Error())
}
