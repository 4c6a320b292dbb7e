/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package equation

import (
	"encoding/json"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Verify ErrorKind implements Model at compile time.
var _ model.Model = (*ErrorKind)(nil)

// ErrorKind classifies why a generation attempt was flagged negative.
// The zero value, ErrorNone, means the attempt succeeded; every other
// kind records the first arithmetic or solve failure of the run.
type ErrorKind int

const (
	// ErrorNone means the generation completed without failure.
	ErrorNone ErrorKind = iota

	// ErrorOverflow records arithmetic that exceeded the representable
	// numeric magnitude.
	ErrorOverflow

	// ErrorDivisionByZero records division, or a power implying division,
	// by an operand that evaluated to exact zero.
	ErrorDivisionByZero

	// ErrorUnsolvable records an initial equation with no closed-form
	// solution the engine can produce.
	ErrorUnsolvable

	// ErrorInvalid records a malformed expression reported by the engine.
	ErrorInvalid
)

// String constants for ErrorKind values. ErrorNone deliberately renders as
// the empty string so a successful outcome serializes with no error field.
const (
	ErrorNoneStr           = ""
	ErrorOverflowStr       = "overflow"
	ErrorDivisionByZeroStr = "division-by-zero"
	ErrorUnsolvableStr     = "unsolvable"
	ErrorInvalidStr        = "invalid"
)

// ErrorKinds returns all defined error kinds in canonical order, ErrorNone
// included.
func ErrorKinds() []ErrorKind {
	return []ErrorKind{ErrorNone, ErrorOverflow, ErrorDivisionByZero, ErrorUnsolvable, ErrorInvalid}
}

// ParseErrorKind converts a textual representation into an ErrorKind.
// The empty string parses to ErrorNone. Any other input outside the
// canonical vocabulary yields a *ParseError.
func ParseErrorKind(s string) (ErrorKind, error) {
	switch s {
	case ErrorNoneStr, "none":
		return ErrorNone, nil
	case ErrorOverflowStr:
		return ErrorOverflow, nil
	case ErrorDivisionByZeroStr:
		return ErrorDivisionByZero, nil
	case ErrorUnsolvableStr:
		return ErrorUnsolvable, nil
	case ErrorInvalidStr:
		return ErrorInvalid, nil
	default:
		return ErrorNone, &errors.ParseError{Type: "ErrorKind", Value: s}
	}
}

// String returns the canonical representation of the ErrorKind; ErrorNone
// renders as the empty string, values outside the defined constants as
// "unknown".
func (e ErrorKind) String() string {
	switch e {
	case ErrorNone:
		return ErrorNoneStr
	case ErrorOverflow:
		return ErrorOverflowStr
	case ErrorDivisionByZero:
		return ErrorDivisionByZeroStr
	case ErrorUnsolvable:
		return ErrorUnsolvableStr
	case ErrorInvalid:
		return ErrorInvalidStr
	default:
		return "unknown"
	}
}

// Valid reports whether the ErrorKind is one of the defined constants.
func (e ErrorKind) Valid() bool {
	return e >= ErrorNone && e <= ErrorInvalid
}

// TypeName returns "ErrorKind", the name of the type for logging and
// debugging.
func (e ErrorKind) TypeName() string {
	return "ErrorKind"
}

// Redacted returns the same representation as String; ErrorKind values
// carry no sensitive information.
func (e ErrorKind) Redacted() string {
	return e.String()
}

// IsZero reports whether the ErrorKind is ErrorNone.
func (e ErrorKind) IsZero() bool {
	return e == ErrorNone
}

// Equal reports whether this ErrorKind equals another value, accepting
// both ErrorKind and *ErrorKind.
func (e ErrorKind) Equal(other any) bool {
	switch v := other.(type) {
	case ErrorKind:
		return e == v
	case *ErrorKind:
		if v == nil {
			return false
		}
		return e == *v
	default:
		return false
	}
}

// Validate checks whether the ErrorKind is one of the defined constants
// and returns a *ValidationError otherwise.
func (e ErrorKind) Validate() error {
	if !e.Valid() {
		return &errors.ValidationError{
			Type:   "ErrorKind",
			Reason: "invalid ErrorKind value",
			Value:  int(e),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ErrorKind. A valid kind
// serializes as its canonical string (the empty string for ErrorNone); an
// invalid value yields a *MarshalError.
func (e ErrorKind) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "ErrorKind", Value: int(e)}
	}
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for ErrorKind, accepting both
// the canonical string forms (via ParseErrorKind) and the numeric
// constants.
func (e *ErrorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseErrorKind(s)
		if perr != nil {
			return perr
		}
		*e = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "ErrorKind", Data: data, Reason: err.Error()}
	}
	parsed := ErrorKind(n)
	if !parsed.Valid() {
		return &errors.UnmarshalError{Type: "ErrorKind", Data: data, Reason: "numeric value out of range"}
	}
	*e = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ErrorKind with the same
// validity rule as MarshalJSON.
func (e ErrorKind) MarshalYAML() (any, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "ErrorKind", Value: int(e)}
	}
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ErrorKind, resolving
// string representations via ParseErrorKind.
func (e *ErrorKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ErrorKind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseErrorKind(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for ErrorKind.
func (e ErrorKind) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "ErrorKind", Value: int(e)}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for ErrorKind.
func (e *ErrorKind) UnmarshalText(text []byte) error {
	parsed, err := ParseErrorKind(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
