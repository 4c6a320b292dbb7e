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

// Package errors provides reusable error types for eqgen enum-like and
// configuration types.
//
// This package defines the common error types used across the eqcore
// packages (value, operation, equation, generator) when parsing, marshaling,
// unmarshaling and validating strongly typed values. Centralizing them keeps
// the error handling story consistent across the whole module: every setter
// and every Parse helper reports failures through one of the types below,
// with stable message formats.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails
//     (for example ParseAction, ParseFamily, ParseKind).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText / MarshalYAML implementations
//     to reject values that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     malformed input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model or configuration value fails.
//     Every configuration setter on generator.Config reports range and
//     shape violations through this type, leaving the prior configuration
//     intact.
//
// The errors in this package are intentionally simple value carriers. They
// are easy to construct from parsing and validation code, easy to recognize
// via type assertions, and easy for users to understand when surfaced in
// logs or diagnostics.
package errors

import (
	"fmt"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Action",
// "Family", "Kind"), and Value contains the exact string that could not be
// interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example,
	// "Action").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is stable:
//
//	"eqgen: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "eqgen: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling an invalid enum-like value fails.
//
// Type identifies the logical type being marshaled and Value carries the
// out-of-range numeric representation. Marshal implementations return this
// error instead of silently emitting "unknown" so that invalid values
// surface as explicit failures during encoding.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the invalid numeric representation of the enum value.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is stable:
//
//	"eqgen: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "eqgen: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the target type, Data carries the raw input that could
// not be decoded, and Reason describes the underlying failure (a decoder
// error, a parse failure, or a constraint violation).
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled.
	Type string

	// Data is the raw input that failed to decode.
	Data []byte

	// Reason describes why decoding failed.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is stable:
//
//	"eqgen: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "eqgen: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model or configuration
// value fails.
//
// Type names the type being validated, Field optionally names the offending
// field, Reason describes the violated constraint, and Value carries the
// rejected value for diagnostics. Configuration setters return this error
// synchronously and leave the previous configuration unchanged.
type ValidationError struct {
	// Type is the logical name of the type being validated (for example,
	// "Config", "Ranges").
	Type string

	// Field is the name of the invalid field, or empty when the violation
	// concerns the value as a whole.
	Field string

	// Reason describes the violated constraint.
	Reason string

	// Value is the rejected value, included in the formatted message for
	// diagnostics.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is stable:
//
//	"eqgen: invalid {Type}.{Field}: {Reason} (value: {Value})"
//
// The ".{Field}" segment is omitted when Field is empty, and the
// "(value: ...)" suffix is omitted when Value is nil.
func (e *ValidationError) Error() string {
	msg := "eqgen: invalid " + e.Type
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return msg
}
