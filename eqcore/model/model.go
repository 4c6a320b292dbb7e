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

// Package model defines the core contracts that all eqgen domain model types
// MUST implement to ensure consistency, type safety, and proper behavior
// across the module.
//
// Every domain type (numeric kinds and ranges, actions, equation families,
// error kinds, outcomes) SHOULD implement the Model interface or its
// constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// Validation ensures that invalid states cannot be constructed or persisted:
// a probability outside [0,1], a range whose minimum exceeds its maximum, or
// an enum value outside its defined constants is rejected at the boundary
// where it enters the system. Serialization provides round-trip guarantees
// for configuration files and API payloads. Loggable offers both full and
// redacted string forms; eqgen types carry no sensitive data, so the two are
// typically identical, but the contract is kept so that model values compose
// with generic logging helpers.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. Most model types are immutable value
// types and therefore safe for concurrent reads; callers MUST synchronize
// any concurrent writes.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone, and
// Equal. These helpers rely on the Model contract and fail at compile time
// when applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for eqgen domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces. Model instances are
// generally treated as immutable value types; methods defined on Model
// SHOULD NOT mutate the receiver unless explicitly documented.
//
// Example compile-time check:
//
//	var _ Model = (*Action)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST verify that all invariants hold and return nil if and only
// if the instance is in a consistent state suitable for use in generation
// logic, persistence, or transmission. When validation fails, the returned
// error MUST describe what is invalid specifically ("Weights[add] MUST be
// in [0,1]"), not generically ("validation failed"). Implementations in
// this module return *errors.ValidationError.
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, perform I/O, or depend on external mutable state. Callers
// SHOULD invoke Validate immediately after unmarshaling external input and
// before handing values to the generator.
type Validatable interface {
	// Validate checks all invariants of the value and returns a descriptive
	// error when any of them is violated.
	Validate() error
}

// Serializable defines the contract for round-trip JSON and YAML encoding.
//
// Marshal implementations MUST reject invalid values with a *MarshalError
// rather than silently emitting placeholder output; unmarshal
// implementations MUST reject malformed input with a *UnmarshalError or the
// underlying *ParseError. A value that marshals successfully MUST
// unmarshal back to an equal value (round-trip guarantee).
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for safe string representations in logs and
// diagnostics.
//
// String returns the full human-readable representation. Redacted returns a
// representation safe for logs; eqgen model values contain no sensitive
// data, so Redacted typically matches String, but generic logging helpers
// MUST call Redacted so that any future sensitive type participates safely.
type Loggable interface {
	// String returns the canonical human-readable representation.
	String() string

	// Redacted returns a log-safe representation.
	Redacted() string
}

// Identifiable supplies a canonical type name for logging, error reporting,
// and reflection-free diagnostics.
type Identifiable interface {
	// TypeName returns the stable name of the type (for example, "Action").
	TypeName() string
}

// ZeroCheckable detects empty or uninitialized instances, supporting
// optional-field handling and default detection.
//
// Note that for enum types the zero value is frequently a valid constant
// (for example FamilyLinear), so IsZero returning true does not by itself
// indicate an error condition.
type ZeroCheckable interface {
	// IsZero reports whether the value equals its type's zero value.
	IsZero() bool
}

// Comparable is an optional contract for types supporting semantic equality
// beyond == (for example, reduced fractions). The helpers in this package
// fall back to serialized comparison for types that do not implement it.
type Comparable interface {
	// Equal reports whether the receiver is semantically equal to other.
	// Implementations accept both value and pointer forms of their own type
	// and report false for any other type.
	Equal(other any) bool
}
