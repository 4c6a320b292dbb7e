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

// Package value defines the numeric operand model for eqgen: the supported
// numeric kinds (integer, float, fraction), the Number tagged union that
// carries a sampled literal together with its textual rendering, and the
// per-kind sampling ranges.
//
// Numbers are immutable once constructed. Arithmetic on numbers is not
// defined here; operands are handed to the algebra engine, which performs
// exact arithmetic with standard promotion rules (fraction∘fraction stays
// exact, a float operand promotes the result to its decimal rational form).
package value

import (
	"encoding/json"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Verify Kind implements Model at compile time.
var _ model.Model = (*Kind)(nil)

// Kind identifies the concrete representation of a sampled numeric literal.
//
// The generator draws a Kind by weighted random choice before sampling a
// value, so Kind doubles as the key type for kind-probability tables and
// per-kind range configuration. The zero value is KindInteger.
type Kind int

const (
	// KindInteger denotes a bounded signed integer literal.
	KindInteger Kind = iota

	// KindFloat denotes a floating-point literal normalized to 5 decimal
	// places at sampling time.
	KindFloat

	// KindFraction denotes an exact rational literal with independently
	// bounded numerator and denominator, denominator never zero.
	KindFraction
)

// String constants for Kind values used in serialization, parsing, and
// human-facing output. These names form the stable external representation
// of Kind and MAY be persisted in configuration files and YAML documents.
const (
	KindIntegerStr  = "integer"
	KindFloatStr    = "float"
	KindFractionStr = "fraction"
)

// Kinds returns all supported numeric kinds in their canonical order
// (integer, float, fraction). Weighted draws walk kinds in this order, so
// it is part of the reproducibility contract for seeded runs.
func Kinds() []Kind {
	return []Kind{KindInteger, KindFloat, KindFraction}
}

// ParseKind converts a textual representation into a Kind value.
//
// The accepted vocabulary is case-insensitive over the canonical names:
//
//	"integer"  -> KindInteger
//	"float"    -> KindFloat
//	"fraction" -> KindFraction
//
// Any other input yields a *ParseError carrying the original string.
func ParseKind(s string) (Kind, error) {
	switch s {
	case KindIntegerStr, "Integer", "INTEGER":
		return KindInteger, nil
	case KindFloatStr, "Float", "FLOAT":
		return KindFloat, nil
	case KindFractionStr, "Fraction", "FRACTION":
		return KindFraction, nil
	default:
		return KindInteger, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the canonical lowercase representation of the Kind, or
// "unknown" for values outside the defined constants.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return KindIntegerStr
	case KindFloat:
		return KindFloatStr
	case KindFraction:
		return KindFractionStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Kind is one of the defined constants.
func (k Kind) Valid() bool {
	return k == KindInteger || k == KindFloat || k == KindFraction
}

// TypeName returns "Kind", the name of the type for logging and debugging.
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same representation as String; Kind values carry no
// sensitive information.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind has its zero value (KindInteger).
// KindInteger is a valid kind, so IsZero does not indicate an error.
func (k Kind) IsZero() bool {
	return k == KindInteger
}

// Equal reports whether this Kind equals another value, accepting both Kind
// and *Kind.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate checks whether the Kind is one of the defined constants and
// returns a *ValidationError otherwise.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "Kind",
			Reason: "invalid Kind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Kind. A valid Kind serializes
// as its canonical string; an invalid value yields a *MarshalError.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Kind, accepting both the
// canonical string forms (via ParseKind) and the numeric constants.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseKind(s)
		if perr != nil {
			return perr
		}
		*k = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	parsed := Kind(n)
	if !parsed.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "numeric value out of range"}
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Kind with the same validity
// rule as MarshalJSON.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Kind, resolving string
// representations via ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Kind.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
