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

// Package equation defines the equation-level model for eqgen: the
// supported initial-equation families, the generation failure kinds, the
// textual side pair, the resolve path, and the generation outcome triple.
package equation

import (
	"encoding/json"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Verify Family implements Model at compile time.
var _ model.Model = (*Family)(nil)

// Family identifies the shape of the initial equation the builder
// produces. Linear, quadratic, and cubic build a polynomial over the
// configured symbols equated to zero; general equates two independently
// synthesized expressions. The zero value is FamilyLinear.
type Family int

const (
	// FamilyLinear builds sum(a_i * symbol_i) + c = 0.
	FamilyLinear Family = iota

	// FamilyQuadratic builds sum(a_i*symbol_i^2 + b_i*symbol_i) + c = 0.
	FamilyQuadratic

	// FamilyCubic builds
	// sum(a_i*symbol_i^3 + b_i*symbol_i^2 + c_i*symbol_i) + d = 0.
	FamilyCubic

	// FamilyGeneral equates two independently synthesized expressions;
	// no algebraic relationship between the sides is enforced.
	FamilyGeneral
)

// String constants for Family values used in serialization, parsing, and
// human-facing output.
const (
	FamilyLinearStr    = "linear"
	FamilyQuadraticStr = "quadratic"
	FamilyCubicStr     = "cubic"
	FamilyGeneralStr   = "general"
)

// Families returns all supported equation families in canonical order.
func Families() []Family {
	return []Family{FamilyLinear, FamilyQuadratic, FamilyCubic, FamilyGeneral}
}

// ParseFamily converts a textual representation into a Family value.
// Any input outside the canonical vocabulary yields a *ParseError.
func ParseFamily(s string) (Family, error) {
	switch s {
	case FamilyLinearStr, "Linear", "LINEAR":
		return FamilyLinear, nil
	case FamilyQuadraticStr, "Quadratic", "QUADRATIC":
		return FamilyQuadratic, nil
	case FamilyCubicStr, "Cubic", "CUBIC":
		return FamilyCubic, nil
	case FamilyGeneralStr, "General", "GENERAL":
		return FamilyGeneral, nil
	default:
		return FamilyLinear, &errors.ParseError{Type: "Family", Value: s}
	}
}

// String returns the canonical lowercase representation of the Family, or
// "unknown" for values outside the defined constants.
func (f Family) String() string {
	switch f {
	case FamilyLinear:
		return FamilyLinearStr
	case FamilyQuadratic:
		return FamilyQuadraticStr
	case FamilyCubic:
		return FamilyCubicStr
	case FamilyGeneral:
		return FamilyGeneralStr
	default:
		return "unknown"
	}
}

// Degree returns the polynomial degree the family's initial builder
// produces, or 0 for FamilyGeneral, whose degree depends on the synthesized
// expressions.
func (f Family) Degree() int {
	switch f {
	case FamilyLinear:
		return 1
	case FamilyQuadratic:
		return 2
	case FamilyCubic:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the Family is one of the defined constants.
func (f Family) Valid() bool {
	return f >= FamilyLinear && f <= FamilyGeneral
}

// TypeName returns "Family", the name of the type for logging and
// debugging.
func (f Family) TypeName() string {
	return "Family"
}

// Redacted returns the same representation as String; Family values carry
// no sensitive information.
func (f Family) Redacted() string {
	return f.String()
}

// IsZero reports whether the Family has its zero value (FamilyLinear).
// FamilyLinear is a valid family, so IsZero does not indicate an error.
func (f Family) IsZero() bool {
	return f == FamilyLinear
}

// Equal reports whether this Family equals another value, accepting both
// Family and *Family.
func (f Family) Equal(other any) bool {
	switch v := other.(type) {
	case Family:
		return f == v
	case *Family:
		if v == nil {
			return false
		}
		return f == *v
	default:
		return false
	}
}

// Validate checks whether the Family is one of the defined constants and
// returns a *ValidationError otherwise.
func (f Family) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{
			Type:   "Family",
			Reason: "invalid Family value",
			Value:  int(f),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Family. A valid Family
// serializes as its canonical string; an invalid value yields a
// *MarshalError.
func (f Family) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Family", Value: int(f)}
	}
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Family, accepting both
// the canonical string forms (via ParseFamily) and the numeric constants.
func (f *Family) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseFamily(s)
		if perr != nil {
			return perr
		}
		*f = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Family", Data: data, Reason: err.Error()}
	}
	parsed := Family(n)
	if !parsed.Valid() {
		return &errors.UnmarshalError{Type: "Family", Data: data, Reason: "numeric value out of range"}
	}
	*f = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Family with the same validity
// rule as MarshalJSON.
func (f Family) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Family", Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Family, resolving string
// representations via ParseFamily.
func (f *Family) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Family", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Family.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Family", Value: int(f)}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Family.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
