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

package value

import (
	"fmt"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
)

// Range types serialize through their plain struct forms, so they carry
// the validation and logging contracts only.
var (
	_ model.Validatable = IntRange{}
	_ model.Validatable = FloatRange{}
	_ model.Validatable = FractionRange{}
	_ model.Validatable = Ranges{}
)

// IntRange is an ordered inclusive pair of integer bounds for sampling
// integer literals (and fraction components).
//
// A valid IntRange satisfies Min <= Max. The bounds themselves may be
// negative or positive; a range that contains only zero is valid as a
// range but makes zero-excluding sampling impossible, so the generation
// configuration rejects it where the range feeds a sampler.
type IntRange struct {
	// Min is the inclusive lower bound.
	Min int64 `json:"min" yaml:"min"`

	// Max is the inclusive upper bound.
	Max int64 `json:"max" yaml:"max"`
}

// Validate checks that the range is ordered (Min <= Max).
func (r IntRange) Validate() error {
	if r.Min > r.Max {
		return &errors.ValidationError{
			Type:   "IntRange",
			Reason: "Min MUST NOT exceed Max",
			Value:  fmt.Sprintf("(%d, %d)", r.Min, r.Max),
		}
	}
	return nil
}

// String returns the range in "(min, max)" form.
func (r IntRange) String() string {
	return fmt.Sprintf("(%d, %d)", r.Min, r.Max)
}

// IsZero reports whether both bounds are zero.
func (r IntRange) IsZero() bool {
	return r == IntRange{}
}

// OnlyZero reports whether the range admits no value other than zero, the
// one shape a zero-excluding sampler cannot serve.
func (r IntRange) OnlyZero() bool {
	return r.Min == 0 && r.Max == 0
}

// FloatRange is an ordered inclusive pair of float bounds for sampling
// float literals. A valid FloatRange satisfies Min <= Max with both bounds
// finite.
type FloatRange struct {
	// Min is the inclusive lower bound.
	Min float64 `json:"min" yaml:"min"`

	// Max is the inclusive upper bound.
	Max float64 `json:"max" yaml:"max"`
}

// Validate checks that the range is ordered (Min <= Max).
func (r FloatRange) Validate() error {
	if r.Min > r.Max {
		return &errors.ValidationError{
			Type:   "FloatRange",
			Reason: "Min MUST NOT exceed Max",
			Value:  fmt.Sprintf("(%g, %g)", r.Min, r.Max),
		}
	}
	return nil
}

// String returns the range in "(min, max)" form.
func (r FloatRange) String() string {
	return fmt.Sprintf("(%g, %g)", r.Min, r.Max)
}

// IsZero reports whether both bounds are zero.
func (r FloatRange) IsZero() bool {
	return r == FloatRange{}
}

// FractionRange bounds a fraction literal through two independent integer
// ranges, one for the numerator and one for the denominator. Both ranges
// MUST be ordered; the denominator range additionally MUST admit a nonzero
// value, since a fraction denominator is never zero.
type FractionRange struct {
	// Numerator bounds the sampled numerator.
	Numerator IntRange `json:"numerator" yaml:"numerator"`

	// Denominator bounds the sampled denominator.
	Denominator IntRange `json:"denominator" yaml:"denominator"`
}

// Validate checks both component ranges and the denominator's nonzero
// admissibility.
func (r FractionRange) Validate() error {
	if err := r.Numerator.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "FractionRange",
			Field:  "Numerator",
			Reason: "Min MUST NOT exceed Max",
			Value:  r.Numerator.String(),
		}
	}
	if err := r.Denominator.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "FractionRange",
			Field:  "Denominator",
			Reason: "Min MUST NOT exceed Max",
			Value:  r.Denominator.String(),
		}
	}
	if r.Denominator.OnlyZero() {
		return &errors.ValidationError{
			Type:   "FractionRange",
			Field:  "Denominator",
			Reason: "range MUST admit a nonzero denominator",
			Value:  r.Denominator.String(),
		}
	}
	return nil
}

// String returns the range in "((min, max), (min, max))" form, numerator
// first.
func (r FractionRange) String() string {
	return "(" + r.Numerator.String() + ", " + r.Denominator.String() + ")"
}

// IsZero reports whether all four bounds are zero.
func (r FractionRange) IsZero() bool {
	return r == FractionRange{}
}

// Ranges aggregates the per-kind sampling bounds used by the value
// sampler: one range per supported numeric Kind.
//
// Ranges is a plain configuration value; a defensive copy is taken when it
// crosses the Config boundary so that later caller-side mutation cannot
// affect generation.
type Ranges struct {
	// Integer bounds integer literal sampling.
	Integer IntRange `json:"integer" yaml:"integer"`

	// Float bounds float literal sampling.
	Float FloatRange `json:"float" yaml:"float"`

	// Fraction bounds fraction literal sampling.
	Fraction FractionRange `json:"fraction" yaml:"fraction"`
}

// DefaultRanges returns the stock sampling bounds: integers and floats in
// (-100, 200), fraction numerators in (-100, 200) and denominators in
// (-400, 400).
func DefaultRanges() Ranges {
	return Ranges{
		Integer:  IntRange{Min: -100, Max: 200},
		Float:    FloatRange{Min: -100.0, Max: 200.0},
		Fraction: FractionRange{Numerator: IntRange{Min: -100, Max: 200}, Denominator: IntRange{Min: -400, Max: 400}},
	}
}

// Validate checks every per-kind range.
func (r Ranges) Validate() error {
	if err := r.Integer.Validate(); err != nil {
		return err
	}
	if err := r.Float.Validate(); err != nil {
		return err
	}
	return r.Fraction.Validate()
}

// String returns a compact per-kind summary of the ranges.
func (r Ranges) String() string {
	return fmt.Sprintf("integer=%s float=%s fraction=%s", r.Integer, r.Float, r.Fraction)
}

// IsZero reports whether every range has its zero value.
func (r Ranges) IsZero() bool {
	return r == Ranges{}
}
