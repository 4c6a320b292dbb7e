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
	"encoding/json"
	"math"
	"strconv"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Verify Number implements Model at compile time.
var _ model.Model = (*Number)(nil)

// FloatPrecision is the number of decimal places a float literal is rounded
// to at sampling time. Sampled floats are re-checked against zero after
// rounding, so a Number of KindFloat is never exactly zero when produced by
// the sampler.
const FloatPrecision = 5

// Number is the tagged union of the supported numeric literal
// representations: a bounded integer, a float normalized to FloatPrecision
// decimal places, or an exact reduced fraction.
//
// A Number is immutable once constructed. It carries enough information to
// be rendered textually (String) and to be lifted into the algebra engine's
// exact representation; no arithmetic is defined on Number itself.
//
// The zero value of Number is the integer 0, which is a valid Number but is
// never produced by the sampler (sampling excludes exact zero).
type Number struct {
	kind Kind
	i    int64
	f    float64
	num  int64
	den  int64
}

// NewInt constructs an integer Number.
func NewInt(v int64) Number {
	return Number{kind: KindInteger, i: v}
}

// NewFloat constructs a float Number, rounding v to FloatPrecision decimal
// places. Rounding can produce exact zero; samplers MUST re-check the
// result when zero is excluded.
func NewFloat(v float64) Number {
	return Number{kind: KindFloat, f: RoundFloat(v)}
}

// NewFraction constructs a fraction Number from a numerator and
// denominator, reducing to lowest terms and normalizing the sign onto the
// numerator. A zero denominator is rejected with a *ValidationError.
func NewFraction(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, &errors.ValidationError{
			Type:   "Number",
			Field:  "Denominator",
			Reason: "denominator MUST NOT be zero",
			Value:  den,
		}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Number{kind: KindFraction, num: num, den: den}, nil
}

// RoundFloat rounds v to FloatPrecision decimal places, the normalization
// applied to every sampled float literal.
func RoundFloat(v float64) float64 {
	const shift = 1e5
	return math.Round(v*shift) / shift
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Kind returns the representation tag of the Number.
func (n Number) Kind() Kind {
	return n.kind
}

// Int64 returns the integer payload. It is only meaningful for
// KindInteger numbers.
func (n Number) Int64() int64 {
	return n.i
}

// Float64 returns the numeric value of the Number as a float64, regardless
// of kind. Fractions are divided out; integers are converted exactly when
// representable.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindFloat:
		return n.f
	case KindFraction:
		return float64(n.num) / float64(n.den)
	default:
		return float64(n.i)
	}
}

// Fraction returns the reduced numerator and denominator. It is only
// meaningful for KindFraction numbers; the denominator is always positive.
func (n Number) Fraction() (num, den int64) {
	return n.num, n.den
}

// IsExactZero reports whether the Number's numeric value is exactly zero.
// The sampler uses this to re-draw; zero operands make multiplicative and
// divisive complication steps degenerate.
func (n Number) IsExactZero() bool {
	switch n.kind {
	case KindFloat:
		return n.f == 0
	case KindFraction:
		return n.num == 0
	default:
		return n.i == 0
	}
}

// String returns the textual rendering of the Number as it appears inside
// generated equation text: integers as plain digits, floats in decimal
// notation, fractions parenthesized as "(num/den)".
func (n Number) String() string {
	switch n.kind {
	case KindFloat:
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	case KindFraction:
		return "(" + strconv.FormatInt(n.num, 10) + "/" + strconv.FormatInt(n.den, 10) + ")"
	default:
		return strconv.FormatInt(n.i, 10)
	}
}

// TypeName returns "Number", the name of the type for logging and
// debugging.
func (n Number) TypeName() string {
	return "Number"
}

// Redacted returns the same representation as String; numeric literals
// carry no sensitive information.
func (n Number) Redacted() string {
	return n.String()
}

// IsZero reports whether the Number has its zero value (the integer 0).
func (n Number) IsZero() bool {
	return n == Number{}
}

// Equal reports whether this Number is semantically equal to another
// Number or *Number: same kind and same reduced payload.
func (n Number) Equal(other any) bool {
	switch v := other.(type) {
	case Number:
		return n == v
	case *Number:
		if v == nil {
			return false
		}
		return n == *v
	default:
		return false
	}
}

// Validate checks the structural invariants of the Number: a valid kind
// tag, a positive denominator for fractions, and a float payload that is
// finite and stable under FloatPrecision rounding.
func (n Number) Validate() error {
	if err := n.kind.Validate(); err != nil {
		return err
	}
	switch n.kind {
	case KindFraction:
		if n.den <= 0 {
			return &errors.ValidationError{
				Type:   "Number",
				Field:  "Denominator",
				Reason: "denominator MUST be positive after normalization",
				Value:  n.den,
			}
		}
	case KindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return &errors.ValidationError{
				Type:   "Number",
				Field:  "Float",
				Reason: "float payload MUST be finite",
				Value:  n.f,
			}
		}
	}
	return nil
}

// numberJSON is the wire form of Number. Integer and float payloads use the
// value field; fractions use the numerator/denominator pair.
type numberJSON struct {
	Kind        Kind     `json:"kind" yaml:"kind"`
	Value       *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Numerator   *int64   `json:"numerator,omitempty" yaml:"numerator,omitempty"`
	Denominator *int64   `json:"denominator,omitempty" yaml:"denominator,omitempty"`
}

func (n Number) wire() (numberJSON, error) {
	if err := n.Validate(); err != nil {
		return numberJSON{}, err
	}
	w := numberJSON{Kind: n.kind}
	switch n.kind {
	case KindInteger:
		v := float64(n.i)
		w.Value = &v
	case KindFloat:
		v := n.f
		w.Value = &v
	case KindFraction:
		num, den := n.num, n.den
		w.Numerator = &num
		w.Denominator = &den
	}
	return w, nil
}

func (n *Number) fromWire(w numberJSON, raw []byte) error {
	switch w.Kind {
	case KindInteger:
		if w.Value == nil {
			return &errors.UnmarshalError{Type: "Number", Data: raw, Reason: "integer Number requires a value field"}
		}
		*n = NewInt(int64(*w.Value))
	case KindFloat:
		if w.Value == nil {
			return &errors.UnmarshalError{Type: "Number", Data: raw, Reason: "float Number requires a value field"}
		}
		*n = NewFloat(*w.Value)
	case KindFraction:
		if w.Numerator == nil || w.Denominator == nil {
			return &errors.UnmarshalError{Type: "Number", Data: raw, Reason: "fraction Number requires numerator and denominator fields"}
		}
		parsed, err := NewFraction(*w.Numerator, *w.Denominator)
		if err != nil {
			return err
		}
		*n = parsed
	default:
		return &errors.UnmarshalError{Type: "Number", Data: raw, Reason: "unknown kind"}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Number. Invalid numbers are
// rejected rather than serialized.
func (n Number) MarshalJSON() ([]byte, error) {
	w, err := n.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler for Number.
func (n *Number) UnmarshalJSON(data []byte) error {
	var w numberJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Number", Data: data, Reason: err.Error()}
	}
	return n.fromWire(w, data)
}

// MarshalYAML implements yaml.Marshaler for Number with the same wire form
// as JSON.
func (n Number) MarshalYAML() (any, error) {
	return n.wire()
}

// UnmarshalYAML implements yaml.Unmarshaler for Number.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	var w numberJSON
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Number", Data: []byte(node.Value), Reason: err.Error()}
	}
	return n.fromWire(w, []byte(node.Value))
}
