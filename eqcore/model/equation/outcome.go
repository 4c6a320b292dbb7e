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
	"fmt"
	"strings"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Compile-time contract checks. SidePair and ResolvePath serialize through
// their plain field and slice forms, so they carry the validation and
// logging contracts only.
var (
	_ model.Model       = (*Outcome)(nil)
	_ model.Validatable = SidePair{}
	_ model.Loggable    = SidePair{}
	_ model.Validatable = ResolvePath(nil)
	_ model.Loggable    = ResolvePath(nil)
)

// SidePair is the textual rendering of an equation's two sides. The pair
// is kept in lock-step with the symbolic sides at every construction step;
// it diverges only when a generation is poisoned, in which case the text
// keeps accumulating while the symbolic sides are abandoned.
type SidePair struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// String renders the pair as "left = right".
func (p SidePair) String() string {
	return p.Left + " = " + p.Right
}

// TypeName returns "SidePair", the name of the type for logging and
// debugging.
func (p SidePair) TypeName() string {
	return "SidePair"
}

// Redacted returns the same representation as String; equation text
// carries no sensitive information.
func (p SidePair) Redacted() string {
	return p.String()
}

// IsZero reports whether both sides are empty.
func (p SidePair) IsZero() bool {
	return p.Left == "" && p.Right == ""
}

// Equal reports whether this SidePair equals another value, accepting
// both SidePair and *SidePair.
func (p SidePair) Equal(other any) bool {
	switch v := other.(type) {
	case SidePair:
		return p == v
	case *SidePair:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate always succeeds; any strings form a valid side pair.
func (p SidePair) Validate() error {
	return nil
}

// ResolvePath is the ordered list of human-readable inverse instructions
// accumulated during complication. New entries are inserted at the front,
// so the path reads from the step needed first when solving back toward
// the initial equation.
type ResolvePath []string

// PushFront inserts a new inverse instruction at the front of the path.
func (r *ResolvePath) PushFront(note string) {
	*r = append([]string{note}, *r...)
}

// Len returns the number of recorded instructions.
func (r ResolvePath) Len() int {
	return len(r)
}

// Clone returns an independent copy of the path.
func (r ResolvePath) Clone() ResolvePath {
	if r == nil {
		return nil
	}
	out := make(ResolvePath, len(r))
	copy(out, r)
	return out
}

// String joins the instructions with "; " in path order.
func (r ResolvePath) String() string {
	return strings.Join(r, "; ")
}

// TypeName returns "ResolvePath", the name of the type for logging and
// debugging.
func (r ResolvePath) TypeName() string {
	return "ResolvePath"
}

// Redacted returns the same representation as String.
func (r ResolvePath) Redacted() string {
	return r.String()
}

// IsZero reports whether the path is empty.
func (r ResolvePath) IsZero() bool {
	return len(r) == 0
}

// Validate always succeeds; any instruction strings form a valid path.
func (r ResolvePath) Validate() error {
	return nil
}

// Outcome is the generation result triple. Positive generations carry the
// rendered solution set and ErrorNone; negative generations carry an empty
// solution set and the kind of the first failure. The structural solution
// expressions stay on the generator, which renders them into Solutions
// here.
type Outcome struct {
	Positive  bool      `json:"positive" yaml:"positive"`
	Solutions []string  `json:"solutions,omitempty" yaml:"solutions,omitempty"`
	Kind      ErrorKind `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewOutcome returns a positive outcome with the given rendered solutions.
func NewOutcome(solutions []string) Outcome {
	return Outcome{Positive: true, Solutions: solutions}
}

// FailedOutcome returns a negative outcome of the given kind with the
// degenerate empty solution set.
func FailedOutcome(kind ErrorKind) Outcome {
	return Outcome{Positive: false, Kind: kind}
}

// String renders the outcome for human-facing output.
func (o Outcome) String() string {
	if !o.Positive {
		return fmt.Sprintf("failed (%s)", o.Kind)
	}
	if len(o.Solutions) == 0 {
		return "ok (no solutions)"
	}
	return "ok [" + strings.Join(o.Solutions, ", ") + "]"
}

// TypeName returns "Outcome", the name of the type for logging and
// debugging.
func (o Outcome) TypeName() string {
	return "Outcome"
}

// Redacted returns the same representation as String; outcomes carry no
// sensitive information.
func (o Outcome) Redacted() string {
	return o.String()
}

// IsZero reports whether the Outcome has its zero value: negative, no
// solutions, ErrorNone. The zero value is NOT valid; see Validate.
func (o Outcome) IsZero() bool {
	return !o.Positive && len(o.Solutions) == 0 && o.Kind == ErrorNone
}

// Equal reports whether this Outcome equals another value, accepting both
// Outcome and *Outcome.
func (o Outcome) Equal(other any) bool {
	var v Outcome
	switch t := other.(type) {
	case Outcome:
		v = t
	case *Outcome:
		if t == nil {
			return false
		}
		v = *t
	default:
		return false
	}
	if o.Positive != v.Positive || o.Kind != v.Kind || len(o.Solutions) != len(v.Solutions) {
		return false
	}
	for i := range o.Solutions {
		if o.Solutions[i] != v.Solutions[i] {
			return false
		}
	}
	return true
}

// Validate enforces the flag-consistency invariant: a positive outcome
// has ErrorNone, a negative outcome has a non-none kind and the empty
// solution set.
func (o Outcome) Validate() error {
	if err := o.Kind.Validate(); err != nil {
		return err
	}
	if o.Positive && o.Kind != ErrorNone {
		return &errors.ValidationError{
			Type:   "Outcome",
			Field:  "Kind",
			Reason: "positive outcome must carry ErrorNone",
			Value:  o.Kind.String(),
		}
	}
	if !o.Positive {
		if o.Kind == ErrorNone {
			return &errors.ValidationError{
				Type:   "Outcome",
				Field:  "Kind",
				Reason: "negative outcome must carry a failure kind",
				Value:  o.Kind.String(),
			}
		}
		if len(o.Solutions) != 0 {
			return &errors.ValidationError{
				Type:   "Outcome",
				Field:  "Solutions",
				Reason: "negative outcome must carry no solutions",
				Value:  len(o.Solutions),
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Outcome; invalid outcomes
// yield a *MarshalError so a flag-inconsistent triple never serializes.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Outcome", Value: int(o.Kind)}
	}
	type plain Outcome
	return json.Marshal(plain(o))
}

// UnmarshalJSON implements json.Unmarshaler for Outcome and validates the
// decoded triple.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	type plain Outcome
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return &errors.UnmarshalError{Type: "Outcome", Data: data, Reason: err.Error()}
	}
	decoded := Outcome(p)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*o = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler for Outcome with the same
// validity rule as MarshalJSON.
func (o Outcome) MarshalYAML() (any, error) {
	if err := o.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Outcome", Value: int(o.Kind)}
	}
	type plain Outcome
	return plain(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Outcome and validates the
// decoded triple.
func (o *Outcome) UnmarshalYAML(node *yaml.Node) error {
	type plain Outcome
	var p plain
	if err := node.Decode(&p); err != nil {
		return &errors.UnmarshalError{Type: "Outcome", Data: []byte(node.Value), Reason: err.Error()}
	}
	decoded := Outcome(p)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*o = decoded
	return nil
}
