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

// Package operation defines the arithmetic action model for eqgen: the
// Action enum naming the five supported binary operations, the per-action
// probability Weights used for randomized drawing, and the per-action Texts
// providing human-readable renderings.
package operation

import (
	"encoding/json"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Verify Action implements Model at compile time.
var _ model.Model = (*Action)(nil)

// Action identifies a binary arithmetic operation applied between two
// operands or equation sides.
//
// Actions are drawn by weighted random choice during expression synthesis
// and equation complication, and each action carries well-defined inverse
// semantics used to build the resolve path. The zero value is ActionAdd.
type Action int

const (
	// ActionAdd is addition. Applied to both equation sides it always
	// preserves the solution set; its inverse is subtraction.
	ActionAdd Action = iota

	// ActionSub is subtraction; its inverse is addition.
	ActionSub

	// ActionMultiply is multiplication. Applied to both sides with a
	// nonzero extension it preserves the solution set; its inverse is
	// division.
	ActionMultiply

	// ActionDivide is division. Dividing by an extension that evaluates to
	// exact zero is invalid and poisons the generation; its inverse is
	// multiplication.
	ActionDivide

	// ActionPower is exponentiation. Raising both sides to a power is only
	// conditionally solution-preserving; domain failures reported by the
	// algebra engine poison the generation. Its inverse is the reciprocal
	// power.
	ActionPower
)

// String constants for Action values used in serialization, parsing, and
// configuration keys. These names form the stable external representation
// of Action and MAY be persisted in configuration files and YAML documents.
const (
	ActionAddStr      = "add"
	ActionSubStr      = "sub"
	ActionMultiplyStr = "multiply"
	ActionDivideStr   = "divide"
	ActionPowerStr    = "power"
)

// Actions returns all supported actions in their canonical order.
func Actions() []Action {
	return []Action{ActionAdd, ActionSub, ActionMultiply, ActionDivide, ActionPower}
}

// ParseAction converts a textual representation into an Action value.
//
// The accepted vocabulary is case-insensitive over the canonical names
// ("add", "sub", "multiply", "divide", "power"). Any other input yields a
// *ParseError carrying the original string.
func ParseAction(s string) (Action, error) {
	switch s {
	case ActionAddStr, "Add", "ADD":
		return ActionAdd, nil
	case ActionSubStr, "Sub", "SUB":
		return ActionSub, nil
	case ActionMultiplyStr, "Multiply", "MULTIPLY":
		return ActionMultiply, nil
	case ActionDivideStr, "Divide", "DIVIDE":
		return ActionDivide, nil
	case ActionPowerStr, "Power", "POWER":
		return ActionPower, nil
	default:
		return ActionAdd, &errors.ParseError{Type: "Action", Value: s}
	}
}

// String returns the canonical lowercase representation of the Action, or
// "unknown" for values outside the defined constants.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return ActionAddStr
	case ActionSub:
		return ActionSubStr
	case ActionMultiply:
		return ActionMultiplyStr
	case ActionDivide:
		return ActionDivideStr
	case ActionPower:
		return ActionPowerStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Action is one of the defined constants.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionSub, ActionMultiply, ActionDivide, ActionPower:
		return true
	default:
		return false
	}
}

// Grouping reports whether the action requires compound operand text to be
// parenthesized before concatenation. Multiplication, division, and
// exponentiation bind tighter than the additive chain a synthesized text is
// built from, so their compound operands are wrapped to keep the rendering
// unambiguous.
func (a Action) Grouping() bool {
	switch a {
	case ActionMultiply, ActionDivide, ActionPower:
		return true
	default:
		return false
	}
}

// TypeName returns "Action", the name of the type for logging and
// debugging.
func (a Action) TypeName() string {
	return "Action"
}

// Redacted returns the same representation as String; Action values carry
// no sensitive information.
func (a Action) Redacted() string {
	return a.String()
}

// IsZero reports whether the Action has its zero value (ActionAdd).
// ActionAdd is a valid action, so IsZero does not indicate an error.
func (a Action) IsZero() bool {
	return a == ActionAdd
}

// Equal reports whether this Action equals another value, accepting both
// Action and *Action.
func (a Action) Equal(other any) bool {
	switch v := other.(type) {
	case Action:
		return a == v
	case *Action:
		if v == nil {
			return false
		}
		return a == *v
	default:
		return false
	}
}

// Validate checks whether the Action is one of the defined constants and
// returns a *ValidationError otherwise.
func (a Action) Validate() error {
	if !a.Valid() {
		return &errors.ValidationError{
			Type:   "Action",
			Reason: "invalid Action value",
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Action. A valid Action
// serializes as its canonical string; an invalid value yields a
// *MarshalError.
func (a Action) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Action", Value: int(a)}
	}
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Action, accepting both the
// canonical string forms (via ParseAction) and the numeric constants.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseAction(s)
		if perr != nil {
			return perr
		}
		*a = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Action", Data: data, Reason: err.Error()}
	}
	parsed := Action(n)
	if !parsed.Valid() {
		return &errors.UnmarshalError{Type: "Action", Data: data, Reason: "numeric value out of range"}
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Action with the same validity
// rule as MarshalJSON.
func (a Action) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Action", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Action, resolving string
// representations via ParseAction.
func (a *Action) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Action", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Action. The textual
// form is the canonical lowercase name, making Action usable as a map key
// in JSON and YAML documents.
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Action", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Action.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
