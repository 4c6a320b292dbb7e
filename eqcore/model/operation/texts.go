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

package operation

import (
	"encoding/json"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
	"gopkg.in/yaml.v3"
)

// Texts serializes through its plain map form, so it carries the
// validation contract only.
var _ model.Validatable = Texts(nil)

// Renderings is the list of candidate textual forms for one action. When an
// action is rendered into equation text, one candidate is chosen uniformly
// at random.
//
// In YAML and JSON a Renderings value accepts either a single scalar string
// or a sequence of strings; a scalar decodes as a one-element list. The
// content of each candidate is deliberately unchecked: callers may
// configure symbols ("+"), words ("plus"), or any other string, including
// meaningless ones, to exercise downstream consumers.
type Renderings []string

// UnmarshalYAML implements yaml.Unmarshaler for Renderings, accepting both
// a scalar string and a sequence of strings.
func (r *Renderings) UnmarshalYAML(node *yaml.Node) error {
	var single string
	if err := node.Decode(&single); err == nil {
		*r = Renderings{single}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return &errors.UnmarshalError{Type: "Renderings", Data: []byte(node.Value), Reason: err.Error()}
	}
	*r = Renderings(list)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Renderings, accepting both
// a string and an array of strings.
func (r *Renderings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Renderings{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return &errors.UnmarshalError{Type: "Renderings", Data: data, Reason: err.Error()}
	}
	*r = Renderings(list)
	return nil
}

// Texts maps each action to its candidate textual renderings.
//
// The table drives the Operand Text Resolver: describing an action picks
// one of its candidates uniformly at random, so a one-element list renders
// deterministically. Every configured action MUST have at least one
// candidate; candidate content is unchecked.
type Texts map[Action]Renderings

// DefaultTexts returns the stock single-candidate renderings: "+", "-",
// "*", "/", "**".
func DefaultTexts() Texts {
	return Texts{
		ActionAdd:      {"+"},
		ActionSub:      {"-"},
		ActionMultiply: {"*"},
		ActionDivide:   {"/"},
		ActionPower:    {"**"},
	}
}

// Validate checks that the table is non-empty, that every key is a defined
// action, and that every action has at least one candidate rendering.
// Candidate content is intentionally not validated.
func (t Texts) Validate() error {
	if len(t) == 0 {
		return &errors.ValidationError{
			Type:   "Texts",
			Reason: "table MUST contain at least one action",
		}
	}
	for action, renderings := range t {
		if !action.Valid() {
			return &errors.ValidationError{
				Type:   "Texts",
				Reason: "invalid Action key",
				Value:  int(action),
			}
		}
		if len(renderings) == 0 {
			return &errors.ValidationError{
				Type:   "Texts",
				Field:  action.String(),
				Reason: "action MUST have at least one rendering",
			}
		}
	}
	return nil
}

// Clone returns an independent deep copy of the table.
func (t Texts) Clone() Texts {
	out := make(Texts, len(t))
	for action, renderings := range t {
		cp := make(Renderings, len(renderings))
		copy(cp, renderings)
		out[action] = cp
	}
	return out
}

// IsZero reports whether the table is empty.
func (t Texts) IsZero() bool {
	return len(t) == 0
}
