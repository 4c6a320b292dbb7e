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
	"fmt"
	"sort"

	"dirpx.dev/eqgen/eqcore/errors"
	"dirpx.dev/eqgen/eqcore/model"
)

// Weights serializes through its plain map form, so it carries the
// validation contract only.
var _ model.Validatable = Weights(nil)

// Weights maps each action to its relative selection probability.
//
// Weights are relative, not normalized: they need not sum to 1, and a
// weighted draw treats them proportionally. Individual weights MUST lie in
// [0,1]; a weight of zero removes the action from selection without
// removing it from the configuration. A Weights table MUST contain at
// least one entry.
type Weights map[Action]float64

// DefaultWeights returns the stock action probabilities: add 0.25,
// sub 0.25, multiply 0.15, divide 0.15, power 0.1.
func DefaultWeights() Weights {
	return Weights{
		ActionAdd:      0.25,
		ActionSub:      0.25,
		ActionMultiply: 0.15,
		ActionDivide:   0.15,
		ActionPower:    0.1,
	}
}

// Validate checks that the table is non-empty, that every key is a defined
// action, that every weight lies in [0,1], and that at least one weight is
// positive (otherwise no action could ever be drawn).
func (w Weights) Validate() error {
	if len(w) == 0 {
		return &errors.ValidationError{
			Type:   "Weights",
			Reason: "table MUST contain at least one action",
		}
	}
	total := 0.0
	for action, weight := range w {
		if !action.Valid() {
			return &errors.ValidationError{
				Type:   "Weights",
				Reason: "invalid Action key",
				Value:  int(action),
			}
		}
		if weight < 0.0 || weight > 1.0 {
			return &errors.ValidationError{
				Type:   "Weights",
				Field:  action.String(),
				Reason: "weight MUST be in [0,1]",
				Value:  weight,
			}
		}
		total += weight
	}
	if total == 0 {
		return &errors.ValidationError{
			Type:   "Weights",
			Reason: "at least one weight MUST be positive",
		}
	}
	return nil
}

// Total returns the sum of all weights, the denominator of a proportional
// draw.
func (w Weights) Total() float64 {
	total := 0.0
	for _, weight := range w {
		total += weight
	}
	return total
}

// Ordered returns the actions of the table in canonical enum order. A
// deterministic iteration order is required for reproducible seeded draws;
// Go map iteration alone would reshuffle them per run.
func (w Weights) Ordered() []Action {
	actions := make([]Action, 0, len(w))
	for action := range w {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// Clone returns an independent copy of the table.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for action, weight := range w {
		out[action] = weight
	}
	return out
}

// String returns a compact "action:weight" summary in canonical order.
func (w Weights) String() string {
	s := ""
	for _, action := range w.Ordered() {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s:%g", action, w[action])
	}
	return s
}

// IsZero reports whether the table is empty.
func (w Weights) IsZero() bool {
	return len(w) == 0
}
