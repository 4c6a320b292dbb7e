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

package generator

import (
	"go.uber.org/zap"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/operation"
)

// applyAction combines two operands with one action, producing the
// combined expression and its text in lock-step.
//
// For grouping actions (multiply, divide, power) a compound operand's
// text is parenthesized first; whether an operand is compound is judged
// on its evaluated form, so a numeric-only sum that folded to a constant
// counts as atomic.
//
// Once the generation is poisoned the arithmetic short-circuits to an
// inert zero expression while the text keeps accumulating, so a single
// failure cannot compound into further engine errors.
func (g *Generator) applyAction(left, right algebra.Expr, leftText, rightText string, action operation.Action) (algebra.Expr, string) {
	desc := g.describe(action)
	if action.Grouping() {
		if !algebra.IsAtom(left) {
			leftText = "(" + leftText + ")"
		}
		if !algebra.IsAtom(right) {
			rightText = "(" + rightText + ")"
		}
	}

	expr := algebra.Expr(algebra.Int(0))
	if !g.poisoned {
		combined, err := g.eng.Combine(left, right, action)
		if err != nil {
			g.poison(classify(err))
			g.logf(1, "apply_action", "arithmetic failed",
				zap.String("action", action.String()),
				zap.String("error", g.errKind.String()))
		} else {
			expr = combined
		}
	}
	g.logf(4, "apply_action", "action applied",
		zap.String("action", action.String()),
		zap.String("expression", exprString(expr)))
	return expr, leftText + " " + desc + " " + rightText
}
