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
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/operation"
)

// extendEquation performs one complication step: synthesize an extension
// expression, draw an action, and apply action-with-extension to both
// sides, recording the inverse instruction at the front of the resolve
// path.
//
// Applying the same action and extension to both sides preserves the
// solution set for add, sub, and multiply unconditionally, and for divide
// and power only under the zero/domain guards below; a guard violation
// poisons the generation and leaves both symbolic sides unchanged for the
// step. The textual sides and the resolve path are extended identically
// whether or not the step was arithmetically applied, so the rendered
// equation always shows the full chain of attempted steps.
func (g *Generator) extendEquation() {
	extend, extendText := g.synthesize()
	g.logf(4, "extend_equation", "extension synthesized",
		zap.String("extension", exprString(extend)))
	if !algebra.IsAtom(extend) {
		extendText = "(" + extendText + ")"
	}

	action := g.sampleAction()
	desc := g.describe(action)

	// Side texts are parenthesized on the evaluated form of the current
	// sides, frozen at poisoning time if the generation already failed.
	if action.Grouping() {
		if !algebra.IsAtom(g.left) {
			g.text.Left = "(" + g.text.Left + ")"
		}
		if !algebra.IsAtom(g.right) {
			g.text.Right = "(" + g.text.Right + ")"
		}
	}

	if !g.poisoned {
		newLeft, err := g.eng.Combine(g.left, extend, action)
		if err == nil {
			var newRight algebra.Expr
			newRight, err = g.eng.Combine(g.right, extend, action)
			if err == nil {
				g.left, g.right = newLeft, newRight
			}
		}
		if err != nil {
			g.poison(classify(err))
			g.logf(1, "extend_equation", "complication failed",
				zap.String("action", action.String()),
				zap.String("error", g.errKind.String()))
		}
	}

	g.text.Left = g.text.Left + " " + desc + " " + extendText
	g.text.Right = g.text.Right + " " + desc + " " + extendText
	g.path.PushFront(inverseNote(action, extend))
}

// inverseNote renders the resolve-path instruction that undoes one
// complication action with the given extension.
func inverseNote(action operation.Action, extend algebra.Expr) string {
	e := exprString(extend)
	switch action {
	case operation.ActionAdd:
		return fmt.Sprintf("subtract %s from both sides", e)
	case operation.ActionSub:
		return fmt.Sprintf("add %s to both sides", e)
	case operation.ActionMultiply:
		return fmt.Sprintf("divide both sides by %s", e)
	case operation.ActionDivide:
		return fmt.Sprintf("multiply both sides by %s", e)
	default:
		return fmt.Sprintf("raise both sides to the power 1/%s", e)
	}
}
