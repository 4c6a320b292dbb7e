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
)

// synthesize builds one randomized expression: it draws a fold count from
// the configured length range, then repeatedly folds the running left
// expression with a freshly sampled right operand under a weighted-drawn
// action.
//
// The right operand sampled on the final iteration is discarded without
// being folded in, so a synthesized expression carries length+1 operands
// rather than length+2. This asymmetry is observable in the end-to-end
// token counts and is kept deliberately; downstream expectations are
// calibrated to it.
func (g *Generator) synthesize() (algebra.Expr, string) {
	length := g.randBetween(g.cfg.lengthMin, g.cfg.lengthMax)
	left, leftText := g.sampleOperand()
	right, rightText := g.sampleOperand()
	for i := 0; i < length; i++ {
		action := g.sampleAction()
		left, leftText = g.applyAction(left, right, leftText, rightText, action)
		right, rightText = g.sampleOperand()
	}
	g.logf(4, "synthesize", "expression synthesized",
		zap.Int("length", length),
		zap.String("expression", exprString(left)))
	return left, leftText
}
