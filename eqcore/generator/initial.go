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
	"strings"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/operation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

// buildInitial constructs the starting equation for the configured
// family. The polynomial families accumulate per-symbol coefficient
// terms plus a trailing constant and equate the sum to zero, which keeps
// the initial equation solvable in principle; the general family equates
// two independently synthesized expressions with no enforced
// relationship.
func (g *Generator) buildInitial() {
	switch g.cfg.family {
	case equation.FamilyGeneral:
		left, leftText := g.synthesize()
		right, rightText := g.synthesize()
		g.left, g.right = left, right
		g.text = equation.SidePair{Left: leftText, Right: rightText}
	default:
		g.buildPolynomial(g.cfg.family.Degree())
	}
}

// buildPolynomial builds sum over symbols of coefficient terms for powers
// degree..1, plus one sampled constant, equated to zero. Degree 1 is the
// linear family, 2 quadratic, 3 cubic.
func (g *Generator) buildPolynomial(degree int) {
	expr := algebra.Expr(algebra.Int(0))
	var text strings.Builder
	text.WriteString("0 + ")

	for _, name := range g.cfg.Symbols() {
		sym := algebra.Var(name)
		for p := degree; p >= 1; p-- {
			coeff, coeffText := g.sampleValue(value.Kind(-1))
			mul := g.describe(operation.ActionMultiply)

			if p > 1 {
				pow := g.describe(operation.ActionPower)
				expr = algebra.Sum(expr, algebra.Product(numberExpr(coeff), algebra.Power(sym, algebra.Int(int64(p)))))
				fmt.Fprintf(&text, "%s %s %s %s %d %s ", coeffText, mul, name, pow, p, g.describe(operation.ActionAdd))
			} else {
				expr = algebra.Sum(expr, algebra.Product(numberExpr(coeff), sym))
				fmt.Fprintf(&text, "%s %s %s %s ", coeffText, mul, name, g.describe(operation.ActionAdd))
			}
		}
	}

	constant, constantText := g.sampleValue(value.Kind(-1))
	expr = algebra.Sum(expr, numberExpr(constant))
	text.WriteString(constantText)

	g.left = expr
	g.right = algebra.Int(0)
	g.text = equation.SidePair{Left: text.String(), Right: "0"}
}
