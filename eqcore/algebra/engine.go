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

package algebra

import (
	"errors"

	"dirpx.dev/eqgen/eqcore/model/operation"
)

// Sentinel errors reported by Engine implementations. The generator maps
// them onto outcome error kinds; any other error from an Engine is treated
// as an unclassified generation-time failure.
var (
	// ErrOverflow reports that a combination produced a numeric constant
	// beyond the representable magnitude bound.
	ErrOverflow = errors.New("algebra: numeric overflow")

	// ErrDivisionByZero reports division by an operand that evaluates to
	// exact zero, or a power that implies one (zero base, negative
	// exponent).
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrUnsolvable reports that an equation has no closed form the engine
	// can produce.
	ErrUnsolvable = errors.New("algebra: no closed-form solution")

	// ErrInvalid reports a malformed solve request.
	ErrInvalid = errors.New("algebra: invalid expression")
)

// Engine is the symbolic arithmetic capability the generator depends on.
//
// The generator treats expressions as opaque: it combines them, asks for a
// solution set of expr = 0, simplifies, and renders. Implementations MUST
// support exact fraction arithmetic and symbolic indeterminates without
// numeric evaluation, and MUST report failures through the sentinel errors
// above rather than panicking.
type Engine interface {
	// Combine applies a binary arithmetic action to two expressions and
	// returns the combined expression.
	Combine(a, b Expr, action operation.Action) (Expr, error)

	// Solve returns the solutions of expr = 0 for the expression's primary
	// free variable. An expression with no free variables solves to an
	// empty set. ErrUnsolvable and ErrInvalid report the two failure
	// modes.
	Solve(expr Expr) ([]Expr, error)

	// Simplify returns the canonical reduced form of the expression.
	Simplify(expr Expr) Expr

	// LaTeX returns a typeset rendering of the expression.
	LaTeX(expr Expr) string
}

// maxMagnitudeBits bounds the bit length of any numerator or denominator
// a combination may produce. Exact rational arithmetic cannot overflow the
// machine representation, so the bound stands in for the fixed-width
// overflow of the numeric domain the generator models.
const maxMagnitudeBits = 4096

// Exact is the default Engine implementation: exact rational arithmetic
// over the package's expression trees. The zero value is ready to use, and
// Exact is stateless, so a single value may serve any number of
// generators.
type Exact struct{}

// NewExact returns the default exact engine.
func NewExact() *Exact {
	return &Exact{}
}

// Combine applies the action to a and b. Division by an operand that
// evaluates to exact zero yields ErrDivisionByZero, as does a power with
// zero base and negative exponent; results whose constants exceed the
// magnitude bound yield ErrOverflow.
func (x *Exact) Combine(a, b Expr, action operation.Action) (Expr, error) {
	if a == nil || b == nil {
		return nil, ErrInvalid
	}

	var combined Expr
	switch action {
	case operation.ActionAdd:
		combined = Sum(a, b)
	case operation.ActionSub:
		combined = Sum(a, Product(Int(-1), b))
	case operation.ActionMultiply:
		combined = Product(a, b)
	case operation.ActionDivide:
		if v, ok := b.Eval(); ok && v.IsZero() {
			return nil, ErrDivisionByZero
		}
		combined = Product(a, Power(b, Int(-1)))
	case operation.ActionPower:
		if bv, ok := a.Eval(); ok && bv.IsZero() {
			if ev, ok := b.Eval(); ok {
				if ev.Sign() < 0 {
					return nil, ErrDivisionByZero
				}
				if ev.IsZero() {
					return Int(1), nil
				}
			}
		}
		combined = Power(a, b)
	default:
		return nil, ErrInvalid
	}

	if exceedsMagnitude(combined) {
		return nil, ErrOverflow
	}
	return combined, nil
}

// Simplify returns the canonical reduced form of the expression.
func (x *Exact) Simplify(expr Expr) Expr {
	if expr == nil {
		return Int(0)
	}
	return expr.Simplify()
}

// LaTeX returns the typeset rendering of the expression.
func (x *Exact) LaTeX(expr Expr) string {
	if expr == nil {
		return "0"
	}
	return expr.LaTeX()
}

// exceedsMagnitude walks the expression and reports whether any numeric
// constant's numerator or denominator exceeds the magnitude bound.
func exceedsMagnitude(e Expr) bool {
	switch v := e.(type) {
	case *Num:
		return v.val.Num().BitLen() > maxMagnitudeBits || v.val.Denom().BitLen() > maxMagnitudeBits
	case *Sym:
		return false
	case *sum:
		for _, t := range v.terms {
			if exceedsMagnitude(t) {
				return true
			}
		}
	case *product:
		for _, f := range v.factors {
			if exceedsMagnitude(f) {
				return true
			}
		}
	case *power:
		return exceedsMagnitude(v.base) || exceedsMagnitude(v.exp)
	}
	return false
}
