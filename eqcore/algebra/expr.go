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

// Package algebra provides the exact symbolic arithmetic collaborator used
// by the equation generator.
//
// The package has two layers. The Expr tree (Num, Sym, sums, products,
// powers) performs exact rational arithmetic over math/big.Rat with
// deterministic simplification and stable string output. The Engine
// interface on top of it is the narrow boundary the generator depends on:
// combine two expressions with an arithmetic action, solve an expression
// for its roots, simplify, and render. Generation logic never inspects tree
// structure beyond the IsAtom predicate.
//
// Expressions are immutable: every operation returns a new tree. All
// numeric arithmetic is exact; floats entering the system are converted to
// their decimal rational form first. Arithmetic that would exceed the
// configured magnitude bound reports an overflow instead of growing without
// limit.
package algebra

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Expr is an immutable symbolic expression node.
//
// Implementations are Num (exact rational constant), Sym (free variable),
// and the composite sum, product, and power nodes. Simplify is
// deterministic: the same tree always reduces to the same canonical form,
// and String output is stable across runs.
type Expr interface {
	// Simplify returns the canonical reduced form of the expression.
	Simplify() Expr

	// String returns a stable human-readable rendering.
	String() string

	// LaTeX returns a typeset rendering of the expression.
	LaTeX() string

	// Eval returns the exact numeric value of the expression and true when
	// it contains no free variables, or nil and false otherwise.
	Eval() (*Num, bool)

	// Substitute replaces every occurrence of the named variable with
	// value, without simplifying the result.
	Substitute(name string, value Expr) Expr

	// FreeVars appends the names of free variables in the expression to
	// the given set.
	FreeVars(set map[string]struct{})

	// Equal reports structural equality with another expression.
	Equal(other Expr) bool
}

// IsAtom reports whether the expression is a bare numeric constant or a
// bare symbol. Compound expressions get parenthesized when rendered as an
// operand of a tighter-binding operation; atoms do not.
//
// The predicate looks at the evaluated form the caller holds, so an
// expression that folded to a plain number during construction counts as
// atomic even if it was built from several terms.
func IsAtom(e Expr) bool {
	switch e.(type) {
	case *Num, *Sym:
		return true
	default:
		return false
	}
}

// Num is an exact rational constant.
type Num struct {
	val *big.Rat
}

// Int returns the Num for an integer value.
func Int(v int64) *Num {
	return &Num{val: new(big.Rat).SetInt64(v)}
}

// Rat returns the Num for the fraction num/den. A zero denominator panics;
// callers sampling denominators exclude zero before reaching here.
func Rat(num, den int64) *Num {
	if den == 0 {
		panic("algebra: zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den))}
}

// Dec returns the Num for a float rounded to five decimal places,
// represented exactly as a decimal rational rather than the float's
// binary expansion. The conversion goes through the decimal string form
// so magnitudes beyond int64 stay exact. NaN and infinities map to zero;
// non-finite values never reach the tree.
func Dec(v float64) *Num {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', 5, 64))
	if !ok {
		return Int(0)
	}
	return &Num{val: r}
}

func ratNum(r *big.Rat) *Num { return &Num{val: r} }

// Simplify returns the receiver; numeric constants are already canonical.
func (n *Num) Simplify() Expr { return n }

// Eval returns the constant itself.
func (n *Num) Eval() (*Num, bool) { return n, true }

// Substitute returns the receiver; constants contain no variables.
func (n *Num) Substitute(string, Expr) Expr { return n }

// FreeVars adds nothing; constants contain no variables.
func (n *Num) FreeVars(map[string]struct{}) {}

// Equal reports whether other is a Num with the same exact value.
func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

// Sign returns -1, 0, or +1 according to the sign of the constant.
func (n *Num) Sign() int { return n.val.Sign() }

// IsZero reports whether the constant is exactly zero.
func (n *Num) IsZero() bool { return n.val.Sign() == 0 }

// IsOne reports whether the constant is exactly one.
func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }

// IsInteger reports whether the constant has denominator one.
func (n *Num) IsInteger() bool { return n.val.IsInt() }

// Float64 returns the nearest float64 to the constant.
func (n *Num) Float64() float64 {
	f, _ := n.val.Float64()
	return f
}

// Rat returns a copy of the underlying rational value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// String renders integers without a denominator and other rationals in
// num/den form.
func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// LaTeX renders integers plainly and other rationals as \frac.
func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	v := new(big.Rat).Set(n.val)
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

var ratOne = new(big.Rat).SetInt64(1)

// Sym is a free variable, identified by name. Symbols are algebraic
// indeterminates: they are never numerically evaluated during generation.
type Sym struct {
	name string
}

// Var returns the symbol with the given name.
func Var(name string) *Sym { return &Sym{name: name} }

// Name returns the symbol's identifier.
func (s *Sym) Name() string { return s.name }

// Simplify returns the receiver; symbols are already canonical.
func (s *Sym) Simplify() Expr { return s }

// Eval reports that the expression is not numeric.
func (s *Sym) Eval() (*Num, bool) { return nil, false }

// Substitute returns value when the name matches, the receiver otherwise.
func (s *Sym) Substitute(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

// FreeVars adds the symbol's name to the set.
func (s *Sym) FreeVars(set map[string]struct{}) { set[s.name] = struct{}{} }

// Equal reports whether other is a Sym with the same name.
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

// String returns the symbol's name.
func (s *Sym) String() string { return s.name }

// LaTeX returns the symbol's name.
func (s *Sym) LaTeX() string { return s.name }

// FreeVarNames returns the sorted free variable names of an expression.
func FreeVarNames(e Expr) []string {
	set := make(map[string]struct{})
	e.FreeVars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exprLess orders expressions for canonical term/factor ordering: numeric
// constants first, then symbols by name, then composites by rendered form.
// The ordering only needs to be total and deterministic.
func exprLess(a, b Expr) bool {
	ra, rb := exprRank(a), exprRank(b)
	if ra != rb {
		return ra < rb
	}
	return a.String() < b.String()
}

func exprRank(e Expr) int {
	switch e.(type) {
	case *Num:
		return 0
	case *Sym:
		return 1
	case *power:
		return 2
	case *product:
		return 3
	default:
		return 4
	}
}

func renderOperand(e Expr, parent byte) string {
	s := e.String()
	if needsParens(e, parent) {
		return "(" + s + ")"
	}
	return s
}

// needsParens reports whether e must be parenthesized when rendered inside
// a parent node of the given kind ('s' sum, 'p' product, 'w' power base,
// 'e' power exponent).
func needsParens(e Expr, parent byte) bool {
	switch v := e.(type) {
	case *sum:
		return parent == 'p' || parent == 'w' || parent == 'e'
	case *product:
		return parent == 'w' || parent == 'e'
	case *power:
		return parent == 'w'
	case *Num:
		if v.Sign() < 0 || !v.IsInteger() {
			return parent == 'p' || parent == 'w' || parent == 'e'
		}
		return false
	default:
		return false
	}
}

func renderOperandLaTeX(e Expr, parent byte) string {
	s := e.LaTeX()
	if needsParens(e, parent) {
		return `\left(` + s + `\right)`
	}
	return s
}

func joinLaTeX(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
