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
	"math/big"
	"sort"
	"strings"
)

// maxPowExpansion bounds the integer exponents that are expanded into
// exact rational constants. Larger exponents stay symbolic so that a
// single power node cannot blow up the representation on its own; the
// engine's magnitude guard covers accumulated growth.
const maxPowExpansion = 20

// Sum builds the simplified sum of the given terms.
func Sum(terms ...Expr) Expr {
	return (&sum{terms: terms}).Simplify()
}

// Product builds the simplified product of the given factors.
func Product(factors ...Expr) Expr {
	return (&product{factors: factors}).Simplify()
}

// Power builds the simplified power base**exp.
func Power(base, exp Expr) Expr {
	return (&power{base: base, exp: exp}).Simplify()
}

// Expand distributes products over sums and unrolls small integer powers
// of compound bases, then simplifies. Rendering keeps factored forms as
// written; solving goes through Expand first so coefficient extraction
// sees a flat polynomial.
func Expand(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *product:
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			inner, ok := f.(*sum)
			if !ok {
				continue
			}
			rest := make([]Expr, 0, len(expanded)-1)
			for j, ef := range expanded {
				if j != i {
					rest = append(rest, ef)
				}
			}
			terms := make([]Expr, len(inner.terms))
			for k, t := range inner.terms {
				terms[k] = expandExpr(Product(append([]Expr{t}, rest...)...))
			}
			return expandExpr(Sum(terms...))
		}
		return Product(expanded...)
	case *sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expandExpr(t)
		}
		return Sum(terms...)
	case *power:
		bn, numericBase := v.base.(*Num)
		if n, ok := v.exp.(*Num); ok && n.IsInteger() && !(numericBase && bn.IsZero()) {
			exp := n.val.Num().Int64()
			if exp >= 0 && exp <= maxPowExpansion {
				acc := Expr(Int(1))
				base := expandExpr(v.base)
				for i := int64(0); i < exp; i++ {
					acc = expandExpr(Product(acc, base))
				}
				return acc
			}
		}
		return Power(expandExpr(v.base), expandExpr(v.exp))
	}
	return e
}

// sum is a flattened n-ary addition node. A canonical sum has like
// symbol terms folded into a single coefficient*symbol term each, at
// most one trailing numeric constant, and deterministically ordered
// terms.
type sum struct {
	terms []Expr
}

func (a *sum) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*sum); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	constant := new(big.Rat)
	coeffs := make(map[string]*big.Rat)
	var order []string
	var rest []Expr
	for _, t := range flat {
		switch v := t.(type) {
		case *Num:
			constant.Add(constant, v.val)
		case *Sym:
			if _, seen := coeffs[v.name]; !seen {
				order = append(order, v.name)
				coeffs[v.name] = new(big.Rat)
			}
			coeffs[v.name].Add(coeffs[v.name], ratOne)
		case *product:
			name, c, ok := symMonomial(v)
			if !ok {
				rest = append(rest, t)
				continue
			}
			if _, seen := coeffs[name]; !seen {
				order = append(order, name)
				coeffs[name] = new(big.Rat)
			}
			coeffs[name].Add(coeffs[name], c)
		default:
			rest = append(rest, t)
		}
	}

	sort.Strings(order)
	result := make([]Expr, 0, len(order)+len(rest)+1)
	for _, name := range order {
		c := coeffs[name]
		switch {
		case c.Sign() == 0:
		case c.Cmp(ratOne) == 0:
			result = append(result, Var(name))
		default:
			result = append(result, Product(ratNum(new(big.Rat).Set(c)), Var(name)))
		}
	}
	result = append(result, rest...)
	if constant.Sign() != 0 {
		result = append(result, ratNum(constant))
	}

	switch len(result) {
	case 0:
		return Int(0)
	case 1:
		return result[0]
	default:
		return &sum{terms: result}
	}
}

// symMonomial reports whether a canonical product is a coefficient times a
// single bare symbol, so that sums can fold like terms such as x + 2*x.
func symMonomial(m *product) (string, *big.Rat, bool) {
	if len(m.factors) != 2 {
		return "", nil, false
	}
	c, ok := m.factors[0].(*Num)
	if !ok {
		return "", nil, false
	}
	s, ok := m.factors[1].(*Sym)
	if !ok {
		return "", nil, false
	}
	return s.name, c.val, true
}

func (a *sum) Eval() (*Num, bool) {
	acc := new(big.Rat)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc.Add(acc, v.val)
	}
	return ratNum(acc), true
}

func (a *sum) Substitute(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Substitute(name, value)
	}
	return Sum(terms...)
}

func (a *sum) FreeVars(set map[string]struct{}) {
	for _, t := range a.terms {
		t.FreeVars(set)
	}
}

func (a *sum) Equal(other Expr) bool {
	o, ok := other.(*sum)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *sum) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *sum) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return joinLaTeX(parts, " + ")
}

// product is a flattened n-ary multiplication node. A canonical product
// has at most one leading numeric coefficient and deterministically
// ordered symbolic factors; a zero coefficient annihilates the product.
type product struct {
	factors []Expr
}

func (m *product) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*product); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := new(big.Rat).SetInt64(1)
	var rest []Expr
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff.Mul(coeff, v.val)
		} else {
			rest = append(rest, f)
		}
	}
	if coeff.Sign() == 0 {
		return Int(0)
	}
	if len(rest) == 0 {
		return ratNum(coeff)
	}

	sort.Slice(rest, func(i, j int) bool { return exprLess(rest[i], rest[j]) })

	if coeff.Cmp(ratOne) == 0 {
		if len(rest) == 1 {
			return rest[0]
		}
		return &product{factors: rest}
	}
	return &product{factors: append([]Expr{ratNum(coeff)}, rest...)}
}

func (m *product) Eval() (*Num, bool) {
	acc := new(big.Rat).SetInt64(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc.Mul(acc, v.val)
	}
	return ratNum(acc), true
}

func (m *product) Substitute(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Substitute(name, value)
	}
	return Product(factors...)
}

func (m *product) FreeVars(set map[string]struct{}) {
	for _, f := range m.factors {
		f.FreeVars(set)
	}
}

func (m *product) Equal(other Expr) bool {
	o, ok := other.(*product)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *product) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = renderOperand(f, 'p')
	}
	return strings.Join(parts, "*")
}

func (m *product) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = renderOperandLaTeX(f, 'p')
	}
	return joinLaTeX(parts, " ")
}

// power is a base**exponent node, kept only when it cannot be reduced to a
// constant or a simpler node.
type power struct {
	base Expr
	exp  Expr
}

func (p *power) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}

	if bn, ok := base.(*Num); ok {
		if bn.IsZero() {
			// 0**0 and 0**negative are domain errors the engine surfaces;
			// the node itself stays unreduced.
			if en, ok := exp.(*Num); ok && (en.IsZero() || en.Sign() < 0) {
				return &power{base: base, exp: exp}
			}
			if _, ok := exp.(*Num); ok {
				return Int(0)
			}
		}
		if bn.IsOne() {
			return Int(1)
		}
		if en, ok := exp.(*Num); ok && en.IsInteger() {
			e := en.val.Num().Int64()
			if e >= -maxPowExpansion && e <= maxPowExpansion && !(bn.IsZero() && e <= 0) {
				return expandIntPow(bn, e)
			}
		}
	}

	if inner, ok := base.(*power); ok {
		return Power(inner.base, Product(inner.exp, exp))
	}
	return &power{base: base, exp: exp}
}

func expandIntPow(base *Num, e int64) Expr {
	neg := e < 0
	if neg {
		e = -e
	}
	acc := new(big.Rat).SetInt64(1)
	for i := int64(0); i < e; i++ {
		acc.Mul(acc, base.val)
	}
	if neg {
		acc.Inv(acc)
	}
	return ratNum(acc)
}

func (p *power) Eval() (*Num, bool) {
	b, okB := p.base.Eval()
	e, okE := p.exp.Eval()
	if !okB || !okE {
		return nil, false
	}
	if !e.IsInteger() {
		return nil, false
	}
	n := e.val.Num().Int64()
	if n < -maxPowExpansion || n > maxPowExpansion {
		return nil, false
	}
	if b.IsZero() && n <= 0 {
		return nil, false
	}
	v, _ := expandIntPow(b, n).(*Num)
	return v, true
}

func (p *power) Substitute(name string, value Expr) Expr {
	return Power(p.base.Substitute(name, value), p.exp.Substitute(name, value))
}

func (p *power) FreeVars(set map[string]struct{}) {
	p.base.FreeVars(set)
	p.exp.FreeVars(set)
}

func (p *power) Equal(other Expr) bool {
	o, ok := other.(*power)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *power) String() string {
	return renderOperand(p.base, 'w') + "**" + renderOperand(p.exp, 'e')
}

func (p *power) LaTeX() string {
	return renderOperandLaTeX(p.base, 'w') + "^{" + p.exp.LaTeX() + "}"
}
