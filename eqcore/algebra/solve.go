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
	"math"
	"math/big"
)

// Solve returns the real solutions of expr = 0 for the expression's
// primary free variable (the first in sorted order). A constant
// expression solves to an empty set: zero is an identity, nonzero is
// inconsistent, and neither yields a variable assignment. The
// expression is expanded first, so factored polynomial forms such as
// 2*(x + 1) solve like their flat equivalents. Expressions
// that are not polynomial in the variable, polynomials above degree
// three, and quadratics with only complex roots report ErrUnsolvable.
func (x *Exact) Solve(expr Expr) ([]Expr, error) {
	if expr == nil {
		return nil, ErrInvalid
	}
	e := Expand(expr)

	vars := FreeVarNames(e)
	if len(vars) == 0 {
		return nil, nil
	}
	name := vars[0]

	coeffs, ok := polyCoeffs(e, name)
	if !ok {
		return nil, ErrUnsolvable
	}

	deg := 0
	for d, c := range coeffs {
		if n, numeric := c.Eval(); numeric && n.IsZero() {
			continue
		}
		if d > deg {
			deg = d
		}
	}

	coeff := func(d int) Expr {
		if c, ok := coeffs[d]; ok {
			return c
		}
		return Int(0)
	}

	switch deg {
	case 0:
		return nil, nil
	case 1:
		return solveLinear(coeff(1), coeff(0))
	case 2:
		return solveQuadratic(coeff(2), coeff(1), coeff(0))
	case 3:
		return solveCubic(coeff(3), coeff(2), coeff(1), coeff(0))
	default:
		return nil, ErrUnsolvable
	}
}

// solveLinear solves a*v + b = 0. Numeric coefficients give the exact
// rational root; a symbolic coefficient gives the symbolic form -b/a,
// which is how equations over several indeterminates resolve.
func solveLinear(a, b Expr) ([]Expr, error) {
	an, aok := a.Eval()
	bn, bok := b.Eval()
	if aok && bok {
		root := new(big.Rat).Neg(bn.val)
		root.Quo(root, an.val)
		return []Expr{ratNum(root)}, nil
	}
	sol := Product(Int(-1), b, Power(a, Int(-1))).Simplify()
	return []Expr{sol}, nil
}

// solveQuadratic solves a*v^2 + b*v + c = 0 for numeric coefficients.
// A rational discriminant with a rational square root gives exact roots;
// otherwise the two real roots are reported as decimal approximations.
// Negative discriminants have no real roots and report ErrUnsolvable,
// as do symbolic coefficients, which would need an irrational closed
// form this engine does not represent.
func solveQuadratic(a, b, c Expr) ([]Expr, error) {
	an, aok := a.Eval()
	bn, bok := b.Eval()
	cn, cok := c.Eval()
	if !aok || !bok || !cok {
		return nil, ErrUnsolvable
	}

	// disc = b^2 - 4ac, exactly.
	disc := new(big.Rat).Mul(bn.val, bn.val)
	fourAC := new(big.Rat).Mul(an.val, cn.val)
	fourAC.Mul(fourAC, big.NewRat(4, 1))
	disc.Sub(disc, fourAC)

	if disc.Sign() < 0 {
		return nil, ErrUnsolvable
	}

	twoA := new(big.Rat).Mul(an.val, big.NewRat(2, 1))

	if root, exact := ratSqrt(disc); exact {
		negB := new(big.Rat).Neg(bn.val)
		r1 := new(big.Rat).Add(negB, root)
		r1.Quo(r1, twoA)
		r2 := new(big.Rat).Sub(negB, root)
		r2.Quo(r2, twoA)
		if r1.Cmp(r2) == 0 {
			return []Expr{ratNum(r1)}, nil
		}
		return []Expr{ratNum(r1), ratNum(r2)}, nil
	}

	df, _ := disc.Float64()
	af, _ := an.val.Float64()
	bf, _ := bn.val.Float64()
	sq := math.Sqrt(df)
	return []Expr{Dec((-bf + sq) / (2 * af)), Dec((-bf - sq) / (2 * af))}, nil
}

// solveCubic solves a*v^3 + b*v^2 + c*v + d = 0 for numeric coefficients
// via the depressed cubic, returning the real roots as decimal
// approximations. When one real root remains, the complex pair is
// dropped.
func solveCubic(a, b, c, d Expr) ([]Expr, error) {
	an, aok := a.Eval()
	bn, bok := b.Eval()
	cn, cok := c.Eval()
	dn, dok := d.Eval()
	if !aok || !bok || !cok || !dok {
		return nil, ErrUnsolvable
	}
	af := an.Float64()
	bf := bn.Float64()
	cf := cn.Float64()
	df := dn.Float64()

	p := (3*af*cf - bf*bf) / (3 * af * af)
	q := (2*bf*bf*bf - 9*af*bf*cf + 27*af*af*df) / (27 * af * af * af)
	offset := bf / (3 * af)
	disc := -(4*p*p*p + 27*q*q)

	switch {
	case disc > 0:
		// Three distinct real roots, by the trigonometric method.
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(3*q/(p*m)) / 3
		roots := make([]Expr, 0, 3)
		for k := 0; k < 3; k++ {
			roots = append(roots, Dec(m*math.Cos(theta-2*math.Pi*float64(k)/3)-offset))
		}
		return roots, nil
	case disc == 0:
		if q == 0 {
			return []Expr{Dec(-offset)}, nil
		}
		return []Expr{Dec(3*q/p - offset), Dec(-3*q/(2*p) - offset)}, nil
	default:
		ca := math.Cbrt(-q/2 + math.Sqrt(q*q/4+p*p*p/27))
		cb := float64(0)
		if ca != 0 {
			cb = -p / (3 * ca)
		}
		return []Expr{Dec(ca + cb - offset)}, nil
	}
}

// ratSqrt returns the exact square root of a non-negative rational, and
// whether the root is itself rational.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	num := new(big.Int).Sqrt(r.Num())
	den := new(big.Int).Sqrt(r.Denom())
	check := new(big.Int).Mul(num, num)
	if check.Cmp(r.Num()) != 0 {
		return nil, false
	}
	check.Mul(den, den)
	if check.Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

// polyCoeffs extracts the coefficients of e viewed as a polynomial in
// name, keyed by degree. The second result reports whether e really is
// polynomial in the variable; powers with symbolic or non-integer
// exponents, negative powers of the variable, and products where the
// variable hides inside a non-monomial factor all disqualify it.
func polyCoeffs(e Expr, name string) (map[int]Expr, bool) {
	out := make(map[int]Expr)
	if !extractCoeffs(e, name, out) {
		return nil, false
	}
	for d, c := range out {
		out[d] = c.Simplify()
	}
	return out, true
}

func extractCoeffs(e Expr, name string, out map[int]Expr) bool {
	switch v := e.(type) {
	case *Num:
		addCoeff(out, 0, v)
	case *Sym:
		if v.name == name {
			addCoeff(out, 1, Int(1))
		} else {
			addCoeff(out, 0, v)
		}
	case *power:
		return extractPowerCoeff(v, name, out)
	case *product:
		return extractProductCoeff(v, name, out)
	case *sum:
		for _, t := range v.terms {
			if !extractCoeffs(t, name, out) {
				return false
			}
		}
	default:
		return false
	}
	return true
}

func extractPowerCoeff(p *power, name string, out map[int]Expr) bool {
	if !containsVar(p, name) {
		addCoeff(out, 0, p)
		return true
	}
	sym, ok := p.base.(*Sym)
	if !ok || sym.name != name {
		return false
	}
	n, ok := p.exp.(*Num)
	if !ok || !n.IsInteger() || n.Sign() < 0 {
		return false
	}
	addCoeff(out, int(n.val.Num().Int64()), Int(1))
	return true
}

func extractProductCoeff(m *product, name string, out map[int]Expr) bool {
	deg := 0
	coeffFactors := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		if !containsVar(f, name) {
			coeffFactors = append(coeffFactors, f)
			continue
		}
		d, ok := monomialDegree(f, name)
		if !ok {
			return false
		}
		deg += d
	}
	var coeff Expr
	switch len(coeffFactors) {
	case 0:
		coeff = Int(1)
	case 1:
		coeff = coeffFactors[0]
	default:
		coeff = Product(coeffFactors...)
	}
	addCoeff(out, deg, coeff)
	return true
}

// monomialDegree returns the degree of a factor known to contain the
// variable, accepting only the bare symbol and integer powers of it.
func monomialDegree(f Expr, name string) (int, bool) {
	switch v := f.(type) {
	case *Sym:
		if v.name == name {
			return 1, true
		}
	case *power:
		sym, ok := v.base.(*Sym)
		if !ok || sym.name != name {
			return 0, false
		}
		n, ok := v.exp.(*Num)
		if !ok || !n.IsInteger() || n.Sign() < 0 {
			return 0, false
		}
		return int(n.val.Num().Int64()), true
	}
	return 0, false
}

func containsVar(e Expr, name string) bool {
	set := make(map[string]struct{})
	e.FreeVars(set)
	_, ok := set[name]
	return ok
}

func addCoeff(out map[int]Expr, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = Sum(existing, val)
	} else {
		out[deg] = val
	}
}
