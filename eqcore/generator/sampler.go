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
	"math"
	"sort"

	"go.uber.org/zap"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/operation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

// sampleKind draws a numeric kind by weighted choice over the configured
// kind-probability table. Weights are relative; the draw walks kinds in
// canonical order so seeded runs are reproducible.
func (g *Generator) sampleKind() value.Kind {
	kinds := make([]value.Kind, 0, len(g.cfg.kindWeights))
	for _, k := range value.Kinds() {
		if _, ok := g.cfg.kindWeights[k]; ok {
			kinds = append(kinds, k)
		}
	}
	kind := weightedChoice(g, kinds, func(k value.Kind) float64 { return g.cfg.kindWeights[k] })
	g.logf(5, "sample_kind", "kind drawn", zap.String("kind", kind.String()))
	return kind
}

// sampleValue draws a nonzero literal of the given kind within its
// configured bounds, re-drawing until the value is nonzero. Pass an
// invalid kind (e.g. value.Kind(-1)) to draw the kind first.
func (g *Generator) sampleValue(kind value.Kind) (value.Number, string) {
	if !kind.Valid() {
		kind = g.sampleKind()
	}
	switch kind {
	case value.KindInteger:
		r := g.cfg.ranges.Integer
		n := g.randInt64(r.Min, r.Max)
		for n == 0 {
			n = g.randInt64(r.Min, r.Max)
		}
		num := value.NewInt(n)
		g.logf(5, "sample_value", "integer drawn", zap.Int64("value", n))
		return num, num.String()

	case value.KindFloat:
		r := g.cfg.ranges.Float
		f := value.RoundFloat(r.Min + g.rng.Float64()*(r.Max-r.Min))
		for f == 0 {
			f = value.RoundFloat(r.Min + g.rng.Float64()*(r.Max-r.Min))
		}
		num := value.NewFloat(f)
		g.logf(5, "sample_value", "float drawn", zap.Float64("value", f))
		return num, num.String()

	default:
		r := g.cfg.ranges.Fraction
		numerator := g.randInt64(r.Numerator.Min, r.Numerator.Max)
		for numerator == 0 {
			numerator = g.randInt64(r.Numerator.Min, r.Numerator.Max)
		}
		denominator := g.randInt64(r.Denominator.Min, r.Denominator.Max)
		for denominator == 0 {
			denominator = g.randInt64(r.Denominator.Min, r.Denominator.Max)
		}
		num, err := value.NewFraction(numerator, denominator)
		if err != nil {
			// Unreachable: the denominator redraw excludes zero.
			num = value.NewInt(1)
		}
		g.logf(5, "sample_value", "fraction drawn", zap.String("value", num.String()))
		return num, num.String()
	}
}

// sampleSymbol draws a symbol by weighted choice over the configured
// symbol table, walking names in sorted order for reproducibility.
func (g *Generator) sampleSymbol() (algebra.Expr, string) {
	names := make([]string, 0, len(g.cfg.symbolWeights))
	for name := range g.cfg.symbolWeights {
		names = append(names, name)
	}
	sort.Strings(names)
	name := weightedChoice(g, names, func(n string) float64 { return g.cfg.symbolWeights[n] })
	g.logf(5, "sample_symbol", "symbol drawn", zap.String("symbol", name))
	return algebra.Var(name), name
}

// sampleOperand draws a symbol with probability symbolsDensity, a
// numeric literal otherwise.
func (g *Generator) sampleOperand() (algebra.Expr, string) {
	if g.rng.Float64() < g.cfg.symbolsDensity {
		return g.sampleSymbol()
	}
	num, text := g.sampleValue(value.Kind(-1))
	return numberExpr(num), text
}

// sampleAction draws an action by weighted choice over the configured
// action table.
func (g *Generator) sampleAction() operation.Action {
	actions := g.cfg.actionWeights.Ordered()
	action := weightedChoice(g, actions, func(a operation.Action) float64 { return g.cfg.actionWeights[a] })
	g.logf(4, "sample_action", "action drawn", zap.String("action", action.String()))
	return action
}

// describe resolves an action to one of its configured text renderings,
// chosen uniformly when several candidates exist.
func (g *Generator) describe(action operation.Action) string {
	renderings := g.cfg.actionTexts[action]
	switch len(renderings) {
	case 0:
		// Unconfigured actions fall back to the canonical name.
		return action.String()
	case 1:
		return renderings[0]
	default:
		return renderings[g.rng.Intn(len(renderings))]
	}
}

// randInt64 draws uniformly from [min, max] inclusive. The span is
// computed in unsigned space because max-min+1 overflows int64 for
// extreme bounds.
func (g *Generator) randInt64(min, max int64) int64 {
	if min == max {
		return min
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// [MinInt64, MaxInt64], the full domain.
		return int64(g.rng.Uint64())
	}
	if span <= uint64(math.MaxInt64) {
		return min + g.rng.Int63n(int64(span))
	}
	for {
		if v := g.rng.Uint64(); v < span {
			return int64(uint64(min) + v)
		}
	}
}

// weightedChoice draws one item with probability proportional to its
// weight. A degenerate all-zero table falls back to the last item; Config
// validation forbids that shape.
func weightedChoice[T any](g *Generator, items []T, weight func(T) float64) T {
	total := 0.0
	for _, item := range items {
		total += weight(item)
	}
	target := g.rng.Float64() * total
	acc := 0.0
	for _, item := range items {
		acc += weight(item)
		if target < acc {
			return item
		}
	}
	return items[len(items)-1]
}

// numberExpr lifts a sampled literal into the engine's expression form.
func numberExpr(n value.Number) algebra.Expr {
	switch n.Kind() {
	case value.KindInteger:
		return algebra.Int(n.Int64())
	case value.KindFloat:
		return algebra.Dec(n.Float64())
	default:
		num, den := n.Fraction()
		return algebra.Rat(num, den)
	}
}
