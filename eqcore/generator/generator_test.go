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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/operation"
	"dirpx.dev/eqgen/eqcore/model/value"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seeded(cfg *Config, seed int64) *Generator {
	return New(cfg, WithRandom(rand.New(rand.NewSource(seed))))
}

// scenarioConfig pins every random draw except the ones the test wants:
// a single action, a single text rendering, fixed length and depth, and
// integers fixed to a single value.
func scenarioConfig(t *testing.T, literal int64, density float64, actionText string) *Config {
	t.Helper()
	cfg := NewConfig()
	require.NoError(t, cfg.SetFamily(equation.FamilyGeneral))
	require.NoError(t, cfg.SetExpressionLength(2, 2))
	require.NoError(t, cfg.SetComplicationDepth(2, 2))
	require.NoError(t, cfg.SetKindWeights(map[value.Kind]float64{value.KindInteger: 1.0}))
	require.NoError(t, cfg.SetRanges(value.Ranges{
		Integer:  value.IntRange{Min: literal, Max: literal},
		Float:    value.FloatRange{Min: 1, Max: 2},
		Fraction: value.FractionRange{Numerator: value.IntRange{Min: 1, Max: 2}, Denominator: value.IntRange{Min: 1, Max: 2}},
	}))
	require.NoError(t, cfg.SetActionWeights(operation.Weights{operation.ActionAdd: 1.0}))
	require.NoError(t, cfg.SetActionTexts(operation.Texts{operation.ActionAdd: {actionText}}))
	require.NoError(t, cfg.SetSymbolWeights(map[string]float64{"x": 1.0}))
	require.NoError(t, cfg.SetSymbolsDensity(density))
	require.NoError(t, cfg.SetLogLevel(0))
	return cfg
}

// All-numeric extensions fold to constants, so no parentheses ever
// appear: one initial synthesis plus two complications, three operands
// each, gives nine joined literals.
func TestGenerateScenarioNumericChain(t *testing.T) {
	g := seeded(scenarioConfig(t, 5, 0.0, "+"), 1)
	g.Generate(false)

	const want = "5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5"
	text := g.EquationText()
	assert.Equal(t, want, text.Left)
	assert.Equal(t, want, text.Right)

	out := g.Outcome()
	assert.True(t, out.Positive)
	assert.Empty(t, out.Solutions, "constant identity has an empty solution set")
}

// Symbolic extensions stay compound after evaluation (x+x+x = 3x), so
// each complication extension is parenthesized.
func TestGenerateScenarioSymbolicChain(t *testing.T) {
	g := seeded(scenarioConfig(t, 7, 1.0, "plus"), 1)
	g.Generate(false)

	const want = "x plus x plus x plus (x plus x plus x) plus (x plus x plus x)"
	text := g.EquationText()
	assert.Equal(t, want, text.Left)
	assert.Equal(t, want, text.Right)
	assert.True(t, g.Outcome().Positive)
}

// divideByZeroEngine forces every divide combination to report division
// by zero, standing in for an extension that evaluates to exact zero.
type divideByZeroEngine struct {
	algebra.Engine
}

func (e divideByZeroEngine) Combine(a, b algebra.Expr, action operation.Action) (algebra.Expr, error) {
	if action == operation.ActionDivide {
		return nil, algebra.ErrDivisionByZero
	}
	return e.Engine.Combine(a, b, action)
}

func TestGenerateDivideByZeroGuard(t *testing.T) {
	cfg := scenarioConfig(t, 5, 0.0, "+")
	require.NoError(t, cfg.SetActionWeights(operation.Weights{operation.ActionDivide: 1.0}))
	require.NoError(t, cfg.SetActionTexts(operation.Texts{operation.ActionDivide: {"/"}}))

	g := New(cfg,
		WithRandom(rand.New(rand.NewSource(1))),
		WithEngine(divideByZeroEngine{Engine: algebra.NewExact()}))
	g.Generate(false)

	out := g.Outcome()
	assert.False(t, out.Positive)
	assert.Equal(t, equation.ErrorDivisionByZero, out.Kind)
	require.NoError(t, out.Validate())

	left, right := g.Equation()
	ln, ok := left.Eval()
	require.True(t, ok)
	rn, ok := right.Eval()
	require.True(t, ok)
	assert.True(t, ln.IsZero() && rn.IsZero(), "failed generation must zero the symbolic sides")

	// The textual trace survives the failure.
	assert.NotEmpty(t, g.EquationText().Left)
	assert.Equal(t, 2, g.ResolvePath().Len())
}

func TestSampleValueRangeAndZeroExclusion(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetRanges(value.Ranges{
		Integer:  value.IntRange{Min: -3, Max: 3},
		Float:    value.FloatRange{Min: -1, Max: 1},
		Fraction: value.FractionRange{Numerator: value.IntRange{Min: -3, Max: 3}, Denominator: value.IntRange{Min: -3, Max: 3}},
	}))
	require.NoError(t, cfg.SetLogLevel(0))
	g := seeded(cfg, 42)

	for i := 0; i < 10000; i++ {
		n, text := g.sampleValue(value.Kind(-1))
		require.False(t, n.IsExactZero(), "draw %d produced zero: %s", i, text)
		switch n.Kind() {
		case value.KindInteger:
			v := n.Int64()
			assert.GreaterOrEqual(t, v, int64(-3))
			assert.LessOrEqual(t, v, int64(3))
		case value.KindFloat:
			v := n.Float64()
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		case value.KindFraction:
			num, den := n.Fraction()
			assert.NotZero(t, den)
			assert.NotZero(t, num)
		}
	}
}

func TestRandInt64ExtremeBounds(t *testing.T) {
	g := seeded(NewConfig(), 42)

	for i := 0; i < 1000; i++ {
		// The full int64 domain, where max-min+1 wraps to zero.
		_ = g.randInt64(math.MinInt64, math.MaxInt64)

		// A span wider than MaxInt64 but short of the full domain.
		v := g.randInt64(math.MinInt64, math.MaxInt64-1)
		assert.LessOrEqual(t, v, int64(math.MaxInt64-1))

		// An ordinary span must stay inside its bounds.
		v = g.randInt64(-5, 5)
		assert.GreaterOrEqual(t, v, int64(-5))
		assert.LessOrEqual(t, v, int64(5))
	}
}

func TestGenerateDepthBounds(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetComplicationDepth(3, 3))
	require.NoError(t, cfg.SetLogLevel(0))
	g := seeded(cfg, 7)

	for i := 0; i < 25; i++ {
		g.Generate(false)
		assert.Equal(t, 3, g.ResolvePath().Len(), "resolve path length must equal the drawn depth")
	}
}

func TestGenerateFlagConsistency(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetLogLevel(0))
	g := seeded(cfg, 99)

	for i := 0; i < 200; i++ {
		g.Generate(false)
		out := g.Outcome()
		require.NoError(t, out.Validate(), "iteration %d: %+v", i, out)

		left, right := g.Equation()
		if !out.Positive {
			ln, ok := left.Eval()
			require.True(t, ok)
			rn, ok := right.Eval()
			require.True(t, ok)
			assert.True(t, ln.IsZero() && rn.IsZero())
			assert.Empty(t, g.SolutionSet())
		}
	}
}

func TestGenerateReuseInitial(t *testing.T) {
	cfg := scenarioConfig(t, 5, 0.0, "+")
	g := seeded(cfg, 3)

	g.Generate(false)
	initLeft, initRight := g.InitialEquation()
	initText := g.InitialText()

	g.Generate(true)
	reLeft, reRight := g.InitialEquation()
	assert.True(t, initLeft.Equal(reLeft), "reused initial left changed")
	assert.True(t, initRight.Equal(reRight), "reused initial right changed")
	assert.Equal(t, initText, g.InitialText())

	g.Generate(false)
	// A fresh generation resets the resolve path and outcome regardless.
	assert.Equal(t, 2, g.ResolvePath().Len())
}

func TestGenerateLinearFamilySolvable(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetFamily(equation.FamilyLinear))
	require.NoError(t, cfg.SetKindWeights(map[value.Kind]float64{value.KindInteger: 1.0}))
	require.NoError(t, cfg.SetSymbolWeights(map[string]float64{"x": 1.0}))
	require.NoError(t, cfg.SetActionWeights(operation.Weights{operation.ActionAdd: 1.0}))
	require.NoError(t, cfg.SetLogLevel(0))
	g := seeded(cfg, 11)

	for i := 0; i < 50; i++ {
		g.Generate(false)
		require.True(t, g.Outcome().Positive, "iteration %d: linear initial with add-only complication must stay solvable", i)
		require.Len(t, g.SolutionSet(), 1)

		// The solution satisfies the initial equation.
		left, right := g.InitialEquation()
		diff := algebra.Sum(left, algebra.Product(algebra.Int(-1), right))
		at := diff.Substitute("x", g.SolutionSet()[0]).Simplify()
		n, ok := at.Eval()
		require.True(t, ok)
		assert.True(t, n.IsZero())
	}
}

func TestGenerateQuadraticFamilyShape(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetFamily(equation.FamilyQuadratic))
	require.NoError(t, cfg.SetKindWeights(map[value.Kind]float64{value.KindInteger: 1.0}))
	require.NoError(t, cfg.SetSymbolWeights(map[string]float64{"x": 1.0}))
	require.NoError(t, cfg.SetLogLevel(0))
	g := seeded(cfg, 13)
	g.Generate(false)

	left, right := g.InitialEquation()
	rn, ok := right.Eval()
	require.True(t, ok)
	assert.True(t, rn.IsZero(), "polynomial families equate to zero")
	assert.Contains(t, left.String(), "x**2")
	assert.Equal(t, "0", g.InitialText().Right)
}

func TestResolvePathInverseOrdering(t *testing.T) {
	cfg := scenarioConfig(t, 5, 0.0, "+")
	require.NoError(t, cfg.SetComplicationDepth(3, 3))
	g := seeded(cfg, 17)
	g.Generate(false)

	path := g.ResolvePath()
	require.Equal(t, 3, path.Len())
	// Add-only complication: every inverse instruction subtracts, and the
	// front entry undoes the most recent step.
	for _, note := range path {
		assert.Contains(t, note, "subtract")
		assert.Contains(t, note, "from both sides")
	}
}

func TestGeneratorIDChangesPerGeneration(t *testing.T) {
	g := seeded(NewConfig(), 23)
	g.Generate(false)
	first := g.ID()
	g.Generate(false)
	assert.NotEqual(t, first, g.ID())
}

func TestSimplifiedInitialAndLaTeX(t *testing.T) {
	cfg := scenarioConfig(t, 5, 0.0, "+")
	g := seeded(cfg, 5)
	g.Generate(false)

	simplified := g.SimplifiedInitial()
	n, ok := simplified.Eval()
	require.True(t, ok)
	assert.Equal(t, "15", n.String())

	assert.Equal(t, "15 = 15", g.InitialLaTeX())
	assert.NotEmpty(t, g.EquationLaTeX())
}
