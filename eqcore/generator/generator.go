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
	stderrors "errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/eqgen/eqcore/algebra"
	"dirpx.dev/eqgen/eqcore/model/equation"
	"dirpx.dev/eqgen/eqcore/model/operation"
)

// Generator builds randomized algebraic equations: an initial equation of
// the configured family, its exact solution set, and a chain of
// solution-preserving complication steps with the inverse resolve path.
//
// A Generator is single-owner: configuration plus per-generation scratch
// state are mutated by Generate with no locking. Parallel generation
// requires one Generator per goroutine.
type Generator struct {
	cfg *Config
	eng algebra.Engine
	rng *rand.Rand
	log *zap.Logger

	// Per-generation state, reset at the top of every Generate call.
	id        uuid.UUID
	poisoned  bool
	errKind   equation.ErrorKind
	solutions []algebra.Expr

	initLeft  algebra.Expr
	initRight algebra.Expr
	initText  equation.SidePair

	left  algebra.Expr
	right algebra.Expr
	text  equation.SidePair
	path  equation.ResolvePath
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithLogger installs a diagnostic logger. Diagnostics are filtered by
// the Config's log level before they reach the logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithEngine substitutes the symbolic engine. The default is the exact
// rational engine.
func WithEngine(eng algebra.Engine) Option {
	return func(g *Generator) {
		if eng != nil {
			g.eng = eng
		}
	}
}

// WithRandom substitutes the random source, primarily for seeded,
// reproducible generation.
func WithRandom(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New returns a Generator over the given configuration. A nil cfg gets
// the default configuration. The Generator keeps the *Config it is given;
// callers may reconfigure through its setters between Generate calls.
func New(cfg *Config, opts ...Option) *Generator {
	if cfg == nil {
		cfg = NewConfig()
	}
	g := &Generator{
		cfg: cfg,
		eng: algebra.NewExact(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the Generator's configuration for reconfiguration
// between Generate calls.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Generate builds one equation. With reuseInitial true, the previous
// initial equation is kept and only re-complicated; per-generation state
// is reset unconditionally either way.
//
// Generate never returns an error for algebra failures; they are recorded
// in the Outcome and the symbolic sides are degraded to zero, with the
// textual sides and resolve path left intact for inspection.
func (g *Generator) Generate(reuseInitial bool) {
	g.reset(!reuseInitial)

	if reuseInitial && g.initLeft != nil {
		g.left, g.right = g.initLeft, g.initRight
		g.text = g.initText
	} else {
		g.buildInitial()
		g.initLeft, g.initRight = g.left, g.right
		g.initText = g.text
	}
	g.logf(2, "generate", "initial equation",
		zap.String("left", exprString(g.left)),
		zap.String("right", exprString(g.right)),
		zap.String("left_text", g.text.Left),
		zap.String("right_text", g.text.Right))

	g.solveInitial()

	depth := g.randBetween(g.cfg.depthMin, g.cfg.depthMax)
	g.logf(3, "generate", "complicating", zap.Int("depth", depth))
	for i := 0; i < depth; i++ {
		g.extendEquation()
	}

	if g.poisoned {
		// Numeric truth is abandoned; the text keeps the attempted shape.
		g.left = algebra.Int(0)
		g.right = algebra.Int(0)
		g.solutions = nil
		g.logf(1, "generate", "generation failed",
			zap.String("error", g.errKind.String()))
	}
}

// reset clears per-generation state; regenerateInit additionally drops
// the retained initial equation.
func (g *Generator) reset(regenerateInit bool) {
	g.id = uuid.New()
	g.poisoned = false
	g.errKind = equation.ErrorNone
	g.solutions = nil
	g.left, g.right = algebra.Int(0), algebra.Int(0)
	g.text = equation.SidePair{}
	g.path = nil
	if regenerateInit {
		g.initLeft, g.initRight = nil, nil
		g.initText = equation.SidePair{}
	}
}

// solveInitial asks the engine for the solution set of left - right = 0
// and records the failure kind when no closed form exists.
func (g *Generator) solveInitial() {
	diff, err := g.eng.Combine(g.left, g.right, operation.ActionSub)
	if err == nil {
		g.solutions, err = g.eng.Solve(diff)
	}
	if err != nil {
		g.poison(classify(err))
		g.logf(1, "generate", "initial equation not solvable",
			zap.String("error", g.errKind.String()))
		return
	}
	rendered := make([]string, len(g.solutions))
	for i, s := range g.solutions {
		rendered[i] = s.String()
	}
	g.logf(3, "generate", "solved initial equation",
		zap.Strings("solutions", rendered))
}

// poison records the first failure; later failures keep the original
// kind.
func (g *Generator) poison(kind equation.ErrorKind) {
	if g.poisoned {
		return
	}
	g.poisoned = true
	g.errKind = kind
	g.solutions = nil
}

// classify maps engine errors onto outcome kinds; anything unrecognized
// is an unclassified invalid-expression failure.
func classify(err error) equation.ErrorKind {
	switch {
	case stderrors.Is(err, algebra.ErrOverflow):
		return equation.ErrorOverflow
	case stderrors.Is(err, algebra.ErrDivisionByZero):
		return equation.ErrorDivisionByZero
	case stderrors.Is(err, algebra.ErrUnsolvable):
		return equation.ErrorUnsolvable
	default:
		return equation.ErrorInvalid
	}
}

// randBetween draws uniformly from [min, max] inclusive.
func (g *Generator) randBetween(min, max int) int {
	if min == max {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// logf emits a diagnostic if its level passes the configured threshold.
// Level 1 is most severe; the zap severity follows the level.
func (g *Generator) logf(level int, module, msg string, fields ...zap.Field) {
	if level > g.cfg.logLevel {
		return
	}
	fields = append(fields, zap.String("module", module), zap.Int("level", level))
	switch level {
	case 1:
		g.log.Error(msg, fields...)
	case 2:
		g.log.Warn(msg, fields...)
	case 3:
		g.log.Info(msg, fields...)
	default:
		g.log.Debug(msg, fields...)
	}
}

func exprString(e algebra.Expr) string {
	if e == nil {
		return "0"
	}
	return e.String()
}

// ID returns the unique identifier of the most recent generation.
func (g *Generator) ID() uuid.UUID {
	return g.id
}

// InitialEquation returns the symbolic sides of the initial equation.
func (g *Generator) InitialEquation() (left, right algebra.Expr) {
	return g.initLeft, g.initRight
}

// InitialText returns the textual sides of the initial equation.
func (g *Generator) InitialText() equation.SidePair {
	return g.initText
}

// Equation returns the symbolic sides of the complicated equation; both
// are the literal zero when the generation was flagged negative.
func (g *Generator) Equation() (left, right algebra.Expr) {
	return g.left, g.right
}

// EquationText returns the textual sides of the complicated equation.
// The text is kept even for negative generations.
func (g *Generator) EquationText() equation.SidePair {
	return g.text
}

// ResolvePath returns a copy of the inverse-instruction path, ordered
// from the step undoing the last complication to the step undoing the
// first.
func (g *Generator) ResolvePath() equation.ResolvePath {
	return g.path.Clone()
}

// SolutionSet returns the structural solutions of the initial equation;
// empty for negative generations.
func (g *Generator) SolutionSet() []algebra.Expr {
	out := make([]algebra.Expr, len(g.solutions))
	copy(out, g.solutions)
	return out
}

// Outcome returns the generation result triple with rendered solutions.
func (g *Generator) Outcome() equation.Outcome {
	if g.poisoned {
		return equation.FailedOutcome(g.errKind)
	}
	rendered := make([]string, len(g.solutions))
	for i, s := range g.solutions {
		rendered[i] = s.String()
	}
	return equation.NewOutcome(rendered)
}

// EquationLaTeX returns the typeset rendering of the complicated
// equation.
func (g *Generator) EquationLaTeX() string {
	return g.eng.LaTeX(g.left) + " = " + g.eng.LaTeX(g.right)
}

// InitialLaTeX returns the typeset rendering of the initial equation.
func (g *Generator) InitialLaTeX() string {
	return g.eng.LaTeX(g.initLeft) + " = " + g.eng.LaTeX(g.initRight)
}

// SimplifiedInitial returns the canonical form of the initial equation's
// left side, the reference answer for simplification tasks.
func (g *Generator) SimplifiedInitial() algebra.Expr {
	return g.eng.Simplify(g.initLeft)
}
