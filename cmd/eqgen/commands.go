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

package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"dirpx.dev/eqgen/eqcore/generator"
	"dirpx.dev/eqgen/eqcore/model/equation"
)

var (
	flagCount    int
	flagFamily   string
	flagSeed     int64
	flagParallel int
	flagLaTeX    bool
	flagJSON     bool
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	equationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	stepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more equations",
	RunE:  runGenerate,
}

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the supported equation families",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range equation.Families() {
			if f == equation.FamilyGeneral {
				fmt.Printf("%-10s free-form, no enforced polynomial shape\n", f)
				continue
			}
			fmt.Printf("%-10s polynomial of degree %d\n", f, f.Degree())
		}
	},
}

func init() {
	generateCmd.Flags().IntVarP(&flagCount, "count", "n", 1,
		"number of equations to generate")
	generateCmd.Flags().StringVar(&flagFamily, "family", "",
		"equation family (linear, quadratic, cubic, general); overrides the config")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0,
		"random seed for reproducible output (0 seeds from the clock)")
	generateCmd.Flags().IntVar(&flagParallel, "parallel", 1,
		"number of generation workers")
	generateCmd.Flags().BoolVar(&flagLaTeX, "latex", false,
		"include LaTeX renderings in the output")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false,
		"emit one JSON object per equation instead of styled text")
}

// result is the JSON projection of one generation.
type result struct {
	ID          string               `json:"id"`
	Family      equation.Family      `json:"family"`
	Initial     equation.SidePair    `json:"initial"`
	Equation    equation.SidePair    `json:"equation"`
	ResolvePath equation.ResolvePath `json:"resolve_path"`
	Outcome     equation.Outcome     `json:"outcome"`
	LaTeX       string               `json:"latex,omitempty"`
}

func loadConfig(path string) (*generator.Config, error) {
	cfg := generator.NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagCount < 1 {
		return fmt.Errorf("count must be positive, got %d", flagCount)
	}
	if flagParallel < 1 {
		return fmt.Errorf("parallel must be positive, got %d", flagParallel)
	}

	cfg, err := loadConfig(flagConfigPath)
	if err != nil {
		return err
	}
	if flagFamily != "" {
		family, err := equation.ParseFamily(flagFamily)
		if err != nil {
			return err
		}
		if err := cfg.SetFamily(family); err != nil {
			return err
		}
	}
	if flagVerbose > 0 {
		level := min(flagVerbose+2, 5)
		if err := cfg.SetLogLevel(level); err != nil {
			return err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating",
		zap.Int("count", flagCount),
		zap.Int("parallel", flagParallel),
		zap.Int64("seed", seed),
		zap.Stringer("family", cfg.Family()))

	results := make([]result, flagCount)
	workers := min(flagParallel, flagCount)

	var grp errgroup.Group
	for w := 0; w < workers; w++ {
		worker := w
		grp.Go(func() error {
			// Generators are single-owner, so each worker runs its own over
			// a cloned config and a worker-distinct seed.
			g := generator.New(cfg.Clone(),
				generator.WithLogger(logger),
				generator.WithRandom(rand.New(rand.NewSource(seed+int64(worker)))))
			for i := worker; i < flagCount; i += workers {
				g.Generate(false)
				r := result{
					ID:          g.ID().String(),
					Family:      g.Config().Family(),
					Initial:     g.InitialText(),
					Equation:    g.EquationText(),
					ResolvePath: g.ResolvePath(),
					Outcome:     g.Outcome(),
				}
				if flagLaTeX {
					r.LaTeX = g.EquationLaTeX()
				}
				results[i] = r
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for i := range results {
		if err := printResult(cmd, results[i]); err != nil {
			return err
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, r result) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(r)
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("equation %s (%s)", r.ID, r.Family)))
	fmt.Fprintln(out, equationStyle.Render("  "+r.Equation.String()))
	if !r.Outcome.Positive {
		fmt.Fprintln(out, failStyle.Render("  generation failed: "+r.Outcome.Kind.String()))
	}
	for i, step := range r.ResolvePath {
		fmt.Fprintln(out, stepStyle.Render(fmt.Sprintf("  step %d: %s", i+1, step)))
	}
	fmt.Fprintln(out, stepStyle.Render("  simplifies to: "+r.Initial.String()))
	if r.Outcome.Positive && len(r.Outcome.Solutions) > 0 {
		fmt.Fprintln(out, equationStyle.Render(fmt.Sprintf("  solutions: %v", r.Outcome.Solutions)))
	}
	if r.LaTeX != "" {
		fmt.Fprintln(out, stepStyle.Render("  latex: "+r.LaTeX))
	}
	fmt.Fprintln(out)
	return nil
}
