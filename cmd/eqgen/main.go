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

// Command eqgen generates randomized algebraic equations from the
// command line: an initial equation per configured family, a chain of
// solution-preserving complications, the inverse resolve path, and the
// exact solution set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eqgen:", err)
		os.Exit(1)
	}
}

var (
	flagVerbose    int
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:           "eqgen",
	Short:         "Generate randomized algebraic equations with resolve paths",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagVerbose > 0 {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v",
		"increase diagnostic verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "",
		"path to a YAML generation configuration")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(familiesCmd)
}
