// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command golazy-demo exercises a handful of golazy pipelines against a
// plain-text file, the spiritual successor of this module's original
// reverse-words example: it reads a whole text file into memory and works on
// it line by line and word by word, and routes the transformation through a golazy.Pipeline instead of a
// channel-based textual.Processor chain.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaaserne/golazy/cmd/golazy-demo/internal/words"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("golazy-demo failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "golazy-demo",
		Short: "Demonstrates golazy pipelines against a text file",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReverseCmd())
	root.AddCommand(newStatsCmd())
	return root
}

func newReverseCmd() *cobra.Command {
	var inputPath string
	var twice bool

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Reverse every word of a text file, line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}
			log.WithField("input", inputPath).Debug("loaded input file")
			out := words.ReverseLines(string(text), twice)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a UTF-8 text file (required)")
	cmd.Flags().BoolVar(&twice, "twice", false, "apply the reversal twice (restores the original text)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print word-length statistics for a text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}
			mean, median, longest := words.LengthStats(string(text))
			log.WithFields(logrus.Fields{
				"mean":   mean,
				"median": median,
			}).Info("word length statistics")
			fmt.Fprintf(cmd.OutOrStdout(), "mean=%.2f median=%.2f longest=%q\n", mean, median, longest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a UTF-8 text file (required)")
	cmd.MarkFlagRequired("input")
	return cmd
}
