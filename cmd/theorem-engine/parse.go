// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/theorem-engine/internal/depgraph"
	"github.com/pdiddy/theorem-engine/internal/report"
	"github.com/pdiddy/theorem-engine/internal/texparse"
	"github.com/pdiddy/theorem-engine/internal/validate"
	"github.com/pdiddy/theorem-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.tex>",
	Short: "Extract statement blocks from a LaTeX document",
	Long: `Parse extracts mathematical statement blocks (definitions, theorems,
lemmas, propositions, corollaries) with associated proofs, labels, and
cross-references from a .tex file.

Without mode flags it prints a per-block summary. Add --stats, --deps,
--dot, or --validate for other views, and --output to export JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	blocks, err := texparse.ParseFile(path, parserConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "parsed %s: %d blocks\n", path, len(blocks))

	stats, _ := cmd.Flags().GetBool("stats")
	deps, _ := cmd.Flags().GetBool("deps")
	dot, _ := cmd.Flags().GetBool("dot")
	doValidate, _ := cmd.Flags().GetBool("validate")
	output, _ := cmd.Flags().GetString("output")

	if !stats && !deps && !dot && !doValidate {
		report.Summary(os.Stdout, blocks)
	}
	if stats {
		report.Statistics(os.Stdout, blocks)
	}
	if deps {
		depgraph.Build(blocks).Render(os.Stdout)
	}
	if dot {
		depgraph.Build(blocks).DOT(os.Stdout)
	}
	if doValidate {
		validate.Render(os.Stdout, validate.Check(blocks))
	}

	if output != "" {
		if err := writeJSON(output, blocks, cmd); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported %d blocks to %s\n", len(blocks), output)
	}

	return nil
}

// parserConfigFromFlags combines --env flags with custom environments
// from the config file.
func parserConfigFromFlags(cmd *cobra.Command) types.ParserConfig {
	noAutoDetect, _ := cmd.Flags().GetBool("no-auto-detect")
	envs, _ := cmd.Flags().GetStringArray("env")
	envs = append(envs, viper.GetStringSlice("parser.custom_environments")...)

	return types.ParserConfig{
		CustomEnvironments: envs,
		AutoDetect:         !noAutoDetect,
	}
}

func writeJSON(path string, blocks []types.StatementBlock, cmd *cobra.Command) error {
	pretty, _ := cmd.Flags().GetBool("pretty")

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(blocks, "", "  ")
	} else {
		data, err = json.Marshal(blocks)
	}
	if err != nil {
		return fmt.Errorf("marshaling blocks: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "write extracted blocks to a JSON file")
	parseCmd.Flags().Bool("pretty", false, "indent JSON output (with --output)")
	parseCmd.Flags().Bool("stats", false, "print aggregate statistics")
	parseCmd.Flags().Bool("deps", false, "print the dependency graph between blocks")
	parseCmd.Flags().Bool("dot", false, "print the dependency graph in Graphviz DOT format")
	parseCmd.Flags().Bool("validate", false, "validate extracted blocks")
	parseCmd.Flags().Bool("no-auto-detect", false, "disable \\newtheorem auto-detection")
	parseCmd.Flags().StringArray("env", nil, "extra environment name to recognize (repeatable)")

	rootCmd.AddCommand(parseCmd)
}
