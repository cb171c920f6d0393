package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kremap/internal/diag"
	"kremap/internal/diagfmt"
	"kremap/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Parse a Kotlin file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().Bool("spans", false, "show line:col ranges in tree output")
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		opts := diag.PrettyOpts{Color: useColor(os.Stderr), Context: true}
		if err := diag.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch outputFormat {
	case "tree":
		err = diagfmt.FormatTree(cmd.OutOrStdout(), result.AST, result.FileSet, diagfmt.TreeOpts{Spans: spans})
	case "json":
		err = diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.AST)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errSilent
	}
	return nil
}
