package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kremap/internal/diag"
	"kremap/internal/diagfmt"
	"kremap/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Print the tokens of a Kotlin file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diag.PrettyOpts{Color: useColor(os.Stderr), Context: true}
		if err := diag.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch outputFormat {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
