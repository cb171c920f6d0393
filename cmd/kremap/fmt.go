package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"kremap/internal/driver"
	"kremap/internal/format"
	"kremap/internal/parser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format Kotlin sources, keeping comments",
	Long: `fmt rewrites .kt and .kts files in place. Directories are walked recursively.
With - the source is read from stdin and written to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "list files that would change and exit 1 if any")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("diff", false, "print a unified diff for every changed file")
	fmtCmd.Flags().Bool("verify", false, "check that formatting is stable (format, reparse, format again)")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	diff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		return fmtStdin(cmd, s)
	}
	if verify {
		return runVerify(cmd, s, args)
	}

	mode, err := modeFromFlags(check, toStdout)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if mode == driver.ModeStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	s.opts.Mode = mode
	s.opts.Diff = diff

	return execute(cmd, s, "fmt", args, driver.FormatPaths, reportOptions{
		verb:   "reformatted",
		mode:   mode,
		format: outputFormat,
		quiet:  s.quiet,
		max:    s.opts.MaxDiagnostics,
	})
}

func fmtStdin(cmd *cobra.Command, s *settings) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	file, extras, err := parser.Parse(cmd.Context(), "<stdin>", src, s.opts.MaxDiagnostics)
	if err != nil {
		printFileError(cmd.ErrOrStderr(), "<stdin>", err)
		return errSilent
	}
	return format.Write(cmd.OutOrStdout(), file, extras, s.opts.Format)
}

// runVerify round-trips every file through the formatter without writing.
func runVerify(cmd *cobra.Command, s *settings, paths []string) error {
	files, err := driver.CollectFiles(cmd.Context(), paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return driver.ErrNoSources
	}
	bad := 0
	for _, f := range files {
		src, err := os.ReadFile(f.Path)
		if err != nil {
			printFileError(cmd.ErrOrStderr(), f.Path, err)
			bad++
			continue
		}
		ok, msg := format.CheckRoundTrip(cmd.Context(), f.Path, src, s.opts.Format, s.opts.MaxDiagnostics)
		if !ok {
			bad++
		}
		if !ok || !s.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Path, msg)
		}
	}
	if bad > 0 {
		return fmt.Errorf("fmt: %d of %d files failed verification", bad, len(files))
	}
	return nil
}
