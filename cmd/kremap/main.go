package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kremap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kremap",
	Short: "Kotlin source formatter and class remapper",
	Long: `kremap rewrites Kotlin sources while keeping their comments and blank lines.
It formats files and renames class references through SRG, TSRG or TOML mappings.`,
	PersistentPreRunE: setupRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// cleanups run after the command, in reverse order.
var cleanups []func()

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(remapCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	addGlobalFlags(rootCmd)

	err := rootCmd.Execute()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	if err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "kremap: %v\n", err)
		}
		os.Exit(1)
	}
}

// addGlobalFlags регистрирует глобальные флаги
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "print phase timings to stderr")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	flags.Int("jobs", 0, "max parallel workers (0=auto)")
	flags.String("ui", "auto", "progress UI (auto|on|off)")
	flags.Bool("blank-lines", false, "keep blank lines from the source (default from kremap.toml)")
	flags.Int("indent", 4, "indent width in spaces (default from kremap.toml)")
	flags.Bool("tabs", false, "indent with tabs (default from kremap.toml)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept in ring mode")
	flags.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("runtime-trace", "", "write Go runtime trace to file")
}

func setupRoot(cmd *cobra.Command, _ []string) error {
	if err := applyColor(cmd); err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProfiling)
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTracing)
	return nil
}

func applyColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// useColor reports whether output to f should be colourised.
func useColor(f *os.File) bool {
	return !color.NoColor && isTerminal(f)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
