package main

import (
	"os"

	"github.com/spf13/cobra"

	"kremap/internal/driver"
	"kremap/internal/format"
	"kremap/internal/observ"
	"kremap/internal/project"
)

// settings are the global flags merged over kremap.toml.
type settings struct {
	manifest *project.Manifest
	opts     driver.Options
	quiet    bool
	ui       uiMode
	timer    *observ.Timer
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	manifest, err := project.Discover(cwd)
	if err != nil {
		return nil, err
	}

	s := &settings{manifest: manifest}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return nil, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return nil, err
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, err
	}
	if timings {
		s.timer = observ.NewTimer()
	}
	if s.opts.Jobs, err = flags.GetInt("jobs"); err != nil {
		return nil, err
	}
	if s.opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, err
	}
	if s.opts.Format, err = formatOptions(cmd, manifest); err != nil {
		return nil, err
	}
	s.opts.Timer = s.timer
	return s, nil
}

// formatOptions takes each setting from its flag when given, else from the
// manifest, else the flag default.
func formatOptions(cmd *cobra.Command, m *project.Manifest) (format.Options, error) {
	flags := cmd.Root().PersistentFlags()
	var opt format.Options
	var err error
	if opt.IndentWidth, err = flags.GetInt("indent"); err != nil {
		return opt, err
	}
	if opt.UseTabs, err = flags.GetBool("tabs"); err != nil {
		return opt, err
	}
	if opt.IncludeExtraBlankLines, err = flags.GetBool("blank-lines"); err != nil {
		return opt, err
	}
	if !flags.Changed("indent") && m.IsSet("format", "indent") {
		opt.IndentWidth = m.Format.Indent
	}
	if !flags.Changed("tabs") && m.IsSet("format", "tabs") {
		opt.UseTabs = m.Format.Tabs
	}
	if !flags.Changed("blank-lines") && m.IsSet("format", "blank_lines") {
		opt.IncludeExtraBlankLines = m.Format.BlankLines
	}
	return opt, nil
}
