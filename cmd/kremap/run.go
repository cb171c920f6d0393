package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kremap/internal/driver"
)

// execute runs fn over paths, with the progress view when it applies, and
// prints the report. It returns the error main should exit with.
func execute(cmd *cobra.Command, s *settings, title string, paths []string, fn runFunc, ro reportOptions) error {
	ctx := cmd.Context()
	opts := s.opts

	var results []driver.FileResult
	var err error
	if s.wantsTUI(cmd, paths, ro) {
		results, err = runWithUI(ctx, title, paths, opts, fn)
	} else {
		results, err = fn(ctx, paths, opts)
	}
	if err != nil {
		dumpTraceRing(cmd)
		return err
	}

	changed, failed, err := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, ro)
	printTimings(cmd.ErrOrStderr(), s.timer)
	switch {
	case err != nil:
		return err
	case failed:
		dumpTraceRing(cmd)
		return errSilent
	case ro.mode == driver.ModeCheck && changed:
		n := 0
		for _, r := range results {
			if r.Changed {
				n++
			}
		}
		return fmt.Errorf("%s: %d of %d files would change", title, n, len(results))
	}
	return nil
}

func (s *settings) wantsTUI(cmd *cobra.Command, paths []string, ro reportOptions) bool {
	if s.quiet || s.ui == uiModeOff || ro.mode == driver.ModeStdout || ro.format != "text" {
		return false
	}
	if s.ui == uiModeOn {
		return true
	}
	files, err := driver.CollectFiles(cmd.Context(), paths)
	if err != nil {
		return false
	}
	return shouldUseTUI(s.ui, len(files))
}

func modeFromFlags(check, stdout bool) (driver.Mode, error) {
	switch {
	case check && stdout:
		return 0, fmt.Errorf("--check cannot be combined with --stdout")
	case check:
		return driver.ModeCheck, nil
	case stdout:
		return driver.ModeStdout, nil
	}
	return driver.ModeWrite, nil
}
