package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"kremap/internal/driver"
	"kremap/internal/ui"
)

type runOutcome struct {
	results []driver.FileResult
	err     error
}

type runFunc func(ctx context.Context, paths []string, opts driver.Options) ([]driver.FileResult, error)

// runWithUI runs fn while a Bubble Tea program on stderr shows per-file
// progress. The program quits when the event channel is closed.
func runWithUI(ctx context.Context, title string, paths []string, opts driver.Options, fn runFunc) ([]driver.FileResult, error) {
	files, err := driver.CollectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Path
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)
	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		res, err := fn(ctx, paths, runOpts)
		outcomeCh <- runOutcome{results: res, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, names, events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// drain so the worker can finish
		for range events {
		}
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
