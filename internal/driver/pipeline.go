package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"kremap/internal/ast"
	"kremap/internal/format"
	"kremap/internal/mapping"
	"kremap/internal/observ"
	"kremap/internal/parser"
	"kremap/internal/remap"
	"kremap/internal/trace"
)

// Mode selects what happens to a rewritten file.
type Mode uint8

const (
	ModeWrite  Mode = iota // replace changed files in place (or under OutDir)
	ModeCheck              // report Changed only
	ModeStdout             // return the text in FileResult.Output
)

// Options configures FormatPaths and RemapPaths.
type Options struct {
	Mode Mode
	// OutDir, when set in ModeWrite, receives every result at its Rel path
	// and the inputs are left alone.
	OutDir         string
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	Format         format.Options
	// Diff fills FileResult.Diff for changed files.
	Diff     bool
	Progress ProgressSink
	Timer    *observ.Timer
	// Mappings is required by RemapPaths.
	Mappings *mapping.Set
}

// FileResult captures what happened to one file.
type FileResult struct {
	Path    string
	Changed bool
	Err     error
	Output  []byte // ModeStdout only
	Diff    string
	Renamed int // remap only: references rewritten
}

// transform turns a parsed file into the tree to print.
type transform func(f *ast.File, extras *ast.Extras) (ast.Node, *ast.Extras, int)

// FormatPaths reformats every source file under paths.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	return run(ctx, "fmt", paths, opts, nil)
}

// RemapPaths rewrites class references under paths through opts.Mappings.
func RemapPaths(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	if opts.Mappings == nil {
		return nil, errors.New("remap: no mappings loaded")
	}
	set := opts.Mappings
	return run(ctx, "remap", paths, opts, func(f *ast.File, extras *ast.Extras) (ast.Node, *ast.Extras, int) {
		res := remap.File(f, extras, set)
		return res.File, res.Extras, res.Renamed
	})
}

// Failed reports whether any result carries an error.
func Failed(results []FileResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

func run(ctx context.Context, name string, paths []string, opts Options, tf transform) ([]FileResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, name)
	defer span.End("")

	idx := opts.Timer.Begin("collect")
	files, err := CollectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	opts.Timer.End(idx, strconv.Itoa(len(files))+" files")
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	span.WithExtra("files", strconv.Itoa(len(files)))

	for _, f := range files {
		emit(opts.Progress, Event{File: f.Path, Stage: StageParse, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// каждая горутина пишет только в свой индекс
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(gctx, f, opts, tf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func processFile(ctx context.Context, f SourceFile, opts Options, tf transform) FileResult {
	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+f.Path)
	res := FileResult{Path: f.Path}
	started := time.Now()
	fail := func(stage Stage, err error) FileResult {
		res.Err = err
		span.End("error")
		emit(opts.Progress, Event{File: f.Path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return res
	}

	emit(opts.Progress, Event{File: f.Path, Stage: StageParse, Status: StatusWorking})
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return fail(StageParse, err)
	}
	t0 := time.Now()
	file, extras, err := parser.Parse(ctx, f.Path, src, opts.MaxDiagnostics)
	opts.Timer.Add("parse", time.Since(t0))
	if err != nil {
		return fail(StageParse, err)
	}

	var root ast.Node = file
	if tf != nil {
		emit(opts.Progress, Event{File: f.Path, Stage: StageRemap, Status: StatusWorking})
		t0 = time.Now()
		root, extras, res.Renamed = tf(file, extras)
		opts.Timer.Add("remap", time.Since(t0))
		span.WithExtra("renamed", strconv.Itoa(res.Renamed))
	}

	emit(opts.Progress, Event{File: f.Path, Stage: StageWrite, Status: StatusWorking})
	t0 = time.Now()
	var buf bytes.Buffer
	if err := format.Write(&buf, root, extras, opts.Format); err != nil {
		return fail(StageWrite, fmt.Errorf("%s: write: %w", f.Path, err))
	}
	out := buf.Bytes()
	res.Changed = !bytes.Equal(src, out)
	if opts.Diff && res.Changed {
		res.Diff, err = unifiedDiff(f.Path, src, out)
		if err != nil {
			return fail(StageWrite, err)
		}
	}

	switch opts.Mode {
	case ModeStdout:
		res.Output = out
	case ModeWrite:
		if err := store(f, out, res.Changed, opts.OutDir); err != nil {
			return fail(StageWrite, err)
		}
	}
	opts.Timer.Add("write", time.Since(t0))

	span.WithExtra("changed", strconv.FormatBool(res.Changed)).End("")
	emit(opts.Progress, Event{File: f.Path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(started)})
	return res
}

// store writes out in place when it changed, or always under outDir.
// File permissions of the source are kept.
func store(f SourceFile, out []byte, changed bool, outDir string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if outDir == "" {
		if !changed {
			return nil
		}
		return os.WriteFile(f.Path, out, mode)
	}
	target := filepath.Join(outDir, filepath.FromSlash(f.Rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, out, mode)
}
