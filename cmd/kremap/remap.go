package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"kremap/internal/driver"
	"kremap/internal/mapping"
	"kremap/internal/observ"
	"kremap/internal/remap"
	"kremap/internal/trace"
)

var remapCmd = &cobra.Command{
	Use:   "remap --mappings FILE [flags] <path|-> [path...]",
	Short: "Rename class references through a mapping file",
	Long: `remap rewrites imports, type references and qualified names of mapped
classes. Mappings are read from SRG, TSRG or TOML files; the format follows
the extension. Decoded mappings are cached under the user cache directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemap,
}

func init() {
	remapCmd.Flags().String("mappings", "", "mapping file (.srg, .tsrg, .toml); default from kremap.toml")
	remapCmd.Flags().Bool("check", false, "list files that would change and exit 1 if any")
	remapCmd.Flags().Bool("stdout", false, "print remapped code to stdout instead of rewriting files")
	remapCmd.Flags().String("out", "", "write results under this directory instead of in place")
	remapCmd.Flags().Bool("diff", false, "print a unified diff for every changed file")
	remapCmd.Flags().Bool("reverse", false, "map deobfuscated names back to obfuscated ones")
	remapCmd.Flags().Bool("no-cache", false, "always decode the mapping file")
	remapCmd.Flags().Bool("clear-cache", false, "drop every cached mapping set before loading")
	remapCmd.Flags().String("format", "text", "output format (text|json)")
}

func runRemap(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	mappingsPath, err := flags.GetString("mappings")
	if err != nil {
		return err
	}
	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := flags.GetBool("stdout")
	if err != nil {
		return err
	}
	outDir, err := flags.GetString("out")
	if err != nil {
		return err
	}
	diff, err := flags.GetBool("diff")
	if err != nil {
		return err
	}
	reverse, err := flags.GetBool("reverse")
	if err != nil {
		return err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return err
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return err
	}
	outputFormat, err := flags.GetString("format")
	if err != nil {
		return err
	}

	if mappingsPath == "" {
		mappingsPath = s.manifest.MappingsPath()
	}
	if mappingsPath == "" {
		return fmt.Errorf("remap: --mappings is required (or [remap].mappings in kremap.toml)")
	}
	if !flags.Changed("no-cache") && s.manifest != nil {
		noCache = s.manifest.Remap.NoCache
	}

	mode, err := modeFromFlags(check, toStdout)
	if err != nil {
		return fmt.Errorf("remap: %w", err)
	}
	if outDir != "" && mode != driver.ModeWrite {
		return fmt.Errorf("remap: --out cannot be combined with --check or --stdout")
	}

	set, err := loadMappings(cmd, s.timer, mappingsPath, cacheOptions{disabled: noCache, clear: clearCache})
	if err != nil {
		return fmt.Errorf("remap: %w", err)
	}
	if reverse {
		set = set.Reverse()
	}

	if len(args) == 1 && args[0] == "-" {
		return remapStdin(cmd, s, set)
	}

	s.opts.Mode = mode
	s.opts.OutDir = outDir
	s.opts.Diff = diff
	s.opts.Mappings = set
	return execute(cmd, s, "remap", args, driver.RemapPaths, reportOptions{
		verb:   "remapped",
		mode:   mode,
		format: outputFormat,
		quiet:  s.quiet,
		max:    s.opts.MaxDiagnostics,
	})
}

type cacheOptions struct {
	disabled bool
	clear    bool
}

func loadMappings(cmd *cobra.Command, timer *observ.Timer, path string, co cacheOptions) (*mapping.Set, error) {
	ctx, span := trace.Start(cmd.Context(), trace.ScopePass, "mappings")
	defer span.End("")

	var cache *mapping.Cache
	if !co.disabled || co.clear {
		c, err := mapping.OpenCache("kremap")
		if err != nil {
			trace.Point(ctx, trace.ScopePass, "cache", "unavailable: "+err.Error())
		} else {
			cache = c
		}
	}
	if co.clear && cache != nil {
		if err := cache.Clear(); err != nil {
			return nil, fmt.Errorf("clear mapping cache: %w", err)
		}
		trace.Point(ctx, trace.ScopePass, "cache", "cleared "+cache.Dir())
	}
	if co.disabled {
		cache = nil
	}
	idx := timer.Begin("mappings")
	set, hit, err := cache.Load(path)
	timer.End(idx, "")
	if err != nil {
		if set == nil {
			return nil, err
		}
		// the set decoded fine, only the cache write failed
		trace.Point(ctx, trace.ScopePass, "cache", err.Error())
	}
	span.WithExtra("classes", strconv.Itoa(set.Len())).WithExtra("cache_hit", strconv.FormatBool(hit))
	return set, nil
}

func remapStdin(cmd *cobra.Command, s *settings, set *mapping.Set) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := remap.Source(cmd.Context(), "<stdin>", src, set, remap.Options{
		Format:         s.opts.Format,
		MaxDiagnostics: s.opts.MaxDiagnostics,
	})
	if err != nil {
		printFileError(cmd.ErrOrStderr(), "<stdin>", err)
		return errSilent
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
