package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoSources is returned when the given paths hold no Kotlin files.
var ErrNoSources = errors.New("no .kt or .kts files found")

// SourceFile is one collected input.
type SourceFile struct {
	Path string
	// Rel is Path relative to the directory argument it was found under,
	// or the base name for files given directly. --out mirrors it.
	Rel string
}

// IsSource reports whether path names a Kotlin source or script.
func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".kt" || ext == ".kts"
}

// CollectFiles expands paths into source files. Directories are walked
// recursively, hidden directories skipped; files given directly are taken
// whatever their extension. The result is sorted and free of duplicates.
func CollectFiles(ctx context.Context, paths []string) ([]SourceFile, error) {
	var files []SourceFile
	seen := make(map[string]struct{})
	add := func(path, rel string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, SourceFile{Path: clean, Rel: filepath.ToSlash(rel)})
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p, filepath.Base(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if IsSource(path) {
				rel, relErr := filepath.Rel(p, path)
				if relErr != nil {
					rel = filepath.Base(path)
				}
				add(path, rel)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
