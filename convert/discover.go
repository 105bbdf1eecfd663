// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// DefaultPattern selects TSPLIB instances in the input directory itself.
const DefaultPattern = "*.tsp"

// Discover returns the regular files under dir matching the doublestar
// pattern (relative, slash-separated; "**/*.tsp" recurses), sorted.
func Discover(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Wrapf(doublestar.ErrBadPattern, "pattern %q", pattern)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "input directory")
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("input %s is not a directory", dir)
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "discover %s", dir)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	sort.Strings(paths)

	return paths, nil
}

// Matches reports whether path, taken relative to dir, matches pattern.
func Matches(dir, pattern, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))

	return err == nil && ok
}
