// core/scan/scan.go
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Stem returns the base name of path with its final extension removed.
// Stems are the uniqueness key for a collection and the rename-prefix
// source for the rewriters.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DuplicateError reports every stem that maps to more than one file.
// All colliding groups are listed at once: fixing a collision usually
// requires seeing the full set, not just the first pair.
type DuplicateError struct {
	Groups map[string][]string
}

func (e *DuplicateError) Error() string {
	stems := make([]string, 0, len(e.Groups))
	for s := range e.Groups {
		stems = append(stems, s)
	}
	sort.Strings(stems)

	var b strings.Builder
	b.WriteString("file base names are not unique:")
	for _, s := range stems {
		fmt.Fprintf(&b, "\n%s:", s)
		for _, p := range e.Groups[s] {
			fmt.Fprintf(&b, "\n\t%s", p)
		}
	}
	return b.String()
}

// Collect recursively enumerates files under root whose extension (without
// the dot) is in exts, sorted lexicographically for deterministic
// processing. If any base name maps to more than one path the whole
// collection fails with a *DuplicateError before anything is written.
func Collect(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[e] = true
	}

	var matched []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if want[ext] {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(matched)

	groups := make(map[string][]string)
	for _, p := range matched {
		s := Stem(p)
		groups[s] = append(groups[s], p)
	}
	dup := &DuplicateError{Groups: map[string][]string{}}
	for s, paths := range groups {
		if len(paths) > 1 {
			dup.Groups[s] = paths
		}
	}
	if len(dup.Groups) > 0 {
		return nil, dup
	}
	return matched, nil
}
