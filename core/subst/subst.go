// core/subst/subst.go
package subst

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a substitution table: one key<TAB>label pair per line,
// '#' lines are comments. Blank lines, lines with the wrong field
// count, empty fields, duplicate keys, and tables with zero entries are
// all errors; a bad table fails the run before any file is touched.
func Load(path string) (map[string]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	table := make(map[string]string)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("%s:%d blank line", path, ln)
		}
		f := strings.Split(line, "\t")
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d expected 2 tab-separated fields, got %d", path, ln, len(f))
		}
		key := strings.TrimSpace(f[0])
		label := strings.TrimSpace(f[1])
		if key == "" || label == "" {
			return nil, fmt.Errorf("%s:%d empty field", path, ln)
		}
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("%s:%d duplicate key %q", path, ln, key)
		}
		table[key] = label
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: no substitution entries", path)
	}
	return table, nil
}
