// core/genbank/genbank.go
//
// Narrow codec for GenBank flat files. It frames records (LOCUS … //),
// exposes the three header fields the rename rules touch (locus name,
// accession, date) and re-renders only the affected tokens; every other
// byte of a record round-trips unchanged.
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var dateRe = regexp.MustCompile(`^\d{2}-[A-Za-z]{3}-\d{4}$`)

// Record is one LOCUS…// entry. A single file may hold several.
type Record struct {
	lines []string
	locus int // index of the LOCUS line (first line)
	acc   int // index of the ACCESSION line
	ver   int // index of the VERSION line, -1 when absent
}

// Parse reads all records from r. Anything that breaks the framing
// (a non-blank line outside a record that is not LOCUS, a record with
// no ACCESSION, a missing // terminator) is a parse error: a malformed
// file fails the whole run rather than producing partial output.
func Parse(r io.Reader) ([]*Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var recs []*Record
	var cur []string
	start := 0
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if cur == nil {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !strings.HasPrefix(line, "LOCUS") {
				return nil, fmt.Errorf("line %d: expected LOCUS, got %q", ln, firstWord(line))
			}
			cur = []string{line}
			start = ln
			continue
		}
		cur = append(cur, line)
		if strings.TrimRight(line, " \t") == "//" {
			rec, err := newRecord(cur, start)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, fmt.Errorf("line %d: record is not terminated by //", start)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return recs, nil
}

// ParseFile is the path convenience wrapper around Parse.
func ParseFile(path string) ([]*Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	recs, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func newRecord(lines []string, start int) (*Record, error) {
	r := &Record{lines: lines, acc: -1, ver: -1}
	if _, _, ok := fieldBounds(lines[0], 1); !ok {
		return nil, fmt.Errorf("line %d: LOCUS line has no name", start)
	}
	for i, l := range lines {
		if r.acc < 0 && strings.HasPrefix(l, "ACCESSION") {
			r.acc = i
		}
		if r.ver < 0 && strings.HasPrefix(l, "VERSION") {
			r.ver = i
		}
	}
	if r.acc < 0 {
		return nil, fmt.Errorf("line %d: record %q has no ACCESSION line", start, r.Name())
	}
	if _, _, ok := fieldBounds(lines[r.acc], 1); !ok {
		return nil, fmt.Errorf("line %d: ACCESSION line has no value", start+r.acc)
	}
	return r, nil
}

// Name returns the locus name (first field after LOCUS).
func (r *Record) Name() string {
	v, _, _ := fieldAt(r.lines[r.locus], 1)
	return v
}

// SetName rewrites the locus name in place, preserving column alignment
// when the new name fits the old field width.
func (r *Record) SetName(name string) {
	r.lines[r.locus] = spliceField(r.lines[r.locus], 1, name)
}

// ID returns the accession. It stands for both the ACCESSION value and
// the base of the VERSION value, which SetID keeps in sync.
func (r *Record) ID() string {
	v, _, _ := fieldAt(r.lines[r.acc], 1)
	return v
}

// SetID rewrites ACCESSION and, when present, VERSION. A numeric
// version suffix (the ".1" of "ABC123.1") survives the rewrite.
func (r *Record) SetID(id string) {
	r.lines[r.acc] = spliceField(r.lines[r.acc], 1, id)
	if r.ver < 0 {
		return
	}
	old, _, ok := fieldAt(r.lines[r.ver], 1)
	if !ok {
		return
	}
	v := id
	if i := strings.LastIndexByte(old, '.'); i >= 0 && isDigits(old[i+1:]) {
		v = id + old[i:]
	}
	r.lines[r.ver] = spliceField(r.lines[r.ver], 1, v)
}

// Date returns the LOCUS annotation date (the trailing DD-MMM-YYYY
// token) and whether the record has one.
func (r *Record) Date() (string, bool) {
	v, _, _ := lastField(r.lines[r.locus])
	if dateRe.MatchString(v) {
		return v, true
	}
	return "", false
}

// SetDate overwrites the LOCUS date token. It is a no-op on records
// without one; callers use Date to detect absence first.
func (r *Record) SetDate(date string) {
	v, s, e := lastField(r.lines[r.locus])
	if !dateRe.MatchString(v) {
		return
	}
	l := r.lines[r.locus]
	r.lines[r.locus] = l[:s] + date + l[e:]
}

// Write re-renders all records, one line per stored line.
func Write(w io.Writer, recs []*Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		for _, l := range r.lines {
			if _, err := bw.WriteString(l); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile serializes recs to path, truncating any existing file.
func WriteFile(path string, recs []*Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, recs); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fh.Close()
}

// fieldBounds locates the nth (0-based) whitespace-separated field.
func fieldBounds(line string, n int) (start, end int, ok bool) {
	i := 0
	for f := 0; ; f++ {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i == len(line) {
			return 0, 0, false
		}
		s := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		if f == n {
			return s, i, true
		}
	}
}

func fieldAt(line string, n int) (string, int, bool) {
	s, e, ok := fieldBounds(line, n)
	if !ok {
		return "", 0, false
	}
	return line[s:e], s, true
}

func lastField(line string) (string, int, int) {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return "", 0, 0
	}
	s := strings.LastIndexAny(trimmed, " \t") + 1
	return trimmed[s:], s, len(trimmed)
}

// spliceField replaces field n, padding with spaces up to the old field
// width so fixed-column headers keep their alignment where possible.
// Trailing fields are not padded.
func spliceField(line string, n int, v string) string {
	s, e, ok := fieldBounds(line, n)
	if !ok {
		return line
	}
	if pad := (e - s) - len(v); pad > 0 && e < len(line) {
		v += strings.Repeat(" ", pad)
	}
	return line[:s] + v + line[e:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func firstWord(line string) string {
	f := strings.Fields(line)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
