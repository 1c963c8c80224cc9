// core/rename/rename.go
//
// Field-mutation rules for annotation records: prefix generic
// identifiers with the source file's stem, or replace them outright via
// a substitution table, and optionally normalize the annotation date.
package rename

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSeparator is the filename convention that splits a stem into
// its substitution-table key ("sample.region001" -> "sample").
const DefaultSeparator = ".region"

// Record is the narrow view of an annotation record the rules need.
// The genbank codec satisfies it; tests use a lightweight fake.
type Record interface {
	ID() string
	SetID(string)
	Name() string
	SetName(string)
	// Date reports the annotation date and whether the record has one.
	Date() (string, bool)
	SetDate(string)
}

// Rules holds one run's mutation parameters. Today is injected so date
// normalization is testable.
type Rules struct {
	Table      map[string]string // nil or empty: prefix instead of replace
	Separator  string            // "" means DefaultSeparator
	UpdateDate bool
	Today      time.Time
}

func (ru Rules) separator() string {
	if ru.Separator == "" {
		return DefaultSeparator
	}
	return ru.Separator
}

// Prefix returns the substitution-table key for stem: the portion
// before sep when present, else the whole stem.
func Prefix(stem, sep string) string {
	if i := strings.Index(stem, sep); i >= 0 {
		return stem[:i]
	}
	return stem
}

// Apply mutates rec according to the rule set and reports whether
// anything changed.
//
// When the table has an entry for the stem's prefix, identifier and
// name are both replaced with the entry outright. Otherwise each field
// independently gains a "stem_" prefix unless it already starts with
// the stem, which makes re-runs no-ops. Date normalization compares the
// stored date against Today rendered as DD-MMM-YYYY (month upper-cased)
// and fails on records that have no date at all.
func (ru Rules) Apply(rec Record, stem string) (bool, error) {
	changed := false

	if label, ok := ru.Table[Prefix(stem, ru.separator())]; ok {
		rec.SetID(label)
		rec.SetName(label)
		changed = true
	} else {
		if !strings.HasPrefix(rec.ID(), stem) {
			rec.SetID(stem + "_" + rec.ID())
			changed = true
		}
		if !strings.HasPrefix(rec.Name(), stem) {
			rec.SetName(stem + "_" + rec.Name())
			changed = true
		}
	}

	if ru.UpdateDate {
		today := FormatDate(ru.Today)
		d, ok := rec.Date()
		if !ok {
			return changed, fmt.Errorf("record %q has no date to update", rec.Name())
		}
		if d != today {
			rec.SetDate(today)
			changed = true
		}
	}
	return changed, nil
}

// ApplyAll runs Apply over every record of one file and reports whether
// any of them changed.
func (ru Rules) ApplyAll(recs []Record, stem string) (bool, error) {
	changed := false
	for _, rec := range recs {
		c, err := ru.Apply(rec, stem)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// FormatDate renders t the way GenBank headers spell dates:
// two-digit day, upper-cased three-letter month, four-digit year.
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format("02-Jan-2006"))
}
