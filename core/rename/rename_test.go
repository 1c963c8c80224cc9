// core/rename/rename_test.go
package rename

import (
	"strings"
	"testing"
	"time"
)

// fakeRecord mocks the annotation-record collaborator.
type fakeRecord struct {
	id, name string
	date     string
	hasDate  bool
}

func (f *fakeRecord) ID() string       { return f.id }
func (f *fakeRecord) SetID(v string)   { f.id = v }
func (f *fakeRecord) Name() string     { return f.name }
func (f *fakeRecord) SetName(v string) { f.name = v }
func (f *fakeRecord) Date() (string, bool) {
	return f.date, f.hasDate
}
func (f *fakeRecord) SetDate(v string) { f.date = v }

func TestPrefix(t *testing.T) {
	cases := []struct{ stem, sep, want string }{
		{"sample.region001", ".region", "sample"},
		{"region1", ".region", "region1"},
		{"a.region.region2", ".region", "a"},
		{"sample-r1", "-r", "sample"},
	}
	for _, c := range cases {
		if got := Prefix(c.stem, c.sep); got != c.want {
			t.Errorf("Prefix(%q, %q) = %q, want %q", c.stem, c.sep, got, c.want)
		}
	}
}

func TestApplyPrefixesBothFields(t *testing.T) {
	rec := &fakeRecord{id: "ABC123", name: "ctg1"}
	changed, err := Rules{}.Apply(rec, "region1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if rec.id != "region1_ABC123" || rec.name != "region1_ctg1" {
		t.Fatalf("got id=%q name=%q", rec.id, rec.name)
	}
}

func TestApplyGuardsAreIndependent(t *testing.T) {
	rec := &fakeRecord{id: "region1_ABC123", name: "ctg1"}
	changed, err := Rules{}.Apply(rec, "region1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !changed {
		t.Fatal("name still needed the prefix")
	}
	if rec.id != "region1_ABC123" {
		t.Errorf("already-prefixed id must stay put, got %q", rec.id)
	}
	if rec.name != "region1_ctg1" {
		t.Errorf("name = %q", rec.name)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	rec := &fakeRecord{id: "ABC123", name: "ctg1"}
	if _, err := (Rules{}).Apply(rec, "region1"); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	id, name := rec.id, rec.name

	changed, err := Rules{}.Apply(rec, "region1")
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if changed {
		t.Fatal("second application must be a no-op")
	}
	if rec.id != id || rec.name != name {
		t.Fatalf("fields drifted: %q %q", rec.id, rec.name)
	}
}

func TestSubstitutionReplacesOutright(t *testing.T) {
	rules := Rules{Table: map[string]string{"sample": "StrainA"}}
	rec := &fakeRecord{id: "already_prefixed_whatever", name: "ctg9"}
	changed, err := rules.Apply(rec, "sample.region001")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if rec.id != "StrainA" || rec.name != "StrainA" {
		t.Fatalf("full replacement expected, got id=%q name=%q", rec.id, rec.name)
	}
}

func TestSubstitutionWholeStemKey(t *testing.T) {
	// no ".region" marker: the whole stem is the key
	rules := Rules{Table: map[string]string{"region1": "StrainA"}}
	rec := &fakeRecord{id: "ABC123", name: "ctg1"}
	if _, err := rules.Apply(rec, "region1"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.id != "StrainA" || rec.name != "StrainA" {
		t.Fatalf("got id=%q name=%q", rec.id, rec.name)
	}
}

func TestSubstitutionMissRunsPrefixRules(t *testing.T) {
	rules := Rules{Table: map[string]string{"other": "StrainB"}}
	rec := &fakeRecord{id: "ABC123", name: "ctg1"}
	if _, err := rules.Apply(rec, "region1"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.id != "region1_ABC123" {
		t.Fatalf("expected fallback to prefixing, got %q", rec.id)
	}
}

func TestUpdateDate(t *testing.T) {
	today := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	rules := Rules{UpdateDate: true, Today: today}
	rec := &fakeRecord{id: "region1_A", name: "region1_c", date: "01-JAN-2020", hasDate: true}

	changed, err := rules.Apply(rec, "region1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !changed {
		t.Fatal("stale date should count as a change")
	}
	if rec.date != "05-JAN-2024" {
		t.Fatalf("date = %q", rec.date)
	}

	// already current: no change at all
	changed, err = rules.Apply(rec, "region1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if changed {
		t.Fatal("current date must not be rewritten")
	}
}

func TestUpdateDateMissingIsFatal(t *testing.T) {
	rules := Rules{UpdateDate: true, Today: time.Now()}
	rec := &fakeRecord{id: "x", name: "y"}
	if _, err := rules.Apply(rec, "region1"); err == nil {
		t.Fatal("expected error for record without a date")
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))
	if got != "05-JAN-2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	if low := FormatDate(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)); low != "31-DEC-2023" {
		t.Fatalf("FormatDate = %q", low)
	}
	if strings.ToUpper(got) != got {
		t.Fatal("month abbreviation must be upper-cased")
	}
}

func TestApplyAllAggregatesChanged(t *testing.T) {
	a := &fakeRecord{id: "region1_A", name: "region1_c"}
	b := &fakeRecord{id: "B", name: "region1_d"}
	changed, err := Rules{}.ApplyAll([]Record{a, b}, "region1")
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if !changed {
		t.Fatal("one record changed, aggregate must be true")
	}

	changed, err = Rules{}.ApplyAll([]Record{a, b}, "region1")
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if changed {
		t.Fatal("second pass must report no change")
	}
}
