// internal/cliutil/cliutil_test.go
package cliutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	if got := ExitCode(Usagef("bad flag")); got != 2 {
		t.Fatalf("usage error exit = %d, want 2", got)
	}
	if got := ExitCode(errors.New("boom")); got != 1 {
		t.Fatalf("runtime error exit = %d, want 1", got)
	}
	wrapped := fmt.Errorf("context: %w", Usagef("inner"))
	if got := ExitCode(wrapped); got != 2 {
		t.Fatalf("wrapped usage error exit = %d, want 2", got)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("no matching files"))
	if !strings.Contains(buf.String(), "no matching files") {
		t.Fatalf("diagnostic missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "error:") {
		t.Fatalf("diagnostic missing prefix: %q", buf.String())
	}
}

func TestVerbosef(t *testing.T) {
	var buf bytes.Buffer
	Verbosef(&buf, false, "skip %s", "a")
	if buf.Len() != 0 {
		t.Fatalf("quiet mode wrote %q", buf.String())
	}
	Verbosef(&buf, true, "wrote %s", "a")
	if buf.String() != "wrote a\n" {
		t.Fatalf("got %q", buf.String())
	}
}
