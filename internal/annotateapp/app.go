// internal/annotateapp/app.go
package annotateapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gbkprep-core/scan"
	"gbkprep/internal/annotatecli"
	"gbkprep/internal/cliutil"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	var opts annotatecli.Options
	cmd := annotatecli.NewCommand(&opts, func(c *cobra.Command) error {
		return run(&opts, stdout)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		cliutil.PrintError(stderr, err)
		return cliutil.ExitCode(err)
	}
	return 0
}

func run(opts *annotatecli.Options, stdout io.Writer) error {
	files, err := scan.Collect(opts.Input, []string{"gbk"})
	if err != nil {
		return err
	}

	include := opts.Include
	if opts.NoInclude {
		include = nil
	}
	kept := filterInclude(files, include)
	if len(kept) == 0 {
		return fmt.Errorf("no matching .gbk files under %s", opts.Input)
	}
	fmt.Fprintf(stdout, "Found %d gbk files\n", len(kept))

	if dir := filepath.Dir(opts.TSV); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.Create(opts.TSV)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	fmt.Fprintf(w, "Region\t%s\n", opts.Annotation)
	for _, p := range kept {
		fmt.Fprintf(w, "%s\t%s\n", scan.Stem(p), opts.Value)
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", opts.TSV, err)
	}
	return fh.Close()
}

// filterInclude keeps paths whose file name contains at least one of
// the include substrings. An empty include set accepts everything.
func filterInclude(paths, include []string) []string {
	if len(include) == 0 {
		return paths
	}
	var kept []string
	for _, p := range paths {
		name := filepath.Base(p)
		for _, s := range include {
			if strings.Contains(name, s) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}
