// internal/gbkapp/app.go
package gbkapp

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"gbkprep-core/genbank"
	"gbkprep-core/rename"
	"gbkprep-core/scan"
	"gbkprep-core/subst"
	"gbkprep/internal/cliutil"
	"gbkprep/internal/gbkcli"
	"gbkprep/internal/mirror"
)

// extensions accepted for structured annotation files.
var gbkExts = []string{"gb", "gbk", "gbff"}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	var opts gbkcli.Options
	cmd := gbkcli.NewCommand(&opts, func(c *cobra.Command) error {
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

func run(opts *gbkcli.Options, stdout io.Writer) error {
	var table map[string]string
	if opts.Substitutions != "" {
		var err error
		table, err = subst.Load(opts.Substitutions)
		if err != nil {
			return err
		}
	}

	files, err := scan.Collect(opts.Input, gbkExts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no GenBank files under %s", opts.Input)
	}

	rules := rename.Rules{
		Table:      table,
		Separator:  opts.Separator,
		UpdateDate: opts.UpdateDate,
		Today:      time.Now(),
	}
	for _, path := range files {
		changed, out, err := renameFile(rules, opts, path)
		if err != nil {
			return err
		}
		if changed {
			cliutil.Verbosef(stdout, opts.Verbose, "%s", out)
		}
	}
	return nil
}

// renameFile parses one annotation file, applies the mutation rules to
// every record, and serializes to the resolved output path. Returns
// whether any record changed and where the file was written.
func renameFile(rules rename.Rules, opts *gbkcli.Options, path string) (bool, string, error) {
	recs, err := genbank.ParseFile(path)
	if err != nil {
		return false, "", err
	}

	view := make([]rename.Record, len(recs))
	for i, r := range recs {
		view[i] = r
	}
	changed, err := rules.ApplyAll(view, scan.Stem(path))
	if err != nil {
		return false, "", fmt.Errorf("%s: %w", path, err)
	}

	out, err := mirror.Resolve(opts.Input, path, opts.Output)
	if err != nil {
		return false, "", err
	}
	if err := genbank.WriteFile(out, recs); err != nil {
		return false, "", err
	}
	return changed, out, nil
}
