// internal/fastaapp/app.go
package fastaapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gbkprep-core/fastafix"
	"gbkprep-core/scan"
	"gbkprep/internal/cliutil"
	"gbkprep/internal/fastacli"
	"gbkprep/internal/mirror"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	var opts fastacli.Options
	cmd := fastacli.NewCommand(&opts, func(c *cobra.Command) error {
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

func run(opts *fastacli.Options, stdout io.Writer) error {
	files, err := scan.Collect(opts.Input, []string{"fasta"})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .fasta files under %s", opts.Input)
	}

	rw := fastafix.Rewriter{}
	for _, path := range files {
		out, err := mirror.Resolve(opts.Input, path, opts.Output)
		if err != nil {
			return err
		}
		if out == path {
			err = rewriteInPlace(rw, path)
		} else {
			err = rewriteCopy(rw, path, out)
		}
		if err != nil {
			return err
		}
		cliutil.Verbosef(stdout, opts.Verbose, "%s", out)
	}
	return nil
}

// rewriteInPlace buffers the whole rewrite before truncating the
// original, so a failed read never loses data.
func rewriteInPlace(rw fastafix.Rewriter, path string) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := rw.Rewrite(bytes.NewReader(in), &buf, scan.Stem(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func rewriteCopy(rw fastafix.Rewriter, path, out string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := rw.Rewrite(src, dst, scan.Stem(path)); err != nil {
		_ = dst.Close()
		return fmt.Errorf("%s: %w", out, err)
	}
	return dst.Close()
}
