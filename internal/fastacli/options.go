// internal/fastacli/options.go
package fastacli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"gbkprep/internal/cliutil"
	"gbkprep/internal/version"
)

// Options holds all CLI flags for gbkprep-fasta.
type Options struct {
	Input   string
	Output  string // "" means rewrite in place
	Verbose bool
}

// NewCommand builds the gbkprep-fasta command. run is invoked after
// flag parsing and validation succeed.
func NewCommand(opts *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gbkprep-fasta",
		Short:         "Prefix generic FASTA headers with the file name",
		Long:          "Rewrites every FASTA header beginning with 'contig' by inserting the\nfile's base name in front, in place or into a mirrored output tree.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cliutil.Usagef("unexpected arguments: %s", strings.Join(args, " "))
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			if err := Validate(opts); err != nil {
				return &cliutil.UsageError{Err: err}
			}
			return run(c)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cliutil.UsageError{Err: err}
	})

	f := cmd.Flags()
	f.StringVarP(&opts.Input, "input", "i", "", "base folder, searched recursively for .fasta files [*]")
	f.StringVarP(&opts.Output, "output", "o", "", "base output folder; omit to modify files in place")
	f.BoolVar(&opts.Verbose, "verbose", false, "print every file that was written")
	return cmd
}

// Validate applies the tool's CLI invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("--input is required")
	}
	return nil
}
