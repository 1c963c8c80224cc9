// internal/gbkcli/options.go
package gbkcli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"gbkprep/internal/cliutil"
	"gbkprep/internal/version"
)

// Options holds all CLI flags for gbkprep-gbk.
type Options struct {
	Input         string
	Output        string // "" means rewrite in place
	Verbose       bool
	UpdateDate    bool
	Substitutions string // optional key<TAB>label table
	Separator     string // stem prefix separator for table lookups
}

// NewCommand builds the gbkprep-gbk command. run is invoked after flag
// parsing and validation succeed.
func NewCommand(opts *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gbkprep-gbk",
		Short:         "Rename generic GenBank metadata with the file name",
		Long:          "Prefixes each record's LOCUS and ACCESSION/VERSION with the file's base\nname (or replaces them via a substitution table) and optionally updates\nthe LOCUS date to today.",
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
	f.StringVarP(&opts.Input, "input", "i", "", "base folder, searched recursively for .gb/.gbk/.gbff files [*]")
	f.StringVarP(&opts.Output, "output", "o", "", "base output folder; omit to modify files in place")
	f.BoolVar(&opts.Verbose, "verbose", false, "print every file whose records changed")
	f.BoolVar(&opts.UpdateDate, "update-date", false, "set each record's LOCUS date to today")
	f.StringVar(&opts.Substitutions, "substitutions", "", "TSV mapping a stem prefix to a replacement label")
	f.StringVar(&opts.Separator, "region-separator", ".region", "stem marker that ends the substitution-table key")
	return cmd
}

// Validate applies the tool's CLI invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("--input is required")
	}
	if o.Separator == "" {
		return errors.New("--region-separator must not be empty")
	}
	return nil
}
