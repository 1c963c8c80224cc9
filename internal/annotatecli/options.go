// internal/annotatecli/options.go
package annotatecli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gbkprep/internal/cliutil"
	"gbkprep/internal/version"
)

// Options holds all CLI flags for gbkprep-annotate.
type Options struct {
	Input      string
	TSV        string
	Annotation string
	Value      string
	Include    []string
	NoInclude  bool
}

// NewCommand builds the gbkprep-annotate command. run is invoked after
// flag parsing and validation succeed.
func NewCommand(opts *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gbkprep-annotate",
		Short:         "Label region GenBank files in a two-column TSV",
		Long:          "Scans a folder for region .gbk files and writes a metadata TSV:\nfirst column the file stem, second column a fixed annotation value.",
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
	f.StringVarP(&opts.Input, "input", "i", "", "folder with region .gbk files, searched recursively [*]")
	f.StringVarP(&opts.TSV, "tsv", "t", "./region_annotations.tsv", "output TSV path; intermediate folders are created")
	f.StringVarP(&opts.Annotation, "annotation", "a", "", "title of the annotation column (e.g. \"Reference set\") [*]")
	f.StringVar(&opts.Value, "value", "", "annotation value for the second column (e.g. MIBiG) [*]")
	f.StringSliceVar(&opts.Include, "include", []string{"region"}, "substrings a file name must contain to be included")
	f.BoolVar(&opts.NoInclude, "no-include", false, "ignore --include and accept every .gbk file")
	return cmd
}

// Validate applies the tool's CLI invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("--input is required")
	}
	if o.Annotation == "" {
		return errors.New("--annotation is required")
	}
	if o.Value == "" {
		return errors.New("--value is required")
	}
	base := filepath.Base(o.TSV)
	if o.TSV == "" || base == "." || base == string(filepath.Separator) || strings.HasSuffix(o.TSV, string(filepath.Separator)) {
		return errors.New("--tsv path has no file name")
	}
	return nil
}
