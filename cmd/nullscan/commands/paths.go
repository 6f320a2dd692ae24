package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/nullscan/parser"
	"github.com/erraggy/nullscan/walker"
)

// pathsFlags contains flags for the paths command.
type pathsFlags struct {
	format       string
	quiet        bool
	nullsOnly    bool
	escapedPaths bool
}

// pathsOutput is the structured output of the paths command.
type pathsOutput struct {
	Document string   `json:"document" yaml:"document"`
	Total    int      `json:"total" yaml:"total"`
	Paths    []string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

func setupPathsFlags() (*flag.FlagSet, *pathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &pathsFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress headers and decoration")
	fs.BoolVar(&flags.quiet, "q", false, "suppress headers and decoration (shorthand)")
	fs.BoolVar(&flags.nullsOnly, "nulls-only", false, "list only paths holding null values")
	fs.BoolVar(&flags.escapedPaths, "escaped-paths", false, "escape dots and brackets in object keys when building paths")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: nullscan paths [flags] <file|url|->\n\n")
		Writef(output, "Walk a JSON or YAML document breadth-first and list value paths.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  nullscan paths payload.json\n")
		Writef(output, "  nullscan paths --nulls-only payload.yaml\n")
		Writef(output, "  nullscan paths --format json - < payload.json\n")
	}

	return fs, flags
}

// HandlePaths implements the "paths" command.
func HandlePaths(args []string) error {
	fs, flags := setupPathsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one file path, URL, or -")
	}
	docPath := fs.Arg(0)

	result, err := parser.New().Parse(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	var opts []walker.Option
	if flags.escapedPaths {
		opts = append(opts, walker.WithEscapedKeys())
	}

	var paths []string
	if flags.nullsOnly {
		paths, err = walker.CollectNulls(result.Document, opts...)
	} else {
		paths, err = walker.CollectPaths(result.Document, opts...)
	}
	if err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	if flags.format != FormatText {
		return OutputStructured(pathsOutput{
			Document: FormatDocPath(docPath),
			Total:    len(paths),
			Paths:    paths,
		}, flags.format)
	}

	if !flags.quiet {
		OutputDocHeader(docPath, result.SourceFormat)
		Writef(os.Stderr, "\n")
	}

	if len(paths) == 0 {
		if !flags.quiet {
			Writef(os.Stderr, "No paths matched.\n")
		}
		return nil
	}

	for _, p := range paths {
		fmt.Println(p)
	}

	if !flags.quiet {
		Writef(os.Stderr, "\nTotal: %d\n", len(paths))
	}
	return nil
}
