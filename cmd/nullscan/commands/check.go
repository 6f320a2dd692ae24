package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/nullscan/checker"
)

// checkFlags contains flags for the check command.
type checkFlags struct {
	optionalPaths string
	pathsFile     string
	format        string
	quiet         bool
	strict        bool
	noWarnings    bool
	escapedPaths  bool
	maxNodes      int
	maxDepth      int
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.optionalPaths, "optional-paths", "", "comma-separated paths where null values are permitted")
	fs.StringVar(&flags.pathsFile, "paths-file", "", "file with permitted paths (JSON array or one path per line)")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress headers and decoration")
	fs.BoolVar(&flags.quiet, "q", false, "suppress headers and decoration (shorthand)")
	fs.BoolVar(&flags.strict, "strict", false, "report optional paths that matched no null value")
	fs.BoolVar(&flags.noWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.escapedPaths, "escaped-paths", false, "escape dots and brackets in object keys when building paths")
	fs.IntVar(&flags.maxNodes, "max-nodes", 0, "maximum node count to traverse (0 uses the default)")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "maximum container nesting depth (0 uses the default)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: nullscan check [flags] <file|url|->\n\n")
		Writef(output, "Check a JSON or YAML document for null values that are not explicitly permitted.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  nullscan check payload.json\n")
		Writef(output, "  nullscan check --optional-paths user.profile.address.city payload.json\n")
		Writef(output, "  nullscan check --paths-file optional.json --format json payload.yaml\n")
		Writef(output, "  cat payload.json | nullscan check -\n")
	}

	return fs, flags
}

// HandleCheck implements the "check" command.
func HandleCheck(args []string) error {
	fs, flags := setupCheckFlags()

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
		return fmt.Errorf("check command requires exactly one file path, URL, or -")
	}
	docPath := fs.Arg(0)

	optionalPaths := SplitPathList(flags.optionalPaths)
	if flags.pathsFile != "" {
		filePaths, err := LoadPathsFile(flags.pathsFile)
		if err != nil {
			return err
		}
		optionalPaths = append(optionalPaths, filePaths...)
	}

	c := checker.New()
	c.StrictMode = flags.strict
	c.IncludeWarnings = !flags.noWarnings
	c.EscapedPaths = flags.escapedPaths
	if flags.maxNodes > 0 {
		c.MaxNodes = flags.maxNodes
	}
	if flags.maxDepth > 0 {
		c.MaxDepth = flags.maxDepth
	}

	startTime := time.Now()
	result, err := c.CheckPath(docPath, optionalPaths)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("checking document: %w", err)
	}

	if flags.format != FormatText {
		if err := OutputStructured(result.Report(), flags.format); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	if !flags.quiet {
		OutputDocHeader(docPath, result.SourceFormat)
		OutputDocStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	if len(result.Errors) > 0 {
		Writef(os.Stdout, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			Writef(os.Stdout, "  %s\n", e.String())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		Writef(os.Stdout, "Warnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			Writef(os.Stdout, "  %s\n", w.String())
		}
		fmt.Println()
	}

	if result.Valid {
		Writef(os.Stdout, "✓ Check passed")
		if result.WarningCount > 0 {
			Writef(os.Stdout, " with %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return nil
	}

	Writef(os.Stdout, "✗ Check failed: %d null value(s) not permitted", result.ErrorCount)
	if result.WarningCount > 0 {
		Writef(os.Stdout, ", %d warning(s)", result.WarningCount)
	}
	fmt.Println()
	os.Exit(1)
	return nil
}
