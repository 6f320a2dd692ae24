package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/nullscan/parser"
)

// parseFlags contains flags for the parse command.
type parseFlags struct {
	format   string
	quiet    bool
	maxDepth int
	maxNodes int
}

// parseSummary is the structured output of the parse command.
type parseSummary struct {
	Document    string   `json:"document" yaml:"document"`
	Format      string   `json:"format" yaml:"format"`
	SourceSize  int64    `json:"source_size" yaml:"source_size"`
	ObjectCount int      `json:"object_count" yaml:"object_count"`
	ArrayCount  int      `json:"array_count" yaml:"array_count"`
	ScalarCount int      `json:"scalar_count" yaml:"scalar_count"`
	NullCount   int      `json:"null_count" yaml:"null_count"`
	NodeCount   int      `json:"node_count" yaml:"node_count"`
	MaxDepth    int      `json:"max_depth" yaml:"max_depth"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func setupParseFlags() (*flag.FlagSet, *parseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &parseFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress headers and decoration")
	fs.BoolVar(&flags.quiet, "q", false, "suppress headers and decoration (shorthand)")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "maximum container nesting depth (0 uses the default)")
	fs.IntVar(&flags.maxNodes, "max-nodes", 0, "maximum nodes decoded, counting alias expansions (0 uses the default)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: nullscan parse [flags] <file|url|->\n\n")
		Writef(output, "Parse a JSON or YAML document and output its structure summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  nullscan parse payload.json\n")
		Writef(output, "  nullscan parse --format json payload.yaml\n")
		Writef(output, "  nullscan parse https://example.com/api/payload.json\n")
	}

	return fs, flags
}

// HandleParse implements the "parse" command.
func HandleParse(args []string) error {
	fs, flags := setupParseFlags()

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
		return fmt.Errorf("parse command requires exactly one file path, URL, or -")
	}
	docPath := fs.Arg(0)

	p := parser.New()
	if flags.maxDepth > 0 {
		p.MaxDepth = flags.maxDepth
	}
	if flags.maxNodes > 0 {
		p.MaxNodes = flags.maxNodes
	}

	result, err := p.Parse(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if flags.format != FormatText {
		summary := parseSummary{
			Document:    FormatDocPath(docPath),
			Format:      result.SourceFormat.String(),
			SourceSize:  result.SourceSize,
			ObjectCount: result.Stats.ObjectCount,
			ArrayCount:  result.Stats.ArrayCount,
			ScalarCount: result.Stats.ScalarCount,
			NullCount:   result.Stats.NullCount,
			NodeCount:   result.Stats.NodeCount(),
			MaxDepth:    result.Stats.MaxDepth,
			Warnings:    result.Warnings,
		}
		return OutputStructured(summary, flags.format)
	}

	if !flags.quiet {
		OutputDocHeader(docPath, result.SourceFormat)
		OutputDocStats(result.SourceSize, result.Stats, result.LoadTime)
		fmt.Fprintln(os.Stderr)
	}

	Writef(os.Stdout, "Nodes: %d\n", result.Stats.NodeCount())

	if len(result.Warnings) > 0 {
		Writef(os.Stdout, "\nWarnings:\n")
		for _, warning := range result.Warnings {
			Writef(os.Stdout, "  - %s\n", warning)
		}
	}

	if !flags.quiet {
		Writef(os.Stdout, "\nParsing completed successfully!\n")
	}
	return nil
}
