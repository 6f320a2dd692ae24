// Package commands provides CLI command handlers for nullscan.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/nullscan"
	"github.com/erraggy/nullscan/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// FormatDocPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatDocPath(docPath string) string {
	if docPath == StdinFilePath {
		return "<stdin>"
	}
	return docPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputDocHeader outputs the common document header to stderr.
// This includes nullscan version, document path, and detected format.
func OutputDocHeader(docPath string, format parser.SourceFormat) {
	Writef(os.Stderr, "nullscan version: %s\n", nullscan.Version())
	Writef(os.Stderr, "Document: %s\n", FormatDocPath(docPath))
	Writef(os.Stderr, "Format: %s\n", format)
}

// OutputDocStats outputs the common document statistics to stderr.
// This includes source size, node counts, maximum depth, and load time.
func OutputDocStats(sourceSize int64, stats parser.DocumentStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	Writef(os.Stderr, "Objects: %d\n", stats.ObjectCount)
	Writef(os.Stderr, "Arrays: %d\n", stats.ArrayCount)
	Writef(os.Stderr, "Scalars: %d\n", stats.ScalarCount)
	Writef(os.Stderr, "Nulls: %d\n", stats.NullCount)
	Writef(os.Stderr, "Max Depth: %d\n", stats.MaxDepth)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}

// SplitPathList splits a comma-separated flag value into individual
// paths, trimming whitespace and dropping empty entries.
func SplitPathList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// LoadPathsFile reads an allow-list file: either a JSON array of path
// strings or a newline-delimited list (lines starting with # are
// comments).
func LoadPathsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading optional paths file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var paths []string
		if err := json.Unmarshal(data, &paths); err != nil {
			return nil, fmt.Errorf("parsing optional paths file %s: %w", path, err)
		}
		return paths, nil
	}

	var paths []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}
