package parser

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// SourceFormat identifies the serialization format of a document source.
type SourceFormat int

const (
	// SourceFormatUnknown means the format could not be determined.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON is a JSON document.
	SourceFormatJSON
	// SourceFormatYAML is a YAML document.
	SourceFormatYAML
)

// String returns the lowercase name of the format.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	// Handle negative values
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	// Use proper binary unit notation (KiB, MiB, GiB, etc.)
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file path.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from content bytes.
// JSON documents start with '{' or '['; everything else is assumed YAML,
// which is what the decoder treats it as anyway.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL detects format from a URL path and Content-Type header.
func detectFormatFromURL(urlStr, contentType string) SourceFormat {
	if f := detectFormatFromPath(urlStr); f != SourceFormatUnknown {
		return f
	}
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case strings.Contains(mediaType, "json"):
				return SourceFormatJSON
			case strings.Contains(mediaType, "yaml"), strings.Contains(mediaType, "yml"):
				return SourceFormatYAML
			}
		}
	}
	return SourceFormatUnknown
}

// isURL determines if the given path is a URL (http:// or https://).
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
