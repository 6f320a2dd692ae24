// Package issues provides a unified issue type for problems found while
// checking documents for disallowed null values.
package issues

import (
	"fmt"

	"github.com/erraggy/nullscan/internal/severity"
)

// Issue represents a single finding at a document path.
type Issue struct {
	// Path is the canonical path to the field (e.g., "user.profile.age")
	Path string
	// Message is a human-readable description of the finding
	Message string
	// Severity indicates the severity level of the finding
	Severity severity.Severity
	// Key is the object key or bracketed index of the field, when known
	Key string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}
