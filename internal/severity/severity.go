// Package severity provides severity level constants and utilities
// for issues reported by the checker package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found while checking
// a document for disallowed null values.
type Severity int

const (
	// SeverityError indicates a disallowed null value that makes the
	// document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a null value that was suppressed by an
	// allow-list entry. Warnings do not affect validity.
	SeverityWarning

	// SeverityInfo indicates informational notices, such as allow-list
	// entries that matched no location in the document (strict mode only).
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
