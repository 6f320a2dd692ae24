// Package scanerrors provides structured error types for nullscan.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML parsing failures and unreadable sources
//   - ResourceLimitError: Resource exhaustion (node count, depth, size limits)
//   - ConfigError: Invalid configuration or input options
//
// Note that a document containing disallowed null values is NOT an error
// in this taxonomy: the checker reports it as data in the CheckResult,
// following the reference behavior. Errors here cover only failures to
// load or to finish traversing a document.
//
// # Usage with errors.As
//
//	result, err := checker.CheckWithOptions(checker.WithFilePath("payload.json"))
//	if err != nil {
//	    var limitErr *scanerrors.ResourceLimitError
//	    if errors.As(err, &limitErr) {
//	        // Document exceeded node-count or depth guards
//	    }
//	}
package scanerrors
