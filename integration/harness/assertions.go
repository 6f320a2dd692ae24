//go:build integration

package harness

import (
	"testing"

	"github.com/erraggy/nullscan/checker"
	"github.com/erraggy/nullscan/parser"
)

// AssertValid asserts that a check result indicates a valid document.
func AssertValid(t *testing.T, result *checker.CheckResult) {
	t.Helper()
	if !result.Valid {
		t.Errorf("expected valid document, got %d errors:", result.ErrorCount)
		for _, e := range result.Errors {
			t.Errorf("  - %s", e.String())
		}
	}
}

// AssertInvalid asserts that a check result indicates an invalid document.
func AssertInvalid(t *testing.T, result *checker.CheckResult) {
	t.Helper()
	if result.Valid {
		t.Error("expected invalid document, but check passed")
	}
}

// AssertErrorCount asserts the exact number of check errors.
func AssertErrorCount(t *testing.T, result *checker.CheckResult, expected int) {
	t.Helper()
	if result.ErrorCount != expected {
		t.Errorf("expected %d errors, got %d", expected, result.ErrorCount)
		for _, e := range result.Errors {
			t.Logf("  - %s", e.String())
		}
	}
}

// AssertWarningCount asserts the exact number of check warnings.
func AssertWarningCount(t *testing.T, result *checker.CheckResult, expected int) {
	t.Helper()
	if result.WarningCount != expected {
		t.Errorf("expected %d warnings, got %d", expected, result.WarningCount)
		for _, w := range result.Warnings {
			t.Logf("  - %s", w.String())
		}
	}
}

// AssertInvalidFields asserts the exact offending paths, in order.
func AssertInvalidFields(t *testing.T, result *checker.CheckResult, expected []string) {
	t.Helper()
	if !equalStrings(result.InvalidFields, expected) {
		t.Errorf("expected invalid fields %v, got %v", expected, result.InvalidFields)
	}
}

// AssertNullCount asserts the number of null nodes in a parsed document.
func AssertNullCount(t *testing.T, result *parser.ParseResult, expected int) {
	t.Helper()
	if actual := result.Stats.NullCount; actual != expected {
		t.Errorf("expected %d nulls, got %d", expected, actual)
	}
}

// AssertNodeCount asserts the total node count of a parsed document.
func AssertNodeCount(t *testing.T, result *parser.ParseResult, expected int) {
	t.Helper()
	if actual := result.Stats.NodeCount(); actual != expected {
		t.Errorf("expected %d nodes, got %d", expected, actual)
	}
}

// AssertFormat asserts the detected source format of a parsed document.
func AssertFormat(t *testing.T, result *parser.ParseResult, expected parser.SourceFormat) {
	t.Helper()
	if result.SourceFormat != expected {
		t.Errorf("expected format %v, got %v", expected, result.SourceFormat)
	}
}

// AssertNoParseWarnings asserts that parsing produced no warnings.
func AssertNoParseWarnings(t *testing.T, result *parser.ParseResult) {
	t.Helper()
	if len(result.Warnings) > 0 {
		t.Errorf("expected no parse warnings, got %d:", len(result.Warnings))
		for _, w := range result.Warnings {
			t.Logf("  - %s", w)
		}
	}
}
