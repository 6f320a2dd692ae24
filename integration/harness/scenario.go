//go:build integration

// Package harness provides the declarative scenario runner used by the
// integration tests. Scenarios are YAML files that name a document
// fixture, the optional paths allowed to be null, and the expected
// check outcome.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/nullscan/checker"
	"github.com/erraggy/nullscan/parser"
)

// Scenario describes one end-to-end check case.
type Scenario struct {
	// Name identifies the scenario in test output.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Document is the fixture file name, relative to the docs directory.
	Document string `yaml:"document"`

	// OptionalPaths lists the paths allowed to hold null values.
	OptionalPaths []string `yaml:"optional_paths,omitempty"`

	// Strict enables reporting of allow-list entries that match nothing.
	Strict bool `yaml:"strict,omitempty"`

	// EscapedPaths enables backslash escaping of dots and brackets in keys.
	EscapedPaths bool `yaml:"escaped_paths,omitempty"`

	// ExpectedFailure, when set, means the scenario is expected to fail
	// and describes why. Failures of such scenarios do not fail the test.
	ExpectedFailure string `yaml:"expected_failure,omitempty"`

	Expect Expectation `yaml:"expect"`
}

// Expectation is the outcome a scenario asserts.
type Expectation struct {
	// Status is the wire-format status: "success" or "error".
	Status string `yaml:"status"`

	// InvalidFields are the expected offending paths, in report order.
	InvalidFields []string `yaml:"invalid_fields,omitempty"`

	// WarningCount, when non-nil, asserts the exact warning count.
	WarningCount *int `yaml:"warning_count,omitempty"`
}

// PipelineResult captures the outcome of running one scenario.
type PipelineResult struct {
	Scenario *Scenario
	Result   *checker.CheckResult
	Success  bool
	Error    error
	Duration time.Duration
}

// LoadScenario reads and decodes a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if s.Document == "" {
		return nil, fmt.Errorf("scenario %s: document is required", path)
	}
	return &s, nil
}

// LoadAllScenarios loads every *.yaml scenario in a directory, sorted by
// file name so test ordering is stable.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// RunScenario executes the full parse-then-check pipeline for a scenario
// and compares the outcome against its expectation.
func RunScenario(s *Scenario, docsDir string) *PipelineResult {
	start := time.Now()
	pr := &PipelineResult{Scenario: s}

	parseResult, err := parser.ParseWithOptions(
		parser.WithFilePath(filepath.Join(docsDir, s.Document)),
	)
	if err != nil {
		pr.Error = fmt.Errorf("parse: %w", err)
		pr.Duration = time.Since(start)
		return pr
	}

	result, err := checker.CheckWithOptions(
		checker.WithParsed(*parseResult),
		checker.WithOptionalPaths(s.OptionalPaths...),
		checker.WithStrictMode(s.Strict),
		checker.WithEscapedPaths(s.EscapedPaths),
	)
	if err != nil {
		pr.Error = fmt.Errorf("check: %w", err)
		pr.Duration = time.Since(start)
		return pr
	}
	pr.Result = result
	pr.Duration = time.Since(start)

	pr.Error = compareExpectation(s, result)
	pr.Success = pr.Error == nil
	return pr
}

func compareExpectation(s *Scenario, result *checker.CheckResult) error {
	report := result.Report()

	if s.Expect.Status != "" && report.Status != s.Expect.Status {
		return fmt.Errorf("expected status %q, got %q", s.Expect.Status, report.Status)
	}

	if !equalStrings(report.InvalidFields, s.Expect.InvalidFields) {
		return fmt.Errorf("expected invalid fields %v, got %v",
			s.Expect.InvalidFields, report.InvalidFields)
	}

	if s.Expect.WarningCount != nil && result.WarningCount != *s.Expect.WarningCount {
		return fmt.Errorf("expected %d warnings, got %d",
			*s.Expect.WarningCount, result.WarningCount)
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
