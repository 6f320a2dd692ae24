//go:build integration

package harness

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ScenarioTestName derives the subtest name for a scenario.
func ScenarioTestName(s *Scenario, scenariosDir string) string {
	name := s.Name
	if name == "" {
		name = filepath.Base(scenariosDir)
	}
	return strings.ReplaceAll(name, " ", "_")
}

// PrintScenarioHeader logs a scenario's description before it runs.
func PrintScenarioHeader(t *testing.T, s *Scenario) {
	t.Helper()
	t.Logf("Scenario: %s", s.Name)
	if s.Description != "" {
		t.Logf("  %s", s.Description)
	}
	t.Logf("  Document: %s", s.Document)
	if len(s.OptionalPaths) > 0 {
		t.Logf("  Optional paths: %v", s.OptionalPaths)
	}
}

// PrintPipelineResult logs the outcome of one scenario run.
func PrintPipelineResult(t *testing.T, pr *PipelineResult) {
	t.Helper()
	if pr.Result != nil {
		t.Logf("  Valid: %t, errors: %d, warnings: %d (%s)",
			pr.Result.Valid, pr.Result.ErrorCount, pr.Result.WarningCount, pr.Duration)
	}
	if pr.Error != nil {
		t.Logf("  Outcome: %v", pr.Error)
	}
}

// PrintSummary logs an aggregate pass/fail count for all scenarios.
func PrintSummary(t *testing.T, results []*PipelineResult, elapsed time.Duration) {
	t.Helper()
	passed := 0
	for _, pr := range results {
		if pr.Success {
			passed++
		}
	}
	t.Logf("Scenarios: %d passed, %d failed, %s total",
		passed, len(results)-passed, elapsed)
}
