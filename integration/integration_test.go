//go:build integration

// Package integration provides integration tests for the nullscan CLI
// and library. These tests exercise the full pipeline from parsing
// through checking using declarative YAML scenarios.
//
// Run with: go test -tags=integration ./integration/... -v
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/nullscan/integration/harness"
	"github.com/erraggy/nullscan/parser"
	"github.com/erraggy/nullscan/walker"
)

// getIntegrationDir returns the absolute path to the integration directory.
func getIntegrationDir(t *testing.T) string {
	t.Helper()

	// Works whether running from the repo root or the integration directory
	wd, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	if filepath.Base(wd) == "integration" {
		return wd
	}

	integrationDir := filepath.Join(wd, "integration")
	if _, err := os.Stat(integrationDir); err == nil {
		return integrationDir
	}

	integrationDir = filepath.Join(filepath.Dir(wd), "integration")
	if _, err := os.Stat(integrationDir); err == nil {
		return integrationDir
	}

	require.Failf(t, "could not find integration directory", "from %s", wd)
	return ""
}

// TestDocsParse verifies that all document fixtures parse cleanly.
func TestDocsParse(t *testing.T) {
	integrationDir := getIntegrationDir(t)
	docsDir := filepath.Join(integrationDir, "docs")

	docs := []struct {
		name           string
		expectedFormat parser.SourceFormat
		expectedNulls  int
	}{
		{"user-profile.json", parser.SourceFormatJSON, 4},
		{"user-profile-valid.json", parser.SourceFormatJSON, 0},
		{"inventory.yaml", parser.SourceFormatYAML, 3},
		{"metrics.json", parser.SourceFormatJSON, 2},
	}

	for _, doc := range docs {
		t.Run(doc.name, func(t *testing.T) {
			result, err := parser.ParseWithOptions(
				parser.WithFilePath(filepath.Join(docsDir, doc.name)),
			)
			require.NoError(t, err, "failed to parse %s", doc.name)

			harness.AssertFormat(t, result, doc.expectedFormat)
			harness.AssertNullCount(t, result, doc.expectedNulls)
			harness.AssertNoParseWarnings(t, result)

			t.Logf("  Format: %s", result.SourceFormat)
			t.Logf("  Nodes: %d", result.Stats.NodeCount())
			t.Logf("  Nulls: %d", result.Stats.NullCount)
		})
	}
}

// TestScenarios runs all scenarios from the scenarios directory.
func TestScenarios(t *testing.T) {
	integrationDir := getIntegrationDir(t)
	scenariosDir := filepath.Join(integrationDir, "scenarios")
	docsDir := filepath.Join(integrationDir, "docs")

	scenarios, err := harness.LoadAllScenarios(scenariosDir)
	require.NoError(t, err, "failed to load scenarios")

	if len(scenarios) == 0 {
		t.Skip("no scenarios found")
	}

	t.Logf("Found %d scenarios", len(scenarios))

	var results []*harness.PipelineResult
	start := time.Now()

	for _, scenario := range scenarios {
		testName := harness.ScenarioTestName(scenario, scenariosDir)
		t.Run(testName, func(t *testing.T) {
			harness.PrintScenarioHeader(t, scenario)
			result := harness.RunScenario(scenario, docsDir)
			results = append(results, result)
			harness.PrintPipelineResult(t, result)

			if scenario.ExpectedFailure == "" {
				assert.True(t, result.Success, "scenario failed: %v", result.Error)
			}
		})
	}

	harness.PrintSummary(t, results, time.Since(start))
}

// TestNullCensusConsistency cross-checks the walker's null collection
// against the parser's stats for every document fixture.
func TestNullCensusConsistency(t *testing.T) {
	integrationDir := getIntegrationDir(t)
	docsDir := filepath.Join(integrationDir, "docs")

	entries, err := os.ReadDir(docsDir)
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			result, err := parser.ParseWithOptions(
				parser.WithFilePath(filepath.Join(docsDir, entry.Name())),
			)
			require.NoError(t, err)

			nulls, err := walker.CollectNulls(result.Document)
			require.NoError(t, err)
			assert.Len(t, nulls, result.Stats.NullCount,
				"walker null count disagrees with parser stats")

			paths, err := walker.CollectPaths(result.Document)
			require.NoError(t, err)
			// Every node except the root has a path
			assert.Len(t, paths, result.Stats.NodeCount()-1)
		})
	}
}
