package issues

import (
	"testing"

	"github.com/erraggy/nullscan/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		contains []string
	}{
		{
			name: "error severity",
			issue: Issue{
				Path:     "user.profile.age",
				Message:  "unexpected null value",
				Severity: severity.SeverityError,
			},
			contains: []string{"✗", "user.profile.age", "unexpected null value"},
		},
		{
			name: "warning severity",
			issue: Issue{
				Path:     "user.friends[1].profile.address.zipcode",
				Message:  "null allowed by optional path",
				Severity: severity.SeverityWarning,
			},
			contains: []string{"⚠", "user.friends[1].profile.address.zipcode", "null allowed"},
		},
		{
			name: "info severity",
			issue: Issue{
				Path:     "user.nickname",
				Message:  "optional path matched no location",
				Severity: severity.SeverityInfo,
			},
			contains: []string{"ℹ", "user.nickname"},
		},
		{
			name: "unknown severity",
			issue: Issue{
				Path:     "a",
				Message:  "m",
				Severity: severity.Severity(42),
			},
			contains: []string{"?", "a: m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}
