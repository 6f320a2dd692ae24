package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupParseFlags(t *testing.T) {
	fs, flags := setupParseFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.format)
		assert.False(t, flags.quiet)
		assert.Zero(t, flags.maxDepth)
		assert.Zero(t, flags.maxNodes)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--format", "yaml", "--max-depth", "5", "--max-nodes", "5000", "-q", "doc.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "yaml", flags.format)
		assert.Equal(t, 5, flags.maxDepth)
		assert.Equal(t, 5000, flags.maxNodes)
		assert.True(t, flags.quiet)
		assert.Equal(t, "doc.yaml", fs.Arg(0))
	})
}

func TestHandleParse_NoArgs(t *testing.T) {
	err := HandleParse([]string{})
	assert.Error(t, err)
}

func TestHandleParse_Help(t *testing.T) {
	err := HandleParse([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleParse_InvalidFormat(t *testing.T) {
	err := HandleParse([]string{"--format", "csv", "doc.json"})
	assert.Error(t, err)
}

func TestHandleParse_Document(t *testing.T) {
	path := writeDoc(t, "doc.json", `{"a": {"b": null}}`)
	err := HandleParse([]string{"-q", path})
	assert.NoError(t, err)
}

func TestHandleParse_StructuredOutput(t *testing.T) {
	path := writeDoc(t, "doc.yaml", "a: 1\nb: ~\n")
	err := HandleParse([]string{"--format", "json", path})
	assert.NoError(t, err)
}

func TestHandleParse_MaxDepthExceeded(t *testing.T) {
	path := writeDoc(t, "deep.json", `{"a": {"b": {"c": {"d": 1}}}}`)
	err := HandleParse([]string{"-q", "--max-depth", "2", path})
	assert.Error(t, err)
}

func TestHandleParse_MaxNodesExceeded(t *testing.T) {
	path := writeDoc(t, "wide.yaml", "base: &base [1, 2, 3, 4]\ncopy: *base\n")
	err := HandleParse([]string{"-q", "--max-nodes", "5", path})
	assert.Error(t, err)
}
