package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool_JSON(t *testing.T) {
	docCache.reset()
	input := parseInput{
		Doc: docInput{Content: `{"a": {"b": null}, "c": [1, 2]}`},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "json", output.Format)
	assert.Equal(t, 2, output.ObjectCount)
	assert.Equal(t, 1, output.ArrayCount)
	assert.Equal(t, 2, output.ScalarCount)
	assert.Equal(t, 1, output.NullCount)
	assert.Equal(t, 6, output.NodeCount)
	assert.Equal(t, 2, output.MaxDepth)
}

func TestParseTool_YAMLWithDuplicateKeys(t *testing.T) {
	docCache.reset()
	input := parseInput{
		Doc: docInput{Content: "a: 1\na: 2\n"},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "yaml", output.Format)
	require.NotEmpty(t, output.Warnings)
	assert.Contains(t, output.Warnings[0], "duplicate object key")
}

func TestParseTool_Malformed(t *testing.T) {
	docCache.reset()
	input := parseInput{
		Doc: docInput{Content: `{"a": [}`},
	}
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
