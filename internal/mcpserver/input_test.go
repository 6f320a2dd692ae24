package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/nullscan/parser"
)

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDocInputResolveContent(t *testing.T) {
	docCache.reset()
	d := docInput{Content: `{"a": null}`}

	result, err := d.resolve()
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	assert.Equal(t, parser.KindObject, result.Document.Kind)
}

func TestDocInputResolveFile(t *testing.T) {
	docCache.reset()
	path := writeTempDoc(t, `{"a": 1}`)

	result, err := docInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)
}

func TestDocInputResolveValidation(t *testing.T) {
	docCache.reset()

	_, err := docInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content")

	_, err = docInput{File: "a.json", Content: "{}"}.resolve()
	require.Error(t, err)
}

func TestDocInputResolveCachesContent(t *testing.T) {
	docCache.reset()
	d := docInput{Content: `{"cached": true}`}

	first, err := d.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	second, err := d.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second, "second resolve hits the cache")
}

func TestDocInputResolveInlineSizeLimit(t *testing.T) {
	docCache.reset()
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	defer func() { cfg.MaxInlineSize = orig }()

	_, err := docInput{Content: `{"a": "0123456789"}`}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestMakeCacheKey(t *testing.T) {
	path := writeTempDoc(t, `{}`)

	fileKey := makeCacheKey(docInput{File: path}, nil)
	assert.Contains(t, fileKey, "file:")

	contentKey := makeCacheKey(docInput{Content: "{}"}, nil)
	assert.Contains(t, contentKey, "content:")
	assert.Equal(t, contentKey, makeCacheKey(docInput{Content: "{}"}, nil))

	urlKey := makeCacheKey(docInput{URL: "https://example.com/doc.json"}, nil)
	assert.Equal(t, "url:https://example.com/doc.json", urlKey)

	assert.Empty(t, makeCacheKey(docInput{File: "missing-file.json"}, nil))
	assert.Empty(t, makeCacheKey(docInput{Content: "{}"}, []parser.Option{parser.WithMaxDepth(5)}))
}

func TestCacheExpiry(t *testing.T) {
	docCache.reset()
	result := &parser.ParseResult{}

	docCache.putWithTTL("k", result, -time.Second)
	assert.Nil(t, docCache.get("k"), "expired entries are lazily removed")
	assert.Zero(t, docCache.size())
}

func TestCacheEviction(t *testing.T) {
	docCache.reset()
	origMax := docCache.maxSize
	docCache.maxSize = 2
	defer func() { docCache.maxSize = origMax }()

	docCache.putWithTTL("first", &parser.ParseResult{}, time.Minute)
	time.Sleep(time.Millisecond)
	docCache.putWithTTL("second", &parser.ParseResult{}, time.Minute)
	time.Sleep(time.Millisecond)
	docCache.putWithTTL("third", &parser.ParseResult{}, time.Minute)

	assert.Equal(t, 2, docCache.size())
	assert.Nil(t, docCache.get("first"), "oldest entry is evicted")
	assert.NotNil(t, docCache.get("third"))
}

func TestCacheSweep(t *testing.T) {
	docCache.reset()
	docCache.putWithTTL("stale", &parser.ParseResult{}, -time.Second)
	docCache.putWithTTL("fresh", &parser.ParseResult{}, time.Minute)

	docCache.sweep()
	assert.Equal(t, 1, docCache.size())
	assert.NotNil(t, docCache.get("fresh"))
}
