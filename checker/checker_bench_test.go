package checker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/erraggy/nullscan/parser"
)

// buildWideDoc builds a document with n objects, each holding a few
// scalar fields and one null, so benchmarks exercise both the traversal
// and the null classification paths.
func buildWideDoc(b *testing.B, n int) *parser.Node {
	b.Helper()
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"record-%d","deleted_at":null}`, i, i)
	}
	sb.WriteString(`]}`)

	result, err := parser.New().ParseBytes([]byte(sb.String()))
	if err != nil {
		b.Fatal(err)
	}
	return result.Document
}

func BenchmarkCheck(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		doc := buildWideDoc(b, size)
		b.Run(fmt.Sprintf("records-%d", size), func(b *testing.B) {
			c := New()
			c.IncludeWarnings = false
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Check(doc, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCheckAllowListed(b *testing.B) {
	const size = 100
	doc := buildWideDoc(b, size)
	allowed := make([]string, size)
	for i := range allowed {
		allowed[i] = fmt.Sprintf("records[%d].deleted_at", i)
	}

	c := New()
	c.IncludeWarnings = false
	b.ReportAllocs()
	for b.Loop() {
		result, err := c.Check(doc, allowed)
		if err != nil {
			b.Fatal(err)
		}
		if !result.Valid {
			b.Fatal("expected valid result")
		}
	}
}
