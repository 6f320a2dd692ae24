package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides incremental path construction with push/pop
// semantics. Segments are only joined when String() is called, so deep
// recursion that never reports a finding allocates no path strings.
type PathBuilder struct {
	segments []string
	length   int // pre-computed length for the String() allocation
}

// Push adds an object key segment.
func (p *PathBuilder) Push(key string) {
	p.segments = append(p.segments, key)
	if len(p.segments) > 1 {
		p.length++ // dot separator
	}
	p.length += len(key)
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
// Index segments take no dot separator.
func (p *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the most recently pushed segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 && (len(last) == 0 || last[0] != '[') {
		p.length-- // the dot that preceded a key segment
	}
}

// Depth returns the number of segments currently on the builder.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path. Only call when the path is needed.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if len(seg) > 0 && seg[0] == '[' {
			b.WriteString(seg)
		} else {
			b.WriteByte('.')
			b.WriteString(seg)
		}
	}
	return b.String()
}
