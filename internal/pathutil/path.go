package pathutil

import (
	"strconv"
	"strings"
)

// Child returns the path of an object field reached from parent.
// The root parent is the empty string, in which case the key alone is
// the path; otherwise the key is appended after a dot separator.
// Keys are not escaped.
func Child(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// Index returns the path of an array element reached from parent.
// The bracketed decimal index is appended with no separator, even when
// parent is the root.
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// EscapeKey escapes the characters that carry structural meaning in a
// path ("." and "[", plus the escape character itself) by prefixing them
// with a backslash. It is used only when escaped-path mode is enabled;
// the default grammar leaves keys untouched for compatibility.
func EscapeKey(key string) string {
	if !strings.ContainsAny(key, `.[\`) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 2)
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
