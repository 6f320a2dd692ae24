package pathutil

import "testing"

func TestChild(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		key    string
		want   string
	}{
		{"root field", "", "user", "user"},
		{"nested field", "user", "profile", "user.profile"},
		{"after index", "user.friends[1]", "age", "user.friends[1].age"},
		{"key with dot is not escaped", "config", "a.b", "config.a.b"},
		{"key with bracket is not escaped", "config", "a[0]", "config.a[0]"},
		{"empty key", "user", "", "user."},
		{"empty key at root", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Child(tt.parent, tt.key); got != tt.want {
				t.Errorf("Child(%q, %q) = %q, want %q", tt.parent, tt.key, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		i      int
		want   string
	}{
		{"root array", "", 0, "[0]"},
		{"field array", "items", 1, "items[1]"},
		{"nested array", "matrix[2]", 3, "matrix[2][3]"},
		{"large index", "items", 1234, "items[1234]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.parent, tt.i); got != tt.want {
				t.Errorf("Index(%q, %d) = %q, want %q", tt.parent, tt.i, got, tt.want)
			}
		})
	}
}

func TestEscapeKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"plain key untouched", "username", "username"},
		{"dot escaped", "a.b", `a\.b`},
		{"bracket escaped", "a[0]", `a\[0]`},
		{"backslash escaped", `a\b`, `a\\b`},
		{"mixed", `x.y[z\`, `x\.y\[z\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeKey(tt.key); got != tt.want {
				t.Errorf("EscapeKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
