package parser

import (
	"fmt"
	"sort"

	"github.com/erraggy/nullscan/scanerrors"
)

// Kind identifies the variant of a document node. The variant is decided
// once while the tree is built and never re-inspected through ad hoc type
// switches during traversal.
type Kind int

const (
	// KindNull is the JSON/YAML null value.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is a numeric scalar, stored as float64.
	KindNumber
	// KindString is a string scalar.
	KindString
	// KindObject is a mapping of string keys to child nodes.
	KindObject
	// KindArray is an ordered sequence of child nodes.
	KindArray
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Member is a single object field. Objects keep their members as a slice
// so source insertion order survives parsing, which keeps traversal order
// and therefore reported field order deterministic.
type Member struct {
	Key   string
	Value *Node
}

// Node is one position in a document tree: an object, an array, or a
// scalar (string, number, boolean, or null). Nodes are immutable once
// built; concurrent traversals of the same tree are safe.
type Node struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind
	// Members holds object fields in source order (KindObject only).
	Members []Member
	// Items holds array elements in order (KindArray only).
	Items []*Node
	// Str holds the value for KindString.
	Str string
	// Num holds the value for KindNumber.
	Num float64
	// Bool holds the value for KindBool.
	Bool bool
}

// IsNull reports whether the node is the null value. A nil *Node counts
// as null so callers can treat absent and null uniformly.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == KindNull
}

// IsContainer reports whether the node is an object or an array.
func (n *Node) IsContainer() bool {
	return n != nil && (n.Kind == KindObject || n.Kind == KindArray)
}

// Get returns the value of the named object field. The second return is
// false when the node is not an object or the key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for _, m := range n.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Len returns the number of members for objects, the number of items for
// arrays, and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindObject:
		return len(n.Members)
	case KindArray:
		return len(n.Items)
	default:
		return 0
	}
}

// maxValueDepth bounds FromValue recursion so a value graph containing a
// cycle fails with a resource-limit error instead of overflowing the stack.
const maxValueDepth = 10000

// FromValue builds a Node tree from an already-unmarshaled generic value:
// map[string]any, []any, string, bool, nil, and the numeric types produced
// by encoding/json and the yaml decoders. Values of any other type are
// treated as opaque string scalars.
//
// Go maps carry no insertion order, so object keys are sorted
// lexicographically; this keeps repeated checks of the same value
// byte-for-byte reproducible.
func FromValue(v any) (*Node, error) {
	return fromValue(v, 0)
}

func fromValue(v any, depth int) (*Node, error) {
	if depth > maxValueDepth {
		return nil, &scanerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        maxValueDepth,
			Message:      "value nests too deeply (cyclic input?)",
		}
	}

	switch val := v.(type) {
	case nil:
		return &Node{Kind: KindNull}, nil
	case bool:
		return &Node{Kind: KindBool, Bool: val}, nil
	case string:
		return &Node{Kind: KindString, Str: val}, nil
	case float64:
		return &Node{Kind: KindNumber, Num: val}, nil
	case float32:
		return &Node{Kind: KindNumber, Num: float64(val)}, nil
	case int:
		return &Node{Kind: KindNumber, Num: float64(val)}, nil
	case int64:
		return &Node{Kind: KindNumber, Num: float64(val)}, nil
	case uint64:
		return &Node{Kind: KindNumber, Num: float64(val)}, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		node := &Node{Kind: KindObject, Members: make([]Member, 0, len(keys))}
		for _, k := range keys {
			child, err := fromValue(val[k], depth+1)
			if err != nil {
				return nil, err
			}
			node.Members = append(node.Members, Member{Key: k, Value: child})
		}
		return node, nil
	case map[any]any:
		// Legacy YAML decoders produce interface-keyed maps.
		keys := make([]string, 0, len(val))
		byKey := make(map[string]any, len(val))
		for k, v := range val {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = v
		}
		sort.Strings(keys)
		node := &Node{Kind: KindObject, Members: make([]Member, 0, len(keys))}
		for _, k := range keys {
			child, err := fromValue(byKey[k], depth+1)
			if err != nil {
				return nil, err
			}
			node.Members = append(node.Members, Member{Key: k, Value: child})
		}
		return node, nil
	case []any:
		node := &Node{Kind: KindArray, Items: make([]*Node, 0, len(val))}
		for _, item := range val {
			child, err := fromValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		}
		return node, nil
	default:
		// Opaque scalar: anything we cannot classify is kept as its
		// string form and never inspected further.
		return &Node{Kind: KindString, Str: fmt.Sprint(val)}, nil
	}
}
