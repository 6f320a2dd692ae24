package parser

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/nullscan/internal/pathutil"
	"github.com/erraggy/nullscan/scanerrors"
)

// decoder converts a yaml.Node tree into a document Node tree. The yaml
// representation preserves mapping member order for both YAML and JSON
// sources, which is what makes reported field order reproducible.
type decoder struct {
	maxDepth int
	maxNodes int
	produced int
	path     *pathutil.PathBuilder
	warnings []string
	logger   Logger
}

func (d *decoder) convert(yn *yaml.Node) (*Node, error) {
	if d.path.Depth() > d.maxDepth {
		return nil, &scanerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(d.maxDepth),
			Path:         d.path.String(),
		}
	}

	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return &Node{Kind: KindNull}, nil
		}
		return d.convert(yn.Content[0])

	case yaml.AliasNode:
		// Anchors must be defined before they are referenced, so the
		// aliased subtree is always acyclic; expand it in place. Each
		// reference re-produces the whole subtree, so expansion counts
		// against the node budget like any other content.
		return d.convert(yn.Alias)
	}

	if err := d.checkNodeBudget(); err != nil {
		return nil, err
	}

	switch yn.Kind {
	case yaml.MappingNode:
		node := &Node{Kind: KindObject, Members: make([]Member, 0, len(yn.Content)/2)}
		seen := make(map[string]int, len(yn.Content)/2)
		for i := 0; i+1 < len(yn.Content); i += 2 {
			key := yn.Content[i].Value
			d.path.Push(key)
			value, err := d.convert(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			if at, dup := seen[key]; dup {
				// Last value wins, keeping the position of the first
				// occurrence, matching encoding/json object semantics.
				d.warn(fmt.Sprintf("duplicate object key %q at %s (last value wins)", key, d.path.String()))
				node.Members[at].Value = value
			} else {
				seen[key] = len(node.Members)
				node.Members = append(node.Members, Member{Key: key, Value: value})
			}
			d.path.Pop()
		}
		return node, nil

	case yaml.SequenceNode:
		node := &Node{Kind: KindArray, Items: make([]*Node, 0, len(yn.Content))}
		for i, item := range yn.Content {
			d.path.PushIndex(i)
			child, err := d.convert(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
			d.path.Pop()
		}
		return node, nil

	case yaml.ScalarNode:
		return d.convertScalar(yn), nil

	default:
		// Zero node (empty input) decodes as null.
		return &Node{Kind: KindNull}, nil
	}
}

// convertScalar classifies a scalar by its resolved YAML tag. Scalars
// the tag resolver could not classify stay opaque strings; only nullness
// matters downstream.
func (d *decoder) convertScalar(yn *yaml.Node) *Node {
	switch yn.Tag {
	case "!!null":
		return &Node{Kind: KindNull}
	case "!!bool":
		if b, err := strconv.ParseBool(yn.Value); err == nil {
			return &Node{Kind: KindBool, Bool: b}
		}
	case "!!int":
		if i, err := strconv.ParseInt(yn.Value, 0, 64); err == nil {
			return &Node{Kind: KindNumber, Num: float64(i)}
		}
	case "!!float":
		if f, err := strconv.ParseFloat(yn.Value, 64); err == nil {
			return &Node{Kind: KindNumber, Num: f}
		}
	}
	return &Node{Kind: KindString, Str: yn.Value}
}

func (d *decoder) checkNodeBudget() error {
	d.produced++
	if d.produced <= d.maxNodes {
		return nil
	}
	return &scanerrors.ResourceLimitError{
		ResourceType: "node_count",
		Limit:        int64(d.maxNodes),
		Actual:       int64(d.produced),
		Path:         d.path.String(),
	}
}

func (d *decoder) warn(msg string) {
	d.warnings = append(d.warnings, msg)
	d.logger.Warn("parse warning", "detail", msg)
}
