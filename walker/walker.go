package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/nullscan/internal/pathutil"
	"github.com/erraggy/nullscan/parser"
	"github.com/erraggy/nullscan/scanerrors"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each node event. Each handler receives a WalkContext
// describing the node's position and returns an Action.

// ObjectHandler is called when an object node is dequeued for expansion.
// The root object is visited with the empty path.
type ObjectHandler func(wc *WalkContext, node *parser.Node) Action

// ArrayHandler is called when an array node is dequeued for expansion.
type ArrayHandler func(wc *WalkContext, node *parser.Node) Action

// ValueHandler is called once for every child value, container or scalar,
// in member/index order, with the child's canonical path.
type ValueHandler func(wc *WalkContext, node *parser.Node) Action

// NullHandler is called for every null child, after the ValueHandler.
type NullHandler func(wc *WalkContext) Action

// Walker performs a breadth-first traversal of a document tree and calls
// handlers for each node event. Containers are expanded from a FIFO queue
// seeded with the root at the empty path, so every node is visited
// exactly once and paths are produced in a stable, reproducible order.
type Walker struct {
	// Handlers
	onObject ObjectHandler
	onArray  ArrayHandler
	onValue  ValueHandler
	onNull   NullHandler

	// Configuration
	maxNodes   int
	maxDepth   int
	escapeKeys bool
	userCtx    context.Context

	// Input (set via options)
	parsed *parser.ParseResult
	node   *parser.Node
}

const (
	// defaultMaxNodes bounds total visited nodes per walk.
	defaultMaxNodes = 1_000_000
	// defaultMaxDepth bounds container nesting per walk.
	defaultMaxDepth = 1000
)

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxNodes: defaultMaxNodes,
		maxDepth: defaultMaxDepth,
	}
}

// workItem is one queued container awaiting expansion.
type workItem struct {
	node  *parser.Node
	path  string
	depth int
}

// walk runs the breadth-first traversal from root.
//
// A null or scalar root yields no visits at all: the empty root path only
// seeds traversal and is never itself classified.
func (w *Walker) walk(root *parser.Node) error {
	if root == nil || !root.IsContainer() {
		return nil
	}

	queue := []workItem{{node: root, path: "", depth: 0}}
	visited := 1 // the root

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		wc := &WalkContext{Path: item.path, Depth: item.depth, Index: -1, ctx: w.userCtx}
		var action Action
		switch item.node.Kind {
		case parser.KindObject:
			action = w.handleObject(wc, item.node)
		case parser.KindArray:
			action = w.handleArray(wc, item.node)
		}
		switch action {
		case Stop:
			return nil
		case SkipChildren:
			continue
		}

		childDepth := item.depth + 1
		if childDepth > w.maxDepth {
			return &scanerrors.ResourceLimitError{
				ResourceType: "nesting_depth",
				Limit:        int64(w.maxDepth),
				Actual:       int64(childDepth),
				Path:         item.path,
			}
		}

		if item.node.Kind == parser.KindObject {
			for _, m := range item.node.Members {
				key := m.Key
				if w.escapeKeys {
					key = pathutil.EscapeKey(key)
				}
				childPath := pathutil.Child(item.path, key)
				visited++
				if err := w.checkNodeBudget(visited, childPath); err != nil {
					return err
				}
				action, enqueue := w.visitChild(&WalkContext{
					Path:  childPath,
					Key:   m.Key,
					Index: -1,
					Depth: childDepth,
					ctx:   w.userCtx,
				}, m.Value)
				if action == Stop {
					return nil
				}
				if enqueue {
					queue = append(queue, workItem{node: m.Value, path: childPath, depth: childDepth})
				}
			}
		} else {
			for i, elem := range item.node.Items {
				childPath := pathutil.Index(item.path, i)
				visited++
				if err := w.checkNodeBudget(visited, childPath); err != nil {
					return err
				}
				action, enqueue := w.visitChild(&WalkContext{
					Path:  childPath,
					Key:   "",
					Index: i,
					Depth: childDepth,
					ctx:   w.userCtx,
				}, elem)
				if action == Stop {
					return nil
				}
				if enqueue {
					queue = append(queue, workItem{node: elem, path: childPath, depth: childDepth})
				}
			}
		}
	}

	return nil
}

// visitChild fires the value and null handlers for one child and reports
// whether a container child should be enqueued for later expansion.
func (w *Walker) visitChild(wc *WalkContext, node *parser.Node) (Action, bool) {
	if w.onValue != nil {
		switch w.onValue(wc, node) {
		case Stop:
			return Stop, false
		case SkipChildren:
			return Continue, false
		}
	}
	if node.IsNull() && w.onNull != nil {
		if w.onNull(wc) == Stop {
			return Stop, false
		}
	}
	return Continue, node.IsContainer()
}

func (w *Walker) handleObject(wc *WalkContext, node *parser.Node) Action {
	if w.onObject == nil {
		return Continue
	}
	return w.onObject(wc, node)
}

func (w *Walker) handleArray(wc *WalkContext, node *parser.Node) Action {
	if w.onArray == nil {
		return Continue
	}
	return w.onArray(wc, node)
}

func (w *Walker) checkNodeBudget(visited int, path string) error {
	if visited <= w.maxNodes {
		return nil
	}
	return &scanerrors.ResourceLimitError{
		ResourceType: "node_count",
		Limit:        int64(w.maxNodes),
		Actual:       int64(visited),
		Path:         path,
	}
}
