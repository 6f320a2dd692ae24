package parser

// DocumentStats contains statistical information about a document tree.
type DocumentStats struct {
	// ObjectCount is the number of object nodes.
	ObjectCount int
	// ArrayCount is the number of array nodes.
	ArrayCount int
	// ScalarCount is the number of non-null scalar nodes.
	ScalarCount int
	// NullCount is the number of null values.
	NullCount int
	// MaxDepth is the deepest nesting level (the root is depth 0).
	MaxDepth int
}

// NodeCount returns the total number of nodes in the document.
func (s DocumentStats) NodeCount() int {
	return s.ObjectCount + s.ArrayCount + s.ScalarCount + s.NullCount
}

// GetDocumentStats computes statistics for a document tree.
func GetDocumentStats(root *Node) DocumentStats {
	stats := DocumentStats{}
	if root == nil {
		return stats
	}
	countNode(root, 0, &stats)
	return stats
}

func countNode(n *Node, depth int, stats *DocumentStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if n == nil {
		// A nil *Node counts as null, matching Node.IsNull.
		stats.NullCount++
		return
	}
	switch n.Kind {
	case KindObject:
		stats.ObjectCount++
		for _, m := range n.Members {
			countNode(m.Value, depth+1, stats)
		}
	case KindArray:
		stats.ArrayCount++
		for _, item := range n.Items {
			countNode(item, depth+1, stats)
		}
	case KindNull:
		stats.NullCount++
	default:
		stats.ScalarCount++
	}
}
