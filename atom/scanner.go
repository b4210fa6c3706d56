package atom

import "github.com/cyber-nic/cstfmt/cst"

// Facts are the per-CST-root facts the Tree Scanner computes once,
// before resolution begins. They are immutable for the rest of the
// pipeline (spec §5).
type Facts struct {
	MultiLineNodes   map[cst.NodeID]struct{}
	LineBreakBefore  map[cst.NodeID]struct{}
	LineBreakAfter   map[cst.NodeID]struct{}
	BlankLinesBefore map[cst.NodeID]struct{}
}

// Scan walks root once (three logically distinct traversals sharing
// the same recursive walk) and returns the facts every later pass
// consults: which nodes span more than one source line, which are
// preceded by a blank line, and which adjoin a line break before or
// after.
func Scan(root cst.Node) Facts {
	f := Facts{
		MultiLineNodes:   map[cst.NodeID]struct{}{},
		LineBreakBefore:  map[cst.NodeID]struct{}{},
		LineBreakAfter:   map[cst.NodeID]struct{}{},
		BlankLinesBefore: map[cst.NodeID]struct{}{},
	}
	if root == nil {
		return f
	}

	scanMultiLine(root, f.MultiLineNodes)

	before, after := scanLineBreaks(root, 1)
	f.LineBreakBefore = before
	f.LineBreakAfter = after

	blankBefore, _ := scanLineBreaks(root, 2)
	f.BlankLinesBefore = blankBefore

	return f
}

// scanMultiLine is a local predicate, no state carried between nodes:
// a node is multi-line iff its end row strictly exceeds its start row.
func scanMultiLine(n cst.Node, set map[cst.NodeID]struct{}) {
	if n.EndPosition().Row > n.StartPosition().Row {
		set[n.ID()] = struct{}{}
	}
	for i := uint32(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil {
			scanMultiLine(c, set)
		}
	}
}

// scanLineBreaks is the stateful in-order walk of spec §4.1: it
// carries the previously visited node (of any kind, not just leaves)
// and, whenever the current node starts at least minBreaks rows after
// the previous node ended, marks both nodes in the respective sets.
func scanLineBreaks(root cst.Node, minBreaks uint32) (before, after map[cst.NodeID]struct{}) {
	before = map[cst.NodeID]struct{}{}
	after = map[cst.NodeID]struct{}{}

	var prev cst.Node
	var walk func(n cst.Node)
	walk = func(n cst.Node) {
		if prev != nil && n.StartPosition().Row >= prev.EndPosition().Row+minBreaks {
			after[prev.ID()] = struct{}{}
			before[n.ID()] = struct{}{}
		}
		prev = n
		for i := uint32(0); i < n.ChildCount(); i++ {
			if c := n.Child(i); c != nil {
				walk(c)
			}
		}
	}
	walk(root)
	return before, after
}
