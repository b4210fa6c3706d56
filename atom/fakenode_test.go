package atom

import "github.com/cyber-nic/cstfmt/cst"

// fakeNode is a hand-built cst.Node for table-driven tests that need a
// small, exact tree without pulling in a real tree-sitter parse.
type fakeNode struct {
	id             cst.NodeID
	kind           string
	named          bool
	startRow       uint32
	startCol       uint32
	endRow         uint32
	endCol         uint32
	byteStart      uint32
	byteEnd        uint32
	children       []*fakeNode
	parent         *fakeNode
}

func (n *fakeNode) ID() cst.NodeID        { return n.id }
func (n *fakeNode) Kind() string          { return n.kind }
func (n *fakeNode) IsNamed() bool         { return n.named }
func (n *fakeNode) StartPosition() cst.Point {
	return cst.Point{Row: n.startRow, Column: n.startCol}
}
func (n *fakeNode) EndPosition() cst.Point {
	return cst.Point{Row: n.endRow, Column: n.endCol}
}
func (n *fakeNode) ByteRange() (uint32, uint32) { return n.byteStart, n.byteEnd }
func (n *fakeNode) ChildCount() uint32          { return uint32(len(n.children)) }

func (n *fakeNode) Child(i uint32) cst.Node {
	if int(i) >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) Parent() (cst.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

// link wires parent pointers for a tree built by listing children
// directly in the struct literal, and returns root for convenience.
func link(root *fakeNode) *fakeNode {
	var walk func(n *fakeNode)
	walk = func(n *fakeNode) {
		for _, c := range n.children {
			c.parent = n
			walk(c)
		}
	}
	walk(root)
	return root
}
