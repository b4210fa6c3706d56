// Package tscst adapts *sitter.Node, the concrete tree-sitter parse
// tree, to the cst.Node interface the atom pipeline is written
// against. It is the only package in this module that imports
// go-tree-sitter directly; everything under atom is parser-agnostic.
package tscst

import (
	"hash/fnv"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cyber-nic/cstfmt/cst"
)

// node wraps a *sitter.Node and its source buffer so ByteRange-derived
// text extraction and Utf8Text agree on the same bytes.
type node struct {
	n      *sitter.Node
	source []byte
}

// Root adapts a parsed tree's root node. source must be the exact byte
// slice the tree was parsed from; node positions and ranges are only
// meaningful relative to it.
func Root(tree *sitter.Tree, source []byte) cst.Node {
	root := tree.RootNode()
	if root == nil {
		return nil
	}
	return wrap(root, source)
}

func wrap(n *sitter.Node, source []byte) cst.Node {
	if n == nil {
		return nil
	}
	return &node{n: n, source: source}
}

// ID synthesizes a stable NodeID from a node's byte range and kind.
// go-tree-sitter's *sitter.Node is a value type handed out fresh on
// every traversal call (Child, Parent, ...), so there is no pointer
// identity to key maps on; (startByte, endByte, kind) is unique enough
// for one parse tree, since two sibling nodes never share a byte
// range.
func (w *node) ID() cst.NodeID {
	h := fnv.New64a()
	var buf [16]byte
	start, end := w.n.StartByte(), w.n.EndByte()
	buf[0] = byte(start)
	buf[1] = byte(start >> 8)
	buf[2] = byte(start >> 16)
	buf[3] = byte(start >> 24)
	buf[4] = byte(end)
	buf[5] = byte(end >> 8)
	buf[6] = byte(end >> 16)
	buf[7] = byte(end >> 24)
	h.Write(buf[:8])
	h.Write([]byte(w.n.Kind()))
	return cst.NodeID(h.Sum64())
}

func (w *node) Kind() string  { return w.n.Kind() }
func (w *node) IsNamed() bool { return w.n.IsNamed() }

func (w *node) StartPosition() cst.Point {
	p := w.n.StartPosition()
	return cst.Point{Row: p.Row, Column: p.Column}
}

func (w *node) EndPosition() cst.Point {
	p := w.n.EndPosition()
	return cst.Point{Row: p.Row, Column: p.Column}
}

func (w *node) ByteRange() (uint32, uint32) {
	return w.n.StartByte(), w.n.EndByte()
}

func (w *node) ChildCount() uint32 {
	return uint32(w.n.ChildCount())
}

func (w *node) Child(i uint32) cst.Node {
	c := w.n.Child(uint(i))
	return wrap(c, w.source)
}

func (w *node) Parent() (cst.Node, bool) {
	p := w.n.Parent()
	if p == nil {
		return nil, false
	}
	return wrap(p, w.source), true
}

// Underlying returns the wrapped *sitter.Node and its source buffer,
// for callers that need direct tree-sitter access a CaptureEvent
// doesn't expose through cst.Node, e.g. binding a tree-sitter query's
// captures to the nodes they matched. It reports false for a cst.Node
// not produced by this package.
func Underlying(n cst.Node) (*sitter.Node, []byte, bool) {
	w, ok := n.(*node)
	if !ok {
		return nil, nil, false
	}
	return w.n, w.source, true
}
