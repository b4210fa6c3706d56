package atom

import (
	"unicode/utf8"

	"github.com/cyber-nic/cstfmt/cst"
)

// CollectLeaves performs the depth-first, child-order traversal of
// spec §4.2. A node is terminal — and gets exactly one Leaf atom — when
// it has no children or its id is in opaqueLeaves; descent does not
// continue below a terminal node.
func CollectLeaves(root cst.Node, source []byte, opaqueLeaves map[cst.NodeID]struct{}) ([]Atom, error) {
	if root == nil {
		return nil, nil
	}

	var out []Atom
	var walk func(n cst.Node) error
	walk = func(n cst.Node) error {
		_, opaque := opaqueLeaves[n.ID()]
		if n.ChildCount() == 0 || opaque {
			text, err := extractText(n, source)
			if err != nil {
				return err
			}
			out = append(out, Leaf(text, n.ID()))
			return nil
		}
		for i := uint32(0); i < n.ChildCount(); i++ {
			c := n.Child(i)
			if c == nil {
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return out, nil
}

// extractText pulls a node's verbatim source text out of its byte
// range, the IOError/decoding failure path of spec §7.
func extractText(n cst.Node, source []byte) (string, error) {
	start, end := n.ByteRange()
	if start > end || int(end) > len(source) {
		return "", newExtractError(n.ID(), "byte range out of bounds")
	}
	b := source[start:end]
	if !utf8.Valid(b) {
		return "", newExtractError(n.ID(), "byte range is not valid utf-8")
	}
	return string(b), nil
}

// nearestOpaqueAncestor walks upward from n (n included) looking for
// the nearest node marked as an opaque leaf. Design note §9: re-homing
// walks a single parent chain, terminating at the root.
func nearestOpaqueAncestor(n cst.Node, opaqueLeaves map[cst.NodeID]struct{}) (cst.NodeID, bool) {
	cur := n
	for {
		if _, opaque := opaqueLeaves[cur.ID()]; opaque {
			return cur.ID(), true
		}
		parent, ok := cur.Parent()
		if !ok {
			return 0, false
		}
		cur = parent
	}
}

// firstLeafID descends to the node whose Leaf atom will represent
// node's beginning. This is the re-homing rule of spec invariant 2: if
// node is already inside (or is) an opaque leaf, that opaque leaf's id
// is used outright; otherwise descent stops the moment it reaches an
// opaque leaf on the way down, so a prepend targeting an ancestor of
// one lands on the opaque leaf's id instead of a descendant that was
// never given its own Leaf atom.
func firstLeafID(n cst.Node, opaqueLeaves map[cst.NodeID]struct{}) cst.NodeID {
	if id, ok := nearestOpaqueAncestor(n, opaqueLeaves); ok {
		return id
	}
	for {
		if _, opaque := opaqueLeaves[n.ID()]; opaque || n.ChildCount() == 0 {
			return n.ID()
		}
		n = n.Child(0)
	}
}

// lastLeafID is firstLeafID's mirror for append targets.
func lastLeafID(n cst.Node, opaqueLeaves map[cst.NodeID]struct{}) cst.NodeID {
	if id, ok := nearestOpaqueAncestor(n, opaqueLeaves); ok {
		return id
	}
	for {
		count := n.ChildCount()
		if _, opaque := opaqueLeaves[n.ID()]; opaque || count == 0 {
			return n.ID()
		}
		n = n.Child(count - 1)
	}
}
