package atom

import "github.com/cyber-nic/cstfmt/cst"

// Expand is the Expansion Pass of spec §4.4: it walks the leaf-only
// `atoms` sequence the Leaf Collector produced and, for every Leaf,
// splices in that leaf id's prepend bucket before it and its append
// bucket after it. Anything in leaves that is not a Leaf is passed
// through untouched — defensive, since nothing upstream of this pass
// produces non-Leaf atoms in the top-level sequence.
func Expand(leaves []Atom, prepend, appendAtoms map[cst.NodeID][]Atom) []Atom {
	out := make([]Atom, 0, len(leaves))
	for _, a := range leaves {
		if a.Kind != KindLeaf {
			out = append(out, a)
			continue
		}
		out = append(out, prepend[a.NodeID]...)
		out = append(out, a)
		out = append(out, appendAtoms[a.NodeID]...)
	}
	return out
}
