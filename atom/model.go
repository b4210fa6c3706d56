// Package atom implements the atom pipeline: tree scan, leaf
// collection, capture resolution, expansion, scope resolution, and
// whitespace normalisation. It turns a borrowed CST plus a sequence of
// resolved capture events into a flat, renderer-ready atom sequence.
package atom

import "github.com/cyber-nic/cstfmt/cst"

// Kind tags an Atom's variant. The zero Kind is never produced by any
// constructor below, so a zero-value Atom is recognizably invalid.
type Kind uint8

const (
	_ Kind = iota
	KindLeaf
	KindLiteral
	KindMultilineOnlyLiteral
	KindSpace
	KindHardline
	KindBlankline
	KindSoftline
	KindScopedSoftline
	KindIndentStart
	KindIndentEnd
	KindDeleteBegin
	KindDeleteEnd
)

// Atom is the tagged-variant intermediate representation described in
// spec §3. Only the fields relevant to Kind are meaningful; the rest
// are zero. Atom is comparable so tests can use plain ==.
type Atom struct {
	Kind Kind

	// Leaf, Literal, MultilineOnlyLiteral
	Text string
	// Leaf: the originating node. ScopedSoftline: unused.
	NodeID cst.NodeID

	// Softline, ScopedSoftline
	Spaced bool

	// ScopedSoftline only
	ScopeID string
	ID      uint64
}

func Leaf(text string, id cst.NodeID) Atom     { return Atom{Kind: KindLeaf, Text: text, NodeID: id} }
func Literal(text string) Atom                 { return Atom{Kind: KindLiteral, Text: text} }
func MultilineOnlyLiteral(text string) Atom    { return Atom{Kind: KindMultilineOnlyLiteral, Text: text} }
func Space() Atom                              { return Atom{Kind: KindSpace} }
func Hardline() Atom                           { return Atom{Kind: KindHardline} }
func Blankline() Atom                          { return Atom{Kind: KindBlankline} }
func Softline(spaced bool) Atom                { return Atom{Kind: KindSoftline, Spaced: spaced} }
func IndentStart() Atom                        { return Atom{Kind: KindIndentStart} }
func IndentEnd() Atom                          { return Atom{Kind: KindIndentEnd} }
func DeleteBegin() Atom                        { return Atom{Kind: KindDeleteBegin} }
func DeleteEnd() Atom                          { return Atom{Kind: KindDeleteEnd} }

// ScopedSoftlineAtom builds a scope-qualified softline. id must be
// unique across one collection run (Resolver.counter is the source of
// truth for that).
func ScopedSoftlineAtom(id uint64, scopeID string, spaced bool) Atom {
	return Atom{Kind: KindScopedSoftline, ID: id, ScopeID: scopeID, Spaced: spaced}
}

// isWhitespace reports whether a is one of the three kinds the
// normaliser collapses by dominance.
func isWhitespace(a Atom) bool {
	switch a.Kind {
	case KindSpace, KindHardline, KindBlankline:
		return true
	default:
		return false
	}
}

func isIndentMarker(a Atom) bool {
	return a.Kind == KindIndentStart || a.Kind == KindIndentEnd
}

// whitespaceRank orders the three whitespace kinds by dominance:
// Blankline > Hardline > Space. Only meaningful for whitespace atoms.
func whitespaceRank(k Kind) int {
	switch k {
	case KindSpace:
		return 1
	case KindHardline:
		return 2
	case KindBlankline:
		return 3
	default:
		return 0
	}
}

// dominant reports whether next strictly dominates prev. Equal kinds
// (including Blankline against Blankline) are never dominant, which is
// what collapses runs of the same whitespace kind down to one atom.
func dominant(next, prev Atom) bool {
	return whitespaceRank(next.Kind) > whitespaceRank(prev.Kind)
}
