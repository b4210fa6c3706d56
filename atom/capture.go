package atom

import "github.com/cyber-nic/cstfmt/cst"

// CaptureEvent is one resolved match from the external query engine:
// a capture name bound to a target node, with the optional delimiter
// text and scope id some captures require (spec §6).
type CaptureEvent struct {
	Name         string
	Node         cst.Node
	Delimiter    string
	HasDelimiter bool
	ScopeID      string
	HasScopeID   bool
}

// ScopeMarks records where a scope begins or ends: the row at that
// point, and every scope id that begins/ends there (ordered, since a
// query can bind more than one begin_scope/end_scope capture to the
// same node).
type ScopeMarks struct {
	Row    uint32
	Scopes []string
}

// Resolver is the Capture Resolver of spec §4.3. It owns the
// Collection state that Capture Resolution mutates: prepend/append
// buckets keyed by leaf id, scope begin/end marks, and the
// ScopedSoftline id counter. Scan it once per CST root, feed it every
// capture event, then hand Prepend/Append/ScopeBegin/ScopeEnd to the
// rest of the pipeline.
type Resolver struct {
	facts        Facts
	opaqueLeaves map[cst.NodeID]struct{}

	Prepend    map[cst.NodeID][]Atom
	Append     map[cst.NodeID][]Atom
	ScopeBegin map[cst.NodeID]*ScopeMarks
	ScopeEnd   map[cst.NodeID]*ScopeMarks

	counter uint64
}

// NewResolver builds a Resolver over the scanner facts and the
// externally supplied opaque-leaf set. opaqueLeaves may be nil.
func NewResolver(facts Facts, opaqueLeaves map[cst.NodeID]struct{}) *Resolver {
	if opaqueLeaves == nil {
		opaqueLeaves = map[cst.NodeID]struct{}{}
	}
	return &Resolver{
		facts:        facts,
		opaqueLeaves: opaqueLeaves,
		Prepend:      map[cst.NodeID][]Atom{},
		Append:       map[cst.NodeID][]Atom{},
		ScopeBegin:   map[cst.NodeID]*ScopeMarks{},
		ScopeEnd:     map[cst.NodeID]*ScopeMarks{},
	}
}

// Resolve applies every capture event in order, stopping at (and
// returning) the first QueryError.
func (r *Resolver) Resolve(events []CaptureEvent) error {
	for _, ev := range events {
		if err := r.apply(ev); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) apply(ev CaptureEvent) error {
	switch ev.Name {
	case "leaf":
		// No-op: the id should already be in opaqueLeaves, populated
		// by whatever query pass preceded resolution.
		return nil

	case "delete":
		r.prepend(ev.Node, DeleteBegin())
		r.append(ev.Node, DeleteEnd())

	case "allow_blank_line_before":
		if _, ok := r.facts.BlankLinesBefore[ev.Node.ID()]; ok {
			r.prepend(ev.Node, Blankline())
		}

	case "append_space":
		r.append(ev.Node, Space())
	case "prepend_space":
		r.prepend(ev.Node, Space())

	case "append_hardline":
		r.append(ev.Node, Hardline())
	case "prepend_hardline":
		r.prepend(ev.Node, Hardline())

	case "append_indent_start":
		r.append(ev.Node, IndentStart())
	case "prepend_indent_start":
		r.prepend(ev.Node, IndentStart())

	case "append_indent_end":
		r.append(ev.Node, IndentEnd())
	case "prepend_indent_end":
		r.prepend(ev.Node, IndentEnd())

	case "append_empty_softline":
		if a, ok := r.resolveSoftline(ev.Node, false); ok {
			r.append(ev.Node, a)
		}
	case "prepend_empty_softline":
		if a, ok := r.resolveSoftline(ev.Node, false); ok {
			r.prepend(ev.Node, a)
		}
	case "append_spaced_softline":
		if a, ok := r.resolveSoftline(ev.Node, true); ok {
			r.append(ev.Node, a)
		}
	case "prepend_spaced_softline":
		if a, ok := r.resolveSoftline(ev.Node, true); ok {
			r.prepend(ev.Node, a)
		}

	case "append_input_softline":
		if _, ok := r.facts.LineBreakAfter[ev.Node.ID()]; ok {
			r.append(ev.Node, Hardline())
		} else {
			r.append(ev.Node, Space())
		}
	case "prepend_input_softline":
		if _, ok := r.facts.LineBreakBefore[ev.Node.ID()]; ok {
			r.prepend(ev.Node, Hardline())
		} else {
			r.prepend(ev.Node, Space())
		}

	case "append_delimiter":
		if !ev.HasDelimiter {
			return newMissingDelimiterError(ev.Name)
		}
		r.append(ev.Node, Literal(ev.Delimiter))
	case "prepend_delimiter":
		if !ev.HasDelimiter {
			return newMissingDelimiterError(ev.Name)
		}
		r.prepend(ev.Node, Literal(ev.Delimiter))

	case "append_multiline_delimiter":
		if !ev.HasDelimiter {
			return newMissingDelimiterError(ev.Name)
		}
		if a, ok := r.resolveMultilineLiteral(ev.Node, ev.Delimiter); ok {
			r.append(ev.Node, a)
		}
	case "prepend_multiline_delimiter":
		if !ev.HasDelimiter {
			return newMissingDelimiterError(ev.Name)
		}
		if a, ok := r.resolveMultilineLiteral(ev.Node, ev.Delimiter); ok {
			r.prepend(ev.Node, a)
		}

	case "append_empty_scoped_softline":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		r.append(ev.Node, r.freshScopedSoftline(ev.ScopeID, false))
	case "prepend_empty_scoped_softline":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		r.prepend(ev.Node, r.freshScopedSoftline(ev.ScopeID, false))
	case "append_spaced_scoped_softline":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		r.append(ev.Node, r.freshScopedSoftline(ev.ScopeID, true))
	case "prepend_spaced_scoped_softline":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		r.prepend(ev.Node, r.freshScopedSoftline(ev.ScopeID, true))

	case "begin_scope":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		id := firstLeafID(ev.Node, r.opaqueLeaves)
		marks := r.ScopeBegin[id]
		if marks == nil {
			marks = &ScopeMarks{}
			r.ScopeBegin[id] = marks
		}
		marks.Row = ev.Node.StartPosition().Row
		marks.Scopes = append(marks.Scopes, ev.ScopeID)

	case "end_scope":
		if !ev.HasScopeID {
			return newMissingScopeIDError(ev.Name)
		}
		id := lastLeafID(ev.Node, r.opaqueLeaves)
		marks := r.ScopeEnd[id]
		if marks == nil {
			marks = &ScopeMarks{}
			r.ScopeEnd[id] = marks
		}
		marks.Row = ev.Node.EndPosition().Row
		marks.Scopes = append(marks.Scopes, ev.ScopeID)

	default:
		return newUnknownCaptureError(ev.Name)
	}

	return nil
}

func (r *Resolver) prepend(node cst.Node, a Atom) {
	id := firstLeafID(node, r.opaqueLeaves)
	r.Prepend[id] = append(r.Prepend[id], a)
}

func (r *Resolver) append(node cst.Node, a Atom) {
	id := lastLeafID(node, r.opaqueLeaves)
	r.Append[id] = append(r.Append[id], a)
}

func (r *Resolver) freshScopedSoftline(scopeID string, spaced bool) Atom {
	r.counter++
	return ScopedSoftlineAtom(r.counter, scopeID, spaced)
}

// resolveSoftline is the "softline expansion at resolution time" rule
// of spec §4.3: a bare Softline is never stored, it is immediately
// replaced by Hardline (parent multi-line), Space (spaced, parent
// single-line) or dropped (unspaced, parent single-line, or no
// parent at all).
func (r *Resolver) resolveSoftline(node cst.Node, spaced bool) (Atom, bool) {
	parent, ok := node.Parent()
	if !ok {
		return Atom{}, false
	}
	if _, multiLine := r.facts.MultiLineNodes[parent.ID()]; multiLine {
		return Hardline(), true
	}
	if spaced {
		return Space(), true
	}
	return Atom{}, false
}

// resolveMultilineLiteral is the MultilineOnlyLiteral analogue of
// resolveSoftline: Literal(text) iff the parent is multi-line, else
// dropped.
func (r *Resolver) resolveMultilineLiteral(node cst.Node, text string) (Atom, bool) {
	parent, ok := node.Parent()
	if !ok {
		return Atom{}, false
	}
	if _, multiLine := r.facts.MultiLineNodes[parent.ID()]; multiLine {
		return Literal(text), true
	}
	return Atom{}, false
}
