package main

import (
	"github.com/cyber-nic/cstfmt/atom"
	"github.com/cyber-nic/cstfmt/cst"
)

// emitGoCaptures walks a parsed Go tree and produces the CaptureEvent
// sequence a real tree-sitter query (topiary's queries/go.scm
// equivalent) would emit for a small, illustrative slice of the
// grammar: function declarations, parameter lists, and block braces.
// A full query engine is explicitly out of this module's scope; this
// hand-rolled walk exists only so cmd/cstfmt has something concrete to
// drive the atom pipeline with end to end.
func emitGoCaptures(root cst.Node) []atom.CaptureEvent {
	var events []atom.CaptureEvent
	if root == nil {
		return events
	}

	var walk func(n cst.Node)
	walk = func(n cst.Node) {
		switch n.Kind() {
		case "function_declaration", "method_declaration":
			events = append(events, atom.CaptureEvent{Name: "prepend_input_softline", Node: n})
			events = append(events, atom.CaptureEvent{Name: "append_hardline", Node: n})

		case "parameter_list", "argument_list":
			events = append(events, walkCommaList(n)...)

		case "block":
			if count := n.ChildCount(); count >= 2 {
				open, close := n.Child(0), n.Child(count-1)
				events = append(events,
					atom.CaptureEvent{Name: "append_indent_start", Node: open},
					atom.CaptureEvent{Name: "append_hardline", Node: open},
					atom.CaptureEvent{Name: "prepend_indent_end", Node: close},
					atom.CaptureEvent{Name: "prepend_hardline", Node: close},
				)
			}
		}

		for i := uint32(0); i < n.ChildCount(); i++ {
			if c := n.Child(i); c != nil {
				walk(c)
			}
		}
	}
	walk(root)
	return events
}

// walkCommaList appends a delimiter after every "," child of a
// parameter/argument list, the captures a real query attaches via
// `#delimiter!` on every non-final comma.
func walkCommaList(n cst.Node) []atom.CaptureEvent {
	var events []atom.CaptureEvent
	for i := uint32(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.Kind() != "," {
			continue
		}
		events = append(events,
			atom.CaptureEvent{Name: "append_delimiter", Node: c, Delimiter: ",", HasDelimiter: true},
			atom.CaptureEvent{Name: "append_spaced_softline", Node: c},
		)
	}
	return events
}
