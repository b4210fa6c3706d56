package main

import (
	"strings"

	"github.com/cyber-nic/cstfmt/atom"
)

const indentUnit = "    "

// render turns a Normalize-d atom sequence into text. It is
// deliberately minimal: the atom package's job ends at producing the
// atom sequence (spec Non-goals explicitly exclude a rendering
// engine); this is only enough to let the demo binary print something
// a human can read.
func render(atoms []atom.Atom) string {
	var b strings.Builder
	depth := 0
	atStartOfLine := true

	writeIndent := func() {
		if atStartOfLine {
			b.WriteString(strings.Repeat(indentUnit, depth))
			atStartOfLine = false
		}
	}

	for _, a := range atoms {
		switch a.Kind {
		case atom.KindLeaf, atom.KindLiteral, atom.KindMultilineOnlyLiteral:
			writeIndent()
			b.WriteString(a.Text)
		case atom.KindSpace:
			writeIndent()
			b.WriteByte(' ')
		case atom.KindHardline:
			b.WriteByte('\n')
			atStartOfLine = true
		case atom.KindBlankline:
			b.WriteString("\n\n")
			atStartOfLine = true
		case atom.KindIndentStart:
			depth++
		case atom.KindIndentEnd:
			if depth > 0 {
				depth--
			}
		default:
			// ScopedSoftline never survives ResolveScopes, and
			// DeleteBegin/DeleteEnd never survive Normalize. Nothing
			// else should reach render.
		}
	}

	return b.String()
}
