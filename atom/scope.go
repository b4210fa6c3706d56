package atom

import (
	"log/slog"

	"github.com/cyber-nic/cstfmt/cst"
)

type scopeFrame struct {
	startRow uint32
	pending  []pendingScopedSoftline
}

type pendingScopedSoftline struct {
	id     uint64
	spaced bool
}

type scopeModification struct {
	recorded    bool
	drop        bool
	replacement Atom
}

// ResolveScopes is the two-pass Scope Resolver of spec §4.5. Pass 1
// walks atoms classifying every ScopedSoftline against the scope it
// falls inside, using scopeBegin/scopeEnd (keyed by leaf id, as
// Resolver.begin_scope/end_scope populate them) to know where each
// named scope opens and closes. Pass 2 rewrites ScopedSoftline atoms
// to their recorded replacement, or drops them if the scope never
// closed cleanly.
//
// Scope anomalies — an end_scope with no open frame, a ScopedSoftline
// with no enclosing scope, or a scope still open at end of input — are
// non-fatal: they are logged at Warn and force pass 2 to run (and drop
// the offending atoms) even if no modification was ever recorded.
func ResolveScopes(atoms []Atom, scopeBegin, scopeEnd map[cst.NodeID]*ScopeMarks, logger *slog.Logger) []Atom {
	if logger == nil {
		logger = slog.Default()
	}

	stacks := map[string][]*scopeFrame{}
	modifications := map[uint64]scopeModification{}
	forceApply := false

	for _, a := range atoms {
		switch a.Kind {
		case KindLeaf:
			if marks, ok := scopeBegin[a.NodeID]; ok {
				for _, scopeID := range marks.Scopes {
					stacks[scopeID] = append(stacks[scopeID], &scopeFrame{startRow: marks.Row})
				}
			}
			if marks, ok := scopeEnd[a.NodeID]; ok {
				for _, scopeID := range marks.Scopes {
					stack := stacks[scopeID]
					if len(stack) == 0 {
						logger.Warn("scope resolver: end_scope with no matching begin_scope", "scope_id", scopeID)
						forceApply = true
						continue
					}
					frame := stack[len(stack)-1]
					stacks[scopeID] = stack[:len(stack)-1]

					multiLine := frame.startRow != marks.Row
					for _, p := range frame.pending {
						switch {
						case multiLine:
							modifications[p.id] = scopeModification{recorded: true, replacement: Hardline()}
						case p.spaced:
							modifications[p.id] = scopeModification{recorded: true, replacement: Space()}
						default:
							modifications[p.id] = scopeModification{recorded: true, drop: true}
						}
					}
				}
			}

		case KindScopedSoftline:
			stack := stacks[a.ScopeID]
			if len(stack) == 0 {
				logger.Warn("scope resolver: scoped softline with no open scope", "scope_id", a.ScopeID)
				forceApply = true
				continue
			}
			frame := stack[len(stack)-1]
			frame.pending = append(frame.pending, pendingScopedSoftline{id: a.ID, spaced: a.Spaced})
		}
	}

	for scopeID, stack := range stacks {
		if len(stack) > 0 {
			logger.Warn("scope resolver: dangling open scope at end of input", "scope_id", scopeID, "depth", len(stack))
			forceApply = true
		}
	}

	if len(modifications) == 0 && !forceApply {
		return atoms
	}

	out := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		if a.Kind != KindScopedSoftline {
			out = append(out, a)
			continue
		}
		mod := modifications[a.ID]
		if !mod.recorded || mod.drop {
			continue
		}
		out = append(out, mod.replacement)
	}
	return out
}
