package atom

import (
	"log/slog"

	"github.com/cyber-nic/cstfmt/cst"
)

// Pipeline drives the atom pipeline end to end: Scan, CollectLeaves,
// Resolver.Resolve, Expand, ResolveScopes, Normalize, in that order
// (spec §2's dataflow). It holds nothing but a logger, so a Pipeline
// value is safe to reuse across formatting jobs — there is no
// per-job state to reset between calls.
type Pipeline struct {
	Logger *slog.Logger
}

// NewPipeline returns a Pipeline. A nil logger falls back to
// slog.Default().
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger}
}

// Format runs the full pipeline over one parsed tree and returns the
// post-Normaliser atom sequence satisfying the invariants of spec §3,
// or the first QueryError/ExtractError encountered. opaqueLeaves may
// be nil.
func (p *Pipeline) Format(root cst.Node, source []byte, captures []CaptureEvent, opaqueLeaves map[cst.NodeID]struct{}) ([]Atom, error) {
	if opaqueLeaves == nil {
		opaqueLeaves = map[cst.NodeID]struct{}{}
	}

	facts := Scan(root)

	leaves, err := CollectLeaves(root, source, opaqueLeaves)
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(facts, opaqueLeaves)
	if err := resolver.Resolve(captures); err != nil {
		return nil, err
	}

	expanded := Expand(leaves, resolver.Prepend, resolver.Append)
	scoped := ResolveScopes(expanded, resolver.ScopeBegin, resolver.ScopeEnd, p.Logger)
	return Normalize(scoped), nil
}
