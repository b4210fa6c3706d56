package atom

import (
	"fmt"

	"github.com/cyber-nic/cstfmt/cst"
)

// QueryError is raised by the Capture Resolver for an unknown capture
// name or a capture missing a required delimiter/scope id. It is
// fatal for the formatting job it occurred in.
type QueryError struct {
	Capture string
	Reason  string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: capture %q: %s", e.Capture, e.Reason)
}

func newUnknownCaptureError(name string) error {
	return &QueryError{Capture: name, Reason: "unknown capture name"}
}

func newMissingDelimiterError(name string) error {
	return &QueryError{Capture: name, Reason: "requires a delimiter but none was given"}
}

func newMissingScopeIDError(name string) error {
	return &QueryError{Capture: name, Reason: "requires a scope id but none was given"}
}

// ExtractError is raised by the Leaf Collector when a node's byte
// range cannot be turned into valid UTF-8 text. Fatal.
type ExtractError struct {
	NodeID cst.NodeID
	Reason string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract error: node %d: %s", e.NodeID, e.Reason)
}

func newExtractError(id cst.NodeID, reason string) error {
	return &ExtractError{NodeID: id, Reason: reason}
}
