// Package transform implements the SPARC instruction-selection pass: the
// transformation driver, dispatch table, transformation memo, and the
// per-opcode handlers that lower a target-independent ssa.Graph into a
// sparc.Graph (spec.md §§2, 4).
package transform

import (
	"fmt"

	"github.com/oisee/sparc-select/pkg/ssa"
)

// Kind classifies why a selection attempt failed (spec.md §7).
type Kind int

const (
	// UnsupportedFeature covers FP where integer is expected, quad FP, FP
	// Unknown, FP Cmp, 64-bit modes outside Phi canonicalisation, and
	// extensions to widths other than 8/16.
	UnsupportedFeature Kind = iota
	// MissingHandler covers a source opcode with no dispatch-table entry.
	MissingHandler
	// UnsupportedProjection covers a Proj whose predecessor class is not
	// handled, or a selector outside the defined set.
	UnsupportedProjection
	// InvariantViolation covers assertions on modes (e.g. Cmp's two sides
	// must share a mode).
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case UnsupportedFeature:
		return "UnsupportedFeature"
	case MissingHandler:
		return "MissingHandler"
	case UnsupportedProjection:
		return "UnsupportedProjection"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// SelectionError is the single, fatal failure condition this pass can
// raise (spec.md §7): every "panic" in orig becomes one of these instead of
// a process abort. There is no local recovery — the pass stops and the
// caller discards any partial target graph (spec.md §5).
type SelectionError struct {
	Kind   Kind
	NodeID int
	Op     ssa.Opcode
	Detail string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("sparc selection failed: %s on node #%d (%s): %s",
		e.Kind, e.NodeID, e.Op, e.Detail)
}

func fatalf(kind Kind, n *ssa.Node, format string, args ...any) error {
	return &SelectionError{Kind: kind, NodeID: n.ID, Op: n.Opcode(), Detail: fmt.Sprintf(format, args...)}
}
