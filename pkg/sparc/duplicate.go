package sparc

import "github.com/oisee/sparc-select/pkg/ssa"

// Duplicate builds a target node that stands in for a node this pass gives
// no dedicated builder, grounded on orig's be_duplicate_node. Its one call
// site is a Proj whose predecessor is Start: Start is never itself
// transformed (it has no target image anywhere in this pass), so
// genProjStart hands Duplicate a bare template carrying the source Proj's
// identity instead of a real predecessor. mode lets the caller override the
// duplicated node's mode (narrowing GP modes to 32-bit unsigned); ProjNum
// is copied so the duplicate keeps its selector.
func Duplicate(src *Node, mode ssa.Mode, preds ...*Node) *Node {
	dup := NewNode(src.Op, mode, src.Block, preds...)
	dup.DebugInfo = src.DebugInfo
	dup.Imm = src.Imm
	dup.Entity = src.Entity
	dup.Pinned = src.Pinned
	dup.ProjNum = src.ProjNum
	return dup
}
