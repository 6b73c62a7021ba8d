package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// genZeroExtension zero-extends a register value from srcBits up to the
// canonical 32-bit GP width, grounded on orig's gen_zero_extension.
func genZeroExtension(n *ssa.Node, dbgi string, block *ssa.Block, op *sparc.Node, srcBits int) (*sparc.Node, error) {
	switch srcBits {
	case 8:
		return sparc.NewAndImm(dbgi, block, op, 0xFF), nil
	case 16:
		lshift := sparc.NewSllImm(dbgi, block, op, 16)
		return sparc.NewSlrImm(dbgi, block, lshift, 16), nil
	default:
		return nil, fatalf(UnsupportedFeature, n, "zero extension only supported for 8 and 16 bits")
	}
}

// genSignExtension sign-extends a register value from srcBits up to the
// canonical 32-bit GP width via a shift-left/shift-right-arithmetic pair,
// grounded on orig's gen_sign_extension.
func genSignExtension(dbgi string, block *ssa.Block, op *sparc.Node, srcBits int) *sparc.Node {
	shiftWidth := 32 - srcBits
	lshift := sparc.NewSllImm(dbgi, block, op, int64(shiftWidth))
	return sparc.NewSraImm(dbgi, block, lshift, int64(shiftWidth))
}

// genExtension widens op (already transformed, still carrying origMode's
// narrower width) to 32 bits, picking sign- or zero-extension by origMode's
// signedness. A 32-bit origMode is returned unchanged. Grounded on orig's
// gen_extension.
func genExtension(n *ssa.Node, dbgi string, block *ssa.Block, op *sparc.Node, origMode ssa.Mode) (*sparc.Node, error) {
	if origMode.Bits == 32 {
		return op, nil
	}
	if origMode.IsSigned() {
		return genSignExtension(dbgi, block, op, origMode.Bits), nil
	}
	return genZeroExtension(n, dbgi, block, op, origMode.Bits)
}

// upperBitsClean conservatively reports that a transformed node's upper
// bits are never known to already be sign/zero extended, matching orig's
// upper_bits_clean stub (spec.md §9 "Conservative upper-bits predicate").
// A sharper analysis is possible but out of scope for this pass.
func upperBitsClean(op *sparc.Node, mode ssa.Mode) bool {
	return false
}

// createConstGraphValue builds the target DAG realizing value: a single
// Mov_imm when it fits the 13-bit immediate field, or a HiImm/LoImm split
// otherwise (spec.md §3 "Immediate predicate", §4.5 "hi/lo split"), grounded
// on orig's create_const_graph_value.
func createConstGraphValue(dbgi string, block *ssa.Block, value int64) *sparc.Node {
	if !ssa.ImmediateEncodable(value) {
		hi := sparc.NewHiImm(dbgi, block, value)
		return sparc.NewLoImm(dbgi, block, hi, value)
	}
	return sparc.NewMovImm(dbgi, block, value)
}

func genConst(c *Context, n *ssa.Node) (*sparc.Node, error) {
	tv := ssa.ConstTarval(n)
	if tv.Mode.IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP constants not implemented")
	}
	value := tv.Long()
	if tv.Mode.IsReference() {
		// SPARC V8 is 32-bit, so a reference tarval safely reinterprets as
		// the canonical unsigned GP mode (spec.md §4.5).
		value = tv.ConvertTo(ssa.ModeIu).Long()
	}
	block := c.TransformBlock(n.BlockOf())
	return createConstGraphValue(n.DebugInfo, block, value), nil
}

func genSymConst(c *Context, n *ssa.Node) (*sparc.Node, error) {
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewSymConst(n.DebugInfo, block, ssa.SymConstEntity(n)), nil
}

// genConv lowers Conv per spec.md §4.5: float<->float, float<->int, and
// int<->int narrowing/widening, grounded on orig's gen_Conv.
func genConv(c *Context, n *ssa.Node) (*sparc.Node, error) {
	op := ssa.ConvOperand(n)
	srcMode := op.ModeOf()
	dstMode := n.ModeOf()

	if srcMode == dstMode {
		return c.Transform(op)
	}

	newOp, err := c.Transform(op)
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	dbgi := n.DebugInfo
	srcBits, dstBits := srcMode.Bits, dstMode.Bits

	if srcMode.IsFloat() || dstMode.IsFloat() {
		if srcBits > 64 || dstBits > 64 {
			return nil, fatalf(UnsupportedFeature, n, "quad FP not implemented")
		}
		if srcMode.IsFloat() {
			if dstMode.IsFloat() {
				if srcBits > dstBits {
					return sparc.NewFdTOs(dbgi, block, newOp, dstMode), nil
				}
				return sparc.NewFsTOd(dbgi, block, newOp, dstMode), nil
			}
			switch srcBits {
			case 32:
				return sparc.NewFsTOi(dbgi, block, newOp, dstMode), nil
			case 64:
				return sparc.NewFdTOi(dbgi, block, newOp, dstMode), nil
			default:
				return nil, fatalf(UnsupportedFeature, n, "quad FP not implemented")
			}
		}
		switch dstBits {
		case 32:
			return sparc.NewFiTOs(dbgi, block, newOp, srcMode), nil
		case 64:
			return sparc.NewFiTOd(dbgi, block, newOp, srcMode), nil
		default:
			return nil, fatalf(UnsupportedFeature, n, "quad FP not implemented")
		}
	}

	// complete in gp registers
	if srcBits == dstBits {
		return newOp, nil
	}

	minBits, minMode := srcBits, srcMode
	if dstBits < srcBits {
		minBits, minMode = dstBits, dstMode
	}

	if upperBitsClean(newOp, minMode) {
		return newOp, nil
	}
	if minMode.IsSigned() {
		return genSignExtension(dbgi, block, newOp, minBits), nil
	}
	return genZeroExtension(n, dbgi, block, newOp, minBits)
}

// genUnknown produces a zero value for GP-class modes, mirroring orig's
// gen_Unknown (which treats Unknown as "don't care" and picks 0).
func genUnknown(c *Context, n *ssa.Node) (*sparc.Node, error) {
	mode := n.ModeOf()
	if mode.IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented")
	}
	if mode.NeedsGPReg() {
		block := c.TransformBlock(n.BlockOf())
		return createConstGraphValue(n.DebugInfo, block, 0), nil
	}
	return nil, fatalf(UnsupportedFeature, n, "unexpected Unknown mode")
}
