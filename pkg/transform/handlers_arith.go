package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// regBinopFunc and immBinopFunc give genBinop a uniform shape over every
// register-register and register-immediate builder pair in sparc/builders.go
// (spec.md §4.3), grounded on orig's new_binop_reg_func/new_binop_imm_func
// typedefs.
type regBinopFunc func(dbgi string, block *ssa.Block, op1, op2 *sparc.Node) *sparc.Node
type immBinopFunc func(dbgi string, block *ssa.Block, op1 *sparc.Node, imm int64) *sparc.Node

// genBinop is the Arithmetic/Logical Binary Handler Family's shared core
// (spec.md §4.3), grounded on orig's gen_helper_binop. If the right operand
// is a constant encodable in SPARC's 13-bit immediate field, it is folded
// into an immediate form; for commutative opcodes the left operand is tried
// the same way. Otherwise both operands are materialized into registers.
func genBinop(c *Context, n *ssa.Node, regBuilder regBinopFunc, immBuilder immBinopFunc) (*sparc.Node, error) {
	left := ssa.BinopLeft(n)
	right := ssa.BinopRight(n)
	block := c.TransformBlock(n.BlockOf())
	dbgi := n.DebugInfo

	if right.Opcode() == ssa.OpConst {
		tv := ssa.ConstTarval(right)
		if ssa.ImmediateEncodable(tv.Long()) {
			op1, err := c.Transform(left)
			if err != nil {
				return nil, err
			}
			return immBuilder(dbgi, block, op1, tv.Long()), nil
		}
	}

	if n.Opcode().Commutative() && left.Opcode() == ssa.OpConst {
		tv := ssa.ConstTarval(left)
		if ssa.ImmediateEncodable(tv.Long()) {
			op2, err := c.Transform(right)
			if err != nil {
				return nil, err
			}
			return immBuilder(dbgi, block, op2, tv.Long()), nil
		}
	}

	op1, err := c.Transform(left)
	if err != nil {
		return nil, err
	}
	op2, err := c.Transform(right)
	if err != nil {
		return nil, err
	}
	return regBuilder(dbgi, block, op1, op2), nil
}

func genAdd(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	return genBinop(c, n, sparc.NewAddReg, sparc.NewAddImm)
}

func genSub(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	return genBinop(c, n, sparc.NewSubReg, sparc.NewSubImm)
}

func genAnd(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	return genBinop(c, n, sparc.NewAndReg, sparc.NewAndImm)
}

func genOr(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	return genBinop(c, n, sparc.NewOrReg, sparc.NewOrImm)
}

// genXor backs both Xor and Eor, since the source IR treats the latter as
// an alias of the former (spec.md §3).
func genXor(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	return genBinop(c, n, sparc.NewXorReg, sparc.NewXorImm)
}

func genShl(c *Context, n *ssa.Node) (*sparc.Node, error) {
	return genBinop(c, n, sparc.NewSllReg, sparc.NewSllImm)
}

func genShr(c *Context, n *ssa.Node) (*sparc.Node, error) {
	return genBinop(c, n, sparc.NewSlrReg, sparc.NewSlrImm)
}

func genShra(c *Context, n *ssa.Node) (*sparc.Node, error) {
	return genBinop(c, n, sparc.NewSraReg, sparc.NewSraImm)
}

// genMul lowers Mul to the target's widening multiply, keeping only the low
// 32 bits (spec.md §4.3) via a Proj, and marks the multiply as
// flags-clobbering (arch_irn_flags_modify_flags in orig).
func genMul(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		block := c.TransformBlock(n.BlockOf())
		op1, err := c.Transform(ssa.BinopLeft(n))
		if err != nil {
			return nil, err
		}
		op2, err := c.Transform(ssa.BinopRight(n))
		if err != nil {
			return nil, err
		}
		return sparc.NewFMul(n.DebugInfo, block, op1, op2, n.ModeOf()), nil
	}

	mul, err := genBinop(c, n, sparc.NewMulReg, sparc.NewMulImm)
	if err != nil {
		return nil, err
	}
	mul.ModifyFlags = true
	return sparc.NewProj(n.DebugInfo, mul, ssa.ModeIu, sparc.ProjMulLow), nil
}

// genMulh lowers Mulh to the target's Mulh multiply (Mulh_reg/Mulh_imm, not
// Mul's opcodes) and projects its result, the high 32 bits of the product
// (spec.md §4.3).
func genMulh(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not supported yet")
	}
	mul, err := genBinop(c, n, sparc.NewMulhReg, sparc.NewMulhImm)
	if err != nil {
		return nil, err
	}
	return sparc.NewProj(n.DebugInfo, mul, ssa.ModeIu, sparc.ProjMulhLow), nil
}

func genDiv(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not supported yet")
	}
	return genBinop(c, n, sparc.NewDivReg, sparc.NewDivImm)
}

func genNot(c *Context, n *ssa.Node) (*sparc.Node, error) {
	op, err := c.Transform(ssa.UnopOperand(n))
	if err != nil {
		return nil, err
	}
	return sparc.NewNot(n.DebugInfo, c.TransformBlock(n.BlockOf()), op), nil
}

func genMinus(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not implemented yet")
	}
	op, err := c.Transform(ssa.UnopOperand(n))
	if err != nil {
		return nil, err
	}
	return sparc.NewMinus(n.DebugInfo, c.TransformBlock(n.BlockOf()), op), nil
}

// genAbs lowers Abs to the four-instruction idiom
//
//	mov  a, b
//	sra  b, 31, b
//	xor  a, b
//	sub  b, xor
//
// grounded verbatim on orig's gen_Abs, including its operand order (the
// final Sub takes the shifted value first, the xor result second).
func genAbs(c *Context, n *ssa.Node) (*sparc.Node, error) {
	if n.ModeOf().IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FP not supported yet")
	}
	block := c.TransformBlock(n.BlockOf())
	dbgi := n.DebugInfo

	newOp, err := c.Transform(ssa.UnopOperand(n))
	if err != nil {
		return nil, err
	}

	mov := sparc.NewMovReg(dbgi, block, newOp)
	sra := sparc.NewSraImm(dbgi, block, mov, 31)
	xor := sparc.NewXorReg(dbgi, block, newOp, sra)
	sub := sparc.NewSubReg(dbgi, block, sra, xor)
	return sub, nil
}
