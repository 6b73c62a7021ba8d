package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// HandlerFunc lowers one source node into its target image. Handlers read
// operands through the ssa Query Adapter, recursively obtain transformed
// operands via Context.Transform, and emit target nodes through the
// sparc builders.
type HandlerFunc func(c *Context, n *ssa.Node) (*sparc.Node, error)

// Dispatch is the opcode-to-handler table (spec.md §4.2), grounded on
// orig's function-pointer table (be_set_transform_function /
// sparc_register_transformers).
type Dispatch struct {
	handlers map[ssa.Opcode]HandlerFunc
}

// NewDispatch creates an empty dispatch table.
func NewDispatch() *Dispatch {
	return &Dispatch{handlers: make(map[ssa.Opcode]HandlerFunc)}
}

// Register binds op to h. Re-registering the same opcode overwrites the
// previous binding, making registration idempotent (spec.md §4.2).
func (d *Dispatch) Register(op ssa.Opcode, h HandlerFunc) {
	d.handlers[op] = h
}

// Lookup returns the handler bound to op, if any.
func (d *Dispatch) Lookup(op ssa.Opcode) (HandlerFunc, bool) {
	h, ok := d.handlers[op]
	return h, ok
}

// RegisterTransformers populates d with every handler this pass supports,
// grounded on orig's sparc_register_transformers. Safe to call more than
// once (each call simply re-registers the same bindings). Start is
// deliberately absent: orig never calls be_transform_node on a Start
// predecessor either (see genProjStart in handlers_proj.go), so Start
// itself never needs a transform function of its own.
func RegisterTransformers(d *Dispatch) {
	d.Register(ssa.OpAbs, genAbs)
	d.Register(ssa.OpAdd, genAdd)
	d.Register(ssa.OpAnd, genAnd)
	d.Register(ssa.OpAddSP, genAddSP)
	d.Register(ssa.OpCall, genCall)
	d.Register(ssa.OpCopy, genCopy)
	d.Register(ssa.OpFrameAddr, genFrameAddr)
	d.Register(ssa.OpSubSP, genSubSP)
	d.Register(ssa.OpCmp, genCmp)
	d.Register(ssa.OpCond, genCond)
	d.Register(ssa.OpConst, genConst)
	d.Register(ssa.OpConv, genConv)
	d.Register(ssa.OpDiv, genDiv)
	d.Register(ssa.OpEor, genXor)
	d.Register(ssa.OpXor, genXor)
	d.Register(ssa.OpJmp, genJmp)
	d.Register(ssa.OpLoad, genLoad)
	d.Register(ssa.OpMinus, genMinus)
	d.Register(ssa.OpMul, genMul)
	d.Register(ssa.OpMulh, genMulh)
	d.Register(ssa.OpNot, genNot)
	d.Register(ssa.OpOr, genOr)
	d.Register(ssa.OpPhi, genPhi)
	d.Register(ssa.OpProj, genProj)
	d.Register(ssa.OpShl, genShl)
	d.Register(ssa.OpShr, genShr)
	d.Register(ssa.OpShrs, genShra)
	d.Register(ssa.OpStore, genStore)
	d.Register(ssa.OpSub, genSub)
	d.Register(ssa.OpSymConst, genSymConst)
	d.Register(ssa.OpUnknown, genUnknown)
}
