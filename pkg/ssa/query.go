package ssa

// Opcode-specific typed accessors, one per projection spec.md §6 names.
// Each is grounded directly on the like-named getter in orig
// (get_Const_tarval, get_Load_ptr, get_Cond_selector, get_binop_left, ...).
// Calling one against the wrong opcode is a programmer error in this
// package, exactly as in the source (get_Load_ptr on a non-Load is
// undefined there too) — transform handlers only ever call the accessor
// matching the opcode they were dispatched for.

// ConstTarval returns a Const node's constant value.
func ConstTarval(n *Node) *Tarval { return n.constTarval }

// SymConstEntity returns a SymConst node's referenced entity.
func SymConstEntity(n *Node) *Entity { return n.entity }

// LoadPtr returns a Load node's pointer operand.
func LoadPtr(n *Node) *Node { return n.Preds[0] }

// LoadMem returns a Load node's memory operand.
func LoadMem(n *Node) *Node { return n.Preds[1] }

// LoadMode returns the mode of the value a Load produces.
func LoadMode(n *Node) Mode { return n.Mode }

// StorePtr returns a Store node's pointer operand.
func StorePtr(n *Node) *Node { return n.Preds[0] }

// StoreValue returns a Store node's stored value operand.
func StoreValue(n *Node) *Node { return n.Preds[1] }

// StoreMem returns a Store node's memory operand.
func StoreMem(n *Node) *Node { return n.Preds[2] }

// StoreMode returns the mode of the value a Store writes (the stored
// value's own mode, mirroring orig's `mode = get_irn_mode(val)`).
func StoreMode(n *Node) Mode { return StoreValue(n).Mode }

// FrameAddrFrame returns a FrameAddr node's frame-pointer operand.
func FrameAddrFrame(n *Node) *Node { return n.Preds[0] }

// FrameAddrEntity returns a FrameAddr node's frame entity.
func FrameAddrEntity(n *Node) *Entity { return n.entity }

// AddSPOldSP returns a be_AddSP node's incoming stack-pointer operand.
func AddSPOldSP(n *Node) *Node { return n.Preds[0] }

// AddSPSize returns a be_AddSP node's size operand.
func AddSPSize(n *Node) *Node { return n.Preds[1] }

// SubSPOldSP returns a be_SubSP node's incoming stack-pointer operand.
func SubSPOldSP(n *Node) *Node { return n.Preds[0] }

// SubSPSize returns a be_SubSP node's size operand.
func SubSPSize(n *Node) *Node { return n.Preds[1] }

// CmpLeft returns a Cmp node's left operand.
func CmpLeft(n *Node) *Node { return n.Preds[0] }

// CmpRight returns a Cmp node's right operand.
func CmpRight(n *Node) *Node { return n.Preds[1] }

// CondSelector returns a Cond node's selector operand.
func CondSelector(n *Node) *Node { return n.Preds[0] }

// CondDefaultProj returns a Cond node's default projection number (switch
// form only).
func CondDefaultProj(n *Node) int { return n.defaultProj }

// BinopLeft returns a binary node's left operand.
func BinopLeft(n *Node) *Node { return n.Preds[0] }

// BinopRight returns a binary node's right operand.
func BinopRight(n *Node) *Node { return n.Preds[1] }

// UnopOperand returns a single-operand node's operand (Not, Minus, Abs,
// be_Copy).
func UnopOperand(n *Node) *Node { return n.Preds[0] }

// ConvOperand returns a Conv node's source operand.
func ConvOperand(n *Node) *Node { return n.Preds[0] }

// ProjPred returns a Proj node's predecessor (the tuple-producing node).
func ProjPred(n *Node) *Node { return n.Preds[0] }

// ProjNum returns a Proj node's selector.
func ProjNum(n *Node) int { return n.projNum }
