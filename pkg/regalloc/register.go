// Package regalloc holds the backend utilities instruction selection
// consumes as callable services but does not itself implement: register
// classes, register requirement descriptors, and the fixed stack-pointer
// register (spec.md §1 "Explicitly OUT of scope: Backend utilities").
// Register assignment itself is out of scope for this pass; only the
// descriptors handlers attach to target nodes live here.
package regalloc

// Register is a single physical register.
type Register struct {
	Name  string
	Class *Class
	Index int
}

// Class is a register class (e.g. the SPARC general-purpose class).
type Class struct {
	Name      string
	Registers []*Register
}

// GP is the SPARC general-purpose integer register class, the class every
// GP-mode value (spec.md's mode_needs_gp_reg) is assigned to.
var GP = &Class{Name: "sparc_gp"}

// SP is the single fixed stack-pointer register, assigned explicitly to the
// AddSP/SubSP stack-selector projections (spec.md §4.6).
var SP = &Register{Name: "sp", Class: GP, Index: 14}

func init() {
	// The GP register file holds only its fixed member (sp); register
	// ALLOCATION is out of scope for this pass (spec.md §1), but the class
	// needs that member populated for descriptors to be meaningful.
	GP.Registers = []*Register{SP}
}
