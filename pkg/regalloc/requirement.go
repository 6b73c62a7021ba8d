package regalloc

// Requirement describes what a node's output register must satisfy:
// either "any register of this class" or "this exact fixed register".
// Grounded on orig's arch_register_req_t / sparc_reg_classes[...].class_req
// / arch_no_register_req.
type Requirement struct {
	Class *Class
	Fixed *Register
}

// GPRequirement is "any register in the GP class", assigned to integer
// Phi nodes (spec.md §4.6 "Register requirement of integer Phis is the GP
// register class").
var GPRequirement = &Requirement{Class: GP}

// NoRequirement is the "no requirement" marker assigned to non-GP Phis and
// to nodes that do not need register-allocation input, mirroring orig's
// arch_no_register_req singleton.
var NoRequirement = &Requirement{}

// Fixed returns a requirement pinning a node's output to reg exactly. The
// AddSP/SubSP stack projections do not go through it: they set the target
// node's FixedReg field to SP directly.
func Fixed(reg *Register) *Requirement {
	return &Requirement{Class: reg.Class, Fixed: reg}
}
