package ssa

// Proj selector conventions for source-graph tuple-producing nodes
// (spec.md §4.6), grounded on orig's pn_Load_*, pn_be_AddSP_*,
// pn_be_SubSP_* and pn_Div_* enumerators. These are the selectors a
// loader builds into a source graph; the transform handlers switch on
// them to pick the matching target Proj.
const (
	// ProjLoadRes selects a Load's result value; ProjLoadMem its memory
	// output.
	ProjLoadRes = 0
	ProjLoadMem = 1

	// ProjStoreMem selects a Store's (only) memory output.
	ProjStoreMem = 0

	// ProjAddSPSP and ProjAddSPRes both select AddSP's adjusted pointer
	// (orig carries them as distinct selectors over the same value);
	// ProjAddSPMem selects its memory output.
	ProjAddSPSP  = 0
	ProjAddSPRes = 1
	ProjAddSPMem = 2

	// ProjSubSPSP selects SubSP's adjusted pointer; ProjSubSPMem its
	// memory output.
	ProjSubSPSP  = 0
	ProjSubSPMem = 1

	// ProjDivRes selects a Div's quotient.
	ProjDivRes = 0
)
