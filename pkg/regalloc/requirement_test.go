package regalloc

import "testing"

func TestFixedRequirementPinsSP(t *testing.T) {
	req := Fixed(SP)
	if req.Class != GP {
		t.Errorf("Fixed(SP).Class: want GP, got %v", req.Class)
	}
	if req.Fixed != SP {
		t.Errorf("Fixed(SP).Fixed: want SP, got %v", req.Fixed)
	}
}

func TestGPRequirementHasNoFixedRegister(t *testing.T) {
	if GPRequirement.Fixed != nil {
		t.Error("GPRequirement must not pin a specific register")
	}
	if GPRequirement.Class != GP {
		t.Error("GPRequirement must be the GP class")
	}
}

func TestNoRequirementIsEmpty(t *testing.T) {
	if NoRequirement.Class != nil || NoRequirement.Fixed != nil {
		t.Error("NoRequirement must carry neither a class nor a fixed register")
	}
}

func TestGPClassContainsSP(t *testing.T) {
	found := false
	for _, r := range GP.Registers {
		if r == SP {
			found = true
		}
	}
	if !found {
		t.Error("GP register class must include the fixed stack-pointer register")
	}
}
