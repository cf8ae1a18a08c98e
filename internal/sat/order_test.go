package sat

import "testing"

func TestVarOrder_SelectDefaultPhase(t *testing.T) {
	vo := NewVarOrder(0.95, true)
	vo.AddVar()
	vo.AddVar()

	lit, ok := vo.Select()
	if !ok {
		t.Fatalf("Select() reported no candidate with two fresh variables")
	}
	if lit.IsPositive() {
		t.Errorf("Select() = %v, want the default negative phase", lit)
	}
}

func TestVarOrder_RemoveThenSelectSkipsIt(t *testing.T) {
	vo := NewVarOrder(0.95, true)
	vo.AddVar()
	vo.AddVar()

	vo.Remove(0)
	lit, ok := vo.Select()
	if !ok || lit.VarID() != 1 {
		t.Errorf("Select() = (%v, %v), want variable 1 once 0 is removed", lit, ok)
	}

	if _, ok := vo.Select(); ok {
		t.Errorf("Select() found a candidate after both variables were removed")
	}
}

func TestVarOrder_ReinsertSavesPhase(t *testing.T) {
	vo := NewVarOrder(0.95, true)
	vo.AddVar()

	vo.Remove(0)
	vo.Reinsert(0, True)

	lit, ok := vo.Select()
	if !ok || !lit.IsPositive() {
		t.Errorf("Select() = (%v, %v), want the saved positive phase", lit, ok)
	}
}

func TestVarOrder_ReinsertIgnoresPhaseWhenDisabled(t *testing.T) {
	vo := NewVarOrder(0.95, false)
	vo.AddVar()

	vo.Remove(0)
	vo.Reinsert(0, True)

	lit, ok := vo.Select()
	if !ok || lit.IsPositive() {
		t.Errorf("Select() = (%v, %v), want the default negative phase since phase saving is off", lit, ok)
	}
}

func TestVarOrder_BumpPrioritizesHigherActivity(t *testing.T) {
	vo := NewVarOrder(0.95, true)
	vo.AddVar()
	vo.AddVar()

	vo.Bump(1)

	lit, ok := vo.Select()
	if !ok || lit.VarID() != 1 {
		t.Errorf("Select() = (%v, %v), want the bumped variable 1 first", lit, ok)
	}
}
