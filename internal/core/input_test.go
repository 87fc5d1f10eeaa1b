package core

import "testing"

func TestPadActionRoundTrip(t *testing.T) {
	for i := 0; i < MaxPads; i++ {
		a := PadAction(i)
		idx, ok := a.PadIndex()
		if !ok || idx != i {
			t.Errorf("PadAction(%d).PadIndex() = (%d, %v)", i, idx, ok)
		}
	}

	if PadAction(-1) != ActionNone || PadAction(MaxPads) != ActionNone {
		t.Error("out of range pad index should map to ActionNone")
	}
	if _, ok := ActionConfirm.PadIndex(); ok {
		t.Error("ActionConfirm is not a pad")
	}
	if ActionPad3.String() != "Pad3" {
		t.Errorf("ActionPad3.String() = %q", ActionPad3.String())
	}
}

func TestInputFramePressOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPad3)
	f.Set(ActionPad1)
	f.Set(ActionPad3)
	f.Set(ActionPause)

	want := []int{2, 0, 2}
	if len(f.Presses) != len(want) {
		t.Fatalf("Presses = %v, expected %v", f.Presses, want)
	}
	for i := range want {
		if f.Presses[i] != want[i] {
			t.Errorf("Presses[%d] = %d, expected %d", i, f.Presses[i], want[i])
		}
	}
	if !f.Has(ActionPause) {
		t.Error("pause should be set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPad2)
	f.Click(4, 5)
	f.Clear()

	if f.Has(ActionPad2) || len(f.Presses) != 0 || len(f.Clicks) != 0 {
		t.Error("Clear should drop actions, presses and clicks")
	}
}
