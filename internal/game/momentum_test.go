package game

import "testing"

func TestMomentum_PressActivates(t *testing.T) {
	m := NewMomentum()

	m.Press(DirLeftUp)
	in := m.Decay()

	if !in.LeftUp {
		t.Error("expected LeftUp to be active after press")
	}
	if in.LeftDown || in.RightUp || in.RightDown {
		t.Errorf("expected only LeftUp to be active, got %+v", in)
	}
}

func TestMomentum_ActiveForMaxMomentumReads(t *testing.T) {
	m := NewMomentum()
	m.Press(DirRightDown)

	for i := 0; i < MaxMomentum; i++ {
		in := m.Decay()
		if !in.RightDown {
			t.Errorf("expected RightDown active on read %d", i+1)
		}
	}

	in := m.Decay()
	if in.RightDown {
		t.Errorf("expected RightDown inactive on read %d", MaxMomentum+1)
	}
}

func TestMomentum_OppositePressCancels(t *testing.T) {
	tests := []struct {
		name   string
		first  Direction
		second Direction
		active func(Intents) (first, second bool)
	}{
		{"left down cancels left up", DirLeftUp, DirLeftDown,
			func(in Intents) (bool, bool) { return in.LeftUp, in.LeftDown }},
		{"left up cancels left down", DirLeftDown, DirLeftUp,
			func(in Intents) (bool, bool) { return in.LeftDown, in.LeftUp }},
		{"right down cancels right up", DirRightUp, DirRightDown,
			func(in Intents) (bool, bool) { return in.RightUp, in.RightDown }},
		{"right up cancels right down", DirRightDown, DirRightUp,
			func(in Intents) (bool, bool) { return in.RightDown, in.RightUp }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMomentum()
			m.Press(tt.first)
			m.Press(tt.second)

			first, second := tt.active(m.Decay())
			if first {
				t.Error("expected the first press to be cancelled")
			}
			if !second {
				t.Error("expected the second press to be active")
			}
		})
	}
}

func TestMomentum_SidesAreIndependent(t *testing.T) {
	m := NewMomentum()
	m.Press(DirLeftUp)
	m.Press(DirRightDown)

	in := m.Decay()

	if !in.LeftUp || !in.RightDown {
		t.Errorf("expected both sides active at once, got %+v", in)
	}
}

func TestMomentum_RepressRestoresFullMomentum(t *testing.T) {
	m := NewMomentum()
	m.Press(DirLeftUp)

	// Drain part of the momentum, then press the same key again
	m.Decay()
	m.Decay()
	m.Press(DirLeftUp)

	for i := 0; i < MaxMomentum; i++ {
		if in := m.Decay(); !in.LeftUp {
			t.Errorf("expected LeftUp active on read %d after re-press", i+1)
		}
	}
	if in := m.Decay(); in.LeftUp {
		t.Error("expected LeftUp inactive once momentum drained")
	}
}

func TestMomentum_Reset(t *testing.T) {
	m := NewMomentum()
	m.Press(DirLeftUp)
	m.Press(DirRightUp)

	m.Reset()

	in := m.Decay()
	if in.LeftUp || in.LeftDown || in.RightUp || in.RightDown {
		t.Errorf("expected no active directions after reset, got %+v", in)
	}
}

func TestMomentum_DecayOnEmptyTracker(t *testing.T) {
	m := NewMomentum()

	// Draining an idle tracker must not underflow the counters
	for i := 0; i < 20; i++ {
		m.Decay()
	}

	m.Press(DirLeftDown)
	in := m.Decay()
	if !in.LeftDown {
		t.Error("expected LeftDown active after press on a drained tracker")
	}
}
