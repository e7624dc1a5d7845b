// lfo_test.go - LFO tests

package engine

import "testing"

func TestLfo_ShapesAtPhase(t *testing.T) {
	tests := []struct {
		name  string
		shape LfoWave
		phase uint16
		want  uint8
	}{
		{"triangle top", LfoTriangle, 0x0000, 255},
		{"triangle bottom", LfoTriangle, 0x8000, 0},
		{"square low", LfoSquare, 0x4000, 0},
		{"square high", LfoSquare, 0xc000, 255},
		{"ramp", LfoRamp, 0x8000, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLfo(nil)
			l.SetPhase(tt.phase - 1)
			l.SetPhaseIncrement(1)
			if got := l.Render(tt.shape); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLfo_LoopedOnWrap(t *testing.T) {
	l := NewLfo(nil)
	l.SetPhaseIncrement(0x4000)
	var loops int
	for range 8 {
		l.Render(LfoRamp)
		if l.Looped() {
			loops++
		}
	}
	if loops != 2 {
		t.Errorf("expected 2 wraps in 8 quarter-cycle steps, got %d", loops)
	}
}

func TestLfo_SampleHoldChangesOnlyOnWrap(t *testing.T) {
	l := NewLfo(NewRandom(77))
	l.SetPhaseIncrement(0x1000)
	held := l.Render(LfoSampleHold)
	for i := 1; i < 64; i++ {
		v := l.Render(LfoSampleHold)
		if !l.Looped() && v != held {
			t.Fatalf("step %d: value changed from %d to %d without a wrap", i, held, v)
		}
		held = v
	}
}

func TestLfo_OutOfRangeWaveClamps(t *testing.T) {
	a := NewLfo(nil)
	b := NewLfo(nil)
	a.SetPhaseIncrement(900)
	b.SetPhaseIncrement(900)
	for range 100 {
		if x, y := a.Render(LfoWaveCount+20), b.Render(LfoWaveCount-1); x != y {
			t.Fatalf("expected out-of-range waves to match the last table wave, got %d and %d", x, y)
		}
	}
}
