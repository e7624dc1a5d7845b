// envelope_test.go - Envelope generator tests

package engine

import "testing"

func newTestEnvelope(a, d, s, r uint8) *Envelope {
	e := &Envelope{}
	e.Init()
	e.Update(a, d, s, r)
	return e
}

func TestEnvelope_InitIsDead(t *testing.T) {
	e := newTestEnvelope(10, 10, 64, 10)
	if e.Stage() != StageDead {
		t.Fatalf("expected dead stage, got %s", e.Stage())
	}
	for range 10 {
		if v := e.Render(); v != 0 {
			t.Fatalf("expected silence from a dead envelope, got %d", v)
		}
	}
}

func TestEnvelope_AttackMonotonicAndTimed(t *testing.T) {
	for _, attack := range []uint8{0, 20, 60, 100} {
		e := newTestEnvelope(attack, 60, 40, 60)
		e.Trigger(StageAttack)
		inc := int(envIncrements[attack])
		want := (65536 + inc - 1) / inc

		prev := uint8(0)
		renders := 0
		for e.Stage() == StageAttack {
			v := e.Render()
			renders++
			if v < prev {
				t.Fatalf("attack %d: level fell from %d to %d", attack, prev, v)
			}
			prev = v
			if renders > want+1 {
				break
			}
		}
		if renders != want {
			t.Errorf("attack %d: expected %d renders to peak, got %d", attack, want, renders)
		}
		if prev != 255 {
			t.Errorf("attack %d: expected peak 255, got %d", attack, prev)
		}
	}
}

func TestEnvelope_DecayToSustainHolds(t *testing.T) {
	e := newTestEnvelope(0, 10, 50, 10)
	e.Trigger(StageAttack)
	for range 1000 {
		e.Render()
		if e.Stage() == StageSustain {
			break
		}
	}
	if e.Stage() != StageSustain {
		t.Fatalf("expected sustain, got %s", e.Stage())
	}
	level := e.Value()
	if level != 100 {
		t.Errorf("expected sustain level 100, got %d", level)
	}
	for range 100 {
		if v := e.Render(); v != level {
			t.Fatalf("expected sustain to hold at %d, got %d", level, v)
		}
	}
}

func TestEnvelope_ReleaseEndsDead(t *testing.T) {
	e := newTestEnvelope(0, 0, 127, 30)
	e.Trigger(StageAttack)
	for range 10 {
		e.Render()
	}
	e.Trigger(StageRelease)
	prev := e.Value()
	for range 100000 {
		v := e.Render()
		if v > prev {
			t.Fatalf("release rose from %d to %d", prev, v)
		}
		prev = v
		if e.Stage() == StageDead {
			break
		}
	}
	if e.Stage() != StageDead || e.Value() != 0 {
		t.Errorf("expected dead at 0, got %s at %d", e.Stage(), e.Value())
	}
}

func TestEnvelope_ReleaseFromPartialAttack(t *testing.T) {
	e := newTestEnvelope(90, 20, 64, 20)
	e.Trigger(StageAttack)
	for range 50 {
		e.Render()
	}
	mid := e.Value()
	if mid == 0 || mid == 255 {
		t.Fatalf("expected a partial attack level, got %d", mid)
	}
	e.Trigger(StageRelease)
	if v := e.Render(); v > mid {
		t.Errorf("expected release to start from %d, got %d", mid, v)
	}
}

func TestEnvelope_UpdateKeepsRunningSegment(t *testing.T) {
	e := newTestEnvelope(0, 0, 127, 0)
	e.Trigger(StageAttack)
	for e.Stage() != StageSustain {
		e.Render()
	}
	e.Update(0, 0, 10, 0)
	if v := e.Render(); v != 254 {
		t.Errorf("expected the running sustain to keep level 254, got %d", v)
	}
}

func TestEnvelopeStage_String(t *testing.T) {
	tests := []struct {
		stage EnvelopeStage
		want  string
	}{
		{StageAttack, "attack"},
		{StageRelease, "release"},
		{StageDead, "dead"},
		{EnvelopeStage(9), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
