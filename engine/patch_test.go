// patch_test.go - Patch layout tests

package engine

import (
	"math/rand"
	"testing"
)

func TestPatch_LayoutOffsets(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"mixer", PatchMixBalance, 8},
		{"filter 1", PatchFilter1, 16},
		{"filter env", PatchFilterEnv, 22},
		{"env/lfo 1", PatchEnvLfo1, 24},
		{"voice lfo", PatchVoiceLfo, 48},
		{"modulation", PatchModulation, 50},
		{"modifiers", PatchModifier, 92},
		{"filter velo", PatchFilterVelo, 104},
		{"size", PatchSize, 112},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("%s: expected offset %d, got %d", tt.name, tt.want, tt.offset)
		}
	}
	if PatchModulation+NumModulations*modStride != PatchModifier {
		t.Error("expected the modulation slots to end where the modifiers start")
	}
	if PatchEnvLfo1+NumEnvelopes*envLfoStride != PatchVoiceLfo {
		t.Error("expected the envelope slots to end at the voice LFO")
	}
}

func TestPatch_ParamsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 50 {
		var p Patch
		for i := range p {
			p[i] = byte(rng.Intn(256))
		}
		q := p
		q.SetParams(p.Params())
		if q != p {
			t.Fatalf("expected SetParams(Params()) to reproduce the bytes\n%v\n%v", p, q)
		}
	}
}

func TestDefaultPatch_Fields(t *testing.T) {
	p := DefaultPatch()
	if p[PatchMixBalance] != 32 {
		t.Errorf("expected balance 32, got %d", p[PatchMixBalance])
	}
	if p[PatchFilter1] != 127 {
		t.Errorf("expected an open filter, got cutoff %d", p[PatchFilter1])
	}
	src, dst, amount := p.modulation(10)
	if src != SrcEnv2 || dst != DstVCA || amount != 63 {
		t.Errorf("expected env2 -> vca at 63, got %s -> %s at %d", src, dst, amount)
	}
	for i := range NumOscillators {
		if Algorithm(p.oscByte(i, oscShape)) != AlgoNone {
			t.Errorf("osc %d: expected shape none", i+1)
		}
	}
}

func TestPart_Accessors(t *testing.T) {
	var p Part
	p[PartVolume] = 100
	p[PartLegato] = 1
	p[PartPortamento] = 40
	if p.Volume() != 100 || !p.Legato() || p.Portamento() != 40 {
		t.Errorf("unexpected part view: volume %d legato %v portamento %d", p.Volume(), p.Legato(), p.Portamento())
	}
}
